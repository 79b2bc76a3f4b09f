// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

//go:build !headless

package ebiten

import (
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/gopher8/gui/sound"
)

// audio implements io.Reader for the oto player. silence is produced when the
// beeper is not sounding
type audio struct {
	ctx    *oto.Context
	player *oto.Player

	crit    sync.Mutex
	src     sound.Source
	beeping bool
}

func newAudio(beepFile string) (*audio, error) {
	src, err := sound.NewSource(beepFile)
	if err != nil {
		return nil, err
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sound.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	aud := &audio{
		ctx: ctx,
		src: src,
	}
	aud.player = ctx.NewPlayer(aud)
	aud.player.Play()

	return aud, nil
}

// Read implements the io.Reader interface.
func (aud *audio) Read(p []byte) (int, error) {
	aud.crit.Lock()
	defer aud.crit.Unlock()

	if !aud.beeping {
		clear(p)
		return len(p), nil
	}

	sound.FillBytes(aud.src, p)
	return len(p), nil
}

func (aud *audio) start() {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	aud.src.Rewind()
	aud.beeping = true
}

func (aud *audio) stop() {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	aud.beeping = false
}

func (aud *audio) destroy() {
	if aud.player != nil {
		_ = aud.player.Close()
		aud.player = nil
	}
}
