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

package sdl

import (
	"github.com/jetsetilly/gopher8/gui/sound"
	"github.com/veandco/go-sdl2/sdl"
)

// the number of samples in each buffer queued with the audio device
const bufferLength = 512

// the number of buffers that should be waiting in the queue while the beeper
// is sounding
const queueLength = 4

type audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	src    sound.Source
	buffer []byte

	beeping bool
}

func newAudio(beepFile string) (*audio, error) {
	src, err := sound.NewSource(beepFile)
	if err != nil {
		return nil, err
	}

	aud := &audio{
		src: src,
	}

	spec := &sdl.AudioSpec{
		Freq:     sound.SampleRate,
		Format:   sdl.AUDIO_F32,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, err
	}

	// float32 samples are four bytes each
	aud.buffer = make([]byte, bufferLength*4)

	return aud, nil
}

func (aud *audio) destroy() {
	sdl.CloseAudioDevice(aud.id)
}

func (aud *audio) start() error {
	aud.beeping = true
	aud.src.Rewind()
	sdl.ClearQueuedAudio(aud.id)
	if err := aud.service(); err != nil {
		return err
	}
	sdl.PauseAudioDevice(aud.id, false)
	return nil
}

func (aud *audio) stop() {
	aud.beeping = false
	sdl.PauseAudioDevice(aud.id, true)
	sdl.ClearQueuedAudio(aud.id)
}

// add buffers to the queue until it is full
func (aud *audio) service() error {
	if !aud.beeping {
		return nil
	}
	for sdl.GetQueuedAudioSize(aud.id) < uint32(len(aud.buffer)*queueLength) {
		sound.FillBytes(aud.src, aud.buffer)
		if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
			return err
		}
	}
	return nil
}
