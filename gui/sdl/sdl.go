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
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

const logTag = "sdl"

// the number of bytes in each pixel of the texture
const scrDepth = 4

// colours of the pixels in ABGR8888 order
var (
	pixelOn  = [scrDepth]byte{0xff, 0xff, 0xff, 0xff}
	pixelOff = [scrDepth]byte{0x00, 0x00, 0x00, 0xff}
)

// Host is an implementation of gui.Host using SDL for the window, input and
// audio.
type Host struct {
	cfg gui.Config

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	pixels   []byte

	// the host limits presentation to the refresh rate of the timers
	lastPresent time.Time

	keys input.State

	aud *audio
}

// NewHost is the preferred method of initialisation for the Host type.
func NewHost(cfg gui.Config) (*Host, error) {
	if err := cfg.Validate(); err != nil {
		return nil, curated.Errorf(gui.HostError, gui.BackendSDL, err)
	}

	hst := &Host{
		cfg:    cfg,
		pixels: make([]byte, display.Width*display.Height*scrDepth),
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf(gui.HostError, gui.BackendSDL, err)
	}

	hst.window, err = sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height), sdl.WINDOW_SHOWN)
	if err != nil {
		hst.Destroy()
		return nil, curated.Errorf(gui.HostError, gui.BackendSDL, err)
	}

	hst.renderer, err = sdl.CreateRenderer(hst.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		hst.Destroy()
		return nil, curated.Errorf(gui.HostError, gui.BackendSDL, err)
	}

	hst.texture, err = hst.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STREAMING),
		int32(display.Width), int32(display.Height))
	if err != nil {
		hst.Destroy()
		return nil, curated.Errorf(gui.HostError, gui.BackendSDL, err)
	}

	hst.aud, err = newAudio(cfg.BeepFile)
	if err != nil {
		hst.Destroy()
		return nil, curated.Errorf(gui.HostError, gui.BackendSDL, err)
	}

	logger.Logf(logger.Allow, logTag, "window %s", cfg)

	return hst, nil
}

// Destroy implements the gui.Host interface.
func (hst *Host) Destroy() error {
	if hst.aud != nil {
		hst.aud.destroy()
		hst.aud = nil
	}
	if hst.texture != nil {
		_ = hst.texture.Destroy()
		hst.texture = nil
	}
	if hst.renderer != nil {
		_ = hst.renderer.Destroy()
		hst.renderer = nil
	}
	if hst.window != nil {
		_ = hst.window.Destroy()
		hst.window = nil
	}
	sdl.Quit()
	return nil
}

// Present implements the gui.Display interface.
func (hst *Host) Present(frame *display.Frame) error {
	// keep the audio queue topped up even if the screen isn't updated
	if err := hst.aud.service(); err != nil {
		return curated.Errorf(gui.HostError, gui.BackendSDL, err)
	}

	now := time.Now()
	if now.Sub(hst.lastPresent) < time.Second/60 {
		return nil
	}
	hst.lastPresent = now

	for y := range frame {
		for x := range frame[y] {
			i := (y*display.Width + x) * scrDepth
			if frame[y][x] {
				copy(hst.pixels[i:], pixelOn[:])
			} else {
				copy(hst.pixels[i:], pixelOff[:])
			}
		}
	}

	pixels, pitch, err := hst.texture.Lock(nil)
	if err != nil {
		return curated.Errorf(gui.HostError, gui.BackendSDL, err)
	}
	rowLen := display.Width * scrDepth
	for y := range display.Height {
		copy(pixels[y*pitch:], hst.pixels[y*rowLen:(y+1)*rowLen])
	}
	hst.texture.Unlock()

	err = hst.renderer.Clear()
	if err != nil {
		return curated.Errorf(gui.HostError, gui.BackendSDL, err)
	}
	err = hst.renderer.Copy(hst.texture, nil, nil)
	if err != nil {
		return curated.Errorf(gui.HostError, gui.BackendSDL, err)
	}
	hst.renderer.Present()

	return nil
}

// Poll implements the gui.Input interface.
func (hst *Host) Poll(keys *input.State) (bool, error) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		var uev userinput.Event

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			uev = userinput.EventQuit{}

		case *sdl.KeyboardEvent:
			key := userinput.CanonicalKey(sdl.GetKeyName(ev.Keysym.Sym))
			if key == "" {
				continue // for loop
			}
			uev = userinput.EventKeyboard{
				Key:    key,
				Down:   ev.Type == sdl.KEYDOWN,
				Repeat: ev.Repeat != 0,
			}

		default:
			continue // for loop
		}

		quit, err := userinput.HandleUserInput(uev, hst.cfg.Keymap, &hst.keys)
		if err != nil {
			return false, curated.Errorf(gui.HostError, gui.BackendSDL, err)
		}
		if quit {
			return false, nil
		}
	}

	*keys = hst.keys
	return true, nil
}

// StartBeep implements the gui.Audio interface.
func (hst *Host) StartBeep() error {
	if err := hst.aud.start(); err != nil {
		return curated.Errorf(gui.HostError, gui.BackendSDL, err)
	}
	return nil
}

// StopBeep implements the gui.Audio interface.
func (hst *Host) StopBeep() error {
	hst.aud.stop()
	return nil
}
