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
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

const logTag = "ebiten"

// height of the status bar in screen pixels
const statusBarHeight = 16

// the number of bytes in each pixel of the image
const scrDepth = 4

// Host is an implementation of gui.Host using Ebitengine for the window and
// input, and oto for the audio.
type Host struct {
	cfg gui.Config

	// critical section. the ebiten game loop and the emulation run on
	// different goroutines
	crit sync.Mutex

	// pixels are written by Present() and read by Draw()
	pixels []byte
	frame  display.Frame
	image  *ebiten.Image

	// events are added by Update() and consumed by Poll()
	events []userinput.Event
	keys   input.State

	// key names for every ebiten key that can be mapped
	keyNames map[ebiten.Key]string

	showStatusBar bool
	beeping       bool

	// the game loop has ended or is about to end, either because the window
	// was closed or because EndMainLoop() or Destroy() was called
	ending bool

	clipboardOnce sync.Once
	clipboardOK   bool

	aud *audio
}

// NewHost is the preferred method of initialisation for the Host type. The
// window is opened by RunMainLoop().
func NewHost(cfg gui.Config) (*Host, error) {
	if err := cfg.Validate(); err != nil {
		return nil, curated.Errorf(gui.HostError, gui.BackendEbiten, err)
	}

	hst := &Host{
		cfg:           cfg,
		pixels:        make([]byte, display.Width*display.Height*scrDepth),
		keyNames:      make(map[ebiten.Key]string),
		showStatusBar: true,
	}

	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		name := userinput.CanonicalKey(strings.TrimPrefix(k.String(), "Digit"))
		if name != "" {
			hst.keyNames[k] = name
		}
	}

	var err error
	hst.aud, err = newAudio(cfg.BeepFile)
	if err != nil {
		return nil, curated.Errorf(gui.HostError, gui.BackendEbiten, err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height+statusBarHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(true)

	return hst, nil
}

// RunMainLoop implements the gui.MainLoop interface. Ebitengine requires
// that it is called from the main thread.
func (hst *Host) RunMainLoop() error {
	logger.Logf(logger.Allow, logTag, "window %s", hst.cfg)

	err := ebiten.RunGame(hst)

	hst.crit.Lock()
	hst.ending = true
	hst.crit.Unlock()

	if err != nil {
		return curated.Errorf(gui.HostError, gui.BackendEbiten, err)
	}
	return nil
}

// EndMainLoop implements the gui.MainLoop interface.
func (hst *Host) EndMainLoop() {
	hst.crit.Lock()
	defer hst.crit.Unlock()
	hst.ending = true
}

// Destroy implements the gui.Host interface.
func (hst *Host) Destroy() error {
	hst.EndMainLoop()
	hst.aud.destroy()
	return nil
}

// Present implements the gui.Display interface.
func (hst *Host) Present(frame *display.Frame) error {
	hst.crit.Lock()
	defer hst.crit.Unlock()

	hst.frame = *frame
	for y := range frame {
		for x := range frame[y] {
			i := (y*display.Width + x) * scrDepth
			var v byte
			if frame[y][x] {
				v = 0xff
			}
			hst.pixels[i] = v
			hst.pixels[i+1] = v
			hst.pixels[i+2] = v
			hst.pixels[i+3] = 0xff
		}
	}
	return nil
}

// Poll implements the gui.Input interface.
func (hst *Host) Poll(keys *input.State) (bool, error) {
	hst.crit.Lock()
	defer hst.crit.Unlock()

	if hst.ending {
		return false, nil
	}

	for _, ev := range hst.events {
		quit, err := userinput.HandleUserInput(ev, hst.cfg.Keymap, &hst.keys)
		if err != nil {
			return false, curated.Errorf(gui.HostError, gui.BackendEbiten, err)
		}
		if quit {
			hst.events = hst.events[:0]
			return false, nil
		}
	}
	hst.events = hst.events[:0]

	*keys = hst.keys
	return true, nil
}

// StartBeep implements the gui.Audio interface.
func (hst *Host) StartBeep() error {
	hst.crit.Lock()
	hst.beeping = true
	hst.crit.Unlock()
	hst.aud.start()
	return nil
}

// StopBeep implements the gui.Audio interface.
func (hst *Host) StopBeep() error {
	hst.crit.Lock()
	hst.beeping = false
	hst.crit.Unlock()
	hst.aud.stop()
	return nil
}

// Update implements the ebiten.Game interface.
func (hst *Host) Update() error {
	hst.crit.Lock()
	defer hst.crit.Unlock()

	if hst.ending {
		return ebiten.Termination
	}

	if ebiten.IsWindowBeingClosed() {
		hst.events = append(hst.events, userinput.EventQuit{})
		hst.ending = true
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		hst.showStatusBar = !hst.showStatusBar
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		hst.copyToClipboard()
	}

	for k, name := range hst.keyNames {
		if inpututil.IsKeyJustPressed(k) {
			hst.events = append(hst.events, userinput.EventKeyboard{Key: name, Down: true})
		} else if inpututil.IsKeyJustReleased(k) {
			hst.events = append(hst.events, userinput.EventKeyboard{Key: name, Down: false})
		}
	}

	return nil
}

// copy the screen to the clipboard as text. must be called from within the
// critical section
func (hst *Host) copyToClipboard() {
	hst.clipboardOnce.Do(func() {
		hst.clipboardOK = clipboard.Init() == nil
	})
	if !hst.clipboardOK {
		logger.Log(logger.Allow, logTag, "clipboard is not available")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(hst.frame.String()))
	logger.Log(logger.Allow, logTag, "screen copied to clipboard")
}

// Draw implements the ebiten.Game interface.
func (hst *Host) Draw(screen *ebiten.Image) {
	if hst.image == nil {
		hst.image = ebiten.NewImage(display.Width, display.Height)
	}

	hst.crit.Lock()
	hst.image.WritePixels(hst.pixels)
	showStatusBar := hst.showStatusBar
	beeping := hst.beeping
	hst.crit.Unlock()

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(hst.cfg.Width)/display.Width, float64(hst.cfg.Height)/display.Height)
	screen.DrawImage(hst.image, opts)

	if showStatusBar {
		status := fmt.Sprintf("%.0f fps", ebiten.ActualFPS())
		if beeping {
			status = fmt.Sprintf("%s  BEEP", status)
		}
		text.Draw(screen, status, basicfont.Face7x13, 4, hst.cfg.Height+statusBarHeight-4, color.White)
	}
}

// Layout implements the ebiten.Game interface.
func (hst *Host) Layout(_, _ int) (int, int) {
	return hst.cfg.Width, hst.cfg.Height + statusBarHeight
}
