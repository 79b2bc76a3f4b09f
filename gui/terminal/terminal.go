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

package terminal

import (
	"io"
	"os"
	"sync"
	"time"

	tm "github.com/buger/goterm"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
	"golang.org/x/term"
)

const logTag = "terminal"

// HoldDuration is how long a key is considered to be pressed after the
// terminal reports it. Terminals do not report key releases.
const HoldDuration = 150 * time.Millisecond

// the screen is redrawn no more often than this
const refreshPeriod = time.Second / 30

// the size of the terminal required to show the whole screen. two rows of
// pixels are drawn in each line of text and there is a status line
const (
	requiredCols = display.Width + 2
	requiredRows = display.Height/2 + 3
)

// Host is an implementation of gui.Host that draws the screen in the
// terminal with block characters.
type Host struct {
	cfg gui.Config

	in  *os.File
	raw *rawMode

	// chunks of input read from the terminal by the reader goroutine
	input chan []byte
	done  chan struct{}
	wg    sync.WaitGroup

	keys input.State

	// the time at which each held key will be released. keyed by the
	// canonical key name
	held map[string]time.Time

	// the most recently drawn frame
	last        display.Frame
	drawn       bool
	lastPresent time.Time

	beeping bool

	now func() time.Time
}

// NewHost is the preferred method of initialisation for the Host type. The
// terminal is put into non-canonical mode and the screen is cleared.
func NewHost(cfg gui.Config) (*Host, error) {
	if err := cfg.Validate(); err != nil {
		return nil, curated.Errorf(gui.HostError, gui.BackendTerminal, err)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, curated.Errorf(gui.HostError, gui.BackendTerminal, "stdin and stdout must be a terminal")
	}

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if w < requiredCols || h < requiredRows {
			logger.Logf(logger.Allow, logTag, "terminal is %dx%d but %dx%d is required", w, h, requiredCols, requiredRows)
		}
	}

	raw, err := enterRawMode(os.Stdin)
	if err != nil {
		return nil, curated.Errorf(gui.HostError, gui.BackendTerminal, err)
	}

	hst := newHost(cfg, os.Stdout)
	hst.in = os.Stdin
	hst.raw = raw

	hst.wg.Add(1)
	go func() {
		defer hst.wg.Done()
		hst.read(hst.in)
	}()

	tm.Clear()
	flush()

	return hst, nil
}

// newHost creates a host that writes to the supplied writer. input is sent
// on the input channel
func newHost(cfg gui.Config, out io.Writer) *Host {
	tm.Output.Reset(out)
	return &Host{
		cfg:   cfg,
		input: make(chan []byte, 16),
		done:  make(chan struct{}),
		held:  make(map[string]time.Time),
		now:   time.Now,
	}
}

// read from the terminal until Destroy() is called. the terminal has been
// set up so that Read() returns regularly even when there is no input
func (hst *Host) read(in io.Reader) {
	buf := make([]byte, 32)
	for {
		select {
		case <-hst.done:
			return
		default:
		}

		n, err := in.Read(buf)
		if n > 0 {
			b := make([]byte, n)
			copy(b, buf[:n])
			select {
			case hst.input <- b:
			case <-hst.done:
				return
			}
		}
		if err != nil && err != io.EOF {
			logger.Log(logger.Allow, logTag, err)
			return
		}
	}
}

// Destroy implements the gui.Host interface.
func (hst *Host) Destroy() error {
	close(hst.done)
	hst.wg.Wait()

	tm.Println(tm.ResetLine(""))
	flush()

	if hst.raw != nil {
		if err := hst.raw.restore(); err != nil {
			return curated.Errorf(gui.HostError, gui.BackendTerminal, err)
		}
	}
	return nil
}

// Poll implements the gui.Input interface.
func (hst *Host) Poll(keys *input.State) (bool, error) {
	now := hst.now()

	for {
		var chunk []byte
		select {
		case chunk = <-hst.input:
		default:
		}
		if chunk == nil {
			break // for loop
		}

		for _, ev := range decode(chunk) {
			if ev, ok := ev.(userinput.EventKeyboard); ok && ev.Key != "" && ev.Key != userinput.QuitKey {
				hst.held[ev.Key] = now.Add(HoldDuration)
			}
			quit, err := userinput.HandleUserInput(ev, hst.cfg.Keymap, &hst.keys)
			if err != nil {
				return false, curated.Errorf(gui.HostError, gui.BackendTerminal, err)
			}
			if quit {
				return false, nil
			}
		}
	}

	for name, t := range hst.held {
		if now.After(t) {
			delete(hst.held, name)
			_, err := userinput.HandleUserInput(userinput.EventKeyboard{Key: name, Down: false}, hst.cfg.Keymap, &hst.keys)
			if err != nil {
				return false, curated.Errorf(gui.HostError, gui.BackendTerminal, err)
			}
		}
	}

	*keys = hst.keys
	return true, nil
}

// Present implements the gui.Display interface.
func (hst *Host) Present(frame *display.Frame) error {
	now := hst.now()
	if hst.drawn && (*frame == hst.last || now.Sub(hst.lastPresent) < refreshPeriod) {
		return nil
	}
	hst.last = *frame
	hst.drawn = true
	hst.lastPresent = now
	hst.draw()
	return nil
}

func (hst *Host) draw() {
	tm.MoveCursor(1, 1)
	tm.Print(render(&hst.last))
	tm.Print(tm.Bold(hst.cfg.Title))
	if hst.beeping {
		tm.Print(" ", tm.Color("BEEP", tm.RED))
	} else {
		tm.Print("     ")
	}
	flush()
}

// StartBeep implements the gui.Audio interface. The terminal bell is rung
// once.
func (hst *Host) StartBeep() error {
	hst.beeping = true
	tm.Print("\a")
	hst.draw()
	return nil
}

// StopBeep implements the gui.Audio interface.
func (hst *Host) StopBeep() error {
	hst.beeping = false
	hst.draw()
	return nil
}

// write the goterm screen buffer to the output. tm.Flush() writes nothing if
// the terminal is shorter than the buffer
func flush() {
	_, _ = tm.Output.Write(tm.Screen.Bytes())
	_ = tm.Output.Flush()
	tm.Screen.Reset()
}
