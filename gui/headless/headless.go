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

package headless

import (
	"sync"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/userinput"
)

// Host is an implementation of gui.Host that never shows anything to the
// user. Input is supplied with the Push() function.
type Host struct {
	crit sync.Mutex

	keymap userinput.Keymap

	// events waiting to be handled by the next call to Poll()
	pending []userinput.Event

	// the state of the keypad built up from previous events
	keys input.State

	// the most recently presented frame and the number of calls to Present()
	frame    display.Frame
	presents int

	// the number of calls to Poll()
	polls int

	// if non-zero then Poll() will return false once polls has reached the
	// value
	quitAfter int

	beeping    bool
	beepStarts int

	destroyed bool
}

// NewHost is the preferred method of initialisation for the Host type.
func NewHost(cfg gui.Config) *Host {
	km := cfg.Keymap
	if km == nil {
		km = userinput.DefaultKeymap()
	}
	return &Host{
		keymap: km,
	}
}

// QuitAfter causes Poll() to indicate the end of the emulation after n polls.
// A value of zero means that Poll() will never end the emulation unless a
// quit event is pushed.
func (hst *Host) QuitAfter(n int) {
	hst.crit.Lock()
	defer hst.crit.Unlock()
	hst.quitAfter = n
}

// Push an event. The event will be handled on the next call to Poll().
func (hst *Host) Push(ev userinput.Event) {
	hst.crit.Lock()
	defer hst.crit.Unlock()
	hst.pending = append(hst.pending, ev)
}

// Present implements the gui.Display interface.
func (hst *Host) Present(frame *display.Frame) error {
	hst.crit.Lock()
	defer hst.crit.Unlock()
	hst.frame = *frame
	hst.presents++
	return nil
}

// Poll implements the gui.Input interface.
func (hst *Host) Poll(keys *input.State) (bool, error) {
	hst.crit.Lock()
	defer hst.crit.Unlock()

	hst.polls++
	if hst.quitAfter > 0 && hst.polls > hst.quitAfter {
		return false, nil
	}

	for len(hst.pending) > 0 {
		ev := hst.pending[0]
		hst.pending = hst.pending[1:]
		quit, err := userinput.HandleUserInput(ev, hst.keymap, &hst.keys)
		if err != nil {
			return false, err
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
	hst.crit.Lock()
	defer hst.crit.Unlock()
	hst.beeping = true
	hst.beepStarts++
	return nil
}

// StopBeep implements the gui.Audio interface.
func (hst *Host) StopBeep() error {
	hst.crit.Lock()
	defer hst.crit.Unlock()
	hst.beeping = false
	return nil
}

// Destroy implements the gui.Host interface.
func (hst *Host) Destroy() error {
	hst.crit.Lock()
	defer hst.crit.Unlock()
	hst.destroyed = true
	return nil
}

// Frame returns a copy of the most recently presented frame.
func (hst *Host) Frame() display.Frame {
	hst.crit.Lock()
	defer hst.crit.Unlock()
	return hst.frame
}

// Presents returns the number of times Present() has been called.
func (hst *Host) Presents() int {
	hst.crit.Lock()
	defer hst.crit.Unlock()
	return hst.presents
}

// Polls returns the number of times Poll() has been called.
func (hst *Host) Polls() int {
	hst.crit.Lock()
	defer hst.crit.Unlock()
	return hst.polls
}

// Beeping returns true if the beeper is currently sounding.
func (hst *Host) Beeping() bool {
	hst.crit.Lock()
	defer hst.crit.Unlock()
	return hst.beeping
}

// BeepStarts returns the number of times StartBeep() has been called.
func (hst *Host) BeepStarts() int {
	hst.crit.Lock()
	defer hst.crit.Unlock()
	return hst.beepStarts
}

// Destroyed returns true if Destroy() has been called.
func (hst *Host) Destroyed() bool {
	hst.crit.Lock()
	defer hst.crit.Unlock()
	return hst.destroyed
}
