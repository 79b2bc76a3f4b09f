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

package gui

import (
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
)

// Sentinal error returned by backends when the host cannot be created or
// when the host fails during operation.
const HostError = "host: %s: %v"

// Display presents the VM's frame buffer to the user.
type Display interface {
	Present(frame *display.Frame) error
}

// Input refreshes the keypad state from the user's input devices. Returns
// false if the user has asked for the emulation to end.
type Input interface {
	Poll(keys *input.State) (bool, error)
}

// Audio starts and stops the beeper. The calls will always alternate,
// starting with StartBeep().
type Audio interface {
	StartBeep() error
	StopBeep() error
}

// Host is the single object owning the window and device handles of a
// backend.
type Host interface {
	Display
	Input
	Audio

	// Destroy releases the resources held by the host. The host should not be
	// used after Destroy() has been called.
	Destroy() error
}
