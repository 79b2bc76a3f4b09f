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

package userinput

// Event describes any user input event that can be handled by
// HandleUserInput(). Backends translate their native events into one of the
// Event types below.
type Event interface{}

// EventQuit is sent when the user has asked for the emulation to end. For
// example, the window close button or the escape key.
type EventQuit struct{}

// KeyMod identifies the modifier keys held at the time of a keyboard event.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyboard is a key press or key release. The Key field is the
// canonical name of the key: upper case letters, the digits and names such
// as "Escape". See the Keymap type.
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
	Mod    KeyMod
}
