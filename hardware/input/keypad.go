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

package input

import (
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Sentinal error returned when a key value is out of range.
const InvalidKey = "input: invalid key: 0x%02x"

// State of every key on the keypad. Key 0x0 is the first entry and key 0xf
// is the last. A true value indicates the key is pressed.
type State [NumKeys]bool

func (s State) String() string {
	b := strings.Builder{}
	for k, p := range s {
		if p {
			b.WriteByte("0123456789ABCDEF"[k])
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Set the pressed state of a key. Returns an InvalidKey error if the key is
// not in the range 0x0 to 0xf.
func (s *State) Set(key uint8, pressed bool) error {
	if int(key) >= NumKeys {
		return curated.Errorf(InvalidKey, key)
	}
	s[key] = pressed
	return nil
}

// Keypad is the hexadecimal keypad. The State is written by the host's
// input adapter once per iteration of the scheduler and is otherwise only
// read by the interpreter.
type Keypad struct {
	State State
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

func (kp *Keypad) String() string {
	return kp.State.String()
}

// Reset releases all keys.
func (kp *Keypad) Reset() {
	kp.State = State{}
}

// IsPressed returns true if the key is pressed. Keys beyond 0xf are an error.
func (kp *Keypad) IsPressed(key uint8) (bool, error) {
	if int(key) >= NumKeys {
		return false, curated.Errorf(InvalidKey, key)
	}
	return kp.State[key], nil
}

// FirstPressed returns the lowest numbered key that is pressed. Returns
// false if no key is pressed.
func (kp *Keypad) FirstPressed() (uint8, bool) {
	for k, p := range kp.State {
		if p {
			return uint8(k), true
		}
	}
	return 0, false
}

// Press the key.
func (kp *Keypad) Press(key uint8) error {
	return kp.State.Set(key, true)
}

// Release the key.
func (kp *Keypad) Release(key uint8) error {
	return kp.State.Set(key, false)
}
