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

func keyboard(ev EventKeyboard, km Keymap, handle HandleInput) (bool, error) {
	if ev.Key == QuitKey {
		return ev.Down, nil
	}

	// key repeats have no meaning for the keypad. a key is either held or
	// it is not
	if ev.Repeat {
		return false, nil
	}

	if key, ok := km[ev.Key]; ok {
		return false, handle.Set(key, ev.Down)
	}

	return false, nil
}

// HandleUserInput translates an Event and forwards it to the HandleInput
// implementation. Returns true if the event means the emulation should end.
func HandleUserInput(ev Event, km Keymap, handle HandleInput) (bool, error) {
	switch ev := ev.(type) {
	case EventQuit:
		return true, nil
	case EventKeyboard:
		return keyboard(ev, km, handle)
	default:
	}

	return false, nil
}
