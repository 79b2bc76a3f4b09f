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

package instructions

// Category describes the broad effect of an instruction.
type Category int

// List of valid Category values.
const (
	// the instruction changes registers only
	Modify Category = iota

	// the instruction reads from or writes to memory
	Read
	Write

	// the program counter is overwritten
	Flow

	// the program counter is pushed to or popped from the stack
	Subroutine

	// the instruction conditionally skips the next instruction
	Skip

	// the instruction changes the frame buffer
	Display

	// the instruction queries the keypad
	Input

	// the instruction reads or writes one of the timers
	Timer

	// the instruction is recognised but has no effect
	Ignored
)

func (c Category) String() string {
	switch c {
	case Modify:
		return "Modify"
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Skip:
		return "Skip"
	case Display:
		return "Display"
	case Input:
		return "Input"
	case Timer:
		return "Timer"
	case Ignored:
		return "Ignored"
	}
	return "unknown category"
}
