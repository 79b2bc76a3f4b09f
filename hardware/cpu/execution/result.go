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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Result records the state and outcome of the most recent instruction.
type Result struct {
	// address of the instruction
	Address uint16

	// the two bytes of the instruction
	Opcode uint16

	// the definition of the decoded instruction. nil if the instruction could
	// not be decoded
	Defn *instructions.Definition

	// the value of the program counter after the instruction
	NextPC uint16

	// a conditional skip instruction skipped the next instruction
	Skipped bool

	// the instruction is waiting for a key press and will be executed again
	// on the next step
	Waiting bool

	// the instruction has completed. a result is not final if an error
	// occurred during execution
	Final bool

	// the error, if any, that occurred during execution
	Error string
}

// Reset the result to its zero state.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("0x%03x  %04x  %s", r.Address, r.Opcode, "undecoded instruction")
	}
	return fmt.Sprintf("0x%03x  %04x  %s", r.Address, r.Opcode, r.Defn.Format(r.Opcode))
}
