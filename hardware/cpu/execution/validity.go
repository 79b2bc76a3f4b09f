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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: execution finalised without a definition")
	}

	if r.Waiting && r.Defn.Operator != instructions.OpFX0A {
		return curated.Errorf("cpu: %s cannot wait for input", r.Defn.Mnemonic)
	}

	if r.Skipped && r.Defn.Effect != instructions.Skip && r.Defn.Effect != instructions.Input {
		return curated.Errorf("cpu: %s cannot skip", r.Defn.Mnemonic)
	}

	switch r.Defn.Effect {
	case instructions.Flow, instructions.Subroutine:
		// program counter can take any value

	default:
		expected := r.Address + 2
		if r.Skipped {
			expected += 2
		}
		if r.Waiting {
			expected = r.Address
		}
		if r.NextPC != expected {
			return curated.Errorf("cpu: unexpected program counter after %s (0x%03x instead of 0x%03x)",
				r.Defn.Mnemonic, r.NextPC, expected)
		}
	}

	return nil
}
