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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func result(opcode uint16, address uint16, next uint16) execution.Result {
	defn, _ := instructions.Lookup(opcode)
	return execution.Result{
		Address: address,
		Opcode:  opcode,
		Defn:    defn,
		NextPC:  next,
		Final:   true,
	}
}

func TestString(t *testing.T) {
	r := result(0x6005, 0x200, 0x202)
	test.ExpectEquality(t, r.String(), "0x200  6005  LD V0, 0x05")

	r.Reset()
	test.ExpectEquality(t, r.String(), "0x000  0000  undecoded instruction")
}

func TestValidity(t *testing.T) {
	test.ExpectSuccess(t, result(0x6005, 0x200, 0x202).IsValid())
	test.ExpectFailure(t, result(0x6005, 0x200, 0x204).IsValid())

	// flow can go anywhere
	test.ExpectSuccess(t, result(0x1400, 0x200, 0x400).IsValid())

	// skips
	r := result(0x3005, 0x200, 0x204)
	r.Skipped = true
	test.ExpectSuccess(t, r.IsValid())
	r.Skipped = false
	test.ExpectFailure(t, r.IsValid())

	// only FX0A can wait
	r = result(0xf00a, 0x200, 0x200)
	r.Waiting = true
	test.ExpectSuccess(t, r.IsValid())
	r = result(0x6005, 0x200, 0x200)
	r.Waiting = true
	test.ExpectFailure(t, r.IsValid())

	// not final
	r = result(0x6005, 0x200, 0x202)
	r.Final = false
	test.ExpectFailure(t, r.IsValid())
}
