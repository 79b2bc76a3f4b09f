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

package disassembly

import (
	"fmt"
	"slices"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// the addresses that execution can continue at after the instruction
func successors(address uint16, opcode uint16, defn *instructions.Definition) []uint16 {
	nnn := opcode & 0x0fff

	switch defn.Operator {
	case instructions.Op1NNN:
		return []uint16{nnn}
	case instructions.Op2NNN:
		return []uint16{nnn, address + 2}
	case instructions.Op00EE:
		return nil
	case instructions.OpBNNN:
		// the destination depends on the value of V0
		return nil
	}

	if defn.Effect == instructions.Skip || defn.Operator == instructions.OpEX9E || defn.Operator == instructions.OpEXA1 {
		return []uint16{address + 2, address + 4}
	}

	return []uint16{address + 2}
}

// follow the flow of the program from the start address. the flow stops at
// addresses outside the ROM and at opcodes that are not recognised
func (dsm *Disassembly) flow(start uint16) {
	queue := []uint16{start}

	for len(queue) > 0 {
		address := queue[0]
		queue = queue[1:]

		if _, ok := dsm.index[address]; ok {
			continue // for loop
		}

		opcode, ok := dsm.fetch(address)
		if !ok {
			continue // for loop
		}

		defn, ok := instructions.Lookup(opcode)
		if !ok {
			continue // for loop
		}

		e := dsm.decode(address, opcode, defn, EntryTypeFlow)
		dsm.index[address] = e

		for _, n := range successors(address, opcode, defn) {
			if n < memory.ProgramOrigin || int(n) >= memory.Size {
				continue // for loop
			}
			e.Next = append(e.Next, n)
			queue = append(queue, n)
		}
	}

	// the previous addresses and labels can only be set once all flow
	// entries have been created
	for _, e := range dsm.index {
		for _, n := range e.Next {
			t, ok := dsm.index[n]
			if !ok {
				continue // for loop
			}
			t.Prev = append(t.Prev, e.Address)

			switch e.Defn.Operator {
			case instructions.Op2NNN:
				if n != e.Address+2 {
					t.Label = fmt.Sprintf("sub_%03x", n)
				}
			case instructions.Op1NNN:
				if t.Label == "" {
					t.Label = fmt.Sprintf("loc_%03x", n)
				}
			}
		}
	}

	for _, e := range dsm.index {
		slices.Sort(e.Prev)
	}

	if e, ok := dsm.index[start]; ok && e.Label == "" {
		e.Label = "start"
	}
}

// the bytes of the ROM not covered by a flow entry are decoded in pairs from
// the start of the ROM
func (dsm *Disassembly) linear() {
	covered := make([]bool, len(dsm.data))
	for _, e := range dsm.index {
		i := int(e.Address) - memory.ProgramOrigin
		covered[i] = true
		covered[i+1] = true
	}

	for i := 0; i < len(dsm.data); {
		address := uint16(memory.ProgramOrigin + i)

		if covered[i] {
			i++
			continue // for loop
		}

		// a single byte of data if the next byte is covered or if this is
		// the last byte of the ROM
		if i+1 >= len(dsm.data) || covered[i+1] {
			dsm.index[address] = dsm.dataEntry(address, 1)
			i++
			continue // for loop
		}

		opcode, _ := dsm.fetch(address)
		if defn, ok := instructions.Lookup(opcode); ok {
			dsm.index[address] = dsm.decode(address, opcode, defn, EntryTypeDecode)
		} else {
			dsm.index[address] = dsm.dataEntry(address, 2)
		}
		i += 2
	}
}
