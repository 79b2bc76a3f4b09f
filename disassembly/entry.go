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
	"strings"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// EntryType describes how reliable the information in an Entry is.
type EntryType int

// List of valid EntryType values.
const (
	// the bytes do not decode as an instruction
	EntryTypeData EntryType = iota

	// decoded by the linear pass. may not be part of the program
	EntryTypeDecode

	// reached by following the flow of the program
	EntryTypeFlow
)

func (t EntryType) String() string {
	switch t {
	case EntryTypeData:
		return "data"
	case EntryTypeDecode:
		return "decode"
	case EntryTypeFlow:
		return "flow"
	}
	return "unknown"
}

// Entry is a single line of the disassembly.
type Entry struct {
	Type    EntryType
	Address uint16

	// the bytes of the entry. two bytes for an instruction and one or two
	// bytes for data
	Bytes []uint8

	// the definition of the instruction. nil for data entries
	Defn *instructions.Definition

	// the instruction with operand values, or a DB directive for data
	Mnemonic string

	// the label for the address if it is the target of a jump or call
	Label string

	// the addresses of the entries that flow into this entry and the
	// addresses this entry flows to. only populated for flow entries
	Prev []uint16
	Next []uint16
}

// Opcode returns the instruction opcode.
func (e *Entry) Opcode() uint16 {
	if len(e.Bytes) < 2 {
		return 0
	}
	return uint16(e.Bytes[0])<<8 | uint16(e.Bytes[1])
}

// the following functions return the fields of the entry as strings

func (e *Entry) fieldAddress() string {
	return fmt.Sprintf("0x%03x", e.Address)
}

func (e *Entry) fieldBytecode() string {
	s := strings.Builder{}
	for i, b := range e.Bytes {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02x", b))
	}
	return fmt.Sprintf("%-5s", s.String())
}

func (e *Entry) fieldMnemonic() string {
	if e.Type == EntryTypeDecode {
		return fmt.Sprintf("%-20s ; unreached", e.Mnemonic)
	}
	return e.Mnemonic
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s %s", e.fieldAddress(), e.fieldMnemonic())
}
