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
	"os"
	"slices"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinal errors.
const (
	DisasmError = "disassembly: %v"
)

// Disassembly represents the annotated disassembly of a ROM.
type Disassembly struct {
	// the ROM data. the first byte of data is at memory.ProgramOrigin
	data []uint8

	// entries in address order
	Entries []*Entry

	// entries indexed by address
	index map[uint16]*Entry
}

// FromFile reads the ROM file and disassembles it.
func FromFile(filename string) (*Disassembly, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}
	return FromROM(data)
}

// FromROM disassembles the ROM data. The data is assumed to be loaded at
// memory.ProgramOrigin.
func FromROM(data []uint8) (*Disassembly, error) {
	if len(data) > memory.MaxROMSize {
		return nil, curated.Errorf(DisasmError,
			curated.Errorf(memory.OutOfBounds, "rom", memory.ProgramOrigin+len(data)-1))
	}

	dsm := &Disassembly{
		data:  data,
		index: make(map[uint16]*Entry),
	}

	dsm.flow(memory.ProgramOrigin)
	dsm.linear()

	dsm.Entries = make([]*Entry, 0, len(dsm.index))
	for _, e := range dsm.index {
		dsm.Entries = append(dsm.Entries, e)
	}
	slices.SortFunc(dsm.Entries, func(a, b *Entry) int {
		return int(a.Address) - int(b.Address)
	})

	logger.Logf(logger.Allow, "disassembly", "%d entries from %d bytes", len(dsm.Entries), len(data))

	return dsm, nil
}

// Get returns the entry for the address. Returns false if no entry begins at
// the address.
func (dsm *Disassembly) Get(address uint16) (*Entry, bool) {
	e, ok := dsm.index[address]
	return e, ok
}

// fetch the opcode at the address. returns false if the address is outside
// of the ROM or if there is only one byte remaining
func (dsm *Disassembly) fetch(address uint16) (uint16, bool) {
	i := int(address) - memory.ProgramOrigin
	if i < 0 || i+1 >= len(dsm.data) {
		return 0, false
	}
	return uint16(dsm.data[i])<<8 | uint16(dsm.data[i+1]), true
}

// create a new instruction entry for the address
func (dsm *Disassembly) decode(address uint16, opcode uint16, defn *instructions.Definition, t EntryType) *Entry {
	i := int(address) - memory.ProgramOrigin
	return &Entry{
		Type:     t,
		Address:  address,
		Bytes:    dsm.data[i : i+2],
		Defn:     defn,
		Mnemonic: defn.Format(opcode),
	}
}

// create a new data entry for the address
func (dsm *Disassembly) dataEntry(address uint16, n int) *Entry {
	i := int(address) - memory.ProgramOrigin
	e := &Entry{
		Type:    EntryTypeData,
		Address: address,
		Bytes:   dsm.data[i : i+n],
	}
	if n == 1 {
		e.Mnemonic = fmt.Sprintf("DB 0x%02x", e.Bytes[0])
	} else {
		e.Mnemonic = fmt.Sprintf("DB 0x%02x, 0x%02x", e.Bytes[0], e.Bytes[1])
	}
	return e
}
