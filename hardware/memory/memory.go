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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Memory map.
const (
	// Size of the address space
	Size = 4096

	// the font table occupies the first 80 bytes of memory
	FontOrigin = 0x000
	FontMemtop = FontOrigin + len(font) - 1

	// programs are loaded at ProgramOrigin and can occupy the remainder of
	// memory
	ProgramOrigin = 0x200
	MaxROMSize    = Size - ProgramOrigin
)

// Sentinal errors.
const (
	OutOfBounds     = "memory: out of bounds: %s 0x%04x"
	IntegerOverflow = "memory: integer overflow: %s 0x%04x+%d"
)

// Memory is the 4096 byte address space. All access is bounds checked and
// errors are returned rather than the access being silently truncated or
// wrapped.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The font table is loaded into memory before returning.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

func (mem *Memory) String() string {
	return mem.Dump(ProgramOrigin, 64)
}

// Dump returns a hexadecimal listing of n bytes of memory starting at the
// origin. Addresses outside of memory are not listed.
func (mem *Memory) Dump(origin uint16, n int) string {
	s := strings.Builder{}
	end := min(int(origin)+n, Size)
	for a := int(origin); a < end; a += 16 {
		s.WriteString(fmt.Sprintf("%03x |", a))
		for b := a; b < min(a+16, end); b++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[b]))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// Reset zeroes all memory and reloads the font table.
func (mem *Memory) Reset() {
	clear(mem.data[:])
	copy(mem.data[FontOrigin:], font[:])
}

// Read returns the byte at address.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if int(address) >= Size {
		return 0, curated.Errorf(OutOfBounds, "read", address)
	}
	return mem.data[address], nil
}

// ReadSlice returns a copy of n bytes starting at address. Reading past the
// end of memory is an error, including when address+n exceeds the address
// space.
func (mem *Memory) ReadSlice(address uint16, n int) ([]uint8, error) {
	if n < 0 || int(address)+n > Size {
		return nil, curated.Errorf(OutOfBounds, "read", int(address)+n-1)
	}
	d := make([]uint8, n)
	copy(d, mem.data[address:])
	return d, nil
}

// Write the byte to address.
func (mem *Memory) Write(address uint16, data uint8) error {
	if int(address) >= Size {
		return curated.Errorf(OutOfBounds, "write", address)
	}
	mem.data[address] = data
	return nil
}

// WriteSlice writes the data starting at address. Nothing is written if any
// part of the data would fall outside of memory. If address+len(data) cannot
// be represented by a 16 bit address then the error is IntegerOverflow
// rather than OutOfBounds.
func (mem *Memory) WriteSlice(address uint16, data []uint8) error {
	if int(address)+len(data) > 0x10000 {
		return curated.Errorf(IntegerOverflow, "write", address, len(data))
	}
	if int(address)+len(data) > Size {
		return curated.Errorf(OutOfBounds, "write", int(address)+len(data)-1)
	}
	copy(mem.data[address:], data)
	return nil
}

// LoadROM clears the program area and copies the data into memory at
// ProgramOrigin. ROMs larger than MaxROMSize are rejected and memory is left
// unchanged.
func (mem *Memory) LoadROM(data []uint8) error {
	if len(data) > MaxROMSize {
		return curated.Errorf(OutOfBounds, fmt.Sprintf("rom of %d bytes at", len(data)), ProgramOrigin)
	}
	clear(mem.data[ProgramOrigin:])
	copy(mem.data[ProgramOrigin:], data)
	return nil
}

// FontAddress returns the address of the glyph for the hexadecimal digit.
// Only the lower nibble of the digit is used.
func FontAddress(digit uint8) uint16 {
	return FontOrigin + uint16(digit&0x0f)*GlyphHeight
}
