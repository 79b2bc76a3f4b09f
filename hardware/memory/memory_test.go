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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func readData(t *testing.T, mem *memory.Memory, address uint16, expectedData uint8) {
	t.Helper()
	d, err := mem.Read(address)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, expectedData, address)
}

func TestFont(t *testing.T) {
	mem := memory.NewMemory()

	// first and last glyphs
	for i, v := range []uint8{0xf0, 0x90, 0x90, 0x90, 0xf0} {
		readData(t, mem, uint16(i), v)
	}
	for i, v := range []uint8{0xf0, 0x80, 0xf0, 0x80, 0x80} {
		readData(t, mem, memory.FontAddress(0xf)+uint16(i), v)
	}
	test.ExpectEquality(t, memory.FontMemtop, 0x4f)

	// only the lower nibble of the digit is used
	test.ExpectEquality(t, memory.FontAddress(0x15), 25)

	// font is restored on reset
	test.ExpectSuccess(t, mem.Write(0x00, 0x00))
	mem.Reset()
	readData(t, mem, 0x00, 0xf0)
}

func TestReadWrite(t *testing.T) {
	mem := memory.NewMemory()

	for _, a := range []uint16{0x000, 0x200, 0x4ff, 0xfff} {
		test.ExpectSuccess(t, mem.Write(a, 0xab))
		readData(t, mem, a, 0xab)
	}

	for _, a := range []uint16{0x1000, 0x1001, 0xffff} {
		_, err := mem.Read(a)
		test.ExpectSuccess(t, curated.Is(err, memory.OutOfBounds), a)
		err = mem.Write(a, 0x00)
		test.ExpectSuccess(t, curated.Is(err, memory.OutOfBounds), a)
	}
}

func TestSlices(t *testing.T) {
	mem := memory.NewMemory()

	data := []uint8{0x01, 0x02, 0x03, 0x04}
	test.ExpectSuccess(t, mem.WriteSlice(0x300, data))

	d, err := mem.ReadSlice(0x300, len(data))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), string(data))

	// returned slice is a copy
	d[0] = 0xff
	readData(t, mem, 0x300, 0x01)

	// exactly filling the end of memory is fine
	test.ExpectSuccess(t, mem.WriteSlice(0xffc, data))
	_, err = mem.ReadSlice(0xffc, 4)
	test.ExpectSuccess(t, err)

	// one byte too many
	err = mem.WriteSlice(0xffd, []uint8{0x09, 0x09, 0x09, 0x09})
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBounds))
	_, err = mem.ReadSlice(0xffd, 4)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBounds))

	// nothing was written by the failed write
	readData(t, mem, 0xffd, 0x02)

	// end address can't be represented in 16 bits
	err = mem.WriteSlice(0xfffe, data)
	test.ExpectSuccess(t, curated.Is(err, memory.IntegerOverflow))
	_, err = mem.ReadSlice(0xfffe, 4)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBounds))
}

func TestLoadROM(t *testing.T) {
	mem := memory.NewMemory()
	test.ExpectSuccess(t, mem.Write(0x400, 0xff))

	test.ExpectSuccess(t, mem.LoadROM([]uint8{0x60, 0x05}))
	readData(t, mem, 0x200, 0x60)
	readData(t, mem, 0x201, 0x05)

	// program area is cleared
	readData(t, mem, 0x400, 0x00)

	// largest possible ROM
	test.ExpectSuccess(t, mem.LoadROM(make([]uint8, memory.MaxROMSize)))

	// too large
	err := mem.LoadROM(make([]uint8, memory.MaxROMSize+1))
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBounds))
}

func TestDump(t *testing.T) {
	mem := memory.NewMemory()
	test.ExpectEquality(t, mem.Dump(0x000, 5), "000 | f0 90 90 90 f0")
	test.ExpectEquality(t, mem.Dump(0xffe, 16), "ffe | 00 00")
}
