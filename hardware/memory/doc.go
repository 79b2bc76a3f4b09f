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

// Package memory implements the 4096 byte address space of the virtual
// machine.
//
// The first 80 bytes of memory hold the built-in hexadecimal font, five bytes
// per glyph. Programs are loaded at ProgramOrigin (0x200).
//
// Every access is bounds checked. Accessing an address at or beyond Size
// results in an OutOfBounds error and a bulk write whose end address cannot
// be represented in sixteen bits results in an IntegerOverflow error. Both
// errors are curated errors and can be tested with curated.Is().
package memory
