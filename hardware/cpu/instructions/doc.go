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

// Package instructions defines the instruction set of the interpreter.
//
// Each instruction is described by a Definition. An opcode matches a
// definition when the opcode masked with the definition's Mask equals the
// definition's Value. Definitions are grouped by the high nibble of the
// opcode so Lookup() only needs to search a handful of definitions.
//
// The Mnemonic field is used for disassembly and debugging output. The
// Format() function fills in the operands of a specific opcode:
//
//	defn, _ := instructions.Lookup(0x6a05)
//	defn.Format(0x6a05) // "LD VA, 0x05"
package instructions
