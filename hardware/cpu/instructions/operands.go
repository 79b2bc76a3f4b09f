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

package instructions

// Operands are the fields of an opcode. Which fields are meaningful depends
// on the instruction.
type Operands struct {
	NNN uint16 // lower 12 bits
	NN  uint8  // lower 8 bits
	N   uint8  // lower 4 bits
	X   uint8  // bits 8 to 11
	Y   uint8  // bits 4 to 7
}

// DecodeOperands splits the opcode into its fields.
func DecodeOperands(opcode uint16) Operands {
	return Operands{
		NNN: opcode & 0x0fff,
		NN:  uint8(opcode & 0x00ff),
		N:   uint8(opcode & 0x000f),
		X:   uint8((opcode & 0x0f00) >> 8),
		Y:   uint8((opcode & 0x00f0) >> 4),
	}
}
