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

// Operator identifies the operation performed by an instruction. The
// interpreter switches on the operator of the decoded Definition.
type Operator int

// List of valid Operator values. Names follow the nibble pattern of the
// instruction they identify.
const (
	Op0NNN Operator = iota
	Op00E0
	Op00EE
	Op1NNN
	Op2NNN
	Op3XNN
	Op4XNN
	Op5XY0
	Op6XNN
	Op7XNN
	Op8XY0
	Op8XY1
	Op8XY2
	Op8XY3
	Op8XY4
	Op8XY5
	Op8XY6
	Op8XY7
	Op8XYE
	Op9XY0
	OpANNN
	OpBNNN
	OpCXNN
	OpDXYN
	OpEX9E
	OpEXA1
	OpFX07
	OpFX0A
	OpFX15
	OpFX18
	OpFX1E
	OpFX29
	OpFX33
	OpFX55
	OpFX65
)

// NumOperators is the number of instructions in the instruction set.
const NumOperators = int(OpFX65) + 1
