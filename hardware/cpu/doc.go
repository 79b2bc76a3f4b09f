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

// Package cpu implements the interpreter. The Step() function executes one
// instruction.
//
// The CPU does not own memory, the frame buffer, the keypad or the timers.
// It is given them as interfaces when it is created with NewCPU(). This
// allows the interpreter to be tested in isolation with mock implementations.
//
// Instructions are decoded with the instructions package. Information about
// the most recently executed instruction is stored in the LastResult field.
//
// Errors returned by Step() are curated errors. The possible errors are
// UnrecognisedOpcode from this package, memory.OutOfBounds and
// memory.IntegerOverflow from the memory package, registers.StackUnderflow and
// registers.StackOverflow from the registers package and input.InvalidKey from
// the input package.
package cpu
