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

// Package disassembly produces a static disassembly of a ROM.
//
// Disassembly happens in two passes. The first pass follows the flow of the
// program from the start address, taking into account jumps, subroutine calls
// and skip instructions. Every instruction reached in this way is a flow
// entry. The second pass decodes the remaining bytes of the ROM linearly.
// Anything that decodes as a valid instruction is a decoded entry and
// anything else is data.
//
// The second pass is needed because the flow cannot be followed through the
// "JP V0, addr" instruction, the destination of which is only known when the
// program is run. Decoded entries may or may not be part of the program.
//
// For quick disassemblies the FromFile() function can be used.
package disassembly
