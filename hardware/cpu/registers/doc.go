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

// Package registers implements the register types of the interpreter: the
// sixteen 8 bit Register values, the 16 bit AddressRegister (I), the
// ProgramCounter and the Stack of return addresses.
//
// The arithmetic functions of Register return the flag value that the
// interpreter should store in VF. It is the responsibility of the caller to
// store the flag after the result so that an instruction that targets VF
// leaves the flag in the register.
package registers
