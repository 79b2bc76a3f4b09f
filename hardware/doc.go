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

// Package hardware is the base package for the virtual machine emulation. It
// and its sub-packages contain everything required for a headless emulation.
//
// The VM type is the root of the emulation and contains external references
// to all the components of the machine. The VM does not run by itself. It
// is driven by the scheduler package, which decides when to Step() the
// interpreter and when to advance the timers.
package hardware
