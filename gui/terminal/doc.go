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

// Package terminal is a host backend that draws the screen in an ANSI
// terminal. Each line of text shows two rows of pixels using the Unicode half
// block characters.
//
// Terminals report key presses but not key releases so a key is held for
// HoldDuration after each press. Auto-repeat keeps a key held for as long as
// it is pressed. The escape key and ctrl-c end the emulation.
//
// The beeper rings the terminal bell.
package terminal
