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

// Package macro implements an input system that processes instructions from a
// Lua script.
//
// The Macro type decorates a gui.Host. Keys held by the script are added to
// the keypad state returned by the host's Poll() function. The Macro type is
// also a scheduler.Recorder and so is notified of every 60Hz timer tick. The
// script uses ticks to measure time.
//
// The following functions are available to the script:
//
//	press(key)      hold a key down and wait two ticks
//	release(key)    release a key and wait two ticks
//	tap(key)        press and then release a key
//	wait([ticks])   wait for the number of ticks. the default is 60
//	quit()          end the emulation
//	log(message)    add a message to the log
//
// Keys are either the keypad value (0x0 to 0xf) or the name of a host key in
// the keymap. For example, with the default keymap the following are the same:
//
//	press(0x5)
//	press("w")
//
// The script runs in its own goroutine. Any errors in a script will result in
// a log entry and the termination of the script. The emulation continues.
package macro
