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

// Package ebiten is a host backend using Ebitengine. The beeper is played
// through oto.
//
// The Host type implements gui.MainLoop. The Ebitengine game loop must run on
// the main thread so gui.Run() moves the emulation to another goroutine. The
// two goroutines communicate through a critical section. Key events are
// queued by the game loop and handled by the next call to Poll().
//
// Additional keys:
//
//	F9    copy the screen to the clipboard as text
//	F12   toggle the status bar
//
// The package is empty when built with the headless tag.
package ebiten
