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

package terminal

import (
	"strings"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/userinput"
)

// blocks indexed by top pixel (bit 1) and bottom pixel (bit 0)
var blocks = [4]string{" ", "▄", "▀", "█"}

// render the frame as text. each line of text shows two rows of pixels. the
// frame is surrounded by a border and each line ends with a carriage return
// and line feed
func render(frame *display.Frame) string {
	s := strings.Builder{}
	border := strings.Repeat("─", display.Width)

	s.WriteString("┌")
	s.WriteString(border)
	s.WriteString("┐\r\n")

	for y := 0; y < display.Height; y += 2 {
		s.WriteString("│")
		for x := range display.Width {
			var b int
			if frame[y][x] {
				b |= 0b10
			}
			if frame[y+1][x] {
				b |= 0b01
			}
			s.WriteString(blocks[b])
		}
		s.WriteString("│\r\n")
	}

	s.WriteString("└")
	s.WriteString(border)
	s.WriteString("┘\r\n")

	return s.String()
}

// decode the bytes read from the terminal into user input events. escape
// sequences (for example, the cursor keys) are ignored. a lone escape is the
// quit key
func decode(b []byte) []userinput.Event {
	var evs []userinput.Event

	for i := 0; i < len(b); i++ {
		switch c := b[i]; {
		case c == 0x03:
			// ctrl-c
			evs = append(evs, userinput.EventQuit{})

		case c == 0x1b:
			if i+1 < len(b) && (b[i+1] == '[' || b[i+1] == 'O') {
				// skip to the final byte of the sequence
				i += 2
				for i < len(b) && (b[i] < 0x40 || b[i] > 0x7e) {
					i++
				}
				continue // for loop
			}
			evs = append(evs, userinput.EventKeyboard{Key: userinput.QuitKey, Down: true})

		case c > 0x20 && c < 0x7f:
			evs = append(evs, userinput.EventKeyboard{Key: userinput.CanonicalKey(string(c)), Down: true})
		}
	}

	return evs
}
