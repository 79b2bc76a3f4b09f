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

package display

import (
	"strings"
)

// Dimensions of the frame buffer.
const (
	Width  = 64
	Height = 32
)

// Frame is a monochrome bitmap. A true value is a lit pixel. The first index
// is the row.
type Frame [Height][Width]bool

func (f *Frame) String() string {
	s := strings.Builder{}
	s.Grow((Width + 1) * Height)
	for y := range f {
		for x := range f[y] {
			if f[y][x] {
				s.WriteByte('#')
			} else {
				s.WriteByte('.')
			}
		}
		s.WriteByte('\n')
	}
	return s.String()
}

// Display is the frame buffer. It is only changed by Clear() and
// DrawSprite().
type Display struct {
	frame Frame

	// the frame has changed since the last call to Clean()
	dirty bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	return &Display{dirty: true}
}

func (dsp *Display) String() string {
	return dsp.frame.String()
}

// Clear sets all pixels to off.
func (dsp *Display) Clear() {
	dsp.frame = Frame{}
	dsp.dirty = true
}

// DrawSprite XORs each row of the sprite with the frame buffer starting at
// the x and y coordinates. Each row of the sprite is eight pixels wide, with
// the most significant bit being the leftmost pixel. Coordinates beyond the
// edge of the frame wrap around to the opposite edge.
//
// Returns true if any pixel was switched from on to off.
func (dsp *Display) DrawSprite(x uint8, y uint8, sprite []uint8) bool {
	var collision bool

	for row, b := range sprite {
		py := (int(y) + row) % Height
		for bit := range 8 {
			if b&(0x80>>bit) == 0 {
				continue
			}
			px := (int(x) + bit) % Width
			if dsp.frame[py][px] {
				collision = true
			}
			dsp.frame[py][px] = !dsp.frame[py][px]
		}
	}

	if len(sprite) > 0 {
		dsp.dirty = true
	}

	return collision
}

// Pixel returns the state of the pixel at the coordinates. Coordinates wrap
// in the same way as DrawSprite().
func (dsp *Display) Pixel(x int, y int) bool {
	return dsp.frame[wrap(y, Height)][wrap(x, Width)]
}

func wrap(v int, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Frame returns a pointer to the current frame. The frame should not be
// changed by the caller.
func (dsp *Display) Frame() *Frame {
	return &dsp.frame
}

// Dirty returns true if the frame has changed since the last call to Clean().
func (dsp *Display) Dirty() bool {
	return dsp.dirty
}

// Clean indicates that the current frame has been presented.
func (dsp *Display) Clean() {
	dsp.dirty = false
}
