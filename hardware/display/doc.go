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

// Package display implements the 64x32 monochrome frame buffer.
//
// Sprites are drawn with the DrawSprite() function by XORing eight pixel wide
// rows with the existing contents of the frame. Pixels that fall off the
// right or bottom edge of the frame wrap around to the left or top edge. The
// return value indicates whether any pixel was turned off by the draw, which
// the interpreter uses as the collision flag.
package display
