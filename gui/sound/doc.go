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

// Package sound provides the samples for the beeper. All sources produce mono
// samples at SampleRate, which is the rate used by every audio backend.
//
// The default source is a square wave. A WAV or MP3 file can be used instead
// with the Load() function, in which case the recording is looped for as
// long as the beeper is sounding.
package sound
