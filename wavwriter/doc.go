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

// Package wavwriter records the output of the beeper to a WAV file. The
// WavWriter type implements the scheduler.Recorder interface and so receives
// the state of the beeper at every 60Hz timer tick. One tick's worth of
// samples is produced for each tick.
//
// Samples are held in memory until End() is called, at which point the file
// is written.
package wavwriter
