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

// Package digest contains implementations of the gui.Host and
// scheduler.Recorder interfaces that produce a cryptographic hash of the
// emulation's output. The hash can then be used to compare the output of
// subsequent executions. If a new hash differs from a previously recorded
// value then something has changed.
//
// The Video type is a gui.Host decorator. Every distinct frame presented to
// it is added to the hash before being passed on to the decorated host.
// Consecutive identical frames are only added once so the hash does not
// depend on the speed of the emulation.
//
// The Audio type is a scheduler.Recorder. The state of the beeper at every
// timer tick is added to the hash.
//
// Hashes are chained. The digest of the previous frame (or the previous block
// of audio) is included in the data for the next digest.
package digest
