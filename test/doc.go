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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectFailure() and ExpectSuccess() functions test for failure and
// success under generic conditions. The documentation for those functions
// describe the currently supported types.
//
// It is worth describing how the expectation functions handle the nil type
// because it is not obvious. A nil value is considered a success and
// consequently will cause ExpectFailure() to fail and ExpectSuccess() to
// succeed. This is because of how errors usually work, nil indicating no
// error.
//
// ExpectEquality() and ExpectInequality() compare like-typed values. The
// Demand variants of these functions call t.Fatalf() rather than t.Errorf()
// and should be used when a failed condition makes the rest of the test
// meaningless.
//
// All functions take an optional list of tags. The tags are printed as part
// of the failure message, which is useful for identifying the iteration of a
// test that is run in a loop.
//
// The CompareWriter type implements the io.Writer interface
// and should be used to capture output.
package test
