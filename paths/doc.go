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

// Package paths contains functions to prepare paths for Gopher8 resources.
//
// The ResourcePath() function returns the path to a resource, creating any
// intermediate directories that are needed. For development builds the base
// path is .gopher8 in the current working directory. For release builds
// (built with the release tag) it is the gopher8 directory inside the user's
// configuration directory.
//
// The UniqueFilename() function creates a timestamped filename suitable for
// files created by the emulator, such as audio recordings.
package paths
