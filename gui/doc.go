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

// Package gui defines the interfaces between the emulation and the host. The
// host backends are in the sub-packages.
//
// The scheduler package uses only the Host interface. A backend is chosen by
// name at startup (see the Backends list) and created with a Config.
//
// The headless build tag removes the backends that require cgo. The terminal
// and headless backends are always available.
package gui
