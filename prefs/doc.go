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

// Package prefs facilitates the storage of preferential values in the
// Gopher8 system. It is a simple key/value store that can be saved to and
// loaded from a file on disk.
//
// Values are declared with one of the supported types (Bool, String, Int and
// Float) and added to a Disk instance with Add(). The Disk can then be saved
// with Save() and restored with Load().
//
//	var stackLimit prefs.Int
//	dsk, _ := prefs.NewDisk(path)
//	dsk.Add("hardware.stackLimit", &stackLimit)
//	dsk.Load(true)
//
// Preference values can also be set from the command line with a string of
// the form "key::value; key::value". The string is pushed on to a stack with
// PushCommandLineStack(). Values in the top group of the stack take
// precedence over values in the file and are consumed as they are used.
//
// Hooks can be attached to any value with SetHookPre() and SetHookPost(). The
// pre hook can veto a new value by returning an error.
package prefs
