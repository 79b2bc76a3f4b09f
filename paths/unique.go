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

package paths

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock)
// should not collide with any existing file. The ROM name can be a full path
// in which case only the base name without the extension is used.
//
// Note that the returned filename does not include a file extension.
func UniqueFilename(prepend string, rom string) string {
	timestamp := time.Now().Format("20060102_150405")

	rom = strings.TrimSpace(rom)
	rom = strings.TrimSuffix(filepath.Base(rom), filepath.Ext(rom))
	if rom == "" || rom == "." {
		return fmt.Sprintf("%s_%s", prepend, timestamp)
	}

	return fmt.Sprintf("%s_%s_%s", prepend, rom, timestamp)
}
