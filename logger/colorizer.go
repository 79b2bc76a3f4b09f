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

package logger

import (
	"io"
	"strings"

	tm "github.com/buger/goterm"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is highlighted and entries with an "error" tag are colored red.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	s := strings.TrimRight(string(p), "\n")

	tag, detail, ok := strings.Cut(s, ": ")
	if !ok {
		return c.out.Write(p)
	}

	var col string
	if strings.Contains(tag, "error") {
		col = tm.Color(tm.Bold(tag), tm.RED) + ": " + tm.Color(detail, tm.RED)
	} else {
		col = tm.Color(tag, tm.CYAN) + ": " + detail
	}

	_, err = io.WriteString(c.out, col+"\n")
	if err != nil {
		return 0, err
	}

	// report the length of the original data so that callers don't see a
	// short write because of the added color codes
	return len(p), nil
}
