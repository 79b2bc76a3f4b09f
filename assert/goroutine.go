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

package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// the first line of a goroutine's stack trace is of the form:
//
//	goroutine 1 [running]:
var header = []byte("goroutine ")

// GetGoRoutineID returns the number of the calling goroutine. The number is
// different for every goroutine and does not change for the lifetime of a
// goroutine. Returns zero if the number can not be found.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]

	b, ok := bytes.CutPrefix(b, header)
	if !ok {
		return 0
	}

	n, _, _ := bytes.Cut(b, []byte{' '})
	id, err := strconv.ParseUint(string(n), 10, 64)
	if err != nil {
		return 0
	}

	return id
}
