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

package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher8/curated"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	FlowInfo bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if err := dsm.WriteLine(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single entry to io.Writer.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e *Entry) error {
	if e == nil {
		return nil
	}

	var err error
	w := func(s string) {
		if err == nil {
			_, err = io.WriteString(output, s)
		}
	}

	if e.Label != "" {
		w(e.Label)
		w(":\n")
	}

	if attr.ByteCode {
		w(e.fieldBytecode())
		w(" ")
	}

	w(e.fieldAddress())
	w("  ")
	w(e.fieldMnemonic())

	if attr.FlowInfo {
		if len(e.Next) > 0 {
			w(" ->")
			for _, n := range e.Next {
				w(fmt.Sprintf(" 0x%03x", n))
			}
		}
		if len(e.Prev) > 0 {
			w(" <-")
			for _, p := range e.Prev {
				w(fmt.Sprintf(" 0x%03x", p))
			}
		}
	}

	w("\n")

	if err != nil {
		return curated.Errorf(DisasmError, err)
	}
	return nil
}
