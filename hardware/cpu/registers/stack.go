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

package registers

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinal errors.
const (
	StackUnderflow = "registers: stack underflow: return with empty stack"
	StackOverflow  = "registers: stack overflow: call depth exceeds %d"
)

// Stack of return addresses. The number of entries is limited.
type Stack struct {
	limit   int
	entries []uint16
}

// NewStack is the preferred method of initialisation for the Stack type.
func NewStack(limit int) *Stack {
	return &Stack{
		limit:   limit,
		entries: make([]uint16, 0, limit),
	}
}

func (s *Stack) String() string {
	if len(s.entries) == 0 {
		return "stack: empty"
	}
	b := strings.Builder{}
	b.WriteString("stack:")
	for _, e := range s.entries {
		b.WriteString(fmt.Sprintf(" 0x%03x", e))
	}
	return b.String()
}

// Limit returns the maximum number of entries.
func (s *Stack) Limit() int {
	return s.limit
}

// SetLimit changes the maximum number of entries. Existing entries beyond
// the new limit are kept but a further push will fail.
func (s *Stack) SetLimit(limit int) {
	s.limit = limit
}

// Len returns the number of entries on the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Reset empties the stack.
func (s *Stack) Reset() {
	s.entries = s.entries[:0]
}

// Push address on to the stack.
func (s *Stack) Push(address uint16) error {
	if len(s.entries) >= s.limit {
		return curated.Errorf(StackOverflow, s.limit)
	}
	s.entries = append(s.entries, address)
	return nil
}

// Pop address from the stack.
func (s *Stack) Pop() (uint16, error) {
	if len(s.entries) == 0 {
		return 0, curated.Errorf(StackUnderflow)
	}
	a := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return a, nil
}
