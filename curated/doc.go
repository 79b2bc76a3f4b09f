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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Packages that return
// errors that callers need to distinguish export the pattern as a constant.
// For example, the memory package:
//
//	const OutOfBounds = "memory: out of bounds: %s 0x%04x"
//
//	func (mem *Memory) Read(address uint16) (uint8, error) {
//		if int(address) >= Size {
//			return 0, curated.Errorf(OutOfBounds, "read", address)
//		}
//		...
//	}
//
// A caller can then test for that error with Is():
//
//	if curated.Is(err, memory.OutOfBounds) {
//		...
//	}
//
// The Has() function is similar but checks if the pattern occurs anywhere in
// the error chain. Errors are chained by using a curated error as one of the
// values of another curated error:
//
//	e := curated.Errorf(memory.OutOfBounds, "read", 0x1000)
//	f := curated.Errorf("cpu: %v", e)
//
//	curated.Has(f, memory.OutOfBounds) // true
//	curated.Is(f, memory.OutOfBounds)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. We can think of curated errors as 'expected'
// errors and uncurated errors as 'unexpected' errors.
//
// The Error() implementation normalises the error chain so that duplicate
// adjacent parts of the message are removed. This means that it doesn't
// matter too much if an error is wrapped with the same prefix more than once:
//
//	e := curated.Errorf("scheduler: %v", curated.Errorf("scheduler: %v", err))
//
// prints as "scheduler: <err>" and not "scheduler: scheduler: <err>". Parts
// of the chain are separated by the sub-string ": " as suggested on p239 of
// "The Go Programming Language" (Donovan, Kernighan).
package curated
