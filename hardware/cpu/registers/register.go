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
)

// Register is an 8 bit general purpose register.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for the Register
// type.
func NewRegister(val uint8, label string) *Register {
	return &Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=0x%02x", r.label, r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. Result is modulo 256. Returns true if the addition
// carried.
func (r *Register) Add(val uint8) (carry bool) {
	v := r.value
	r.value += val
	return r.value < v
}

// Subtract value from register. Result is modulo 256. Returns true if there
// was no borrow.
func (r *Register) Subtract(val uint8) (noBorrow bool) {
	noBorrow = r.value > val
	r.value -= val
	return noBorrow
}

// SubtractFrom sets the register to the value minus the current value of the
// register. Returns true if there was no borrow.
func (r *Register) SubtractFrom(val uint8) (noBorrow bool) {
	noBorrow = val > r.value
	r.value = val - r.value
	return noBorrow
}

// OR value with register.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// XOR value with register.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}

// ShiftRight by one bit. Returns the bit shifted out.
func (r *Register) ShiftRight() uint8 {
	b := r.value & 0x01
	r.value >>= 1
	return b
}

// ShiftLeft by one bit. Returns the bit shifted out.
func (r *Register) ShiftLeft() uint8 {
	b := r.value >> 7
	r.value <<= 1
	return b
}
