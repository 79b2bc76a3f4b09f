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

import "fmt"

// AddressRegister is the 16 bit index register, I.
type AddressRegister struct {
	value uint16
}

func (r AddressRegister) String() string {
	return fmt.Sprintf("I=0x%03x", r.value)
}

// Address returns the current value of the register.
func (r AddressRegister) Address() uint16 {
	return r.value
}

// Load value into register.
func (r *AddressRegister) Load(val uint16) {
	r.value = val
}

// Add value to register. The VF register is not affected by this addition
// so no carry is returned.
func (r *AddressRegister) Add(val uint16) {
	r.value += val
}
