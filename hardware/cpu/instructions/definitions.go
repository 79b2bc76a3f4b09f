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

package instructions

import (
	"fmt"
	"strings"
)

// Definition defines an instruction of the instruction set. An opcode is an
// instance of the definition if opcode&Mask == Value.
type Definition struct {
	Mask     uint16
	Value    uint16
	Operator Operator

	// the mnemonic is a template. the placeholders Vx, Vy, addr, byte and
	// nibble are replaced by the operand values of the opcode
	Mnemonic string

	Effect Category
}

func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%04x/%04x %s [%s]", defn.Value, defn.Mask, defn.Mnemonic, defn.Effect)
}

// Format returns the mnemonic of the definition with the operand placeholders
// replaced with values from the opcode.
func (defn Definition) Format(opcode uint16) string {
	o := DecodeOperands(opcode)
	r := strings.NewReplacer(
		"Vx", fmt.Sprintf("V%X", o.X),
		"Vy", fmt.Sprintf("V%X", o.Y),
		"addr", fmt.Sprintf("0x%03x", o.NNN),
		"byte", fmt.Sprintf("0x%02x", o.NN),
		"nibble", fmt.Sprintf("%d", o.N),
	)
	return r.Replace(defn.Mnemonic)
}

// IsBranch returns true if the instruction transfers control to the address
// encoded in the opcode.
func (defn Definition) IsBranch() bool {
	return defn.Operator == Op1NNN || defn.Operator == Op2NNN
}

// the instruction set, grouped by the high nibble of the opcode. more
// specific masks must be listed before less specific masks within a group.
var definitions = [16][]Definition{
	0x0: {
		{Mask: 0xffff, Value: 0x00e0, Operator: Op00E0, Mnemonic: "CLS", Effect: Display},
		{Mask: 0xffff, Value: 0x00ee, Operator: Op00EE, Mnemonic: "RET", Effect: Subroutine},
		{Mask: 0xf000, Value: 0x0000, Operator: Op0NNN, Mnemonic: "SYS addr", Effect: Ignored},
	},
	0x1: {
		{Mask: 0xf000, Value: 0x1000, Operator: Op1NNN, Mnemonic: "JP addr", Effect: Flow},
	},
	0x2: {
		{Mask: 0xf000, Value: 0x2000, Operator: Op2NNN, Mnemonic: "CALL addr", Effect: Subroutine},
	},
	0x3: {
		{Mask: 0xf000, Value: 0x3000, Operator: Op3XNN, Mnemonic: "SE Vx, byte", Effect: Skip},
	},
	0x4: {
		{Mask: 0xf000, Value: 0x4000, Operator: Op4XNN, Mnemonic: "SNE Vx, byte", Effect: Skip},
	},
	0x5: {
		{Mask: 0xf00f, Value: 0x5000, Operator: Op5XY0, Mnemonic: "SE Vx, Vy", Effect: Skip},
	},
	0x6: {
		{Mask: 0xf000, Value: 0x6000, Operator: Op6XNN, Mnemonic: "LD Vx, byte", Effect: Modify},
	},
	0x7: {
		{Mask: 0xf000, Value: 0x7000, Operator: Op7XNN, Mnemonic: "ADD Vx, byte", Effect: Modify},
	},
	0x8: {
		{Mask: 0xf00f, Value: 0x8000, Operator: Op8XY0, Mnemonic: "LD Vx, Vy", Effect: Modify},
		{Mask: 0xf00f, Value: 0x8001, Operator: Op8XY1, Mnemonic: "OR Vx, Vy", Effect: Modify},
		{Mask: 0xf00f, Value: 0x8002, Operator: Op8XY2, Mnemonic: "AND Vx, Vy", Effect: Modify},
		{Mask: 0xf00f, Value: 0x8003, Operator: Op8XY3, Mnemonic: "XOR Vx, Vy", Effect: Modify},
		{Mask: 0xf00f, Value: 0x8004, Operator: Op8XY4, Mnemonic: "ADD Vx, Vy", Effect: Modify},
		{Mask: 0xf00f, Value: 0x8005, Operator: Op8XY5, Mnemonic: "SUB Vx, Vy", Effect: Modify},
		{Mask: 0xf00f, Value: 0x8006, Operator: Op8XY6, Mnemonic: "SHR Vx", Effect: Modify},
		{Mask: 0xf00f, Value: 0x8007, Operator: Op8XY7, Mnemonic: "SUBN Vx, Vy", Effect: Modify},
		{Mask: 0xf00f, Value: 0x800e, Operator: Op8XYE, Mnemonic: "SHL Vx", Effect: Modify},
	},
	0x9: {
		{Mask: 0xf00f, Value: 0x9000, Operator: Op9XY0, Mnemonic: "SNE Vx, Vy", Effect: Skip},
	},
	0xa: {
		{Mask: 0xf000, Value: 0xa000, Operator: OpANNN, Mnemonic: "LD I, addr", Effect: Modify},
	},
	0xb: {
		{Mask: 0xf000, Value: 0xb000, Operator: OpBNNN, Mnemonic: "JP V0, addr", Effect: Flow},
	},
	0xc: {
		{Mask: 0xf000, Value: 0xc000, Operator: OpCXNN, Mnemonic: "RND Vx, byte", Effect: Modify},
	},
	0xd: {
		{Mask: 0xf000, Value: 0xd000, Operator: OpDXYN, Mnemonic: "DRW Vx, Vy, nibble", Effect: Display},
	},
	0xe: {
		{Mask: 0xf0ff, Value: 0xe09e, Operator: OpEX9E, Mnemonic: "SKP Vx", Effect: Input},
		{Mask: 0xf0ff, Value: 0xe0a1, Operator: OpEXA1, Mnemonic: "SKNP Vx", Effect: Input},
	},
	0xf: {
		{Mask: 0xf0ff, Value: 0xf007, Operator: OpFX07, Mnemonic: "LD Vx, DT", Effect: Timer},
		{Mask: 0xf0ff, Value: 0xf00a, Operator: OpFX0A, Mnemonic: "LD Vx, K", Effect: Input},
		{Mask: 0xf0ff, Value: 0xf015, Operator: OpFX15, Mnemonic: "LD DT, Vx", Effect: Timer},
		{Mask: 0xf0ff, Value: 0xf018, Operator: OpFX18, Mnemonic: "LD ST, Vx", Effect: Timer},
		{Mask: 0xf0ff, Value: 0xf01e, Operator: OpFX1E, Mnemonic: "ADD I, Vx", Effect: Modify},
		{Mask: 0xf0ff, Value: 0xf029, Operator: OpFX29, Mnemonic: "LD F, Vx", Effect: Modify},
		{Mask: 0xf0ff, Value: 0xf033, Operator: OpFX33, Mnemonic: "LD B, Vx", Effect: Write},
		{Mask: 0xf0ff, Value: 0xf055, Operator: OpFX55, Mnemonic: "LD [I], Vx", Effect: Write},
		{Mask: 0xf0ff, Value: 0xf065, Operator: OpFX65, Mnemonic: "LD Vx, [I]", Effect: Read},
	},
}

// Lookup returns the definition for the opcode. The high nibble selects the
// group of definitions and the group is searched for the first matching
// mask. Returns false if the opcode is not recognised.
func Lookup(opcode uint16) (*Definition, bool) {
	group := definitions[opcode>>12]
	for i := range group {
		if opcode&group[i].Mask == group[i].Value {
			return &group[i], true
		}
	}
	return nil, false
}

// Definitions returns every definition in the instruction set ordered by
// operator.
func Definitions() []Definition {
	d := make([]Definition, NumOperators)
	for _, group := range definitions {
		for _, defn := range group {
			d[defn.Operator] = defn
		}
	}
	return d
}
