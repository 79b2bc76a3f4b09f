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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestDefinitions(t *testing.T) {
	defs := instructions.Definitions()
	test.DemandEquality(t, len(defs), 35)

	// every operator appears exactly once and in operator order
	for i, defn := range defs {
		test.ExpectEquality(t, int(defn.Operator), i)
		test.ExpectInequality(t, defn.Mnemonic, "", i)

		// the definition's own value must look up to itself
		d, ok := instructions.Lookup(defn.Value)
		test.ExpectSuccess(t, ok, defn.Mnemonic)
		if ok {
			test.ExpectEquality(t, d.Operator, defn.Operator, defn.Mnemonic)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, tc := range []struct {
		opcode   uint16
		operator instructions.Operator
		format   string
	}{
		{0x00e0, instructions.Op00E0, "CLS"},
		{0x00ee, instructions.Op00EE, "RET"},
		{0x0123, instructions.Op0NNN, "SYS 0x123"},
		{0x1228, instructions.Op1NNN, "JP 0x228"},
		{0x2400, instructions.Op2NNN, "CALL 0x400"},
		{0x3a05, instructions.Op3XNN, "SE VA, 0x05"},
		{0x5ab0, instructions.Op5XY0, "SE VA, VB"},
		{0x6005, instructions.Op6XNN, "LD V0, 0x05"},
		{0x8124, instructions.Op8XY4, "ADD V1, V2"},
		{0x812e, instructions.Op8XYE, "SHL V1"},
		{0xa22a, instructions.OpANNN, "LD I, 0x22a"},
		{0xb300, instructions.OpBNNN, "JP V0, 0x300"},
		{0xd01f, instructions.OpDXYN, "DRW V0, V1, 15"},
		{0xe39e, instructions.OpEX9E, "SKP V3"},
		{0xf00a, instructions.OpFX0A, "LD V0, K"},
		{0xf229, instructions.OpFX29, "LD F, V2"},
		{0xf455, instructions.OpFX55, "LD [I], V4"},
	} {
		defn, ok := instructions.Lookup(tc.opcode)
		test.DemandSuccess(t, ok, tc.opcode)
		test.ExpectEquality(t, defn.Operator, tc.operator, tc.opcode)
		test.ExpectEquality(t, defn.Format(tc.opcode), tc.format)
	}
}

func TestUnrecognised(t *testing.T) {
	for _, opcode := range []uint16{0x5ab1, 0x8008, 0x800f, 0x9001, 0xe000, 0xe09f, 0xf000, 0xf0ff, 0xf056} {
		_, ok := instructions.Lookup(opcode)
		test.ExpectFailure(t, ok, opcode)
	}
}

func TestOperands(t *testing.T) {
	o := instructions.DecodeOperands(0xd12f)
	test.ExpectEquality(t, o.NNN, 0x12f)
	test.ExpectEquality(t, o.NN, 0x2f)
	test.ExpectEquality(t, o.N, 0xf)
	test.ExpectEquality(t, o.X, 0x1)
	test.ExpectEquality(t, o.Y, 0x2)
}

func TestBranch(t *testing.T) {
	defn, _ := instructions.Lookup(0x1200)
	test.ExpectSuccess(t, defn.IsBranch())
	defn, _ = instructions.Lookup(0x2200)
	test.ExpectSuccess(t, defn.IsBranch())
	defn, _ = instructions.Lookup(0xb200)
	test.ExpectFailure(t, defn.IsBranch())
}
