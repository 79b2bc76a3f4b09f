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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func TestReset(t *testing.T) {
	h := newHarness()
	test.ExpectEquality(t, h.mc.PC.Address(), memory.ProgramOrigin)
	test.ExpectEquality(t, h.mc.String(), "PC=0x200 I=0x000 V0=0x00 V1=0x00 V2=0x00 V3=0x00 "+
		"V4=0x00 V5=0x00 V6=0x00 V7=0x00 V8=0x00 V9=0x00 VA=0x00 VB=0x00 VC=0x00 VD=0x00 VE=0x00 VF=0x00")
	test.ExpectEquality(t, h.mc.Stack.Limit(), 16)

	h.mem.putInstructions(0x200, 0x60, 0x05, 0xa1, 0x23)
	step(t, h.mc)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.StepCount(), 2)

	h.mc.Reset()
	expectRegister(t, h.mc, 0, 0x00)
	test.ExpectEquality(t, h.mc.I.Address(), 0)
	test.ExpectEquality(t, h.mc.PC.Address(), memory.ProgramOrigin)
	test.ExpectEquality(t, h.mc.StepCount(), 0)
}

func TestAddImmediateWraps(t *testing.T) {
	h := newHarness()

	// V0=0xff; VF=0xaa; V0+=0x02
	h.mem.putInstructions(0x200, 0x60, 0xff, 0x6f, 0xaa, 0x70, 0x02)
	step(t, h.mc)
	step(t, h.mc)
	step(t, h.mc)
	expectRegister(t, h.mc, 0, 0x01)
	expectRegister(t, h.mc, 0xf, 0xaa)
}

func TestAddRegisterCarry(t *testing.T) {
	h := newHarness()

	// V0=0xff; V1=0x02; V0+=V1
	h.mem.putInstructions(0x200, 0x60, 0xff, 0x61, 0x02, 0x80, 0x14)
	step(t, h.mc)
	step(t, h.mc)
	step(t, h.mc)
	expectRegister(t, h.mc, 0, 0x01)
	expectRegister(t, h.mc, 0xf, 0x01)

	// V0+=V1 without carry
	h.mem.putInstructions(0x206, 0x80, 0x14)
	step(t, h.mc)
	expectRegister(t, h.mc, 0, 0x03)
	expectRegister(t, h.mc, 0xf, 0x00)

	// exactly 255 does not carry
	h.mc.Reset()
	h.mem.putInstructions(0x200, 0x60, 0xfe, 0x61, 0x01, 0x80, 0x14)
	step(t, h.mc)
	step(t, h.mc)
	step(t, h.mc)
	expectRegister(t, h.mc, 0, 0xff)
	expectRegister(t, h.mc, 0xf, 0x00)

	// flag is written after the result when VF is the target
	h.mc.Reset()
	h.mem.putInstructions(0x200, 0x6f, 0xff, 0x61, 0x02, 0x8f, 0x14)
	step(t, h.mc)
	step(t, h.mc)
	step(t, h.mc)
	expectRegister(t, h.mc, 0xf, 0x01)
}

func TestArithmetic(t *testing.T) {
	h := newHarness()

	origin := h.mem.putInstructions(0x200,
		0x60, 0x0c, // V0=0x0c
		0x61, 0x0a, // V1=0x0a
		0x80, 0x11, // V0|=V1
	)
	step(t, h.mc)
	step(t, h.mc)
	step(t, h.mc)
	expectRegister(t, h.mc, 0, 0x0e)

	origin = h.mem.putInstructions(origin, 0x80, 0x12) // V0&=V1
	step(t, h.mc)
	expectRegister(t, h.mc, 0, 0x0a)

	origin = h.mem.putInstructions(origin, 0x80, 0x13) // V0^=V1
	step(t, h.mc)
	expectRegister(t, h.mc, 0, 0x00)

	origin = h.mem.putInstructions(origin,
		0x60, 0x10, // V0=0x10
		0x80, 0x15, // V0-=V1
	)
	step(t, h.mc)
	step(t, h.mc)
	expectRegister(t, h.mc, 0, 0x06)
	expectRegister(t, h.mc, 0xf, 0x01)

	origin = h.mem.putInstructions(origin, 0x80, 0x15) // V0-=V1 (borrow)
	step(t, h.mc)
	expectRegister(t, h.mc, 0, 0xfc)
	expectRegister(t, h.mc, 0xf, 0x00)

	origin = h.mem.putInstructions(origin,
		0x60, 0x03, // V0=0x03
		0x80, 0x17, // V0=V1-V0
	)
	step(t, h.mc)
	step(t, h.mc)
	expectRegister(t, h.mc, 0, 0x07)
	expectRegister(t, h.mc, 0xf, 0x01)

	origin = h.mem.putInstructions(origin,
		0x60, 0x0b, // V0=0x0b
		0x80, 0x17, // V0=V1-V0 (borrow)
	)
	step(t, h.mc)
	step(t, h.mc)
	expectRegister(t, h.mc, 0, 0xff)
	expectRegister(t, h.mc, 0xf, 0x00)

	origin = h.mem.putInstructions(origin,
		0x60, 0x81, // V0=0x81
		0x80, 0x06, // V0>>=1
	)
	step(t, h.mc)
	step(t, h.mc)
	expectRegister(t, h.mc, 0, 0x40)
	expectRegister(t, h.mc, 0xf, 0x01)

	origin = h.mem.putInstructions(origin, 0x80, 0x0e) // V0<<=1
	step(t, h.mc)
	expectRegister(t, h.mc, 0, 0x80)
	expectRegister(t, h.mc, 0xf, 0x00)

	h.mem.putInstructions(origin, 0x80, 0x0e) // V0<<=1
	step(t, h.mc)
	expectRegister(t, h.mc, 0, 0x00)
	expectRegister(t, h.mc, 0xf, 0x01)
}

func TestLoadRegister(t *testing.T) {
	h := newHarness()
	h.mem.putInstructions(0x200, 0x6a, 0x42, 0x8b, 0xa0) // VA=0x42; VB=VA
	step(t, h.mc)
	step(t, h.mc)
	expectRegister(t, h.mc, 0xb, 0x42)
}

func TestSkips(t *testing.T) {
	h := newHarness()

	// each skip is followed by a JP to itself which the skip should avoid
	h.mem.putInstructions(0x200,
		0x60, 0x05, // V0=5
		0x61, 0x05, // V1=5
		0x30, 0x05, // SE V0, 5 (skip)
		0x12, 0x06,
		0x40, 0x05, // SNE V0, 5 (no skip)
		0x50, 0x10, // SE V0, V1 (skip)
		0x12, 0x0c,
		0x90, 0x10, // SNE V0, V1 (no skip)
	)
	step(t, h.mc)
	step(t, h.mc)

	step(t, h.mc)
	test.ExpectSuccess(t, h.mc.LastResult.Skipped)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x208)

	step(t, h.mc)
	test.ExpectFailure(t, h.mc.LastResult.Skipped)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x20a)

	step(t, h.mc)
	test.ExpectSuccess(t, h.mc.LastResult.Skipped)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x20e)

	step(t, h.mc)
	test.ExpectFailure(t, h.mc.LastResult.Skipped)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x210)
}

func TestFlow(t *testing.T) {
	h := newHarness()

	// JP 0x300
	h.mem.putInstructions(0x200, 0x13, 0x00)

	// CALL 0x400; V0=0x10; JP V0, 0x300
	h.mem.putInstructions(0x300, 0x24, 0x00, 0x60, 0x10, 0xb3, 0x00)

	// RET
	h.mem.putInstructions(0x400, 0x00, 0xee)

	step(t, h.mc)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x300)

	step(t, h.mc)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x400)
	test.ExpectEquality(t, h.mc.Stack.Len(), 1)

	step(t, h.mc)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x302)
	test.ExpectEquality(t, h.mc.Stack.Len(), 0)

	step(t, h.mc)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x310)

	// machine code routines are ignored
	h.mc.PC.Load(0x200)
	h.mem.putInstructions(0x200, 0x01, 0x23)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x202)
	test.ExpectEquality(t, h.mc.LastResult.Defn.Operator, instructions.Op0NNN)
}

func TestStackUnderflow(t *testing.T) {
	h := newHarness()
	h.mem.putInstructions(0x200, 0x00, 0xee)

	err := h.mc.Step()
	test.ExpectSuccess(t, curated.Is(err, registers.StackUnderflow))
	test.ExpectFailure(t, h.mc.LastResult.Final)
	test.ExpectInequality(t, h.mc.LastResult.Error, "")
}

func TestStackOverflow(t *testing.T) {
	h := newHarness()

	// a subroutine that calls itself
	h.mem.putInstructions(0x200, 0x22, 0x00)

	for range h.mc.Stack.Limit() {
		step(t, h.mc)
	}
	err := h.mc.Step()
	test.ExpectSuccess(t, curated.Is(err, registers.StackOverflow))

	// the limit is taken from the preferences on reset
	test.DemandSuccess(t, h.mc.Stack.Limit() == 16)
}

func TestFontAddressing(t *testing.T) {
	h := newHarness()
	h.mem.putInstructions(0x200, 0x60, 0x05, 0xf0, 0x29)
	step(t, h.mc)
	step(t, h.mc)
	expectRegister(t, h.mc, 0, 5)
	test.ExpectEquality(t, h.mc.I.Address(), 25)
}

func TestDrawProgram(t *testing.T) {
	h := newHarness()

	// I=0x200; V0=0; V1=0; DRW V0, V1, 5. the sprite data is the program
	// itself. the most significant bit of the first byte (0xa2) is set so
	// the pixel at (0,0) is lit
	h.mem.putInstructions(0x200, 0xa2, 0x00, 0x60, 0x00, 0x61, 0x00, 0xd0, 0x15)
	for range 4 {
		step(t, h.mc)
	}
	test.ExpectSuccess(t, h.dsp.Pixel(0, 0))
	expectRegister(t, h.mc, 0xf, 0x00)
}

func TestDrawSinglePixel(t *testing.T) {
	h := newHarness()

	// sprite data of a single pixel at 0x300
	h.mem.putInstructions(0x300, 0x80)
	h.mem.putInstructions(0x200, 0xa3, 0x00, 0x60, 0x00, 0x61, 0x00, 0xd0, 0x11, 0xd0, 0x11)
	for range 4 {
		step(t, h.mc)
	}
	test.ExpectSuccess(t, h.dsp.Pixel(0, 0))
	test.ExpectFailure(t, h.dsp.Pixel(1, 0))
	expectRegister(t, h.mc, 0xf, 0x00)

	// drawing again erases the pixel and sets the collision flag
	step(t, h.mc)
	test.ExpectFailure(t, h.dsp.Pixel(0, 0))
	expectRegister(t, h.mc, 0xf, 0x01)

	// clear screen
	h.mem.putInstructions(0x20a, 0xd0, 0x11, 0x00, 0xe0)
	step(t, h.mc)
	test.ExpectSuccess(t, h.dsp.Pixel(0, 0))
	step(t, h.mc)
	test.ExpectFailure(t, h.dsp.Pixel(0, 0))
}

func TestKeys(t *testing.T) {
	h := newHarness()

	h.mem.putInstructions(0x200,
		0x6a, 0x0b, // VA=0x0b
		0xea, 0x9e, // SKP VA
		0xea, 0xa1, // SKNP VA
	)
	step(t, h.mc)

	// key not pressed
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x204)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x208)

	// key pressed
	test.ExpectSuccess(t, h.kp.Press(0xb))
	h.mc.PC.Load(0x202)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x206)
	h.mc.PC.Load(0x204)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x206)

	// invalid key value
	h.mem.putInstructions(0x200, 0x6a, 0x10, 0xea, 0x9e)
	h.mc.PC.Load(0x200)
	step(t, h.mc)
	err := h.mc.Step()
	test.ExpectSuccess(t, curated.Is(err, input.InvalidKey))
}

func TestWaitForKey(t *testing.T) {
	h := newHarness()
	h.mem.putInstructions(0x200, 0xf3, 0x0a)

	// no key pressed. the instruction does not complete
	for range 10 {
		step(t, h.mc)
		test.ExpectSuccess(t, h.mc.LastResult.Waiting)
		test.ExpectEquality(t, h.mc.PC.Address(), 0x200)
	}

	test.ExpectSuccess(t, h.kp.Press(0x7))
	step(t, h.mc)
	test.ExpectFailure(t, h.mc.LastResult.Waiting)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x202)
	expectRegister(t, h.mc, 3, 0x07)
}

func TestTimers(t *testing.T) {
	h := newHarness()
	h.mem.putInstructions(0x200,
		0x60, 0x3c, // V0=60
		0xf0, 0x15, // DT=V0
		0xf0, 0x18, // ST=V0
		0xf1, 0x07, // V1=DT
	)
	step(t, h.mc)
	step(t, h.mc)
	step(t, h.mc)
	test.ExpectEquality(t, h.tmr.Delay(), 60)
	test.ExpectEquality(t, h.tmr.Sound(), 60)

	h.tmr.Tick()
	step(t, h.mc)
	expectRegister(t, h.mc, 1, 59)
}

func TestRandom(t *testing.T) {
	h := newHarness()
	h.mem.putInstructions(0x200, 0xc0, 0x0f, 0xc1, 0xf0)

	h.rnd.value = 0xa5
	step(t, h.mc)
	expectRegister(t, h.mc, 0, 0x05)
	step(t, h.mc)
	expectRegister(t, h.mc, 1, 0xa0)
}

func TestIndex(t *testing.T) {
	h := newHarness()
	h.mem.putInstructions(0x200,
		0xa3, 0x00, // I=0x300
		0x60, 0xff, // V0=0xff
		0xf0, 0x1e, // I+=V0
	)
	step(t, h.mc)
	step(t, h.mc)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.I.Address(), 0x3ff)

	// VF is not affected by I+=Vx
	expectRegister(t, h.mc, 0xf, 0x00)
}

func TestBCD(t *testing.T) {
	h := newHarness()
	h.mem.putInstructions(0x200,
		0xa3, 0x00, // I=0x300
		0x60, 0xfe, // V0=254
		0xf0, 0x33, // BCD V0
	)
	step(t, h.mc)
	step(t, h.mc)
	step(t, h.mc)
	h.mem.assert(t, 0x300, 2)
	h.mem.assert(t, 0x301, 5)
	h.mem.assert(t, 0x302, 4)

	// I is unchanged
	test.ExpectEquality(t, h.mc.I.Address(), 0x300)
}

func TestBlockCopy(t *testing.T) {
	h := newHarness()
	h.mem.putInstructions(0x200,
		0x60, 0x01, // V0=1
		0x61, 0x02, // V1=2
		0x62, 0x03, // V2=3
		0xa3, 0x00, // I=0x300
		0xf2, 0x55, // LD [I], V2
	)
	for range 5 {
		step(t, h.mc)
	}
	h.mem.assert(t, 0x300, 1)
	h.mem.assert(t, 0x301, 2)
	h.mem.assert(t, 0x302, 3)
	h.mem.assert(t, 0x303, 0)

	// I is incremented by x+1
	test.ExpectEquality(t, h.mc.I.Address(), 0x303)

	h.mem.putInstructions(0x303, 0x0a, 0x0b)
	h.mem.putInstructions(0x20a, 0xf1, 0x65) // LD V1, [I]
	step(t, h.mc)
	expectRegister(t, h.mc, 0, 0x0a)
	expectRegister(t, h.mc, 1, 0x0b)
	expectRegister(t, h.mc, 2, 0x03)
	test.ExpectEquality(t, h.mc.I.Address(), 0x305)
}

func TestOutOfBounds(t *testing.T) {
	h := newHarness()

	// BCD at the very end of memory
	h.mem.putInstructions(0x200, 0xaf, 0xff, 0xf0, 0x33)
	step(t, h.mc)
	err := h.mc.Step()
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBounds))

	// program counter beyond the end of memory
	h.mc.PC.Load(0xfff)
	err = h.mc.Step()
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBounds))
}

func TestUnrecognised(t *testing.T) {
	h := newHarness()
	h.mem.putInstructions(0x200, 0xff, 0xff)

	err := h.mc.Step()
	test.ExpectSuccess(t, curated.Is(err, cpu.UnrecognisedOpcode))
	test.ExpectEquality(t, err.Error(), "cpu: unrecognised opcode ffff at 0x200")
	test.ExpectEquality(t, h.mc.LastResult.Opcode, 0xffff)
	test.ExpectFailure(t, h.mc.LastResult.Final)
}
