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
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/test"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, memory.Size),
	}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		_ = mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d, _ := mem.Read(address)
	test.ExpectEquality(t, d, value, address)
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if int(address) >= len(mem.internal) {
		return 0, curated.Errorf(memory.OutOfBounds, "read", address)
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if int(address) >= len(mem.internal) {
		return curated.Errorf(memory.OutOfBounds, "write", address)
	}
	mem.internal[address] = data
	return nil
}

func (mem *mockMem) ReadSlice(address uint16, n int) ([]uint8, error) {
	if int(address)+n > len(mem.internal) {
		return nil, curated.Errorf(memory.OutOfBounds, "read", address)
	}
	d := make([]uint8, n)
	copy(d, mem.internal[address:])
	return d, nil
}

func (mem *mockMem) WriteSlice(address uint16, data []uint8) error {
	if int(address)+len(data) > len(mem.internal) {
		return curated.Errorf(memory.OutOfBounds, "write", address)
	}
	copy(mem.internal[address:], data)
	return nil
}

type mockRandom struct {
	value uint8
}

func (rnd *mockRandom) Byte() uint8 {
	return rnd.value
}

type harness struct {
	mc  *cpu.CPU
	mem *mockMem
	dsp *display.Display
	kp  *input.Keypad
	tmr *timers.Timers
	rnd *mockRandom
}

func newHarness() *harness {
	h := &harness{
		mem: newMockMem(),
		dsp: display.NewDisplay(),
		kp:  input.NewKeypad(),
		tmr: timers.NewTimers(),
		rnd: &mockRandom{value: 0xff},
	}
	env := environment.NewEnvironment(environment.MainEmulation, nil, nil)
	h.mc = cpu.NewCPU(env, h.mem, h.dsp, h.kp, h.tmr)
	h.mc.Plumb(h.rnd)
	return h
}

// step executes one instruction. any error is fatal to the test.
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	err := mc.Step()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
}

// expectRegister checks the value of a general purpose register.
func expectRegister(t *testing.T, mc *cpu.CPU, reg int, value uint8) {
	t.Helper()
	test.ExpectEquality(t, mc.V[reg].Value(), value, mc.V[reg].Label())
}
