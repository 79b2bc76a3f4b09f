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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// Sentinal error returned by Step() when the opcode is not part of the
// instruction set.
const UnrecognisedOpcode = "cpu: unrecognised opcode %04x at 0x%03x"

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// Memory is the interface to the address space required by the CPU.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
	ReadSlice(address uint16, n int) ([]uint8, error)
	WriteSlice(address uint16, data []uint8) error
}

// Display is the interface to the frame buffer required by the CPU.
type Display interface {
	Clear()
	DrawSprite(x uint8, y uint8, sprite []uint8) bool
}

// Keypad is the interface to the keypad required by the CPU.
type Keypad interface {
	IsPressed(key uint8) (bool, error)
	FirstPressed() (uint8, bool)
}

// Timers is the interface to the delay and sound timers required by the CPU.
type Timers interface {
	Delay() uint8
	SetDelay(v uint8)
	SetSound(v uint8)
}

// Random is the source of random numbers for the RND instruction.
type Random interface {
	Byte() uint8
}

// CPU implements the interpreter.
type CPU struct {
	env *environment.Environment

	V     [NumRegisters]registers.Register
	I     registers.AddressRegister
	PC    registers.ProgramCounter
	Stack *registers.Stack

	mem Memory
	dsp Display
	kp  Keypad
	tmr Timers
	rnd Random

	// the number of calls to Step(), including steps that resulted in an
	// error or that were waiting for a key press
	stepCount uint64

	// information about the most recent instruction
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// random number source and the stack limit are taken from the environment.
func NewCPU(env *environment.Environment, mem Memory, dsp Display, kp Keypad, tmr Timers) *CPU {
	mc := &CPU{
		env: env,
		mem: mem,
		dsp: dsp,
		kp:  kp,
		tmr: tmr,
		rnd: env.Random,
	}

	for i := range mc.V {
		mc.V[i] = *registers.NewRegister(0, fmt.Sprintf("V%X", i))
	}

	mc.Stack = registers.NewStack(env.Prefs.StackLimit.Get().(int))
	mc.Reset()

	return mc
}

// Plumb a new random number source. Useful for testing.
func (mc *CPU) Plumb(rnd Random) {
	mc.rnd = rnd
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(mc.PC.String())
	s.WriteString(" ")
	s.WriteString(mc.I.String())
	for i := range mc.V {
		s.WriteString(" ")
		s.WriteString(mc.V[i].String())
	}
	return s.String()
}

// Reset zeroes all registers, empties the stack and sets the program counter
// to the start of the program area. The stack limit is reread from the
// preferences.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	for i := range mc.V {
		mc.V[i].Load(0)
	}
	mc.I.Load(0)
	mc.PC.Load(memory.ProgramOrigin)
	mc.Stack.Reset()
	mc.Stack.SetLimit(mc.env.Prefs.StackLimit.Get().(int))
	mc.stepCount = 0
}

// StepCount returns the number of calls to Step() since the last reset.
func (mc *CPU) StepCount() uint64 {
	return mc.stepCount
}

// fetch the two bytes at the program counter.
func (mc *CPU) fetch() (uint16, error) {
	hi, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	lo, err := mc.mem.Read(mc.PC.Address() + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// skip the next instruction if the condition is true.
func (mc *CPU) skip(cond bool) {
	if cond {
		mc.PC.Add(4)
		mc.LastResult.Skipped = true
	} else {
		mc.PC.Add(2)
	}
}

// setFlag writes the flag register. must be called after the result of the
// instruction has been written so that VF holds the flag if it was also the
// target register.
func (mc *CPU) setFlag(v uint8) {
	mc.V[0xf].Load(v)
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Step executes the instruction at the program counter. Errors are returned
// for unrecognised opcodes, memory access outside of the address space, stack
// underflow and overflow and invalid key values. After an error the state of
// the CPU is undefined and LastResult.Final will be false.
func (mc *CPU) Step() error {
	mc.stepCount++

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	err := mc.execute()
	if err != nil {
		mc.LastResult.Error = err.Error()
		return err
	}

	mc.LastResult.NextPC = mc.PC.Address()
	mc.LastResult.Final = true

	return nil
}

func (mc *CPU) execute() error {
	opcode, err := mc.fetch()
	if err != nil {
		return err
	}
	mc.LastResult.Opcode = opcode

	defn, ok := instructions.Lookup(opcode)
	if !ok {
		return curated.Errorf(UnrecognisedOpcode, opcode, mc.PC.Address())
	}
	mc.LastResult.Defn = defn

	o := instructions.DecodeOperands(opcode)
	vx := &mc.V[o.X]
	vy := &mc.V[o.Y]

	switch defn.Operator {
	case instructions.Op0NNN:
		// machine code routines are not supported
		mc.PC.Add(2)

	case instructions.Op00E0:
		mc.dsp.Clear()
		mc.PC.Add(2)

	case instructions.Op00EE:
		address, err := mc.Stack.Pop()
		if err != nil {
			return err
		}
		mc.PC.Load(address)

	case instructions.Op1NNN:
		mc.PC.Load(o.NNN)

	case instructions.Op2NNN:
		if err := mc.Stack.Push(mc.PC.Address() + 2); err != nil {
			return err
		}
		mc.PC.Load(o.NNN)

	case instructions.Op3XNN:
		mc.skip(vx.Value() == o.NN)

	case instructions.Op4XNN:
		mc.skip(vx.Value() != o.NN)

	case instructions.Op5XY0:
		mc.skip(vx.Value() == vy.Value())

	case instructions.Op6XNN:
		vx.Load(o.NN)
		mc.PC.Add(2)

	case instructions.Op7XNN:
		vx.Add(o.NN)
		mc.PC.Add(2)

	case instructions.Op8XY0:
		vx.Load(vy.Value())
		mc.PC.Add(2)

	case instructions.Op8XY1:
		vx.OR(vy.Value())
		mc.PC.Add(2)

	case instructions.Op8XY2:
		vx.AND(vy.Value())
		mc.PC.Add(2)

	case instructions.Op8XY3:
		vx.XOR(vy.Value())
		mc.PC.Add(2)

	case instructions.Op8XY4:
		carry := vx.Add(vy.Value())
		mc.setFlag(boolToFlag(carry))
		mc.PC.Add(2)

	case instructions.Op8XY5:
		noBorrow := vx.Subtract(vy.Value())
		mc.setFlag(boolToFlag(noBorrow))
		mc.PC.Add(2)

	case instructions.Op8XY6:
		b := vx.ShiftRight()
		mc.setFlag(b)
		mc.PC.Add(2)

	case instructions.Op8XY7:
		noBorrow := vx.SubtractFrom(vy.Value())
		mc.setFlag(boolToFlag(noBorrow))
		mc.PC.Add(2)

	case instructions.Op8XYE:
		b := vx.ShiftLeft()
		mc.setFlag(b)
		mc.PC.Add(2)

	case instructions.Op9XY0:
		mc.skip(vx.Value() != vy.Value())

	case instructions.OpANNN:
		mc.I.Load(o.NNN)
		mc.PC.Add(2)

	case instructions.OpBNNN:
		mc.PC.Load(uint16(mc.V[0].Value()) + o.NNN)

	case instructions.OpCXNN:
		vx.Load(mc.rnd.Byte() & o.NN)
		mc.PC.Add(2)

	case instructions.OpDXYN:
		sprite, err := mc.mem.ReadSlice(mc.I.Address(), int(o.N))
		if err != nil {
			return err
		}
		collision := mc.dsp.DrawSprite(vx.Value(), vy.Value(), sprite)
		mc.setFlag(boolToFlag(collision))
		mc.PC.Add(2)

	case instructions.OpEX9E:
		pressed, err := mc.kp.IsPressed(vx.Value())
		if err != nil {
			return err
		}
		mc.skip(pressed)

	case instructions.OpEXA1:
		pressed, err := mc.kp.IsPressed(vx.Value())
		if err != nil {
			return err
		}
		mc.skip(!pressed)

	case instructions.OpFX07:
		vx.Load(mc.tmr.Delay())
		mc.PC.Add(2)

	case instructions.OpFX0A:
		// the program counter is not advanced until a key is pressed. the
		// instruction will be executed again on the next step
		key, ok := mc.kp.FirstPressed()
		if !ok {
			mc.LastResult.Waiting = true
			break // switch
		}
		vx.Load(key)
		mc.PC.Add(2)

	case instructions.OpFX15:
		mc.tmr.SetDelay(vx.Value())
		mc.PC.Add(2)

	case instructions.OpFX18:
		mc.tmr.SetSound(vx.Value())
		mc.PC.Add(2)

	case instructions.OpFX1E:
		mc.I.Add(uint16(vx.Value()))
		mc.PC.Add(2)

	case instructions.OpFX29:
		mc.I.Load(memory.FontAddress(vx.Value()))
		mc.PC.Add(2)

	case instructions.OpFX33:
		v := vx.Value()
		if err := mc.mem.WriteSlice(mc.I.Address(), []uint8{v / 100, (v / 10) % 10, v % 10}); err != nil {
			return err
		}
		mc.PC.Add(2)

	case instructions.OpFX55:
		data := make([]uint8, o.X+1)
		for i := range data {
			data[i] = mc.V[i].Value()
		}
		if err := mc.mem.WriteSlice(mc.I.Address(), data); err != nil {
			return err
		}
		mc.I.Add(uint16(o.X) + 1)
		mc.PC.Add(2)

	case instructions.OpFX65:
		data, err := mc.mem.ReadSlice(mc.I.Address(), int(o.X)+1)
		if err != nil {
			return err
		}
		for i, v := range data {
			mc.V[i].Load(v)
		}
		mc.I.Add(uint16(o.X) + 1)
		mc.PC.Add(2)

	default:
		return curated.Errorf(UnrecognisedOpcode, opcode, mc.PC.Address())
	}

	return nil
}
