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

package hardware

import (
	"fmt"
	"os"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinal error returned when a ROM file cannot be loaded.
const ROMError = "rom: %v"

// VM is the struct containing the emulated components of the virtual
// machine.
type VM struct {
	Env *environment.Environment

	Mem     *memory.Memory
	CPU     *cpu.CPU
	Display *display.Display
	Keypad  *input.Keypad
	Timers  *timers.Timers
}

// NewVM is the preferred method of initialisation for the VM type. If prefs
// is nil then the default preferences are used.
func NewVM(label environment.Label, prefs *preferences.Preferences) *VM {
	vm := &VM{
		Mem:     memory.NewMemory(),
		Display: display.NewDisplay(),
		Keypad:  input.NewKeypad(),
		Timers:  timers.NewTimers(),
	}

	vm.Env = environment.NewEnvironment(label, vm, prefs)
	vm.CPU = cpu.NewCPU(vm.Env, vm.Mem, vm.Display, vm.Keypad, vm.Timers)

	return vm
}

func (vm *VM) String() string {
	return fmt.Sprintf("%s %s", vm.CPU.String(), vm.Timers.String())
}

// StepCount implements the random.Counter interface.
func (vm *VM) StepCount() uint64 {
	if vm.CPU == nil {
		return 0
	}
	return vm.CPU.StepCount()
}

// Reset the VM. Memory is not changed.
func (vm *VM) Reset() {
	vm.CPU.Reset()
	vm.Display.Clear()
	vm.Keypad.Reset()
	vm.Timers.Reset()
}

// LoadROM copies the data into memory at the start of the program area and
// resets the VM.
func (vm *VM) LoadROM(data []uint8) error {
	if err := vm.Mem.LoadROM(data); err != nil {
		return err
	}
	vm.Reset()
	logger.Logf(vm.Env, "vm", "loaded %d byte rom", len(data))
	return nil
}

// LoadROMFile reads the file and loads the contents with LoadROM().
func (vm *VM) LoadROMFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf(ROMError, err)
	}
	if err := vm.LoadROM(data); err != nil {
		return curated.Errorf(ROMError, err)
	}
	return nil
}

// Step executes one instruction.
func (vm *VM) Step() error {
	return vm.CPU.Step()
}
