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

package macro

import (
	"context"
	"sync"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal errors.
const (
	MacroError = "macro: %s: %v"
)

const logTag = "macro"

// the number of ticks to wait after a key press or release. this ensures that
// the input has the chance to take effect in the emulation
const keyWait = 2

// the default number of ticks for the wait() function
const defaultWait = 60

// Macro is a type that allows control of an emulation from a Lua script.
type Macro struct {
	gui.Host

	filename string
	keymap   userinput.Keymap

	L  *lua.LState
	fn *lua.LFunction

	crit sync.Mutex
	keys input.State
	quit bool

	// the most recent tick number is sent to the script goroutine
	ticks chan int
	tick  int

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewMacro is the preferred method of initialisation for the Macro type. The
// script is compiled but does not start until Run() is called.
func NewMacro(filename string, host gui.Host, km userinput.Keymap) (*Macro, error) {
	if km == nil {
		km = userinput.DefaultKeymap()
	}

	mcr := &Macro{
		Host:     host,
		filename: filename,
		keymap:   km,
		ticks:    make(chan int, 1),
		done:     make(chan struct{}),
	}
	mcr.ctx, mcr.cancel = context.WithCancel(context.Background())

	mcr.L = lua.NewState()
	mcr.L.SetContext(mcr.ctx)

	var err error
	mcr.fn, err = mcr.L.LoadFile(filename)
	if err != nil {
		mcr.L.Close()
		return nil, curated.Errorf(MacroError, filename, err)
	}

	mcr.register()

	return mcr, nil
}

func (mcr *Macro) register() {
	mcr.L.SetGlobal("press", mcr.L.NewFunction(func(L *lua.LState) int {
		mcr.set(L, mcr.key(L), true)
		mcr.wait(keyWait)
		return 0
	}))

	mcr.L.SetGlobal("release", mcr.L.NewFunction(func(L *lua.LState) int {
		mcr.set(L, mcr.key(L), false)
		mcr.wait(keyWait)
		return 0
	}))

	mcr.L.SetGlobal("tap", mcr.L.NewFunction(func(L *lua.LState) int {
		k := mcr.key(L)
		mcr.set(L, k, true)
		mcr.wait(keyWait)
		mcr.set(L, k, false)
		mcr.wait(keyWait)
		return 0
	}))

	mcr.L.SetGlobal("wait", mcr.L.NewFunction(func(L *lua.LState) int {
		w := L.OptInt(1, defaultWait)
		if w < 0 {
			L.ArgError(1, "wait must not be negative")
		}
		mcr.wait(w)
		return 0
	}))

	mcr.L.SetGlobal("quit", mcr.L.NewFunction(func(L *lua.LState) int {
		mcr.crit.Lock()
		defer mcr.crit.Unlock()
		mcr.quit = true
		return 0
	}))

	mcr.L.SetGlobal("log", mcr.L.NewFunction(func(L *lua.LState) int {
		logger.Logf(logger.Allow, logTag, "%s: %s", mcr.filename, L.CheckString(1))
		return 0
	}))
}

// key returns the keypad key from the first argument. a script error is
// raised if the argument is not a key
func (mcr *Macro) key(L *lua.LState) uint8 {
	switch v := L.CheckAny(1).(type) {
	case lua.LNumber:
		if v < 0 || v >= input.NumKeys {
			L.ArgError(1, "keypad key out of range")
		}
		return uint8(v)
	case lua.LString:
		k, ok := mcr.keymap[userinput.CanonicalKey(string(v))]
		if !ok {
			L.ArgError(1, "key is not in the keymap")
		}
		return k
	default:
		L.ArgError(1, "key must be a number or a string")
	}
	return 0
}

func (mcr *Macro) set(L *lua.LState, key uint8, pressed bool) {
	mcr.crit.Lock()
	defer mcr.crit.Unlock()
	if err := mcr.keys.Set(key, pressed); err != nil {
		L.RaiseError("%v", err)
	}
}

// wait for the number of ticks or until the macro has been told to quit
func (mcr *Macro) wait(w int) {
	var target int
	select {
	case t := <-mcr.ticks:
		target = t + w
	case <-mcr.ctx.Done():
		return
	}

	for {
		select {
		case t := <-mcr.ticks:
			if t >= target {
				return
			}
		case <-mcr.ctx.Done():
			return
		}
	}
}

// Run the script in a new goroutine.
func (mcr *Macro) Run() {
	go func() {
		defer close(mcr.done)
		defer mcr.L.Close()

		mcr.L.Push(mcr.fn)
		err := mcr.L.PCall(0, lua.MultRet, nil)
		if err != nil && mcr.ctx.Err() == nil {
			logger.Log(logger.Allow, logTag, curated.Errorf(MacroError, mcr.filename, err))
		}
	}()
}

// Done returns a channel that is closed when the script has finished.
func (mcr *Macro) Done() <-chan struct{} {
	return mcr.done
}

// Quit forces a running macro to end. It is safe to call Quit() more than once
// or when the macro has already finished. Must not be called before Run().
func (mcr *Macro) Quit() {
	mcr.cancel()
	<-mcr.done
}

// Tick implements the scheduler.Recorder interface.
func (mcr *Macro) Tick(_ bool) error {
	mcr.tick++

	// drain any tick number before pushing the new value
	select {
	case <-mcr.ticks:
	default:
	}
	select {
	case mcr.ticks <- mcr.tick:
	default:
	}
	return nil
}

// Poll implements the gui.Input interface. Keys held by the script are
// combined with the keys held by the user.
func (mcr *Macro) Poll(keys *input.State) (bool, error) {
	ok, err := mcr.Host.Poll(keys)
	if err != nil || !ok {
		return ok, err
	}

	mcr.crit.Lock()
	defer mcr.crit.Unlock()

	for k, p := range mcr.keys {
		if p {
			keys[k] = true
		}
	}

	return !mcr.quit, nil
}
