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

package macro_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/headless"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/macro"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func writeScript(t *testing.T, script string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "macro.lua")
	test.DemandSuccess(t, os.WriteFile(filename, []byte(script), 0o644))
	return filename
}

// drive the macro as the scheduler would until the macro asks to quit or the
// script ends. returns the keys that were seen to be pressed
func drive(t *testing.T, mcr *macro.Macro) (input.State, bool) {
	t.Helper()

	var seen input.State
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		test.DemandSuccess(t, mcr.Tick(false))

		var keys input.State
		ok, err := mcr.Poll(&keys)
		test.DemandSuccess(t, err)
		for k, p := range keys {
			seen[k] = seen[k] || p
		}
		if !ok {
			return seen, true
		}

		select {
		case <-mcr.Done():
			return seen, false
		default:
		}

		time.Sleep(time.Millisecond)
	}

	t.Fatalf("macro did not end")
	return seen, false
}

func TestMacro(t *testing.T) {
	filename := writeScript(t, `
press(0xa)
wait(5)
release(0xa)
tap("w")
quit()
`)

	hst := headless.NewHost(gui.NewConfig())
	mcr, err := macro.NewMacro(filename, hst, userinput.DefaultKeymap())
	test.DemandSuccess(t, err)

	mcr.Run()
	defer mcr.Quit()

	seen, quit := drive(t, mcr)
	test.ExpectSuccess(t, quit)
	test.ExpectSuccess(t, seen[0xa])
	test.ExpectSuccess(t, seen[0x5])
	test.ExpectFailure(t, seen[0x1])
}

func TestUserInput(t *testing.T) {
	filename := writeScript(t, `wait(2)`)

	hst := headless.NewHost(gui.NewConfig())
	mcr, err := macro.NewMacro(filename, hst, nil)
	test.DemandSuccess(t, err)

	// keys pressed by the user are still seen
	hst.Push(userinput.EventKeyboard{Key: "Z", Down: true})

	mcr.Run()
	defer mcr.Quit()

	seen, quit := drive(t, mcr)
	test.ExpectFailure(t, quit)
	test.ExpectSuccess(t, seen[0xa])
}

func TestScriptError(t *testing.T) {
	var w test.CompareWriter
	logger.SetEcho(&w, false)
	defer logger.SetEcho(nil, false)

	filename := writeScript(t, `press(0x10)`)

	hst := headless.NewHost(gui.NewConfig())
	mcr, err := macro.NewMacro(filename, hst, nil)
	test.DemandSuccess(t, err)

	mcr.Run()
	defer mcr.Quit()

	_, quit := drive(t, mcr)
	test.ExpectFailure(t, quit)
	test.ExpectSuccess(t, w.Contains("keypad key out of range"))
}

func TestCompileError(t *testing.T) {
	filename := writeScript(t, `press(`)
	_, err := macro.NewMacro(filename, headless.NewHost(gui.NewConfig()), nil)
	test.ExpectFailure(t, err)

	_, err = macro.NewMacro(filepath.Join(t.TempDir(), "missing.lua"), headless.NewHost(gui.NewConfig()), nil)
	test.ExpectFailure(t, err)
}

func TestQuit(t *testing.T) {
	filename := writeScript(t, `wait(1000000)`)

	mcr, err := macro.NewMacro(filename, headless.NewHost(gui.NewConfig()), nil)
	test.DemandSuccess(t, err)

	mcr.Run()
	test.ExpectSuccess(t, mcr.Tick(false))

	// Quit() returns once the script goroutine has ended
	mcr.Quit()
	select {
	case <-mcr.Done():
	default:
		t.Errorf("macro still running after Quit()")
	}

	// safe to call more than once
	mcr.Quit()
}
