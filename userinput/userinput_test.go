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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func TestDefaultKeymap(t *testing.T) {
	km := userinput.DefaultKeymap()
	test.ExpectEquality(t, len(km), input.NumKeys)

	// every keypad key is reachable exactly once
	var seen [input.NumKeys]int
	for _, k := range km {
		seen[k]++
	}
	for k, n := range seen {
		test.ExpectEquality(t, n, 1, k)
	}

	test.ExpectEquality(t, km["4"], uint8(0xc))
	test.ExpectEquality(t, km["X"], uint8(0x0))
	test.ExpectEquality(t, km["V"], uint8(0xf))
}

func TestHandleUserInput(t *testing.T) {
	km := userinput.DefaultKeymap()
	var keys input.State

	quit, err := userinput.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: true}, km, &keys)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, quit)
	test.ExpectEquality(t, keys.String(), ".....5..........")

	// repeats don't change anything
	_, err = userinput.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: false, Repeat: true}, km, &keys)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, keys.String(), ".....5..........")

	_, err = userinput.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: false}, km, &keys)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, keys.String(), "................")

	// unmapped keys are ignored
	_, err = userinput.HandleUserInput(userinput.EventKeyboard{Key: "P", Down: true}, km, &keys)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, keys.String(), "................")

	quit, err = userinput.HandleUserInput(userinput.EventKeyboard{Key: userinput.QuitKey, Down: true}, km, &keys)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, quit)

	quit, err = userinput.HandleUserInput(userinput.EventQuit{}, km, &keys)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, quit)
}

func TestCanonicalKey(t *testing.T) {
	test.ExpectEquality(t, userinput.CanonicalKey("q"), "Q")
	test.ExpectEquality(t, userinput.CanonicalKey("7"), "7")
	test.ExpectEquality(t, userinput.CanonicalKey("ESC"), userinput.QuitKey)
	test.ExpectEquality(t, userinput.CanonicalKey("escape"), userinput.QuitKey)
	test.ExpectEquality(t, userinput.CanonicalKey("Left Shift"), "")
	test.ExpectEquality(t, userinput.CanonicalKey(""), "")
}

func TestRemap(t *testing.T) {
	km := userinput.DefaultKeymap()

	err := km.Remap("p=5; o = a")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, km["P"], uint8(0x5))
	test.ExpectEquality(t, km["O"], uint8(0xa))

	// the previous mapping for keys 5 and A have been removed
	_, ok := km["W"]
	test.ExpectFailure(t, ok)
	_, ok = km["Z"]
	test.ExpectFailure(t, ok)

	test.ExpectSuccess(t, curated.Is(km.Remap("p"), userinput.InvalidKeymapEntry))
	test.ExpectSuccess(t, curated.Is(km.Remap("p=10"), userinput.InvalidKeymapEntry))
	test.ExpectSuccess(t, curated.Is(km.Remap("escape=1"), userinput.UnknownKeymapEntry))
}
