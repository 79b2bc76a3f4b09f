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

package input_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/test"
)

func TestKeypad(t *testing.T) {
	kp := input.NewKeypad()
	test.ExpectEquality(t, kp.String(), "................")

	_, ok := kp.FirstPressed()
	test.ExpectFailure(t, ok)

	test.ExpectSuccess(t, kp.Press(0xa))
	test.ExpectSuccess(t, kp.Press(0x3))
	test.ExpectEquality(t, kp.String(), "...3......A.....")

	p, err := kp.IsPressed(0xa)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, p)

	p, err = kp.IsPressed(0xb)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, p)

	k, ok := kp.FirstPressed()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 0x3)

	test.ExpectSuccess(t, kp.Release(0x3))
	k, ok = kp.FirstPressed()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 0xa)

	kp.Reset()
	_, ok = kp.FirstPressed()
	test.ExpectFailure(t, ok)
}

func TestInvalidKey(t *testing.T) {
	kp := input.NewKeypad()

	_, err := kp.IsPressed(0x10)
	test.ExpectSuccess(t, curated.Is(err, input.InvalidKey))
	test.ExpectSuccess(t, curated.Is(kp.Press(0xff), input.InvalidKey))
	test.ExpectSuccess(t, curated.Is(kp.Release(0x10), input.InvalidKey))
}
