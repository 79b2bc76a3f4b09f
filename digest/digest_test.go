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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/headless"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestVideo(t *testing.T) {
	hst := headless.NewHost(gui.NewConfig())
	dig := digest.NewVideo(hst)

	var frame display.Frame
	test.ExpectSuccess(t, dig.Present(&frame))
	test.ExpectEquality(t, dig.Frames(), 1)
	blank := dig.Hash()

	// the decorated host still receives every frame
	test.ExpectSuccess(t, dig.Present(&frame))
	test.ExpectEquality(t, dig.Frames(), 1)
	test.ExpectEquality(t, hst.Presents(), 2)
	test.ExpectEquality(t, dig.Hash(), blank)

	frame[10][10] = true
	test.ExpectSuccess(t, dig.Present(&frame))
	test.ExpectEquality(t, dig.Frames(), 2)
	test.ExpectInequality(t, dig.Hash(), blank)
	test.ExpectEquality(t, hst.Frame(), frame)

	// the same frame presented after a different frame changes the hash
	// because hashes are chained
	frame[10][10] = false
	test.ExpectSuccess(t, dig.Present(&frame))
	test.ExpectInequality(t, dig.Hash(), blank)
}

func TestVideoRepeatable(t *testing.T) {
	run := func(repeats int) string {
		dig := digest.NewVideo(nil)
		var frame display.Frame
		for i := range 10 {
			frame[i][i] = true
			for range repeats {
				test.ExpectSuccess(t, dig.Present(&frame))
			}
		}
		return dig.Hash()
	}

	// the number of times a frame is presented makes no difference
	test.ExpectEquality(t, run(1), run(3))

	dig := digest.NewVideo(nil)
	var frame display.Frame
	test.ExpectSuccess(t, dig.Present(&frame))
	h := dig.Hash()
	dig.ResetDigest()
	test.ExpectEquality(t, dig.Frames(), 0)
	test.ExpectSuccess(t, dig.Present(&frame))
	test.ExpectEquality(t, dig.Hash(), h)
}

func TestAudio(t *testing.T) {
	record := func(n int, beep func(i int) bool) string {
		dig := digest.NewAudio()
		for i := range n {
			test.ExpectSuccess(t, dig.Tick(beep(i)))
		}
		return dig.Hash()
	}

	silence := func(_ int) bool { return false }
	pulse := func(i int) bool { return i%100 < 10 }

	test.ExpectEquality(t, record(100, silence), record(100, silence))
	test.ExpectInequality(t, record(100, silence), record(100, pulse))

	// long enough for the buffer to be flushed more than once
	test.ExpectEquality(t, record(3000, pulse), record(3000, pulse))
	test.ExpectInequality(t, record(3000, pulse), record(3001, pulse))

	// Hash() can be called more than once without changing the result
	dig := digest.NewAudio()
	test.ExpectSuccess(t, dig.Tick(true))
	h := dig.Hash()
	test.ExpectEquality(t, dig.Hash(), h)
}
