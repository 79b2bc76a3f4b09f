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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed is decided once per run of the program. instances of Random
// that do not use the zero seed will all use this value.
var baseSeed uint64

func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Counter is the source of the instantaneous emulation state. the count is
// combined with the seed value so that the random number is tied to the
// position of the emulation.
type Counter interface {
	StepCount() uint64
}

// Random should be used in preference to the math/rand package when a random
// number is required inside the emulation.
type Random struct {
	counter Counter

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(counter Counter) *Random {
	return &Random{
		counter: counter,
	}
}

func (rnd *Random) rand() *rand.Rand {
	var count uint64
	if rnd.counter != nil {
		count = rnd.counter.StepCount()
	}
	if rnd.ZeroSeed {
		return rand.New(rand.NewPCG(0, count))
	}
	return rand.New(rand.NewPCG(baseSeed, count))
}

// Byte returns a random number in the range 0 to 255. The result for a given
// step count is always the same for the lifetime of the instance.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.rand().UintN(256))
}

// IntN returns a random number in the range 0 to n-1.
func (rnd *Random) IntN(n int) int {
	return rnd.rand().IntN(n)
}
