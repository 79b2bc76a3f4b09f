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

package timers

import (
	"fmt"
	"time"
)

// TickRate is the frequency at which the timers are decremented.
const TickRate = 60

// TickDuration is the amount of time between each tick.
const TickDuration = time.Second / TickRate

// Timers are the delay and sound timers. Both timers count down to zero at
// TickRate. The sound timer sounds a tone while it is non-zero.
type Timers struct {
	delay uint8
	sound uint8

	// time that has been accumulated but not yet consumed by a tick
	accumulator time.Duration
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers() *Timers {
	return &Timers{}
}

func (tmr *Timers) String() string {
	return fmt.Sprintf("DT=0x%02x ST=0x%02x", tmr.delay, tmr.sound)
}

// Reset both timers to zero and discard any accumulated time.
func (tmr *Timers) Reset() {
	tmr.delay = 0
	tmr.sound = 0
	tmr.accumulator = 0
}

// Delay returns the current value of the delay timer.
func (tmr *Timers) Delay() uint8 {
	return tmr.delay
}

// SetDelay sets the value of the delay timer.
func (tmr *Timers) SetDelay(v uint8) {
	tmr.delay = v
}

// Sound returns the current value of the sound timer.
func (tmr *Timers) Sound() uint8 {
	return tmr.sound
}

// SetSound sets the value of the sound timer.
func (tmr *Timers) SetSound(v uint8) {
	tmr.sound = v
}

// Beeping returns true while the sound timer is non-zero.
func (tmr *Timers) Beeping() bool {
	return tmr.sound > 0
}

// Tick decrements both timers. Timers never go below zero.
func (tmr *Timers) Tick() {
	if tmr.delay > 0 {
		tmr.delay--
	}
	if tmr.sound > 0 {
		tmr.sound--
	}
}

// Advance adds the delta to the accumulated time and performs a Tick() for
// every whole TickDuration that has been accumulated. Returns the number of
// ticks performed. Negative deltas are ignored.
func (tmr *Timers) Advance(delta time.Duration) int {
	if delta > 0 {
		tmr.accumulator += delta
	}

	var n int
	for tmr.accumulator >= TickDuration {
		tmr.Tick()
		tmr.accumulator -= TickDuration
		n++
	}
	return n
}

// AdvanceWith is the same as Advance() but calls the function after every
// tick. The function is given the state of the beeper after the tick.
func (tmr *Timers) AdvanceWith(delta time.Duration, f func(beeping bool) error) (int, error) {
	if delta > 0 {
		tmr.accumulator += delta
	}

	var n int
	for tmr.accumulator >= TickDuration {
		tmr.Tick()
		tmr.accumulator -= TickDuration
		n++
		if err := f(tmr.Beeping()); err != nil {
			return n, err
		}
	}
	return n, nil
}
