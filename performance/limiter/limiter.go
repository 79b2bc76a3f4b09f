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

package limiter

import (
	"time"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinal errors.
const (
	InvalidRate = "limiter: invalid rate: %.3f"
)

// MaxRate is the upper (exclusive) limit of the rate that can be requested.
const MaxRate = 100000.0

// Limiter paces a loop to a fixed number of iterations per second. Sleep
// durations are adjusted each call to Wait() so that the error introduced by
// the scheduling of the host OS does not accumulate.
type Limiter struct {
	hertz  float64
	period time.Duration

	// adjusted period accounting for drift in previous calls to Wait()
	adjusted time.Duration

	// the time at which the previous call to Wait() returned
	last time.Time

	// the zero value of time.Time is never a valid last value so we keep a
	// separate flag for the first call to Wait()
	started bool

	// when disabled Wait() returns immediately
	disabled bool

	// the functions used for time keeping. replaced in tests
	now   func() time.Time
	sleep func(time.Duration)
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(hertz float64) (*Limiter, error) {
	lim := &Limiter{
		now:   time.Now,
		sleep: time.Sleep,
	}
	err := lim.SetLimit(hertz)
	if err != nil {
		return nil, err
	}
	return lim, nil
}

// SetLimit changes the rate of the limiter. Resets any drift correction.
func (lim *Limiter) SetLimit(hertz float64) error {
	if hertz <= 0 || hertz >= MaxRate {
		return curated.Errorf(InvalidRate, hertz)
	}
	lim.hertz = hertz
	lim.period = time.Duration(float64(time.Second) / hertz)
	lim.adjusted = lim.period
	lim.started = false
	return nil
}

// Hertz returns the current rate of the limiter.
func (lim *Limiter) Hertz() float64 {
	return lim.hertz
}

// Period returns the duration of one iteration at the current rate.
func (lim *Limiter) Period() time.Duration {
	return lim.period
}

// Disable or enable the limiter. A disabled limiter does not wait.
func (lim *Limiter) Disable(disable bool) {
	lim.disabled = disable
	lim.started = false
}

// Disabled returns true if the limiter has been disabled.
func (lim *Limiter) Disabled() bool {
	return lim.disabled
}

// Wait blocks until the current period has elapsed.
func (lim *Limiter) Wait() {
	if lim.disabled {
		return
	}

	if !lim.started {
		lim.started = true
		lim.adjusted = lim.period
		lim.last = lim.now()
		return
	}

	// sleep only for the part of the period that hasn't already been spent
	// since the previous call
	spent := lim.now().Sub(lim.last)
	if d := lim.adjusted - spent; d > 0 {
		lim.sleep(d)
	}

	now := lim.now()
	lim.adjusted -= now.Sub(lim.last) - lim.period

	// clamp adjustment so that a long stall (eg. the window being dragged)
	// doesn't result in a burst of unpaced iterations
	if lim.adjusted < 0 {
		lim.adjusted = 0
	} else if lim.adjusted > lim.period*2 {
		lim.adjusted = lim.period * 2
	}

	lim.last = now
}
