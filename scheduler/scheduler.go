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

package scheduler

import (
	"time"

	"github.com/jetsetilly/gopher8/assert"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
)

// Sentinal errors.
const (
	ExecutionError = "scheduler: %v: %s"
	HostFailure    = "scheduler: %v"
	RecorderError  = "scheduler: recorder: %v"
	ConfigError    = "scheduler: config: %v"
	GoroutineError = "scheduler: iterate called from goroutine %d and goroutine %d"
	InvalidResult  = "scheduler: invalid result: %v: %s"
)

// MaxDelta is the largest amount of time that will be accounted for in a
// single iteration. Any time beyond this (for example, when the host process
// has been suspended) is lost.
const MaxDelta = 3000 * time.Millisecond

// Clock is the source of the current time for the scheduler.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Recorder is notified of every 60Hz timer tick along with the state of the
// beeper after the tick.
type Recorder interface {
	Tick(beeping bool) error
}

// Scheduler is the outer loop of the emulation. Each iteration accounts for
// the time that has passed, advances the timers, polls the host for input,
// steps the VM once and presents the frame buffer.
type Scheduler struct {
	vm   *hardware.VM
	host gui.Host

	clock Clock
	lim   *limiter.Limiter

	recorders []Recorder

	// log every instruction
	debug bool

	// time of the previous iteration. zero until the first iteration
	last    time.Time
	started bool

	// the beeper state as last reported to the host
	beeping bool

	// number of completed iterations and the number of those iterations where
	// the frame buffer changed
	iterations uint64
	frames     uint64

	// the goroutine that first called Iterate(). only checked in debug mode
	goroutine uint64
}

// Option is used to configure the Scheduler in NewScheduler().
type Option func(sch *Scheduler) error

// WithClock replaces the system clock. Useful for testing.
func WithClock(clock Clock) Option {
	return func(sch *Scheduler) error {
		sch.clock = clock
		return nil
	}
}

// WithHertz sets the instruction rate. The default rate is taken from the
// VM's preferences.
func WithHertz(hertz float64) Option {
	return func(sch *Scheduler) error {
		return sch.lim.SetLimit(hertz)
	}
}

// Uncapped disables the instruction rate limiter. The emulation will run as
// fast as possible.
func Uncapped() Option {
	return func(sch *Scheduler) error {
		sch.lim.Disable(true)
		return nil
	}
}

// WithRecorder adds a recorder to the scheduler. More than one recorder can
// be added.
func WithRecorder(rec Recorder) Option {
	return func(sch *Scheduler) error {
		sch.recorders = append(sch.recorders, rec)
		return nil
	}
}

// WithDebug causes every executed instruction to be logged.
func WithDebug(debug bool) Option {
	return func(sch *Scheduler) error {
		sch.debug = debug
		return nil
	}
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler(vm *hardware.VM, host gui.Host, opts ...Option) (*Scheduler, error) {
	lim, err := limiter.NewLimiter(vm.Env.Prefs.Hertz.Get().(float64))
	if err != nil {
		return nil, curated.Errorf(ConfigError, err)
	}

	sch := &Scheduler{
		vm:    vm,
		host:  host,
		clock: systemClock{},
		lim:   lim,
	}

	for _, opt := range opts {
		if err := opt(sch); err != nil {
			return nil, curated.Errorf(ConfigError, err)
		}
	}

	return sch, nil
}

// Hertz returns the instruction rate. The rate is not a guarantee if the
// scheduler is uncapped.
func (sch *Scheduler) Hertz() float64 {
	return sch.lim.Hertz()
}

// Iterations returns the number of completed iterations.
func (sch *Scheduler) Iterations() uint64 {
	return sch.iterations
}

// Frames returns the number of iterations where the frame buffer changed.
func (sch *Scheduler) Frames() uint64 {
	return sch.frames
}

func (sch *Scheduler) tick(beeping bool) error {
	for _, rec := range sch.recorders {
		if err := rec.Tick(beeping); err != nil {
			return curated.Errorf(RecorderError, err)
		}
	}
	return nil
}

// inform the host of any change to the beeper state
func (sch *Scheduler) updateBeep() error {
	beeping := sch.vm.Timers.Beeping()
	if beeping == sch.beeping {
		return nil
	}
	sch.beeping = beeping

	var err error
	if beeping {
		err = sch.host.StartBeep()
	} else {
		err = sch.host.StopBeep()
	}
	if err != nil {
		return curated.Errorf(HostFailure, err)
	}
	return nil
}

// Iterate performs one iteration of the outer loop. Returns false if the
// emulation should end, either because the user has asked for it or because
// of an error.
func (sch *Scheduler) Iterate() (bool, error) {
	if sch.debug {
		id := assert.GetGoRoutineID()
		if sch.goroutine == 0 {
			sch.goroutine = id
		} else if sch.goroutine != id {
			return false, curated.Errorf(GoroutineError, sch.goroutine, id)
		}
	}

	now := sch.clock.Now()

	var delta time.Duration
	if sch.started {
		delta = now.Sub(sch.last)
	}
	sch.started = true
	sch.last = now

	delta = min(max(delta, 0), MaxDelta)

	if _, err := sch.vm.Timers.AdvanceWith(delta, sch.tick); err != nil {
		return false, err
	}
	if err := sch.updateBeep(); err != nil {
		return false, err
	}

	ok, err := sch.host.Poll(&sch.vm.Keypad.State)
	if err != nil {
		return false, curated.Errorf(HostFailure, err)
	}
	if !ok {
		return false, nil
	}

	err = sch.vm.Step()
	if sch.debug {
		logger.Logf(sch.vm.Env, "cpu", "%s  %s", sch.vm.CPU.LastResult.String(), sch.vm.CPU.String())
	}
	if err != nil {
		return false, curated.Errorf(ExecutionError, err, sch.vm.String())
	}

	// check validity of instruction result
	if sch.debug && sch.vm.CPU.LastResult.Final {
		if err := sch.vm.CPU.LastResult.IsValid(); err != nil {
			return false, curated.Errorf(InvalidResult, err, sch.vm.CPU.LastResult.String())
		}
	}

	// the sound timer may have been set by the instruction
	if err := sch.updateBeep(); err != nil {
		return false, err
	}

	if sch.vm.Display.Dirty() {
		sch.frames++
		sch.vm.Display.Clean()
	}

	if err := sch.host.Present(sch.vm.Display.Frame()); err != nil {
		return false, curated.Errorf(HostFailure, err)
	}

	sch.iterations++
	sch.lim.Wait()

	return true, nil
}

// Run the emulation until the user ends it or an error occurs.
func (sch *Scheduler) Run() error {
	return sch.RunWithCheck(nil)
}

// RunWithCheck is the same as Run() but with an additional function that is
// called before every iteration. The emulation ends if the function returns
// false or an error. A nil function is allowed.
func (sch *Scheduler) RunWithCheck(check func() (bool, error)) error {
	err := sch.run(check)

	// make sure the beeper has been silenced
	if sch.beeping {
		sch.beeping = false
		if stopErr := sch.host.StopBeep(); stopErr != nil && err == nil {
			err = curated.Errorf(HostFailure, stopErr)
		}
	}

	return err
}

func (sch *Scheduler) run(check func() (bool, error)) error {
	for {
		if check != nil {
			ok, err := check()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}

		ok, err := sch.Iterate()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}
