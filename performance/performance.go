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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/scheduler"
)

// Sentinal error.
const PerformanceError = "performance: %v"

var timedOut = errors.New("performance timed out")

// the amount of time the emulation runs before the measurement begins. gives
// the instruction rate a chance to settle
var leadtime = 2 * time.Second

// Check the performance of the emulation by running the VM for the duration
// specified. If host is nil the emulation runs headless.
//
// The emulation will run uncapped if requested, otherwise at the supplied
// instruction rate. The optional profile argument will generate CPU and
// memory profiles, a trace (or a combination of those) as defined by the
// Profile type.
func Check(output io.Writer, profile Profile, vm *hardware.VM, host gui.Host, hertz float64, uncapped bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	opts := []scheduler.Option{scheduler.WithHertz(hertz)}
	if uncapped {
		opts = append(opts, scheduler.Uncapped())
	}

	sch, err := scheduler.NewScheduler(vm, host, opts...)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	var startInstructions uint64
	var endInstructions uint64
	var startFrames uint64
	var endFrames uint64

	runner := func() error {
		// signals false when the leadtime has elapsed and true when the
		// measurement period has concluded
		timerChan := make(chan bool, 2)
		time.AfterFunc(leadtime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		err := sch.RunWithCheck(func() (bool, error) {
			select {
			case v := <-timerChan:
				if v {
					return false, timedOut
				}
				startInstructions = sch.Iterations()
				startFrames = sch.Frames()
			default:
			}
			return true, nil
		})

		endInstructions = sch.Iterations()
		endFrames = sch.Frames()
		return err
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf(PerformanceError, err)
	}

	// the emulation ended before the measurement period had finished. for
	// example, the ROM or the user quit
	if err == nil {
		return curated.Errorf(PerformanceError, "emulation ended before the measurement finished")
	}

	numInstructions := endInstructions - startInstructions
	rate, accuracy := CalcRate(hertz, numInstructions, dur.Seconds())
	if uncapped {
		fmt.Fprintf(output, "%.2f ips (%d instructions in %.2f seconds) uncapped\n", rate, numInstructions, dur.Seconds())
	} else {
		fmt.Fprintf(output, "%.2f ips (%d instructions in %.2f seconds) %.1f%%\n", rate, numInstructions, dur.Seconds(), accuracy)
	}
	fmt.Fprintf(output, "%d frame updates\n", endFrames-startFrames)

	return nil
}
