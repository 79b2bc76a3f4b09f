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
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/headless"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := ParseProfileString("cpu, Trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileCPU|ProfileTrace)
	test.ExpectEquality(t, p.String(), "cpu,trace")

	p, err = ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileNone)
	test.ExpectEquality(t, p.String(), "none")

	p, err = ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "cpu,mem,trace")

	_, err = ParseProfileString("gpu")
	test.ExpectSuccess(t, curated.Is(err, UnknownProfile))
}

func TestCalcRate(t *testing.T) {
	rate, accuracy := CalcRate(500, 1000, 2)
	test.ExpectEquality(t, rate, 500.0)
	test.ExpectEquality(t, accuracy, 100.0)

	rate, accuracy = CalcRate(500, 1000, 0)
	test.ExpectEquality(t, rate, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestCheck(t *testing.T) {
	leadtime = 10 * time.Millisecond
	defer func() { leadtime = 2 * time.Second }()

	vm := hardware.NewVM(environment.MainEmulation, nil)
	test.DemandSuccess(t, vm.LoadROM([]uint8{0x12, 0x00}))
	hst := headless.NewHost(gui.NewConfig())

	w := &test.CompareWriter{}
	err := Check(w, ProfileNone, vm, hst, 500, true, "50ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Contains("uncapped"))
	test.ExpectSuccess(t, w.Contains("frame updates"))

	// ending the emulation early is an error
	hst.QuitAfter(1)
	err = Check(w, ProfileNone, vm, hst, 500, true, "50ms")
	test.ExpectSuccess(t, curated.Is(err, PerformanceError))

	err = Check(w, ProfileNone, vm, hst, 500, true, "fifty")
	test.ExpectSuccess(t, curated.Is(err, PerformanceError))
}
