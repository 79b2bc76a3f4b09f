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

package environment_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/test"
)

type counter struct{}

func (counter) StepCount() uint64 {
	return 0
}

func TestEnvironment(t *testing.T) {
	env := environment.NewEnvironment(environment.MainEmulation, counter{}, nil)
	test.ExpectSuccess(t, env.IsEmulation(environment.MainEmulation))
	test.ExpectFailure(t, env.IsEmulation("thumbnail"))
	test.ExpectFailure(t, env.Random.ZeroSeed)

	// changing the preference changes the random seeding
	test.ExpectSuccess(t, env.Prefs.RandSeed.Set(true))
	test.ExpectSuccess(t, env.Random.ZeroSeed)
	test.ExpectSuccess(t, env.Prefs.RandSeed.Set(false))
	test.ExpectFailure(t, env.Random.ZeroSeed)

	test.ExpectSuccess(t, env.Prefs.StackLimit.Set(32))
	env.Normalise()
	test.ExpectEquality(t, env.Prefs.StackLimit.Get().(int), preferences.DefaultStackLimit)
	test.ExpectSuccess(t, env.Random.ZeroSeed)
}

func TestSharedPreferences(t *testing.T) {
	hw := preferences.NewDefaultPreferences()
	test.DemandSuccess(t, hw.RandSeed.Set(true))

	// the seed preference is taken from the preferences supplied
	env := environment.NewEnvironment(environment.MainEmulation, counter{}, hw)
	test.ExpectSuccess(t, env.Random.ZeroSeed)

	test.DemandSuccess(t, hw.RandSeed.Set(false))
	test.ExpectFailure(t, env.Random.ZeroSeed)
}

func TestAllowLogging(t *testing.T) {
	env := environment.NewEnvironment(environment.MainEmulation, counter{}, nil)
	test.ExpectSuccess(t, env.AllowLogging())
	env = environment.NewEnvironment("thumbnail", counter{}, nil)
	test.ExpectFailure(t, env.AllowLogging())
}
