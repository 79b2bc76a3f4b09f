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

package environment

import (
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/random"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label used for the main emulation.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation. Particularly
// useful when there are several emulations running in the same program.
type Environment struct {
	Label Label

	// any randomisation required by the emulation should be retreived through
	// this structure
	Random *random.Random

	// the emulation preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The counter argument is used to seed the random number generator. If the
// hw argument is nil then the default preferences are used.
func NewEnvironment(label Label, counter random.Counter, hw *preferences.Preferences) *Environment {
	if hw == nil {
		hw = preferences.NewDefaultPreferences()
	}

	env := &Environment{
		Label:  label,
		Random: random.NewRandom(counter),
		Prefs:  hw,
	}

	env.Random.ZeroSeed = hw.RandSeed.Get().(bool)

	// the preference can be changed while the emulation is running
	hw.RandSeed.SetHookPost(func(v prefs.Value) error {
		env.Random.ZeroSeed = v.(bool)
		return nil
	})

	return env
}

// Normalise ensures the environment is in a known default state. Useful for
// regression testing where the initial state must be the same for every run
// of the emulation.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
	env.Random.ZeroSeed = true
}

// IsEmulation checks the emulation label and returns true if it matches.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is allowed to log.
func (env *Environment) AllowLogging() bool {
	return env.IsEmulation(MainEmulation)
}
