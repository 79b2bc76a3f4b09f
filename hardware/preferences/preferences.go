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

package preferences

import (
	"fmt"

	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// Default values for the hardware preferences.
const (
	DefaultStackLimit = 16
	DefaultRandSeed   = false
	DefaultHertz      = 500.0
)

// Preferences for the emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the maximum number of return addresses on the call stack. a call when
	// the stack is full is an error
	StackLimit prefs.Int

	// random numbers produced by the CXNN instruction use a zero seed and are
	// therefore predictable
	RandSeed prefs.Bool

	// the default number of instructions executed per second. the value can
	// be overridden on the command line
	Hertz prefs.Float
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("hardware.hertz :: %s\nhardware.randSeed :: %s\nhardware.stackLimit :: %s\n",
			p.Hertz.String(), p.RandSeed.String(), p.StackLimit.String())
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file, which is
// created if it doesn't exist.
func NewPreferences() (*Preferences, error) {
	p := NewDefaultPreferences()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.stackLimit", &p.StackLimit)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randSeed", &p.RandSeed)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.hertz", &p.Hertz)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// NewDefaultPreferences returns preferences with default values that are not
// backed by the preferences file. Load() and Save() have no effect.
func NewDefaultPreferences() *Preferences {
	p := &Preferences{}

	// stack limit can never be less than one
	p.StackLimit.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("stack limit must be at least one")
		}
		return nil
	})

	// the same limits as the -hertz flag
	p.Hertz.SetHookPre(func(v prefs.Value) error {
		if h := v.(float64); h <= 0 || h >= 100000 {
			return fmt.Errorf("hertz must be between 0 and 100000 (exclusive)")
		}
		return nil
	})

	p.SetDefaults()

	return p
}

// SetDefaults reverts all values to their default.
func (p *Preferences) SetDefaults() {
	// the hooks accept the default values so it's safe to ignore errors
	_ = p.StackLimit.Set(DefaultStackLimit)
	_ = p.RandSeed.Set(DefaultRandSeed)
	_ = p.Hertz.Set(DefaultHertz)
}

// Load current values from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current values to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
