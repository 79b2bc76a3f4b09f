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

package gui

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/version"
)

// Sentinal errors.
const (
	InvalidConfig  = "host config: %s"
	UnknownBackend = "host config: unknown backend: %s"
)

// List of backend names.
const (
	BackendSDL      = "sdl"
	BackendEbiten   = "ebiten"
	BackendTerminal = "terminal"
	BackendHeadless = "headless"
)

// DefaultBackend is used when no backend has been specified.
const DefaultBackend = BackendSDL

// Backends is the list of all possible backend names. Not all backends are
// available in every build.
var Backends = []string{BackendSDL, BackendEbiten, BackendTerminal, BackendHeadless}

// Scale is the default number of host pixels per CHIP-8 pixel.
const Scale = 10

// The limit (exclusive) of the window dimensions.
const MaxDimension = 10000

// Config is used when creating a Host.
type Config struct {
	Title string

	// window dimensions in host pixels
	Width  int
	Height int

	// sample file to use for the beeper. if empty the built in square wave is
	// used
	BeepFile string

	// mapping of host key names to keypad keys
	Keymap userinput.Keymap
}

// NewConfig is the preferred method of initialisation for the Config type.
func NewConfig() Config {
	return Config{
		Title:  version.ApplicationName,
		Width:  display.Width * Scale,
		Height: display.Height * Scale,
		Keymap: userinput.DefaultKeymap(),
	}
}

func (cfg Config) String() string {
	return fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)
}

// Validate returns an InvalidConfig error if any of the config values are
// out of range.
func (cfg Config) Validate() error {
	if cfg.Width <= 0 || cfg.Width >= MaxDimension {
		return curated.Errorf(InvalidConfig, fmt.Sprintf("width must be between 0 and %d (exclusive)", MaxDimension))
	}
	if cfg.Height <= 0 || cfg.Height >= MaxDimension {
		return curated.Errorf(InvalidConfig, fmt.Sprintf("height must be between 0 and %d (exclusive)", MaxDimension))
	}
	if cfg.Keymap == nil {
		return curated.Errorf(InvalidConfig, "no keymap")
	}
	return nil
}

// NormaliseBackend returns the backend name in the form used by the constants
// of this package. An empty name is the DefaultBackend.
func NormaliseBackend(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultBackend, nil
	}
	for _, b := range Backends {
		if name == b {
			return b, nil
		}
	}
	return "", curated.Errorf(UnknownBackend, name)
}
