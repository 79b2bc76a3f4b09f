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

//go:build headless

package main

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/headless"
	"github.com/jetsetilly/gopher8/gui/terminal"
)

// newHost creates the host for the named backend. the backend name must have
// been normalised with gui.NormaliseBackend(). the SDL and ebiten backends
// are not available in headless builds
func newHost(backend string, cfg gui.Config) (gui.Host, error) {
	switch backend {
	case gui.BackendTerminal:
		return terminal.NewHost(cfg)
	case gui.BackendHeadless:
		return headless.NewHost(cfg), nil
	case gui.BackendSDL, gui.BackendEbiten:
		return nil, curated.Errorf(gui.HostError, backend, "not available in headless build")
	}
	return nil, curated.Errorf(gui.UnknownBackend, backend)
}
