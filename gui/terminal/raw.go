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

//go:build !windows

package terminal

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// rawMode records the original attributes of the terminal so that they can
// be restored
type rawMode struct {
	f        *os.File
	original unix.Termios
}

// put the terminal into non-canonical mode with no echo and no signals. the
// read timeout is a tenth of a second
func enterRawMode(f *os.File) (*rawMode, error) {
	raw := &rawMode{f: f}

	err := termios.Tcgetattr(f.Fd(), &raw.original)
	if err != nil {
		return nil, err
	}

	attr := raw.original
	attr.Lflag &^= unix.ICANON | unix.ECHO | unix.ISIG
	attr.Cc[unix.VMIN] = 0
	attr.Cc[unix.VTIME] = 1

	err = termios.Tcsetattr(f.Fd(), termios.TCSANOW, &attr)
	if err != nil {
		return nil, err
	}

	return raw, nil
}

func (raw *rawMode) restore() error {
	return termios.Tcsetattr(raw.f.Fd(), termios.TCSANOW, &raw.original)
}
