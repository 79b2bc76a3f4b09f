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

package userinput

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// HandleInput is the target of a handled keyboard event. The input.State
// type implements this interface.
type HandleInput interface {
	Set(key uint8, pressed bool) error
}

// Sentinal errors.
const (
	UnknownKeymapEntry = "userinput: keymap: unknown key name: %s"
	InvalidKeymapEntry = "userinput: keymap: invalid entry: %s"
)

// QuitKey is the canonical name of the key that ends the emulation.
const QuitKey = "Escape"

// Keymap maps canonical host key names to CHIP-8 keys.
type Keymap map[string]uint8

// DefaultKeymap is the conventional layout: the left hand side of a QWERTY
// keyboard mapped onto the 4x4 hexadecimal keypad.
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
func DefaultKeymap() Keymap {
	return Keymap{
		"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
		"Q": 0x4, "W": 0x5, "E": 0x6, "R": 0xd,
		"A": 0x7, "S": 0x8, "D": 0x9, "F": 0xe,
		"Z": 0xa, "X": 0x0, "C": 0xb, "V": 0xf,
	}
}

func (km Keymap) String() string {
	s := strings.Builder{}
	for _, k := range slices.Sorted(maps.Keys(km)) {
		s.WriteString(fmt.Sprintf("%s=%X ", k, km[k]))
	}
	return strings.TrimSpace(s.String())
}

// Remap changes the keymap according to a specification string of the form
// "Key=hex; Key=hex". Key names are not case sensitive. Any existing mapping
// to the same CHIP-8 key is removed.
func (km Keymap) Remap(spec string) error {
	for entry := range strings.SplitSeq(spec, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			return curated.Errorf(InvalidKeymapEntry, entry)
		}

		name = CanonicalKey(strings.TrimSpace(name))
		if name == "" || name == QuitKey {
			return curated.Errorf(UnknownKeymapEntry, entry)
		}

		var key uint8
		_, err := fmt.Sscanf(strings.TrimSpace(value), "%x", &key)
		if err != nil || key > 0xf {
			return curated.Errorf(InvalidKeymapEntry, entry)
		}

		for n, k := range km {
			if k == key {
				delete(km, n)
			}
		}
		km[name] = key
	}
	return nil
}

// CanonicalKey converts a key name to the canonical form used by the Keymap
// type. Single character names are upper cased. Returns the empty string if
// the name is not recognised.
func CanonicalKey(name string) string {
	switch len(name) {
	case 0:
		return ""
	case 1:
		return strings.ToUpper(name)
	}
	if strings.EqualFold(name, QuitKey) || strings.EqualFold(name, "esc") {
		return QuitKey
	}
	return ""
}
