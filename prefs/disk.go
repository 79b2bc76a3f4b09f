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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/jetsetilly/gopher8/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written to the head of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// keyValueSep separates the key and the value on every line of the file.
const keyValueSep = " :: "

// Sentinal errors.
const (
	DiskKeyExists  = "prefs: key %q already added to disk"
	DiskNotPrefs   = "prefs: %s is not a preferences file"
	DiskBadValue   = "prefs: %s: %v"
	DiskFileAccess = "prefs: %v"
)

// Disk represents preference values as stored on disk. Values are added to the
// disk with Add() and will be written to the file with Save().
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(DiskFileAccess, "no path for preferences file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	s := strings.Builder{}
	for _, k := range slices.Sorted(maps.Keys(dsk.entries)) {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keyValueSep, dsk.entries[k]))
	}
	return s.String()
}

// Add preference value to the disk. The key must not have been added before.
// If the key has a value in the current command line group then the value is
// set immediately.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DiskKeyExists, key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(DiskBadValue, key, err)
		}
	}

	return nil
}

// Reset all entries on the disk to their zero value.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, k := range slices.Sorted(maps.Keys(dsk.entries)) {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(DiskBadValue, k, err)
		}
	}
	return nil
}

// read the preferences file into a map. a file that doesn't exist is not an
// error and results in an empty map.
func (dsk *Disk) read() (map[string]string, error) {
	values := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return values, nil
		}
		return nil, curated.Errorf(DiskFileAccess, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		if err := scanner.Err(); err != nil {
			return nil, curated.Errorf(DiskFileAccess, err)
		}
		return nil, curated.Errorf(DiskNotPrefs, dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), keyValueSep)
		if !ok {
			continue
		}
		values[k] = v
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(DiskFileAccess, err)
	}

	return values, nil
}

// Save current preference values to disk. Values in the file that have not
// been added to this disk instance are preserved.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	values, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskFileAccess, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range slices.Sorted(maps.Keys(values)) {
		fmt.Fprintf(w, "%s%s%s\n", k, keyValueSep, values[k])
	}

	if err := w.Flush(); err != nil {
		_ = f.Close()
		return curated.Errorf(DiskFileAccess, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(DiskFileAccess, err)
	}

	return nil
}

// Load preference values from disk. Keys in the file that have not been added
// to the disk are ignored. If saveOnFirstUse is true and the file does not
// exist then the current values are saved.
//
// Values in the current command line group take precedence over values in
// the file.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	if saveOnFirstUse {
		if _, err := os.Stat(dsk.path); errors.Is(err, fs.ErrNotExist) {
			return dsk.Save()
		}
	}

	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	values, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := values[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskBadValue, k, err)
			}
		}
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskBadValue, k, err)
			}
		}
	}

	return nil
}
