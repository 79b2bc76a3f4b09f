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

package sound

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinal errors.
const (
	LoadError       = "sound: %s: %v"
	UnsupportedFile = "sound: unsupported file type: %s"
)

const logTag = "sound"

// NewSource returns the Source for the beeper. If filename is empty the
// source is a Square wave at the default Frequency and Volume. Otherwise the
// file is loaded with Load().
func NewSource(filename string) (Source, error) {
	if filename == "" {
		return NewSquare(Frequency, Volume), nil
	}
	return Load(filename)
}

// Load a WAV or MP3 file as a Loop. The type of file is decided by the file
// extension. Only the first channel of multi-channel files is used.
func Load(filename string) (*Loop, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(LoadError, filename, err)
	}
	defer f.Close()

	var data []float32
	var rate float64

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		data, rate, err = decodeWAV(f)
	case ".mp3":
		data, rate, err = decodeMP3(f)
	default:
		return nil, curated.Errorf(UnsupportedFile, filename)
	}
	if err != nil {
		return nil, curated.Errorf(LoadError, filename, err)
	}

	logger.Logf(logger.Allow, logTag, "loaded %d samples at %.0fHz from %s", len(data), rate, filename)

	return NewLoop(resample(data, rate)), nil
}

func decodeWAV(r io.ReadSeeker) ([]float32, float64, error) {
	dec := wav.NewDecoder(r)
	if dec == nil || !dec.IsValidFile() {
		return nil, 0, errors.New("not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		chans = 1
	}

	// the float buffer is already normalised to the range -1 to 1
	floatBuf := buf.AsFloat32Buffer()
	data := make([]float32, 0, len(floatBuf.Data)/chans)
	for i := 0; i < len(floatBuf.Data); i += chans {
		data = append(data, floatBuf.Data[i])
	}

	return data, float64(dec.SampleRate), nil
}

// the mp3 stream is always 16bit little-endian with two channels, even if
// the source is mono
func decodeMP3(r io.Reader) ([]float32, float64, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, 0, err
	}

	var data []float32
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+3 < n; i += 4 {
			v := int16(binary.LittleEndian.Uint16(chunk[i:]))
			data = append(data, float32(v)/32768)
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return nil, 0, err
		}
	}

	return data, float64(dec.SampleRate()), nil
}
