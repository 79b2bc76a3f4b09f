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

package wavwriter

import (
	"math"
	"os"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui/sound"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/youpy/go-wav"
)

// Sentinal errors.
const (
	WavWriterError = "wavwriter: %v"
)

// SamplesPerTick is the number of samples produced for every timer tick.
const SamplesPerTick = sound.SampleRate / timers.TickRate

const bitDepth = 16

// WavWriter implements the scheduler.Recorder interface.
type WavWriter struct {
	filename string
	src      sound.Source
	buffer   []wav.Sample
	beeping  bool
}

// New is the preferred method of initialisation for the WavWriter type. The
// source is used for the sound of the beeper.
func New(filename string, src sound.Source) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf(WavWriterError, "no filename")
	}

	aw := &WavWriter{
		filename: filename,
		src:      src,
		buffer:   make([]wav.Sample, 0),
	}

	return aw, nil
}

// Tick implements the scheduler.Recorder interface.
func (aw *WavWriter) Tick(beeping bool) error {
	if beeping && !aw.beeping {
		aw.src.Rewind()
	}
	aw.beeping = beeping

	for range SamplesPerTick {
		w := wav.Sample{}
		if beeping {
			v := aw.src.Sample()
			w.Values[0] = int(math.Round(float64(v) * math.MaxInt16))
		}
		aw.buffer = append(aw.buffer, w)
	}

	return nil
}

// Samples returns the number of samples recorded so far.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer)
}

// End writes the recorded samples to the file.
func (aw *WavWriter) End() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf(WavWriterError, err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 1, sound.SampleRate, bitDepth)
	if enc == nil {
		return curated.Errorf(WavWriterError, "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.WriteSamples(aw.buffer)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	return nil
}
