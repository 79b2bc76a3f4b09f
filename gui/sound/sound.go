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
	"math"
)

// SampleRate is the rate at which all sources produce samples.
const SampleRate = 44100

// Frequency and Volume of the built in beep.
const (
	Frequency = 440.0
	Volume    = 0.25
)

// Source is an endless supply of mono samples in the range -1.0 to 1.0.
type Source interface {
	Sample() float32

	// Rewind the source so that the next sample is the first sample.
	Rewind()
}

// Square is a square wave Source.
type Square struct {
	volume float32

	// the number of samples in half a period of the wave
	half float64

	// position in the current period
	pos float64
}

// NewSquare is the preferred method of initialisation for the Square type.
func NewSquare(frequency float64, volume float32) *Square {
	return &Square{
		volume: volume,
		half:   SampleRate / frequency / 2,
	}
}

// Sample implements the Source interface.
func (sq *Square) Sample() float32 {
	v := sq.volume
	if sq.pos >= sq.half {
		v = -v
	}
	sq.pos++
	if sq.pos >= sq.half*2 {
		sq.pos -= sq.half * 2
	}
	return v
}

// Rewind implements the Source interface.
func (sq *Square) Rewind() {
	sq.pos = 0
}

// Loop is a Source that repeats a recorded sample. See Load().
type Loop struct {
	data []float32
	idx  int
}

// NewLoop is the preferred method of initialisation for the Loop type. The
// data must already be at SampleRate.
func NewLoop(data []float32) *Loop {
	return &Loop{data: data}
}

// Len returns the number of samples in one iteration of the loop.
func (lp *Loop) Len() int {
	return len(lp.data)
}

// Sample implements the Source interface.
func (lp *Loop) Sample() float32 {
	if len(lp.data) == 0 {
		return 0
	}
	v := lp.data[lp.idx]
	lp.idx++
	if lp.idx >= len(lp.data) {
		lp.idx = 0
	}
	return v
}

// Rewind implements the Source interface.
func (lp *Loop) Rewind() {
	lp.idx = 0
}

// Fill the buffer with samples from the source.
func Fill(src Source, buf []float32) {
	for i := range buf {
		buf[i] = src.Sample()
	}
}

// FillBytes fills the buffer with samples from the source encoded as 32bit
// little-endian floating point values. Any bytes at the end of the buffer
// that do not make up a whole sample are zeroed.
func FillBytes(src Source, buf []byte) {
	n := len(buf) / 4
	for i := range n {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(src.Sample()))
	}
	clear(buf[n*4:])
}

// resample data from one rate to SampleRate. nearest neighbour is good
// enough for a beep
func resample(data []float32, rate float64) []float32 {
	if rate == SampleRate || rate <= 0 || len(data) == 0 {
		return data
	}

	ratio := rate / SampleRate
	n := int(float64(len(data)) / ratio)
	out := make([]float32, n)
	for i := range out {
		j := int(float64(i) * ratio)
		if j >= len(data) {
			j = len(data) - 1
		}
		out[i] = data[j]
	}
	return out
}
