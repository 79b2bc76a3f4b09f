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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
)

// the length of the buffer before we apply the hash
const audioBufferLength = 1024 + sha1.Size

// the audio data starts after the previous digest value
const audioBufferStart = sha1.Size

// Audio is an implementation of the scheduler.Recorder interface. It
// generates a SHA-1 value of the state of the beeper.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]uint8, audioBufferLength),
		bufferCt: audioBufferStart,
	}
}

// Hash implements digest.Digest interface. Audio that has not yet been
// flushed is included in the hash.
func (dig *Audio) Hash() string {
	if dig.bufferCt > audioBufferStart {
		_ = dig.Flush()
	}
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	dig.bufferCt = audioBufferStart
}

// Tick implements the scheduler.Recorder interface.
func (dig *Audio) Tick(beeping bool) error {
	if beeping {
		dig.buffer[dig.bufferCt] = 1
	} else {
		dig.buffer[dig.bufferCt] = 0
	}

	dig.bufferCt++

	if dig.bufferCt >= audioBufferLength {
		return dig.Flush()
	}

	return nil
}

// Flush adds the buffered audio to the digest.
func (dig *Audio) Flush() error {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	n := copy(dig.buffer, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf(AudioDigest, "digest error while flushing audio stream")
	}
	dig.bufferCt = audioBufferStart
	return nil
}
