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
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
)

// Video is an implementation of the gui.Host interface with an embedded host
// for convenience. It generates a SHA-1 value of the image every time the
// frame changes.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Video struct {
	gui.Host

	digest [sha1.Size]byte

	// the pixels of the frame are stored after the previous digest value
	pixels []byte

	// the last frame added to the digest
	last   display.Frame
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type. The
// host argument can be nil, in which case frames are not presented anywhere.
func NewVideo(host gui.Host) *Video {
	return &Video{
		Host:   host,
		pixels: make([]byte, sha1.Size+display.Width*display.Height),
	}
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	clear(dig.last[:])
	dig.frames = 0
}

// Frames returns the number of distinct frames that have been added to the
// digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// Present implements the gui.Display interface.
func (dig *Video) Present(frame *display.Frame) error {
	if dig.frames == 0 || *frame != dig.last {
		if err := dig.add(frame); err != nil {
			return err
		}
	}

	if dig.Host == nil {
		return nil
	}
	return dig.Host.Present(frame)
}

func (dig *Video) add(frame *display.Frame) error {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf(VideoDigest, "digest error during new frame")
	}

	i := len(dig.digest)
	for y := range display.Height {
		for x := range display.Width {
			if frame[y][x] {
				dig.pixels[i] = 1
			} else {
				dig.pixels[i] = 0
			}
			i++
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.last = *frame
	dig.frames++

	return nil
}
