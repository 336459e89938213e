// This file is part of glmodes.
//
// glmodes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glmodes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glmodes.  If not, see <https://www.gnu.org/licenses/>.
package digest

import (
	"crypto/sha1"
	"fmt"
	"image"
)

// Digest implementations compute a fingerprint of rendered output.
type Digest interface {
	Hash() string
	ResetDigest()
}

// Video is an implementation of the Digest interface for a sequence of frames.
type Video struct {
	digest [sha1.Size]byte
	pixels []byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frames returns the number of frames added since the most recent reset.
func (dig *Video) Frames() int {
	return dig.frames
}

// AddFrame updates the digest with the pixels of the image.
func (dig *Video) AddFrame(img *image.RGBA) {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the pixel data
	l := len(dig.digest) + len(img.Pix)
	if cap(dig.pixels) < l {
		dig.pixels = make([]byte, l)
	}
	dig.pixels = dig.pixels[:l]

	n := copy(dig.pixels, dig.digest[:])
	copy(dig.pixels[n:], img.Pix)

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
}

// Image returns the fingerprint of a single image.
func Image(img *image.RGBA) string {
	return fmt.Sprintf("%x", sha1.Sum(img.Pix))
}
