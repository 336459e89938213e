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
package gfx_test

import (
	"testing"

	"github.com/jetsetilly/glmodes/gfx"
	"github.com/jetsetilly/glmodes/test"
)

func TestPerspective(t *testing.T) {
	// a field of view of 90 degrees gives a focal length of one
	m := gfx.Perspective(90, 1, 1, 100)
	test.ExpectApproximate(t, m[0], 1.0, 0.0001)
	test.ExpectApproximate(t, m[5], 1.0, 0.0001)
	test.ExpectEquality(t, m[11], float32(-1))
	test.ExpectEquality(t, m[15], float32(0))

	// aspect ratio scales the horizontal axis only
	m = gfx.Perspective(90, 2, 1, 100)
	test.ExpectApproximate(t, m[0], 0.5, 0.0001)
	test.ExpectApproximate(t, m[5], 1.0, 0.0001)
}

func TestTransform(t *testing.T) {
	m := gfx.Perspective(90, 1, 1, 100)

	// a point on the near plane is at the near end of the depth range
	c := gfx.Transform(m, [3]float32{0.5, -0.5, -1})
	test.ExpectApproximate(t, c[0]/c[3], 0.5, 0.0001)
	test.ExpectApproximate(t, c[1]/c[3], -0.5, 0.0001)
	test.ExpectApproximate(t, c[2]/c[3], -1.0, 0.0001)
	test.ExpectEquality(t, c[3], float32(1))
}
