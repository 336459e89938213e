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
package geometry_test

import (
	"testing"

	"github.com/jetsetilly/glmodes/geometry"
	"github.com/jetsetilly/glmodes/test"
)

func TestFlattening(t *testing.T) {
	p := geometry.Reference().Positions()
	test.ExpectEquality(t, len(p), geometry.NumVertices*geometry.PositionDimensions)
	test.ExpectEquality(t, p[0], float32(-0.5))
	test.ExpectEquality(t, p[3], float32(0.5))
	test.ExpectEquality(t, p[7], float32(0.5))
	test.ExpectEquality(t, p[8], float32(-1.0))

	c := geometry.Reference().Colors()
	test.ExpectEquality(t, len(c), geometry.NumVertices*geometry.ColorDimensions)
	test.ExpectEquality(t, c[0], float32(1))
	test.ExpectEquality(t, c[4], float32(1))
	test.ExpectEquality(t, c[8], float32(1))
	test.ExpectEquality(t, c[1]+c[2]+c[3]+c[5]+c[6]+c[7], float32(0))
}

func TestFlatteningIsCopy(t *testing.T) {
	p := geometry.Reference().Positions()
	p[0] = 100
	test.ExpectEquality(t, geometry.Reference()[0].Position[0], float32(-0.5))
}

func TestReferenceIsCopy(t *testing.T) {
	tri := geometry.Reference()
	tri[0].Color = [3]float32{1, 1, 1}
	tri[2].Position[2] = 5

	ref := geometry.Reference()
	test.ExpectEquality(t, ref[0].Color, [3]float32{1, 0, 0})
	test.ExpectEquality(t, ref[2].Position[2], float32(-1.0))
	test.ExpectInequality(t, tri, ref)
}
