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
package gfx

import "math"

// Perspective returns the column-major projection matrix for the field of view
// (in degrees), aspect ratio and clipping planes. The matrix is the same as
// the one produced by gluPerspective().
func Perspective(fov, aspect, near, far float32) [16]float32 {
	f := float32(1.0 / math.Tan(float64(fov)*math.Pi/360.0))

	var m [16]float32
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = (2 * far * near) / (near - far)
	return m
}

// Transform multiplies the position by the column-major matrix. The position
// has an implied w of one. The result is in clip coordinates.
func Transform(m [16]float32, pos [3]float32) [4]float32 {
	var r [4]float32
	for row := range 4 {
		r[row] = m[row]*pos[0] + m[4+row]*pos[1] + m[8+row]*pos[2] + m[12+row]
	}
	return r
}

// Default projection values.
const (
	FieldOfView = 70.0
	NearPlane   = 0.001
	FarPlane    = 100.0
)
