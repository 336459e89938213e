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
// Package geometry defines the triangle drawn by every drawing mode. The
// triangle is fixed and never changes for the lifetime of the program.
package geometry

// Dimensions of the per-vertex attributes.
const (
	PositionDimensions = 3
	ColorDimensions    = 3
)

// Vertex is a single corner of the triangle.
type Vertex struct {
	Position [PositionDimensions]float32
	Color    [ColorDimensions]float32
}

// NumVertices is the number of vertices in the triangle.
const NumVertices = 3

// Triangle is three vertices, in drawing order.
type Triangle [NumVertices]Vertex

// the triangle drawn by all drawing modes
var reference = Triangle{
	{Position: [3]float32{-0.5, -0.5, -1.0}, Color: [3]float32{1, 0, 0}},
	{Position: [3]float32{0.5, -0.5, -1.0}, Color: [3]float32{0, 1, 0}},
	{Position: [3]float32{0.5, 0.5, -1.0}, Color: [3]float32{0, 0, 1}},
}

// Reference returns the triangle drawn by all drawing modes. The corners are
// red, green and blue. The returned value is a copy and changing it has no
// effect on later calls.
func Reference() Triangle {
	return reference
}

// Positions returns the vertex positions as a flat slice suitable for vertex
// arrays and buffer objects. A new slice is returned on every call.
func (tri Triangle) Positions() []float32 {
	p := make([]float32, 0, NumVertices*PositionDimensions)
	for _, v := range tri {
		p = append(p, v.Position[:]...)
	}
	return p
}

// Colors returns the vertex colours as a flat slice. A new slice is returned
// on every call.
func (tri Triangle) Colors() []float32 {
	c := make([]float32, 0, NumVertices*ColorDimensions)
	for _, v := range tri {
		c = append(c, v.Color[:]...)
	}
	return c
}
