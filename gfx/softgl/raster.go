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
package softgl

import (
	"math"

	"github.com/jetsetilly/glmodes/geometry"
	"github.com/jetsetilly/glmodes/gfx"
)

type windowVertex struct {
	x, y  float32
	color [3]float32
}

// window transforms the vertex to window coordinates. the origin of window
// coordinates is the bottom left of the framebuffer. returns false if the
// vertex is behind the eye.
func (ctx *Context) window(v geometry.Vertex) (windowVertex, bool) {
	clip := gfx.Transform(ctx.projection, v.Position)
	if clip[3] <= 0 {
		return windowVertex{}, false
	}

	b := ctx.img.Bounds()
	return windowVertex{
		x:     (clip[0]/clip[3] + 1) * 0.5 * float32(b.Dx()),
		y:     (clip[1]/clip[3] + 1) * 0.5 * float32(b.Dy()),
		color: v.Color,
	}, true
}

func edge(a, b windowVertex, x, y float32) float32 {
	return (b.x-a.x)*(y-a.y) - (b.y-a.y)*(x-a.x)
}

func channel(v float32) uint8 {
	return uint8(math.Round(float64(min(max(v, 0), 1)) * 255))
}

// rasterise draws the triangle into the framebuffer. a pixel is drawn if its
// centre is inside the triangle or on one of its edges.
func (ctx *Context) rasterise(tri geometry.Triangle) {
	var w [geometry.NumVertices]windowVertex
	for i := range tri {
		var ok bool
		w[i], ok = ctx.window(tri[i])
		if !ok {
			return
		}
	}

	area := edge(w[0], w[1], w[2].x, w[2].y)
	if area == 0 {
		return
	}

	b := ctx.img.Bounds()
	minX := max(int(math.Floor(float64(min(w[0].x, w[1].x, w[2].x)))), 0)
	maxX := min(int(math.Ceil(float64(max(w[0].x, w[1].x, w[2].x)))), b.Dx()-1)
	minY := max(int(math.Floor(float64(min(w[0].y, w[1].y, w[2].y)))), 0)
	maxY := min(int(math.Ceil(float64(max(w[0].y, w[1].y, w[2].y)))), b.Dy()-1)

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5

			e0 := edge(w[1], w[2], px, py) / area
			e1 := edge(w[2], w[0], px, py) / area
			e2 := edge(w[0], w[1], px, py) / area
			if e0 < 0 || e1 < 0 || e2 < 0 {
				continue
			}

			var c [3]uint8
			for i := range c {
				c[i] = channel(e0*w[0].color[i] + e1*w[1].color[i] + e2*w[2].color[i])
			}

			// framebuffer origin is bottom left, image origin is top left
			o := ctx.img.PixOffset(x, b.Dy()-1-y)
			ctx.img.Pix[o] = c[0]
			ctx.img.Pix[o+1] = c[1]
			ctx.img.Pix[o+2] = c[2]
			ctx.img.Pix[o+3] = 255
		}
	}
}
