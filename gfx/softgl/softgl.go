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
	"fmt"
	"image"
	"image/color"

	"github.com/jetsetilly/glmodes/geometry"
	"github.com/jetsetilly/glmodes/gfx"
)

// Stats records the number of calls of interest made to the Context.
type Stats struct {
	Clears          int
	DrawCalls       int
	ListsReleased   int
	BuffersReleased int
}

// Context implements the gfx.Graphics interface in software.
type Context struct {
	img        *image.RGBA
	projection [16]float32
	clearColor color.RGBA

	// current colour. initial value is white
	color [3]float32

	// immediate mode state
	begun     bool
	primitive uint32
	pending   []geometry.Vertex

	// display lists. compiling is the name of the list being compiled or zero
	lists     map[uint32][]func()
	nextList  uint32
	compiling uint32
	compiled  []func()

	// buffer objects
	buffers     map[uint32][]float32
	nextBuffer  uint32
	arrayBuffer uint32

	// client state
	vertexArray bool
	colorArray  bool
	vertexPtr   pointer
	colorPtr    pointer

	// allocLimit of zero means there is no limit
	allocLimit int
	allocated  int

	// triangles drawn since the most recent clear of the colour buffer
	frame []geometry.Triangle

	errs []error

	Stats Stats
}

// NewContext is the preferred method of initialisation for the Context type.
func NewContext(width, height int) *Context {
	ctx := &Context{
		clearColor: color.RGBA{A: 255},
		color:      [3]float32{1, 1, 1},
		lists:      make(map[uint32][]func()),
		buffers:    make(map[uint32][]float32),
	}
	ctx.SetProjection(identity)
	ctx.SetViewport(int32(width), int32(height))
	return ctx
}

var identity = [16]float32{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// SetProjection implements the gfx.Viewer interface.
func (ctx *Context) SetProjection(projection [16]float32) {
	ctx.projection = projection
}

// SetViewport implements the gfx.Viewer interface. The framebuffer is
// reallocated to the size of the viewport and cleared.
func (ctx *Context) SetViewport(width, height int32) {
	ctx.img = image.NewRGBA(image.Rect(0, 0, int(max(width, 1)), int(max(height, 1))))
	ctx.fill()
}

// Snapshot implements the gfx.Snapshotter interface. The returned image is a
// copy of the framebuffer.
func (ctx *Context) Snapshot() (*image.RGBA, error) {
	img := image.NewRGBA(ctx.img.Bounds())
	copy(img.Pix, ctx.img.Pix)
	return img, nil
}

// Frame returns the triangles drawn since the most recent clear of the colour
// buffer.
func (ctx *Context) Frame() []geometry.Triangle {
	f := make([]geometry.Triangle, len(ctx.frame))
	copy(f, ctx.frame)
	return f
}

// Errors returns all errors recorded since the Context was created.
func (ctx *Context) Errors() []error {
	return ctx.errs
}

// SetAllocationLimit limits the total number of display lists and buffer
// objects that can be allocated. A value of zero means there is no limit.
func (ctx *Context) SetAllocationLimit(limit int) {
	ctx.allocLimit = limit
}

// LiveLists returns the number of display lists that have been allocated and
// not yet released.
func (ctx *Context) LiveLists() int {
	return len(ctx.lists)
}

// LiveBuffers returns the number of buffer objects that have been allocated and
// not yet released.
func (ctx *Context) LiveBuffers() int {
	return len(ctx.buffers)
}

func (ctx *Context) fault(format string, args ...any) {
	ctx.errs = append(ctx.errs, fmt.Errorf("softgl: %s", fmt.Sprintf(format, args...)))
}

func (ctx *Context) allocate() bool {
	if ctx.allocLimit > 0 && ctx.allocated >= ctx.allocLimit {
		ctx.fault("out of memory")
		return false
	}
	ctx.allocated++
	return true
}

// exec runs the command or, if a display list is being compiled, adds it to
// the list.
func (ctx *Context) exec(cmd func()) {
	if ctx.compiling != 0 {
		ctx.compiled = append(ctx.compiled, cmd)
		return
	}
	cmd()
}

func (ctx *Context) fill() {
	for i := 0; i < len(ctx.img.Pix); i += 4 {
		ctx.img.Pix[i] = ctx.clearColor.R
		ctx.img.Pix[i+1] = ctx.clearColor.G
		ctx.img.Pix[i+2] = ctx.clearColor.B
		ctx.img.Pix[i+3] = ctx.clearColor.A
	}
}

// Clear implements the gfx.Graphics interface.
func (ctx *Context) Clear(mask uint32) {
	ctx.exec(func() {
		ctx.Stats.Clears++
		if mask&gfx.COLOR_BUFFER_BIT == gfx.COLOR_BUFFER_BIT {
			ctx.fill()
			ctx.frame = ctx.frame[:0]
		}
	})
}

// Begin implements the gfx.Graphics interface.
func (ctx *Context) Begin(mode uint32) {
	ctx.exec(func() {
		if ctx.begun {
			ctx.fault("Begin() called twice without End()")
			return
		}
		if mode != gfx.TRIANGLES {
			ctx.fault("unsupported primitive (%#04x)", mode)
			return
		}
		ctx.begun = true
		ctx.primitive = mode
		ctx.pending = ctx.pending[:0]
	})
}

// End implements the gfx.Graphics interface.
func (ctx *Context) End() {
	ctx.exec(func() {
		if !ctx.begun {
			ctx.fault("End() called without Begin()")
			return
		}
		ctx.begun = false
		ctx.Stats.DrawCalls++
		ctx.emit(ctx.pending)
		ctx.pending = ctx.pending[:0]
	})
}

// Color3f implements the gfx.Graphics interface.
func (ctx *Context) Color3f(red, green, blue float32) {
	ctx.exec(func() {
		ctx.color = [3]float32{red, green, blue}
	})
}

// Vertex3f implements the gfx.Graphics interface.
func (ctx *Context) Vertex3f(x, y, z float32) {
	ctx.exec(func() {
		if !ctx.begun {
			ctx.fault("Vertex3f() called outside of Begin()/End()")
			return
		}
		ctx.pending = append(ctx.pending, geometry.Vertex{
			Position: [3]float32{x, y, z},
			Color:    ctx.color,
		})
	})
}

// emit groups vertices into triangles, records them as part of the current
// frame and rasterises them. any vertices left over are ignored.
func (ctx *Context) emit(vertices []geometry.Vertex) {
	for i := 0; i+geometry.NumVertices <= len(vertices); i += geometry.NumVertices {
		var tri geometry.Triangle
		copy(tri[:], vertices[i:i+geometry.NumVertices])
		ctx.frame = append(ctx.frame, tri)
		ctx.rasterise(tri)
	}
}
