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
	"github.com/jetsetilly/glmodes/geometry"
	"github.com/jetsetilly/glmodes/gfx"
)

// pointer describes the source of a client array. if data is nil then the
// source is the buffer object
type pointer struct {
	size   int32
	data   []float32
	buffer uint32
}

// GenBuffer implements the gfx.Graphics interface. Returns zero if the buffer
// could not be allocated.
func (ctx *Context) GenBuffer() uint32 {
	if !ctx.allocate() {
		return 0
	}
	ctx.nextBuffer++
	ctx.buffers[ctx.nextBuffer] = nil
	return ctx.nextBuffer
}

// BindBuffer implements the gfx.Graphics interface. Binding zero unbinds the
// target.
func (ctx *Context) BindBuffer(target uint32, buffer uint32) {
	if target != gfx.ARRAY_BUFFER {
		ctx.fault("unsupported buffer target (%#04x)", target)
		return
	}
	if buffer != 0 {
		if _, ok := ctx.buffers[buffer]; !ok {
			ctx.fault("binding unallocated buffer (%d)", buffer)
			return
		}
	}
	ctx.arrayBuffer = buffer
}

// BufferData implements the gfx.Graphics interface. The data is copied.
func (ctx *Context) BufferData(target uint32, data []float32, usage uint32) {
	if target != gfx.ARRAY_BUFFER {
		ctx.fault("unsupported buffer target (%#04x)", target)
		return
	}
	if ctx.arrayBuffer == 0 {
		ctx.fault("BufferData() with no buffer bound")
		return
	}
	b := make([]float32, len(data))
	copy(b, data)
	ctx.buffers[ctx.arrayBuffer] = b
}

// DeleteBuffer implements the gfx.Graphics interface.
func (ctx *Context) DeleteBuffer(buffer uint32) {
	if _, ok := ctx.buffers[buffer]; !ok {
		ctx.fault("releasing unallocated buffer (%d)", buffer)
		return
	}
	delete(ctx.buffers, buffer)
	if ctx.arrayBuffer == buffer {
		ctx.arrayBuffer = 0
	}
	ctx.Stats.BuffersReleased++
}

// EnableClientState implements the gfx.Graphics interface.
func (ctx *Context) EnableClientState(array uint32) {
	ctx.clientState(array, true)
}

// DisableClientState implements the gfx.Graphics interface.
func (ctx *Context) DisableClientState(array uint32) {
	ctx.clientState(array, false)
}

func (ctx *Context) clientState(array uint32, enable bool) {
	switch array {
	case gfx.VERTEX_ARRAY:
		ctx.vertexArray = enable
	case gfx.COLOR_ARRAY:
		ctx.colorArray = enable
	default:
		ctx.fault("unsupported client state (%#04x)", array)
	}
}

// VertexPointer implements the gfx.Graphics interface.
func (ctx *Context) VertexPointer(size int32, data []float32) {
	if size < 2 || size > 4 {
		ctx.fault("invalid vertex pointer size (%d)", size)
		return
	}
	ctx.vertexPtr = ctx.pointer(size, data)
}

// ColorPointer implements the gfx.Graphics interface.
func (ctx *Context) ColorPointer(size int32, data []float32) {
	if size < 3 || size > 4 {
		ctx.fault("invalid color pointer size (%d)", size)
		return
	}
	ctx.colorPtr = ctx.pointer(size, data)
}

func (ctx *Context) pointer(size int32, data []float32) pointer {
	if data == nil && ctx.arrayBuffer == 0 {
		ctx.fault("array pointer is null and there is no buffer bound")
	}
	return pointer{
		size:   size,
		data:   data,
		buffer: ctx.arrayBuffer,
	}
}

// resolve returns the data referred to by the pointer.
func (ctx *Context) resolve(p pointer) []float32 {
	if p.data != nil {
		return p.data
	}
	return ctx.buffers[p.buffer]
}

// DrawArrays implements the gfx.Graphics interface. The arrays are read when
// the function is called, even when a display list is being compiled.
func (ctx *Context) DrawArrays(mode uint32, first int32, count int32) {
	if mode != gfx.TRIANGLES {
		ctx.fault("unsupported primitive (%#04x)", mode)
		return
	}
	if !ctx.vertexArray {
		ctx.exec(func() {
			ctx.Stats.DrawCalls++
		})
		return
	}

	positions := ctx.resolve(ctx.vertexPtr)
	colors := ctx.resolve(ctx.colorPtr)

	vertices := make([]geometry.Vertex, 0, count)
	for i := first; i < first+count; i++ {
		var v geometry.Vertex

		idx := int(i * ctx.vertexPtr.size)
		if idx+int(ctx.vertexPtr.size) > len(positions) {
			ctx.fault("vertex array overrun (vertex %d)", i)
			return
		}
		copy(v.Position[:], positions[idx:idx+int(min(ctx.vertexPtr.size, 3))])

		if ctx.colorArray {
			idx := int(i * ctx.colorPtr.size)
			if idx+int(ctx.colorPtr.size) > len(colors) {
				ctx.fault("color array overrun (vertex %d)", i)
				return
			}
			copy(v.Color[:], colors[idx:idx+3])
		} else {
			v.Color = ctx.color
		}

		vertices = append(vertices, v)
	}

	ctx.exec(func() {
		ctx.Stats.DrawCalls++
		ctx.emit(vertices)
	})
}
