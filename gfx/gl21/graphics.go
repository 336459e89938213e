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
package gl21

import (
	"github.com/go-gl/gl/v2.1/gl"
)

const bytesPerFloat = 4

func (ctx *Context) Clear(mask uint32) {
	gl.Clear(mask)
}

func (ctx *Context) Begin(mode uint32) {
	gl.Begin(mode)
}

func (ctx *Context) End() {
	gl.End()
}

func (ctx *Context) Color3f(red, green, blue float32) {
	gl.Color3f(red, green, blue)
}

func (ctx *Context) Vertex3f(x, y, z float32) {
	gl.Vertex3f(x, y, z)
}

func (ctx *Context) GenLists(rng int32) uint32 {
	return gl.GenLists(rng)
}

func (ctx *Context) NewList(list uint32, mode uint32) {
	gl.NewList(list, mode)
}

func (ctx *Context) EndList() {
	gl.EndList()
}

func (ctx *Context) CallList(list uint32) {
	gl.CallList(list)
}

func (ctx *Context) DeleteLists(list uint32, rng int32) {
	gl.DeleteLists(list, rng)
}

func (ctx *Context) EnableClientState(array uint32) {
	gl.EnableClientState(array)
}

func (ctx *Context) DisableClientState(array uint32) {
	gl.DisableClientState(array)
}

// VertexPointer with nil data points at offset zero of the bound buffer.
//
// OpenGL keeps the address of non nil data and reads from it during
// DrawArrays(). The caller must keep the slice referenced and unchanged until
// the last draw call that uses it. The Go garbage collector does not move heap
// allocations so the address remains valid for as long as the slice is
// reachable. The controller satisfies this by holding its position and colour
// slices for its entire lifetime.
func (ctx *Context) VertexPointer(size int32, data []float32) {
	if data == nil {
		gl.VertexPointer(size, gl.FLOAT, 0, gl.PtrOffset(0))
		return
	}
	gl.VertexPointer(size, gl.FLOAT, 0, gl.Ptr(data))
}

// ColorPointer follows the same rules as VertexPointer.
func (ctx *Context) ColorPointer(size int32, data []float32) {
	if data == nil {
		gl.ColorPointer(size, gl.FLOAT, 0, gl.PtrOffset(0))
		return
	}
	gl.ColorPointer(size, gl.FLOAT, 0, gl.Ptr(data))
}

func (ctx *Context) DrawArrays(mode uint32, first int32, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (ctx *Context) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (ctx *Context) BindBuffer(target uint32, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (ctx *Context) BufferData(target uint32, data []float32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*bytesPerFloat, gl.Ptr(data), usage)
}

func (ctx *Context) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}
