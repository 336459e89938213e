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

import "image"

// OpenGL enumerations used by the Graphics interface.
const (
	TRIANGLES = 0x0004

	COLOR_BUFFER_BIT = 0x00004000
	DEPTH_BUFFER_BIT = 0x00000100

	COMPILE = 0x1300

	VERTEX_ARRAY = 0x8074
	COLOR_ARRAY  = 0x8076

	ARRAY_BUFFER = 0x8892
	STATIC_DRAW  = 0x88E4
)

// Graphics is the subset of the fixed-function OpenGL API used to draw the
// triangle. Method names follow the OpenGL function names.
type Graphics interface {
	Clear(mask uint32)

	// immediate mode
	Begin(mode uint32)
	End()
	Color3f(red, green, blue float32)
	Vertex3f(x, y, z float32)

	// display lists. a return value of zero from GenLists indicates that no
	// list could be allocated
	GenLists(rng int32) uint32
	NewList(list uint32, mode uint32)
	EndList()
	CallList(list uint32)
	DeleteLists(list uint32, rng int32)

	// client side arrays
	EnableClientState(array uint32)
	DisableClientState(array uint32)

	// VertexPointer and ColorPointer take tightly packed float32 data. a nil
	// data slice means offset zero into the buffer bound to ARRAY_BUFFER
	VertexPointer(size int32, data []float32)
	ColorPointer(size int32, data []float32)

	DrawArrays(mode uint32, first int32, count int32)

	// buffer objects. a return value of zero from GenBuffer indicates that no
	// buffer could be allocated
	GenBuffer() uint32
	BindBuffer(target uint32, buffer uint32)
	BufferData(target uint32, data []float32, usage uint32)
	DeleteBuffer(buffer uint32)
}

// Viewer is implemented by graphics contexts that accept a projection matrix
// and a viewport.
type Viewer interface {
	// projection is a column-major 4x4 matrix
	SetProjection(projection [16]float32)
	SetViewport(width, height int32)
}

// Snapshotter is implemented by graphics contexts that can read back the
// current contents of the framebuffer. The image has its origin at the top
// left.
type Snapshotter interface {
	Snapshot() (*image.RGBA, error)
}
