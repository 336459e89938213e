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
package controller

import (
	"github.com/jetsetilly/glmodes/drawmode"
	"github.com/jetsetilly/glmodes/geometry"
	"github.com/jetsetilly/glmodes/gfx"
	"github.com/jetsetilly/glmodes/logger"
)

// RenderFrame clears the colour and depth buffers and draws the triangle using
// the current drawing mode.
//
// If the resources required by the current mode are not available, because
// Initialize() has not succeeded or Shutdown() has been called, the triangle is
// drawn in immediate mode.
func (ctrl *Controller) RenderFrame() {
	ctrl.gl.Clear(gfx.COLOR_BUFFER_BIT | gfx.DEPTH_BUFFER_BIT)

	mode := ctrl.mode
	if !ctrl.available(mode) {
		if !ctrl.warned {
			ctrl.warned = true
			logger.Logf(logger.Allow, "controller", "resources for %s are not available", mode)
		}
		mode = drawmode.Immediate
	}

	switch mode {
	case drawmode.Immediate:
		ctrl.immediate()

	case drawmode.DisplayList:
		ctrl.gl.CallList(ctrl.displayList)

	case drawmode.VertexArray:
		ctrl.gl.EnableClientState(gfx.VERTEX_ARRAY)
		ctrl.gl.EnableClientState(gfx.COLOR_ARRAY)

		ctrl.gl.VertexPointer(geometry.PositionDimensions, ctrl.positions)
		ctrl.gl.ColorPointer(geometry.ColorDimensions, ctrl.colors)
		ctrl.gl.DrawArrays(gfx.TRIANGLES, 0, geometry.NumVertices)

		ctrl.gl.DisableClientState(gfx.VERTEX_ARRAY)
		ctrl.gl.DisableClientState(gfx.COLOR_ARRAY)

	case drawmode.VertexBufferObject:
		ctrl.gl.BindBuffer(gfx.ARRAY_BUFFER, ctrl.vboVertex)
		ctrl.gl.VertexPointer(geometry.PositionDimensions, nil)
		ctrl.gl.BindBuffer(gfx.ARRAY_BUFFER, ctrl.vboColor)
		ctrl.gl.ColorPointer(geometry.ColorDimensions, nil)

		ctrl.gl.EnableClientState(gfx.VERTEX_ARRAY)
		ctrl.gl.EnableClientState(gfx.COLOR_ARRAY)
		ctrl.gl.DrawArrays(gfx.TRIANGLES, 0, geometry.NumVertices)
		ctrl.gl.DisableClientState(gfx.VERTEX_ARRAY)
		ctrl.gl.DisableClientState(gfx.COLOR_ARRAY)

		ctrl.gl.BindBuffer(gfx.ARRAY_BUFFER, 0)
	}
}

// available returns true if the resources required by the drawing mode have
// been allocated.
func (ctrl *Controller) available(mode drawmode.Mode) bool {
	switch mode {
	case drawmode.DisplayList:
		return ctrl.displayList != 0
	case drawmode.VertexArray:
		return ctrl.positions != nil && ctrl.colors != nil
	case drawmode.VertexBufferObject:
		return ctrl.vboVertex != 0 && ctrl.vboColor != 0
	}
	return true
}

// immediate issues one call per vertex and per colour.
func (ctrl *Controller) immediate() {
	ctrl.gl.Begin(gfx.TRIANGLES)
	for _, v := range geometry.Reference() {
		ctrl.gl.Color3f(v.Color[0], v.Color[1], v.Color[2])
		ctrl.gl.Vertex3f(v.Position[0], v.Position[1], v.Position[2])
	}
	ctrl.gl.End()
}
