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
// Package softgl is a software implementation of the gfx.Graphics interface.
// It is used by the VERIFY mode and by tests that need to examine the output
// of the drawing modes without a real OpenGL context.
//
// Triangles are transformed by the projection matrix (the modelview matrix is
// always the identity) and rasterised with per-vertex colour interpolation.
// There is no clipping: a triangle with a vertex behind the eye is discarded.
// There is no depth test and no depth buffer; clearing the depth buffer is
// accepted and ignored.
//
// Unlike a real OpenGL implementation, the Context is strict about the release
// of resources. Deleting a display list or buffer object that was never
// allocated (including the zero name) is recorded as an error. Errors are
// available through the Errors() function.
//
// The number of resources that can be allocated can be limited with
// SetAllocationLimit(). This is useful to simulate a context that runs out of
// memory part way through initialisation.
package softgl
