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
// Package controller owns the current drawing mode and the graphics resources
// needed to draw the triangle in each of the modes.
//
// The Controller is created with NewController() and must be initialised with
// Initialize() before the display list and buffer object modes can draw
// anything. Resources are released with Shutdown(). Shutdown() is safe to
// call after a failed Initialize() and only releases resources that were
// allocated.
//
// The Controller is not safe for concurrent use. It should be used only by the
// goroutine that owns the graphics context.
package controller
