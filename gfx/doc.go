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
// Package gfx describes the part of the fixed-function OpenGL API that is
// needed to draw the triangle in each of the drawing modes.
//
// The Graphics interface is implemented by the gl21 package, which forwards
// every call to a real OpenGL 2.1 context, and by the softgl package, which is
// a software implementation used for headless verification and for testing.
//
// Enumerations in this package have the same numeric values as the OpenGL
// enumerations of the same name. Implementations can forward them unchanged.
package gfx
