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
// Package platform contains the windowing layers that can host the OpenGL
// context. Each sub-package creates a fixed size window with an OpenGL 2.1
// context and translates window events into userinput events.
//
// The platforms are not safe for concurrent use and must be created and used
// from the main thread. Callers should lock the main goroutine to the OS
// thread before creating a platform.
package platform

// WindowTitle is the title of the window created by every platform.
const WindowTitle = "Advanced OpenGL Rendering"
