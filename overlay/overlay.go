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
// Package overlay draws a Dear ImGui window over the triangle. The window
// lists the drawing modes and the measured frame rate. Selecting a drawing
// mode in the window has the same effect as pressing the corresponding key.
//
// The overlay uses the OpenGL 2.1 fixed-function pipeline and must only be
// used from the thread that owns the OpenGL context.
package overlay

import (
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/glmodes/drawmode"
	"github.com/jetsetilly/glmodes/userinput"
)

// Platform provides the window information required by the overlay.
type Platform interface {
	DisplaySize() [2]float32
	FramebufferSize() [2]float32
	MouseState() (float32, float32, [3]bool)
}

// Overlay implements the frameloop.Overlay interface.
type Overlay struct {
	context *imgui.Context
	io      imgui.IO
	plt     Platform
	rnd     *renderer

	// time of previous frame
	last time.Time
}

// NewOverlay is the preferred method of initialisation for the Overlay type.
// The OpenGL context must be current.
func NewOverlay(plt Platform) (*Overlay, error) {
	ovl := &Overlay{
		context: imgui.CreateContext(nil),
		io:      imgui.CurrentIO(),
		plt:     plt,
	}

	// no ini file. the window position is never saved
	ovl.io.SetIniFilename("")

	var err error
	ovl.rnd, err = newRenderer()
	if err != nil {
		ovl.context.Destroy()
		return nil, err
	}

	return ovl, nil
}

// Destroy the overlay and release the font texture.
func (ovl *Overlay) Destroy() {
	ovl.rnd.destroy()
	ovl.context.Destroy()
}

// Render implements the frameloop.Overlay interface.
func (ovl *Overlay) Render(handle userinput.HandleInput, mode drawmode.Mode, fps float32) {
	ovl.newFrame()
	imgui.NewFrame()

	if m, ok := draw(mode, fps); ok {
		handle.SetMode(m)
	}

	imgui.Render()
	ovl.rnd.render(ovl.plt.DisplaySize(), ovl.plt.FramebufferSize())
}

// newFrame forwards the current platform state to imgui.
func (ovl *Overlay) newFrame() {
	sz := ovl.plt.DisplaySize()
	ovl.io.SetDisplaySize(imgui.Vec2{X: sz[0], Y: sz[1]})

	now := time.Now()
	if !ovl.last.IsZero() {
		ovl.io.SetDeltaTime(float32(now.Sub(ovl.last).Seconds()))
	}
	ovl.last = now

	x, y, buttons := ovl.plt.MouseState()
	ovl.io.SetMousePosition(imgui.Vec2{X: x, Y: y})
	for i, down := range buttons {
		ovl.io.SetMouseButtonDown(i, down)
	}
}
