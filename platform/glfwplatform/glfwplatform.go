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
// Package glfwplatform creates the window and OpenGL context with GLFW.
package glfwplatform

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/jetsetilly/glmodes/logger"
	"github.com/jetsetilly/glmodes/platform"
	"github.com/jetsetilly/glmodes/userinput"
)

// Platform is a GLFW window with a current OpenGL 2.1 context.
type Platform struct {
	window *glfw.Window

	// events collected by the callbacks since the last call to PollEvents()
	pending []userinput.Event
}

// NewPlatform is the preferred method of initialisation for the Platform type.
// The window is not resizable.
func NewPlatform(width, height int32) (*Platform, error) {
	err := glfw.Init()
	if err != nil {
		return nil, fmt.Errorf("glfw: %w", err)
	}

	major, minor, rev := glfw.GetVersion()
	logger.Logf(logger.Allow, "glfw", "version %d.%d.%d", major, minor, rev)

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	plt := &Platform{}

	plt.window, err = glfw.CreateWindow(int(width), int(height), platform.WindowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw: %w", err)
	}

	plt.window.MakeContextCurrent()
	glfw.SwapInterval(1)

	plt.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		ev, ok := translateKey(key, action)
		if ok {
			plt.pending = append(plt.pending, ev)
		}
	})

	plt.window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			plt.pending = append(plt.pending, userinput.EventFocusLost{})
		}
	})

	plt.window.SetCloseCallback(func(_ *glfw.Window) {
		plt.pending = append(plt.pending, userinput.EventQuit{})
	})

	return plt, nil
}

// Destroy cleans up the resources.
func (plt *Platform) Destroy() error {
	if plt.window != nil {
		plt.window.Destroy()
		plt.window = nil
	}
	glfw.Terminate()
	return nil
}

// PollEvents returns all pending window events translated into userinput
// events.
func (plt *Platform) PollEvents() []userinput.Event {
	glfw.PollEvents()
	events := plt.pending
	plt.pending = nil
	return events
}

// Swap the front and back buffers.
func (plt *Platform) Swap() {
	plt.window.SwapBuffers()
}

// DisplaySize returns the dimension of the window.
func (plt *Platform) DisplaySize() [2]float32 {
	w, h := plt.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

// FramebufferSize returns the dimension of the framebuffer.
func (plt *Platform) FramebufferSize() [2]float32 {
	w, h := plt.window.GetFramebufferSize()
	return [2]float32{float32(w), float32(h)}
}

// MouseState returns the position of the mouse and the state of the left,
// right and middle buttons.
func (plt *Platform) MouseState() (float32, float32, [3]bool) {
	x, y := plt.window.GetCursorPos()
	var buttons [3]bool
	for i, button := range []glfw.MouseButton{glfw.MouseButtonLeft, glfw.MouseButtonRight, glfw.MouseButtonMiddle} {
		buttons[i] = plt.window.GetMouseButton(button) == glfw.Press
	}
	return float32(x), float32(y), buttons
}
