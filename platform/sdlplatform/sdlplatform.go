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
// Package sdlplatform creates the window and OpenGL context with SDL2.
package sdlplatform

import (
	"fmt"

	"github.com/jetsetilly/glmodes/logger"
	"github.com/jetsetilly/glmodes/platform"
	"github.com/jetsetilly/glmodes/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// list of swap interval values expected by sdl.GLSetSwapInterval()
const (
	syncImmediateUpdate     = 0
	syncWithVerticalRetrace = 1
)

// Platform is an SDL window with a current OpenGL 2.1 context.
type Platform struct {
	window    *sdl.Window
	glContext sdl.GLContext
}

// NewPlatform is the preferred method of initialisation for the Platform type.
// The window is not resizable.
func NewPlatform(width, height int32) (*Platform, error) {
	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &Platform{}

	plt.window, err = sdl.CreateWindow(platform.WindowTitle,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		width, height,
		sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	plt.glContext, err = plt.window.GLCreateContext()
	if err != nil {
		_ = plt.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = plt.window.GLMakeCurrent(plt.glContext)
	if err != nil {
		_ = plt.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	major, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	if err != nil {
		_ = plt.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	minor, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	if err != nil {
		_ = plt.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	logger.Logf(logger.Allow, "sdl", "using GL version %d.%d", major, minor)

	err = sdl.GLSetSwapInterval(syncWithVerticalRetrace)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %s", syncWithVerticalRetrace, err.Error())

		// not being able to synchronise with the monitor is not fatal. the
		// frame limiter will keep the frame rate reasonable
		_ = sdl.GLSetSwapInterval(syncImmediateUpdate)
	}

	return plt, nil
}

// Destroy cleans up the resources. The OpenGL context is no longer current
// after this function returns.
func (plt *Platform) Destroy() error {
	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}
	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			sdl.Quit()
			return fmt.Errorf("sdl: %w", err)
		}
		plt.window = nil
	}
	sdl.Quit()
	return nil
}

// PollEvents returns all pending window events translated into userinput
// events. Events with no meaning to the program are discarded.
func (plt *Platform) PollEvents() []userinput.Event {
	var events []userinput.Event

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			events = append(events, userinput.EventQuit{})

		case *sdl.WindowEvent:
			switch ev.Event {
			case sdl.WINDOWEVENT_CLOSE:
				events = append(events, userinput.EventQuit{})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				events = append(events, userinput.EventFocusLost{})
			}

		case *sdl.KeyboardEvent:
			key := translateKey(ev.Keysym.Sym)
			if key == "" {
				continue
			}
			events = append(events, userinput.EventKeyboard{
				Key:    key,
				Down:   ev.Type == sdl.KEYDOWN,
				Repeat: ev.Repeat != 0,
			})
		}
	}

	return events
}

// Swap the front and back buffers.
func (plt *Platform) Swap() {
	plt.window.GLSwap()
}

// DisplaySize returns the dimension of the window.
func (plt *Platform) DisplaySize() [2]float32 {
	w, h := plt.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

// FramebufferSize returns the dimension of the framebuffer.
func (plt *Platform) FramebufferSize() [2]float32 {
	w, h := plt.window.GLGetDrawableSize()
	return [2]float32{float32(w), float32(h)}
}

// MouseState returns the position of the mouse and the state of the left,
// right and middle buttons.
func (plt *Platform) MouseState() (float32, float32, [3]bool) {
	x, y, state := sdl.GetMouseState()
	var buttons [3]bool
	for i, button := range []uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE} {
		buttons[i] = state&sdl.Button(button) != 0
	}
	return float32(x), float32(y), buttons
}
