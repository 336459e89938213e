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
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/glmodes/drawmode"
	"github.com/jetsetilly/glmodes/geometry"
	"github.com/jetsetilly/glmodes/gfx"
	"github.com/jetsetilly/glmodes/logger"
)

// Sentinel errors returned by Initialize().
var (
	ErrAllocation  = errors.New("resource allocation failed")
	ErrInitialised = errors.New("already initialised")
)

// Controller selects the drawing mode and draws the triangle.
type Controller struct {
	gl      gfx.Graphics
	notices io.Writer

	mode drawmode.Mode

	// client side arrays. the graphics context keeps the address of these
	// slices between the pointer calls and the draw call. they are never
	// reassigned or released after Initialize()
	positions []float32
	colors    []float32

	// resource handles. a value of zero means the resource is not allocated
	displayList uint32
	vboVertex   uint32
	vboColor    uint32

	initialised bool
	shutdown    bool

	// whether the missing resource warning has been logged by RenderFrame()
	warned bool
}

// NewController is the preferred method of initialisation for the Controller
// type. Notices of drawing mode changes are written to the notices io.Writer,
// which can be nil.
func NewController(gl gfx.Graphics, notices io.Writer) *Controller {
	return &Controller{
		gl:      gl,
		notices: notices,
		mode:    drawmode.Immediate,
	}
}

func (ctrl *Controller) notice() {
	logger.Log(logger.Allow, "controller", ctrl.mode.Notice())
	if ctrl.notices != nil {
		io.WriteString(ctrl.notices, ctrl.mode.Notice())
		io.WriteString(ctrl.notices, "\n")
	}
}

// Initialize compiles the triangle into a display list, prepares the client
// side arrays and uploads them into buffer objects.
//
// If a resource cannot be allocated ErrAllocation is returned. Resources
// allocated before the failure are released by Shutdown().
func (ctrl *Controller) Initialize() error {
	if ctrl.initialised || ctrl.shutdown {
		return fmt.Errorf("controller: %w", ErrInitialised)
	}
	ctrl.initialised = true

	ctrl.notice()

	ctrl.displayList = ctrl.gl.GenLists(1)
	if ctrl.displayList == 0 {
		return fmt.Errorf("controller: display list: %w", ErrAllocation)
	}
	ctrl.gl.NewList(ctrl.displayList, gfx.COMPILE)
	ctrl.immediate()
	ctrl.gl.EndList()

	// the vertex array requires no further initialisation
	ctrl.positions = geometry.Reference().Positions()
	ctrl.colors = geometry.Reference().Colors()

	var err error

	ctrl.vboVertex, err = ctrl.upload(ctrl.positions)
	if err != nil {
		return fmt.Errorf("controller: vertex buffer: %w", err)
	}

	ctrl.vboColor, err = ctrl.upload(ctrl.colors)
	if err != nil {
		return fmt.Errorf("controller: color buffer: %w", err)
	}

	logger.Logf(logger.Allow, "controller", "display list %d, buffers %d and %d",
		ctrl.displayList, ctrl.vboVertex, ctrl.vboColor)

	return nil
}

// upload data into a new buffer object. the ARRAY_BUFFER target is unbound
// afterwards.
func (ctrl *Controller) upload(data []float32) (uint32, error) {
	buffer := ctrl.gl.GenBuffer()
	if buffer == 0 {
		return 0, ErrAllocation
	}
	ctrl.gl.BindBuffer(gfx.ARRAY_BUFFER, buffer)
	ctrl.gl.BufferData(gfx.ARRAY_BUFFER, data, gfx.STATIC_DRAW)
	ctrl.gl.BindBuffer(gfx.ARRAY_BUFFER, 0)
	return buffer, nil
}

// Mode returns the current drawing mode.
func (ctrl *Controller) Mode() drawmode.Mode {
	return ctrl.mode
}

// SetMode changes the drawing mode. Returns true if the mode has changed. A
// notice is written only if the mode has changed.
func (ctrl *Controller) SetMode(mode drawmode.Mode) bool {
	if !mode.Valid() {
		logger.Logf(logger.Allow, "controller", "ignoring invalid drawing mode (%d)", int(mode))
		return false
	}
	if mode == ctrl.mode {
		return false
	}
	ctrl.mode = mode
	ctrl.notice()
	return true
}

// Shutdown releases the display list and buffer objects. Resources that were
// never allocated are skipped. Calling Shutdown() more than once has no
// effect.
func (ctrl *Controller) Shutdown() {
	if ctrl.shutdown {
		return
	}
	ctrl.shutdown = true

	if ctrl.displayList != 0 {
		ctrl.gl.DeleteLists(ctrl.displayList, 1)
		ctrl.displayList = 0
	}
	if ctrl.vboVertex != 0 {
		ctrl.gl.DeleteBuffer(ctrl.vboVertex)
		ctrl.vboVertex = 0
	}
	if ctrl.vboColor != 0 {
		ctrl.gl.DeleteBuffer(ctrl.vboColor)
		ctrl.vboColor = 0
	}

	logger.Log(logger.Allow, "controller", "resources released")
}
