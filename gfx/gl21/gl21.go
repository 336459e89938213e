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
// Package gl21 implements the gfx interfaces with OpenGL 2.1. A current OpenGL
// context must exist on the calling thread before Init() is called, and every
// function must be called from that thread.
package gl21

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/jetsetilly/glmodes/logger"
)

// Context implements gfx.Graphics, gfx.Viewer and gfx.Snapshotter.
type Context struct {
	width  int32
	height int32
}

// NewContext is the preferred method of initialisation for the Context type.
func NewContext() *Context {
	return &Context{}
}

// Init loads the OpenGL function pointers for the current context.
func (ctx *Context) Init() error {
	err := gl.Init()
	if err != nil {
		return fmt.Errorf("gl21: %w", err)
	}

	logger.Logf(logger.Allow, "gl21", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "gl21", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "gl21", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	return nil
}

// SetProjection implements the gfx.Viewer interface.
func (ctx *Context) SetProjection(projection [16]float32) {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&projection[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()
}

// SetViewport implements the gfx.Viewer interface.
func (ctx *Context) SetViewport(width, height int32) {
	ctx.width = width
	ctx.height = height
	gl.Viewport(0, 0, width, height)
}

// Snapshot implements the gfx.Snapshotter interface. The image is the size of
// the most recent viewport.
func (ctx *Context) Snapshot() (*image.RGBA, error) {
	if ctx.width <= 0 || ctx.height <= 0 {
		return nil, fmt.Errorf("gl21: no viewport for snapshot")
	}

	w := int(ctx.width)
	h := int(ctx.height)
	pix := make([]uint8, w*h*4)

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, ctx.width, ctx.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	if e := gl.GetError(); e != gl.NO_ERROR {
		return nil, fmt.Errorf("gl21: read pixels: error %#04x", e)
	}

	// opengl origin is at the bottom left
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := pix[(h-1-y)*w*4 : (h-y)*w*4]
		copy(img.Pix[y*img.Stride:], src)
	}

	return img, nil
}
