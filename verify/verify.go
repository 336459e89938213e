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
// Package verify renders the triangle in every drawing mode with the software
// graphics context and compares the results. It does not require a display.
package verify

import (
	"fmt"
	"io"

	"github.com/jetsetilly/glmodes/controller"
	"github.com/jetsetilly/glmodes/digest"
	"github.com/jetsetilly/glmodes/drawmode"
	"github.com/jetsetilly/glmodes/geometry"
	"github.com/jetsetilly/glmodes/gfx"
	"github.com/jetsetilly/glmodes/gfx/softgl"
	"github.com/jetsetilly/glmodes/logger"
)

// Result of rendering a single frame in one drawing mode.
type Result struct {
	Mode drawmode.Mode

	// the triangles drawn in the frame
	Triangles []geometry.Triangle

	// fingerprint of the framebuffer
	Hash string
}

// Correct returns true if the result is the reference triangle and nothing else.
func (r Result) Correct() bool {
	return len(r.Triangles) == 1 && r.Triangles[0] == geometry.Reference()
}

// Report is the outcome of a call to Run().
type Report struct {
	Results []Result

	// fingerprint of the frames from every mode in sequence
	Sequence string
}

// Equivalent returns true if every result is correct and every framebuffer is
// identical.
func (rep Report) Equivalent() bool {
	for _, r := range rep.Results {
		if !r.Correct() || r.Hash != rep.Results[0].Hash {
			return false
		}
	}
	return len(rep.Results) == drawmode.NumModes
}

// Write the report to io.Writer.
func (rep Report) Write(output io.Writer) {
	for _, r := range rep.Results {
		status := "ok"
		if !r.Correct() {
			status = "incorrect geometry"
		} else if r.Hash != rep.Results[0].Hash {
			status = "pixels differ"
		}
		fmt.Fprintf(output, "%-22s %s %s\n", r.Mode, r.Hash, status)
	}
	if rep.Equivalent() {
		fmt.Fprintf(output, "all drawing modes are equivalent\n")
	} else {
		fmt.Fprintf(output, "drawing modes are not equivalent\n")
	}
}

// Run renders one frame in every drawing mode. An error is returned if the
// controller could not be initialised or if the graphics context recorded an
// error.
func Run(width, height int) (Report, error) {
	ctx := softgl.NewContext(width, height)
	ctx.SetProjection(gfx.Perspective(gfx.FieldOfView, float32(width)/float32(height), gfx.NearPlane, gfx.FarPlane))

	ctrl := controller.NewController(ctx, nil)
	err := ctrl.Initialize()
	if err != nil {
		ctrl.Shutdown()
		return Report{}, fmt.Errorf("verify: %w", err)
	}

	var rep Report
	seq := digest.NewVideo()

	for _, m := range drawmode.List {
		ctrl.SetMode(m)
		ctrl.RenderFrame()

		img, err := ctx.Snapshot()
		if err != nil {
			ctrl.Shutdown()
			return Report{}, fmt.Errorf("verify: %w", err)
		}
		seq.AddFrame(img)

		r := Result{
			Mode:      m,
			Triangles: ctx.Frame(),
			Hash:      digest.Image(img),
		}
		rep.Results = append(rep.Results, r)

		logger.Logf(logger.Allow, "verify", "%s: %s", m, r.Hash)
	}

	ctrl.Shutdown()
	rep.Sequence = seq.Hash()

	if errs := ctx.Errors(); len(errs) > 0 {
		return rep, fmt.Errorf("verify: %w", errs[0])
	}

	return rep, nil
}
