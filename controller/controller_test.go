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
package controller_test

import (
	"bytes"
	"errors"
	"runtime"
	"testing"

	"github.com/jetsetilly/glmodes/controller"
	"github.com/jetsetilly/glmodes/drawmode"
	"github.com/jetsetilly/glmodes/geometry"
	"github.com/jetsetilly/glmodes/gfx"
	"github.com/jetsetilly/glmodes/gfx/softgl"
	"github.com/jetsetilly/glmodes/test"
)

func newContext() *softgl.Context {
	ctx := softgl.NewContext(320, 180)
	ctx.SetProjection(gfx.Perspective(70, 320.0/180.0, 0.001, 100))
	return ctx
}

func TestInitialMode(t *testing.T) {
	ctrl := controller.NewController(newContext(), nil)
	test.ExpectEquality(t, ctrl.Mode(), drawmode.Immediate)
}

func TestModesAreEquivalent(t *testing.T) {
	ctx := newContext()
	ctrl := controller.NewController(ctx, nil)
	test.DemandSuccess(t, ctrl.Initialize())

	var reference []byte

	for _, m := range drawmode.List {
		ctrl.SetMode(m)
		test.ExpectEquality(t, ctrl.Mode(), m)

		ctrl.RenderFrame()

		f := ctx.Frame()
		test.DemandEquality(t, len(f), 1, m)
		test.ExpectEquality(t, f[0], geometry.Reference(), m)

		img, err := ctx.Snapshot()
		test.DemandSuccess(t, err)
		if reference == nil {
			reference = img.Pix
		} else {
			test.ExpectSuccess(t, bytes.Equal(reference, img.Pix), m)
		}
	}

	ctrl.Shutdown()
	test.ExpectEquality(t, len(ctx.Errors()), 0)
}

func TestSetModeIsIdempotent(t *testing.T) {
	notices := &test.CompareWriter{}
	ctrl := controller.NewController(newContext(), notices)
	test.DemandSuccess(t, ctrl.Initialize())

	// the initial notice
	test.ExpectEquality(t, notices.String(), "Now drawing in immediate mode\n")
	notices.Clear()

	test.ExpectSuccess(t, ctrl.SetMode(drawmode.DisplayList))
	test.ExpectFailure(t, ctrl.SetMode(drawmode.DisplayList))
	test.ExpectEquality(t, notices.String(), "Now drawing using display lists\n")

	// setting immediate mode when already in immediate mode
	notices.Clear()
	ctrl.SetMode(drawmode.Immediate)
	ctrl.SetMode(drawmode.Immediate)
	test.ExpectEquality(t, notices.Lines(), 1)
}

func TestInvalidMode(t *testing.T) {
	notices := &test.CompareWriter{}
	ctrl := controller.NewController(newContext(), notices)

	test.ExpectFailure(t, ctrl.SetMode(drawmode.Mode(drawmode.NumModes)))
	test.ExpectEquality(t, ctrl.Mode(), drawmode.Immediate)
	test.ExpectEquality(t, notices.String(), "")
}

func TestKeySequence(t *testing.T) {
	ctx := newContext()
	ctrl := controller.NewController(ctx, nil)
	test.DemandSuccess(t, ctrl.Initialize())
	defer ctrl.Shutdown()

	expected := []drawmode.Mode{
		drawmode.Immediate,
		drawmode.DisplayList,
		drawmode.VertexArray,
		drawmode.VertexBufferObject,
	}

	for i, k := range []string{"1", "2", "3", "4"} {
		m, ok := drawmode.FromKey(k)
		test.DemandSuccess(t, ok)
		ctrl.SetMode(m)
		test.ExpectEquality(t, ctrl.Mode(), expected[i])

		ctrl.RenderFrame()
		f := ctx.Frame()
		test.DemandEquality(t, len(f), 1)
		test.ExpectEquality(t, f[0], geometry.Reference())
	}
}

func TestInitializeTwice(t *testing.T) {
	ctrl := controller.NewController(newContext(), nil)
	test.DemandSuccess(t, ctrl.Initialize())
	err := ctrl.Initialize()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, controller.ErrInitialised))
}

func TestShutdown(t *testing.T) {
	ctx := newContext()
	ctrl := controller.NewController(ctx, nil)
	test.DemandSuccess(t, ctrl.Initialize())

	test.ExpectEquality(t, ctx.LiveLists(), 1)
	test.ExpectEquality(t, ctx.LiveBuffers(), 2)

	ctrl.Shutdown()
	test.ExpectEquality(t, ctx.LiveLists(), 0)
	test.ExpectEquality(t, ctx.LiveBuffers(), 0)

	// resources are released exactly once
	ctrl.Shutdown()
	test.ExpectEquality(t, ctx.Stats.ListsReleased, 1)
	test.ExpectEquality(t, ctx.Stats.BuffersReleased, 2)
	test.ExpectEquality(t, len(ctx.Errors()), 0)

	// cannot initialise after shutdown
	test.ExpectFailure(t, ctrl.Initialize())
}

func TestShutdownAfterFailedInitialize(t *testing.T) {
	// the number of resources that can be allocated before failure. the
	// controller allocates a display list and then two buffers
	for limit := range 3 {
		ctx := newContext()

		// use up one allocation so that a limit of zero can be tested
		ctx.SetAllocationLimit(limit + 1)
		ctx.GenBuffer()
		ctx.DeleteBuffer(1)

		ctrl := controller.NewController(ctx, nil)
		err := ctrl.Initialize()
		test.ExpectFailure(t, err, limit)
		test.ExpectSuccess(t, errors.Is(err, controller.ErrAllocation), limit)

		ctrl.Shutdown()
		test.ExpectEquality(t, ctx.LiveLists(), 0, limit)
		test.ExpectEquality(t, ctx.LiveBuffers(), 0, limit)

		// the only error should be the out of memory condition. no attempt
		// should have been made to release an unallocated resource
		test.ExpectEquality(t, len(ctx.Errors()), 1, limit)
	}
}

func TestRenderWithoutResources(t *testing.T) {
	ctx := newContext()
	ctrl := controller.NewController(ctx, nil)

	// without initialisation the resource backed modes fall back to immediate
	// mode
	for _, m := range drawmode.List {
		ctrl.SetMode(m)
		ctrl.RenderFrame()
		f := ctx.Frame()
		test.DemandEquality(t, len(f), 1, m)
		test.ExpectEquality(t, f[0], geometry.Reference(), m)
	}

	test.ExpectEquality(t, len(ctx.Errors()), 0)
}

// pointers records the client arrays given to the graphics context
type pointers struct {
	*softgl.Context
	vertex []*float32
	color  []*float32
}

func (p *pointers) VertexPointer(size int32, data []float32) {
	if data != nil {
		p.vertex = append(p.vertex, &data[0])
	}
	p.Context.VertexPointer(size, data)
}

func (p *pointers) ColorPointer(size int32, data []float32) {
	if data != nil {
		p.color = append(p.color, &data[0])
	}
	p.Context.ColorPointer(size, data)
}

func TestClientArraysAreStable(t *testing.T) {
	p := &pointers{Context: newContext()}
	ctrl := controller.NewController(p, nil)
	test.DemandSuccess(t, ctrl.Initialize())
	defer ctrl.Shutdown()

	ctrl.SetMode(drawmode.VertexArray)
	for range 3 {
		ctrl.RenderFrame()
		runtime.GC()
	}

	// the same arrays are used for every frame
	test.DemandEquality(t, len(p.vertex), 3)
	test.DemandEquality(t, len(p.color), 3)
	for i := 1; i < 3; i++ {
		test.ExpectEquality(t, p.vertex[i], p.vertex[0], i)
		test.ExpectEquality(t, p.color[i], p.color[0], i)
	}

	f := p.Frame()
	test.DemandEquality(t, len(f), 1)
	test.ExpectEquality(t, f[0], geometry.Reference())
	test.ExpectEquality(t, len(p.Errors()), 0)
}
