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
// Package frameloop drives the Controller once per frame. The loop runs on the
// calling goroutine, which must be the goroutine that owns the graphics
// context.
//
// Each frame the loop: polls the platform and the auxiliary event channel for
// events; passes the events to the input handler; renders the frame with the
// Controller; draws the optional overlay; swaps the buffers; and waits on the
// frame limiter.
package frameloop

import (
	"github.com/jetsetilly/glmodes/assert"
	"github.com/jetsetilly/glmodes/controller"
	"github.com/jetsetilly/glmodes/digest"
	"github.com/jetsetilly/glmodes/drawmode"
	"github.com/jetsetilly/glmodes/gfx"
	"github.com/jetsetilly/glmodes/limiter"
	"github.com/jetsetilly/glmodes/logger"
	"github.com/jetsetilly/glmodes/userinput"
)

// Platform is the windowing layer hosting the graphics context.
type Platform interface {
	PollEvents() []userinput.Event
	Swap()
}

// Overlay is drawn over the triangle every frame. Mode changes requested by
// the overlay should be made through the userinput.HandleInput interface.
type Overlay interface {
	Render(handle userinput.HandleInput, mode drawmode.Mode, fps float32)
}

// Loop is the frame loop. Fields other than those set by NewLoop() can be
// changed before Run() is called.
type Loop struct {
	ctrl *controller.Controller
	plt  Platform
	lmtr *limiter.Limiter

	// auxiliary source of events. the channel is only ever read from
	Aux <-chan userinput.Event

	// optional overlay
	Overlay Overlay

	// if Snapshot is not nil then the first frame in every newly selected
	// drawing mode is read back and the digest of the image is logged
	Snapshot gfx.Snapshotter

	handler userinput.Handler

	// the goroutine that created the loop. Run() must be called from the same
	// goroutine
	owner uint64

	// the drawing mode of the most recent digest
	digested    drawmode.Mode
	hasDigested bool

	// number of frames rendered by Run()
	Frames int
}

// NewLoop is the preferred method of initialisation for the Loop type. The
// limiter can be nil, in which case frames are not limited.
func NewLoop(ctrl *controller.Controller, plt Platform, lmtr *limiter.Limiter) *Loop {
	return &Loop{
		ctrl:  ctrl,
		plt:   plt,
		lmtr:  lmtr,
		owner: assert.GoroutineID(),
	}
}

// Run the frame loop until a quit is requested. The Controller is shut down
// before Run() returns. Run() panics if it is called from a goroutine other
// than the one that called NewLoop().
func (l *Loop) Run() {
	assert.SameGoroutine(l.owner, "frameloop")
	defer l.ctrl.Shutdown()

	logger.Log(logger.Allow, "frameloop", "started")

	for !l.handler.Quit {
		l.input()
		if l.handler.Quit {
			break
		}

		l.ctrl.RenderFrame()
		l.digest()

		if l.Overlay != nil {
			l.Overlay.Render(l.ctrl, l.ctrl.Mode(), l.measured())
		}

		l.plt.Swap()
		l.Frames++

		if l.lmtr != nil {
			l.lmtr.CheckFrame()
			l.lmtr.MeasureActual()
		}
	}

	logger.Logf(logger.Allow, "frameloop", "ended after %d frames", l.Frames)
}

// input handles all events that are pending on the platform and the auxiliary
// channel. The auxiliary channel is never waited on.
func (l *Loop) input() {
	for _, ev := range l.plt.PollEvents() {
		l.handler.HandleUserInput(ev, l.ctrl)
	}

	if l.Aux == nil {
		return
	}

	for {
		select {
		case ev, ok := <-l.Aux:
			if !ok {
				l.Aux = nil
				return
			}
			l.handler.HandleUserInput(ev, l.ctrl)
		default:
			return
		}
	}
}

// digest of the most recent frame if the drawing mode has changed since the
// last digest.
func (l *Loop) digest() {
	if l.Snapshot == nil {
		return
	}

	mode := l.ctrl.Mode()
	if l.hasDigested && l.digested == mode {
		return
	}
	l.digested = mode
	l.hasDigested = true

	img, err := l.Snapshot.Snapshot()
	if err != nil {
		logger.Log(logger.Allow, "frameloop", err)
		return
	}

	logger.Logf(logger.Allow, "digest", "%s: %s", mode, digest.Image(img))
}

func (l *Loop) measured() float32 {
	if l.lmtr == nil {
		return 0
	}
	return l.lmtr.Measured.Load().(float32)
}
