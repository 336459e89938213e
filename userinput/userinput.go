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
package userinput

import (
	"github.com/jetsetilly/glmodes/drawmode"
	"github.com/jetsetilly/glmodes/logger"
)

// HandleInput is implemented by the type that receives drawing mode changes.
type HandleInput interface {
	SetMode(mode drawmode.Mode) bool
}

// Handler translates user input events into actions.
type Handler struct {
	edges KeyEdges

	// is true if the most recent event was a request to end the program
	Quit bool
}

// HandleUserInput translates the event. Returns true if the event was
// consumed.
func (h *Handler) HandleUserInput(ev Event, handle HandleInput) bool {
	switch ev := ev.(type) {
	case EventQuit:
		h.Quit = true
		return true

	case EventFocusLost:
		h.edges.Reset()
		return false

	case EventKeyboard:
		if !h.edges.Press(ev) {
			return false
		}

		if ev.Key == KeyEscape {
			h.Quit = true
			return true
		}

		if m, ok := drawmode.FromKey(ev.Key); ok {
			handle.SetMode(m)
			return true
		}

	default:
		logger.Logf(logger.Allow, "userinput", "unhandled event type (%T)", ev)
	}

	return false
}
