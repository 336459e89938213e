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

// Event is the type of all user input events.
type Event interface{}

// EventQuit is sent when the platform has requested that the program end. For
// example, the window has been closed.
type EventQuit struct{}

// EventFocusLost is sent when the window loses keyboard focus. Keys that are
// released while the window does not have focus are never reported so all keys
// are considered to be up after this event.
type EventFocusLost struct{}

// EventKeyboard is a single change in the state of a key.
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
}

// Names of keys with special meaning.
const (
	KeyEscape = "Escape"
)
