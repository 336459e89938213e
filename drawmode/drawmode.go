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
// Package drawmode enumerates the techniques that can be used to draw the
// triangle.
package drawmode

import "fmt"

// Mode is a drawing technique.
type Mode int

// List of valid Mode values. The zero value is Immediate, which is the initial
// drawing mode of the program.
const (
	Immediate Mode = iota
	DisplayList
	VertexArray
	VertexBufferObject
)

// NumModes is the number of valid Mode values.
const NumModes = 4

// List contains every mode in key order.
var List = [NumModes]Mode{Immediate, DisplayList, VertexArray, VertexBufferObject}

func (m Mode) String() string {
	switch m {
	case Immediate:
		return "immediate mode"
	case DisplayList:
		return "display lists"
	case VertexArray:
		return "vertex arrays"
	case VertexBufferObject:
		return "vertex buffer objects"
	}
	return fmt.Sprintf("unknown drawing mode (%d)", int(m))
}

// Valid returns false if the Mode value is not one of the enumerated modes.
func (m Mode) Valid() bool {
	return m >= Immediate && m <= VertexBufferObject
}

// Notice is the message printed when the mode becomes active.
func (m Mode) Notice() string {
	if m == Immediate {
		return fmt.Sprintf("Now drawing in %s", m)
	}
	return fmt.Sprintf("Now drawing using %s", m)
}

// Key returns the name of the key that selects the mode.
func (m Mode) Key() string {
	if !m.Valid() {
		return ""
	}
	return fmt.Sprintf("%d", int(m)+1)
}

// FromKey returns the mode selected by the named key. The boolean return
// value is false if the key does not select a mode.
func FromKey(key string) (Mode, bool) {
	for _, m := range List {
		if m.Key() == key {
			return m, true
		}
	}
	return Immediate, false
}
