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

// KeyEdges converts key levels into key presses. The zero value is ready to
// use.
type KeyEdges struct {
	down map[string]bool
}

// Press returns true if the keyboard event is the transition of a key from up
// to down.
func (k *KeyEdges) Press(ev EventKeyboard) bool {
	if k.down == nil {
		k.down = make(map[string]bool)
	}

	if ev.Repeat {
		return false
	}

	wasDown := k.down[ev.Key]
	k.down[ev.Key] = ev.Down

	return ev.Down && !wasDown
}

// Reset forgets the state of all keys. This is useful when the window has
// lost focus and the key up events will not be delivered.
func (k *KeyEdges) Reset() {
	clear(k.down)
}
