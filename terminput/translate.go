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
package terminput

import (
	"github.com/jetsetilly/glmodes/userinput"
)

const asciiESC = 0x1b

// Translate a sequence of bytes read from the terminal into userinput events.
// The terminal does not report key releases so every key press is followed
// immediately by a release.
//
// An ESC byte followed by further bytes is the start of an escape sequence
// (the cursor keys for example) and the remainder of the sequence is ignored.
func Translate(b []byte) []userinput.Event {
	var events []userinput.Event

	press := func(key string) {
		events = append(events,
			userinput.EventKeyboard{Key: key, Down: true},
			userinput.EventKeyboard{Key: key},
		)
	}

	for i, c := range b {
		switch c {
		case asciiESC:
			if i == len(b)-1 {
				press(userinput.KeyEscape)
			}
			return events
		case '1', '2', '3', '4':
			press(string(c))
		}
	}

	return events
}
