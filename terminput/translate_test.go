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
package terminput_test

import (
	"testing"

	"github.com/jetsetilly/glmodes/terminput"
	"github.com/jetsetilly/glmodes/test"
	"github.com/jetsetilly/glmodes/userinput"
)

func TestTranslate(t *testing.T) {
	ev := terminput.Translate([]byte("2"))
	test.DemandEquality(t, len(ev), 2)
	test.ExpectEquality[userinput.Event](t, ev[0], userinput.EventKeyboard{Key: "2", Down: true})
	test.ExpectEquality[userinput.Event](t, ev[1], userinput.EventKeyboard{Key: "2"})

	// unrecognised keys are ignored
	ev = terminput.Translate([]byte("a1x4"))
	test.DemandEquality(t, len(ev), 4)
	test.ExpectEquality[userinput.Event](t, ev[0], userinput.EventKeyboard{Key: "1", Down: true})
	test.ExpectEquality[userinput.Event](t, ev[2], userinput.EventKeyboard{Key: "4", Down: true})

	test.ExpectEquality(t, len(terminput.Translate(nil)), 0)
}

func TestEscape(t *testing.T) {
	ev := terminput.Translate([]byte{0x1b})
	test.DemandEquality(t, len(ev), 2)
	test.ExpectEquality[userinput.Event](t, ev[0], userinput.EventKeyboard{Key: userinput.KeyEscape, Down: true})

	// cursor up is not an escape key press
	ev = terminput.Translate([]byte{0x1b, '[', 'A'})
	test.ExpectEquality(t, len(ev), 0)

	// key presses before the escape sequence are kept
	ev = terminput.Translate([]byte{'3', 0x1b, '[', 'B', '1'})
	test.DemandEquality(t, len(ev), 2)
	test.ExpectEquality[userinput.Event](t, ev[0], userinput.EventKeyboard{Key: "3", Down: true})
}

func TestPressesAreEdges(t *testing.T) {
	var k userinput.KeyEdges
	presses := 0
	for _, ev := range terminput.Translate([]byte("111")) {
		if k.Press(ev.(userinput.EventKeyboard)) {
			presses++
		}
	}
	test.ExpectEquality(t, presses, 3)
}
