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
package glfwplatform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/jetsetilly/glmodes/test"
	"github.com/jetsetilly/glmodes/userinput"
)

func TestTranslateKey(t *testing.T) {
	ev, ok := translateKey(glfw.Key1, glfw.Press)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev, userinput.EventKeyboard{Key: "1", Down: true})

	ev, ok = translateKey(glfw.KeyKP3, glfw.Repeat)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev, userinput.EventKeyboard{Key: "3", Down: true, Repeat: true})

	ev, ok = translateKey(glfw.KeyEscape, glfw.Release)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev, userinput.EventKeyboard{Key: userinput.KeyEscape})

	_, ok = translateKey(glfw.KeyA, glfw.Press)
	test.ExpectFailure(t, ok)
	_, ok = translateKey(glfw.Key5, glfw.Press)
	test.ExpectFailure(t, ok)
}
