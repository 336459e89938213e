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
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/jetsetilly/glmodes/userinput"
)

// translateKey converts a GLFW key callback into a userinput event. The second
// return value is false if the key has no meaning to the program.
func translateKey(key glfw.Key, action glfw.Action) (userinput.EventKeyboard, bool) {
	var name string

	switch key {
	case glfw.KeyEscape:
		name = userinput.KeyEscape
	case glfw.Key1, glfw.KeyKP1:
		name = "1"
	case glfw.Key2, glfw.KeyKP2:
		name = "2"
	case glfw.Key3, glfw.KeyKP3:
		name = "3"
	case glfw.Key4, glfw.KeyKP4:
		name = "4"
	default:
		return userinput.EventKeyboard{}, false
	}

	return userinput.EventKeyboard{
		Key:    name,
		Down:   action != glfw.Release,
		Repeat: action == glfw.Repeat,
	}, true
}
