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
package sdlplatform

import (
	"github.com/jetsetilly/glmodes/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// translateKey returns the userinput name for an SDL keycode. Keys with no
// meaning to the program return the empty string.
func translateKey(sym sdl.Keycode) string {
	switch sym {
	case sdl.K_ESCAPE:
		return userinput.KeyEscape
	case sdl.K_1, sdl.K_KP_1:
		return "1"
	case sdl.K_2, sdl.K_KP_2:
		return "2"
	case sdl.K_3, sdl.K_KP_3:
		return "3"
	case sdl.K_4, sdl.K_KP_4:
		return "4"
	}
	return ""
}
