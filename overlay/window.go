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
package overlay

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/glmodes/drawmode"
)

const windowTitle = "Drawing mode"

// draw the overlay window. returns the drawing mode selected by the user and
// true if a new selection was made.
func draw(mode drawmode.Mode, fps float32) (drawmode.Mode, bool) {
	selected := mode
	changed := false

	imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 10}, imgui.ConditionFirstUseEver, imgui.Vec2{X: 0, Y: 0})
	if imgui.BeginV(windowTitle, nil, imgui.WindowFlagsAlwaysAutoResize|imgui.WindowFlagsNoCollapse) {
		for _, m := range drawmode.List {
			if imgui.RadioButton(label(m), m == mode) && m != mode {
				selected = m
				changed = true
			}
		}

		imgui.Spacing()
		imgui.Separator()
		imgui.Spacing()
		imgui.Text(fpsLabel(fps))
	}
	imgui.End()

	return selected, changed
}

// label for the radio button of a drawing mode. the key that selects the mode
// is included in the label.
func label(m drawmode.Mode) string {
	return fmt.Sprintf("%s. %s", m.Key(), m)
}

func fpsLabel(fps float32) string {
	if fps <= 0 {
		return "measuring frame rate"
	}
	return fmt.Sprintf("%.1f fps", fps)
}
