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
	"testing"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/glmodes/drawmode"
	"github.com/jetsetilly/glmodes/test"
)

func TestLabels(t *testing.T) {
	test.ExpectEquality(t, label(drawmode.Immediate), "1. immediate mode")
	test.ExpectEquality(t, label(drawmode.VertexBufferObject), "4. vertex buffer objects")
	test.ExpectEquality(t, fpsLabel(0), "measuring frame rate")
	test.ExpectEquality(t, fpsLabel(59.94), "59.9 fps")
}

func TestDrawWithoutInput(t *testing.T) {
	ctx := imgui.CreateContext(nil)
	defer ctx.Destroy()

	io := imgui.CurrentIO()
	io.SetIniFilename("")
	io.SetDisplaySize(imgui.Vec2{X: 640, Y: 360})
	io.SetDeltaTime(1.0 / 60.0)

	// building the font atlas is required before a frame can be started
	_ = io.Fonts().TextureDataRGBA32()

	for _, m := range drawmode.List {
		imgui.NewFrame()
		_, changed := draw(m, 60)
		imgui.Render()
		test.ExpectFailure(t, changed, m)
	}
}
