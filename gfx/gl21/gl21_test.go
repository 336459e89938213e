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
package gl21_test

import (
	"github.com/jetsetilly/glmodes/gfx"
	"github.com/jetsetilly/glmodes/gfx/gl21"
)

// the opengl context cannot be created in a test environment so only the
// interfaces are checked
var _ gfx.Graphics = (*gl21.Context)(nil)
var _ gfx.Viewer = (*gl21.Context)(nil)
var _ gfx.Snapshotter = (*gl21.Context)(nil)
