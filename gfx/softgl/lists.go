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
package softgl

import "github.com/jetsetilly/glmodes/gfx"

// GenLists implements the gfx.Graphics interface. Returns zero if the lists
// could not be allocated.
func (ctx *Context) GenLists(rng int32) uint32 {
	if rng <= 0 {
		ctx.fault("GenLists() range must be positive (%d)", rng)
		return 0
	}

	first := ctx.nextList + 1
	for i := range uint32(rng) {
		if !ctx.allocate() {
			// release anything allocated by this call
			for j := range i {
				delete(ctx.lists, first+j)
			}
			return 0
		}
		ctx.lists[first+i] = nil
	}
	ctx.nextList += uint32(rng)

	return first
}

// NewList implements the gfx.Graphics interface. Only the COMPILE mode is
// supported.
func (ctx *Context) NewList(list uint32, mode uint32) {
	if ctx.compiling != 0 {
		ctx.fault("NewList() called while compiling list %d", ctx.compiling)
		return
	}
	if mode != gfx.COMPILE {
		ctx.fault("unsupported list mode (%#04x)", mode)
		return
	}
	if _, ok := ctx.lists[list]; !ok {
		ctx.fault("NewList() for unallocated list (%d)", list)
		return
	}
	ctx.compiling = list
	ctx.compiled = nil
}

// EndList implements the gfx.Graphics interface.
func (ctx *Context) EndList() {
	if ctx.compiling == 0 {
		ctx.fault("EndList() called without NewList()")
		return
	}
	ctx.lists[ctx.compiling] = ctx.compiled
	ctx.compiling = 0
	ctx.compiled = nil
}

// CallList implements the gfx.Graphics interface. Calling a list that has not
// been allocated does nothing.
func (ctx *Context) CallList(list uint32) {
	ctx.exec(func() {
		for _, cmd := range ctx.lists[list] {
			cmd()
		}
	})
}

// DeleteLists implements the gfx.Graphics interface.
func (ctx *Context) DeleteLists(list uint32, rng int32) {
	for i := range uint32(max(rng, 0)) {
		id := list + i
		if _, ok := ctx.lists[id]; !ok {
			ctx.fault("releasing unallocated display list (%d)", id)
			continue
		}
		delete(ctx.lists, id)
		ctx.Stats.ListsReleased++
	}
}
