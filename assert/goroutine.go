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
// Package assert contains run time checks of conditions that indicate a
// programming error. A failed check panics.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GoroutineID returns the ID of the calling goroutine. The ID is parsed from
// the first line of the goroutine's stack trace.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// SameGoroutine panics if the calling goroutine is not the one with the given
// ID. The name is used in the panic message.
func SameGoroutine(id uint64, name string) {
	if g := GoroutineID(); g != id {
		panic(fmt.Sprintf("%s: called from goroutine %d but owned by goroutine %d", name, g, id))
	}
}
