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
package modalflag

import (
	"fmt"
	"strings"
)

// help amends the usage message produced by the flag package with the mode
// path and the list of sub-modes.
func (md *Modes) help(usage string) {
	if md.Output == nil {
		return
	}

	usage = strings.TrimPrefix(usage, "Usage:\n")
	path := md.Path()

	if usage == "" && len(md.subModes) == 0 {
		if path == "" {
			fmt.Fprintln(md.Output, "No help available")
		} else {
			fmt.Fprintf(md.Output, "No help available for %s\n", path)
		}
		return
	}

	if path == "" {
		fmt.Fprintln(md.Output, "Usage:")
	} else {
		fmt.Fprintf(md.Output, "Usage for %s mode:\n", path)
	}

	fmt.Fprint(md.Output, usage)

	if len(md.subModes) > 0 {
		if usage != "" {
			fmt.Fprintln(md.Output)
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}
}
