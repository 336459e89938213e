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
// Package modalflag wraps the flag package so that a program can have modes,
// each with its own set of flags. The glmodes command has RUN, VERIFY and
// VERSION modes for example.
//
// Arguments are given with NewArgs() and flags for the first layer are added
// before calling Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "VERIFY", "VERSION")
//	r, err := md.Parse()
//
// If sub-modes were added then Mode() returns the sub-mode that was selected.
// The first sub-mode is the default and is selected if the first argument is
// not a sub-mode. Sub-mode names are case insensitive.
//
// After a sub-mode has been found, NewMode() prepares for the flags of that
// mode, which are then parsed with another call to Parse():
//
//	md.NewMode()
//	width := md.AddInt("width", 1280, "width of window")
//	r, err = md.Parse()
//
// Help is printed to the Output writer when the -help flag is found, in which
// case Parse() returns ParseHelp.
package modalflag
