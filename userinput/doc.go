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
// Package userinput handles input from the user. It can be thought of as a
// translation layer between the platform implementation and the controller.
// As such, this package hides the details of the platform from the
// controller.
//
// The keyboard is the only input device. Keys are identified by name: "1" to
// "4" select the drawing mode and "Escape" ends the program. The names used
// are those of the SDL key names and other platform implementations should
// translate their key codes to the same names.
//
// Mode selection happens on key-press edges only. Holding a key down, or the
// auto-repeat of a held key, does not result in additional mode changes.
package userinput
