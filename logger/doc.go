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
// Package logger is the central log for glmodes. Entries are tagged with a
// short string, usually the name of the package making the entry, and the
// detail of the entry.
//
// Consecutive entries with the same tag and detail are collapsed into a single
// entry with a repeat count.
//
// Log requests must carry a Permission. The Allow permission is used in the
// majority of cases but a package may supply its own implementation to stop
// logging in certain situations.
//
// The central log is created when the package is first used. Additional
// instances of the Logger type can be created with NewLogger(), which is
// useful for testing.
package logger
