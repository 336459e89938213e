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
// Package digest is used to create fingerprints of rendered frames. The
// fingerprints are SHA-1 hashes and are used to show that two frames are
// identical without keeping a copy of the pixels.
//
// The Video type chains the fingerprint of each frame with the fingerprint of
// the previous frame, so the final hash represents the entire sequence of
// frames. The Image() function creates the fingerprint of a single frame.
package digest
