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
// Package performance contains helper functions relating to performance.
//
// RunProfiler() runs a function with the CPU profiler and writes a heap
// profile when the function returns. CalcFPS() calculates the frame rate in
// aggregate along with an accuracy value as compared to the requested frame
// rate. It is not suitable for live frame rate monitoring, for which the
// limiter package should be used.
package performance
