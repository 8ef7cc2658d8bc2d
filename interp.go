// seehuhn.de/go/tonecurve - tone curve adjustment for RGB images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tonecurve

import "math"

// bracket returns the index j of the first pair (points[j], points[j+1])
// with points[j].In <= x <= points[j+1].In.
// If no such pair exists, -1 is returned.
func bracket(points []ControlPoint, x int) int {
	for j := 0; j+1 < len(points); j++ {
		if int(points[j].In) <= x && x <= int(points[j+1].In) {
			return j
		}
	}
	return -1
}

// linearInterp interpolates between (x1, v1) and (x2, v2) at x and
// rounds the result to the nearest integer in [0, 255].
// The caller must ensure x1 != x2.
func linearInterp(x1, v1, x2, v2, x int) uint8 {
	t := float64(x-x1) / float64(x2-x1)
	v := float64(v1)*(1-t) + float64(v2)*t
	return uint8(clamp(int(math.Round(v)), 0, 255))
}
