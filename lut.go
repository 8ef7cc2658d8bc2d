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

import "fmt"

// LUT maps each 8-bit input intensity to an output intensity.
type LUT [256]uint8

// IdentityLUT returns the table which maps every value to itself.
func IdentityLUT() *LUT {
	lut := new(LUT)
	for i := range lut {
		lut[i] = uint8(i)
	}
	return lut
}

// IsIdentity reports whether the table maps every value to itself.
func (l *LUT) IsIdentity() bool {
	for i, v := range l {
		if int(v) != i {
			return false
		}
	}
	return true
}

// BuildLUT computes the lookup table for a tone curve by piecewise linear
// interpolation between the control points.
//
// The points must be sorted by increasing input value. For each input
// intensity the first pair of adjacent points which encloses it is used.
// Inputs not covered by any pair are mapped to 0; this cannot happen for
// curves which start at input 0 and end at input 255.
//
// A new table is allocated on every call. An error is returned if fewer
// than two points are given or if two neighbouring points which are needed
// for the table have the same input value.
func BuildLUT(points []ControlPoint) (*LUT, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: %d control points", ErrDegenerateCurve, len(points))
	}

	lut := new(LUT)
	for i := range lut {
		j := bracket(points, i)
		if j < 0 {
			continue
		}
		p, q := points[j], points[j+1]
		if p.In == q.In {
			return nil, fmt.Errorf("%w: duplicate input %d", ErrDegenerateCurve, p.In)
		}
		lut[i] = linearInterp(int(p.In), int(p.Out), int(q.In), int(q.Out), i)
	}

	Logger().Debug("lookup table built", "points", len(points))
	return lut, nil
}
