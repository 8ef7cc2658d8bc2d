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

import (
	"fmt"
	"slices"
)

// ControlPoint is an anchor which a tone curve passes through.
// In is the input intensity and Out the output intensity.
type ControlPoint struct {
	In, Out uint8
}

// PointFromDisplay converts display coordinates, where y grows downwards and
// y = 0 denotes the brightest output, into a control point.
// Both coordinates are clamped to [0, 255].
func PointFromDisplay(x, y int) ControlPoint {
	return ControlPoint{
		In:  uint8(clamp(x, 0, 255)),
		Out: uint8(255 - clamp(y, 0, 255)),
	}
}

// Display returns the display coordinates of the point.
// This is the inverse of [PointFromDisplay].
func (p ControlPoint) Display() (x, y int) {
	return int(p.In), 255 - int(p.Out)
}

func (p ControlPoint) String() string {
	return fmt.Sprintf("(%d,%d)", p.In, p.Out)
}

// DefaultPoints returns the control points of the identity curve.
func DefaultPoints() []ControlPoint {
	return []ControlPoint{{In: 0, Out: 0}, {In: 255, Out: 255}}
}

// Curve is the ordered set of control points for one channel.
//
// The points are sorted by strictly increasing input value. The first point
// always has In == 0 and the last point In == 255. These two end points can
// be moved vertically but cannot be removed.
//
// A Curve is not safe for concurrent use. If the same Curve needs to be
// used from multiple goroutines, callers must provide their own synchronisation.
type Curve struct {
	points []ControlPoint
}

// NewCurve returns the identity curve.
func NewCurve() *Curve {
	return &Curve{points: DefaultPoints()}
}

// Len returns the number of control points.
func (c *Curve) Len() int {
	return len(c.points)
}

// Point returns the control point with the given index.
func (c *Curve) Point(i int) ControlPoint {
	return c.points[i]
}

// Points returns a copy of the control points, in order.
func (c *Curve) Points() []ControlPoint {
	return slices.Clone(c.points)
}

// Reset restores the identity curve.
func (c *Curve) Reset() {
	c.points = DefaultPoints()
}

// Add inserts a new control point and returns its index.
// The coordinates are clamped to [0, 255]. If a point with input value x
// already exists, the curve is left unchanged and ErrInvalidControlPoint is
// returned.
func (c *Curve) Add(x, y int) (int, error) {
	p := ControlPoint{In: uint8(clamp(x, 0, 255)), Out: uint8(clamp(y, 0, 255))}
	idx, found := slices.BinarySearchFunc(c.points, p.In, func(q ControlPoint, in uint8) int {
		return int(q.In) - int(in)
	})
	if found {
		return -1, fmt.Errorf("%w: input %d is already in use", ErrInvalidControlPoint, p.In)
	}
	c.points = slices.Insert(c.points, idx, p)
	return idx, nil
}

// Move changes the position of control point i.
//
// Interior points keep their place in the ordering: x is clamped to lie
// strictly between the input values of the two neighbours. The end points
// only move vertically. The output value y is clamped to [0, 255].
func (c *Curve) Move(i, x, y int) (int, error) {
	if i < 0 || i >= len(c.points) {
		return -1, fmt.Errorf("%w: index %d out of range", ErrInvalidControlPoint, i)
	}

	p := &c.points[i]
	p.Out = uint8(clamp(y, 0, 255))
	if i == 0 || i == len(c.points)-1 {
		return i, nil
	}
	left := int(c.points[i-1].In)
	right := int(c.points[i+1].In)
	p.In = uint8(clamp(x, left+1, right-1))
	return i, nil
}

// Delete removes control point i.
// The end points cannot be removed. A curve always keeps at least its two
// end points; attempts to go below this return ErrDegenerateCurve.
func (c *Curve) Delete(i int) error {
	if i < 0 || i >= len(c.points) {
		return fmt.Errorf("%w: index %d out of range", ErrInvalidControlPoint, i)
	}
	if len(c.points) < 3 {
		return fmt.Errorf("%w: cannot remove one of %d points", ErrDegenerateCurve, len(c.points))
	}
	if i == 0 || i == len(c.points)-1 {
		return fmt.Errorf("%w: cannot remove end point %d", ErrDegenerateCurve, i)
	}
	c.points = slices.Delete(c.points, i, i+1)
	return nil
}

// Nearest returns the index of the interior control point closest to (x, y).
// The end points are never returned. If several points have the same
// distance, the one with the smallest index is used. The second return value
// is false if the curve has no interior points.
func (c *Curve) Nearest(x, y int) (int, bool) {
	best := -1
	bestDist := 0
	for i := 1; i < len(c.points)-1; i++ {
		dx := int(c.points[i].In) - x
		dy := int(c.points[i].Out) - y
		d := dx*dx + dy*dy // no sqrt needed for comparison
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, best >= 0
}

// SetPoints replaces all control points of the curve.
// The points must be sorted by strictly increasing input value, and the
// first and last points must have input values 0 and 255.
// If the points are not valid, the curve is left unchanged.
func (c *Curve) SetPoints(points []ControlPoint) error {
	if err := checkPoints(points); err != nil {
		return err
	}
	c.points = slices.Clone(points)
	return nil
}

// LUT returns the lookup table for the curve.
func (c *Curve) LUT() *LUT {
	lut, err := BuildLUT(c.points)
	if err != nil {
		// The invariants of Curve guarantee a well-formed point list.
		panic("tonecurve: " + err.Error())
	}
	return lut
}

func checkPoints(points []ControlPoint) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: %d control points", ErrDegenerateCurve, len(points))
	}
	if points[0].In != 0 || points[len(points)-1].In != 255 {
		return fmt.Errorf("%w: curve must span inputs 0 to 255", ErrDegenerateCurve)
	}
	for i := 1; i < len(points); i++ {
		if points[i].In <= points[i-1].In {
			return fmt.Errorf("%w: input %d out of order", ErrInvalidControlPoint, points[i].In)
		}
	}
	return nil
}
