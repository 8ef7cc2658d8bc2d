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
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrInvalidControlPoint is returned when a control point cannot be
	// added or moved, for example because its input value is already taken
	// or because the point index is out of range.
	ErrInvalidControlPoint = errors.New("tonecurve: invalid control point")

	// ErrDegenerateCurve is returned when an operation would leave a curve
	// without its two end points.
	ErrDegenerateCurve = errors.New("tonecurve: degenerate curve")

	// ErrInvalidChannel is returned for channel values other than Red,
	// Green and Blue.
	ErrInvalidChannel = errors.New("tonecurve: invalid channel")
)

// MalformedDataError indicates that stored curve data cannot be decoded.
// Location describes where the problem was found, e.g. "row 3" or
// "byte 12".
type MalformedDataError struct {
	Location string
	Reason   string
}

func malformedRow(row int, reason string) error {
	return &MalformedDataError{Location: fmt.Sprintf("row %d", row), Reason: reason}
}

func malformedByte(offset int, reason string) error {
	return &MalformedDataError{Location: fmt.Sprintf("byte %d", offset), Reason: reason}
}

func malformedChannel(ch Channel, reason string) error {
	return &MalformedDataError{Location: "channel " + ch.String(), Reason: reason}
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("tonecurve: malformed curve data (%s): %s", e.Location, e.Reason)
}

func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
