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

// Package tonecurve implements per-channel tone curves for RGB images.
//
// A tone curve is given by a small number of control points per colour
// channel. From these points a 256-entry lookup table ([LUT]) is derived by
// piecewise linear interpolation, and the three tables are applied to every
// pixel of an image.
//
// # Editing Curves
//
// An interactive editor owns a [Session]. The session holds the original
// image, one [Curve] per channel, and the adjusted result:
//
//	s := tonecurve.NewSession(&tonecurve.Options{Observer: ui})
//	s.SetSourceImage(img)
//	idx, err := s.AddPoint(tonecurve.Red, 64, 40)
//	if err != nil {
//	    // handle error
//	}
//	err = s.MovePoint(tonecurve.Red, idx, 64, 30)
//
// Every edit synchronously rebuilds the affected table, remaps the original
// image and recomputes the histogram before the call returns.
//
// Control points are stored in intensity space: In is the input intensity
// and Out the output intensity. Editors which draw curves with the y axis
// pointing down can use [PointFromDisplay] and [ControlPoint.Display] to
// convert at the boundary.
//
// # Storing Curves
//
// Curves are exchanged as tables of (channel, x, y) rows, see [Row].
// The rows can be written as CSV ([WriteCSV]) or as a spreadsheet
// ([WriteXLSX]). Photoshop curve files are supported by [DecodeACV] and
// [EncodeACV].
//
// # Batch Processing
//
// [Session.Filter] returns an immutable snapshot of the current tables which
// can be applied to many frames, for example by [ProcessFrames], while the
// session continues to be edited.
package tonecurve

import (
	"fmt"
	"strings"
)

// Channel identifies one of the three colour channels of an image.
type Channel int

// The colour channels, in the order they appear in a pixel.
const (
	Red Channel = iota
	Green
	Blue

	NumChannels = 3
)

// Channels lists all channels in pixel order.
var Channels = [NumChannels]Channel{Red, Green, Blue}

// Valid reports whether c is one of Red, Green or Blue.
func (c Channel) Valid() bool {
	return c >= Red && c <= Blue
}

// String returns the tag used for the channel in stored curve tables.
func (c Channel) String() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// ParseChannel converts a channel tag ("R", "G" or "B") into a Channel.
// Leading and trailing white space is ignored.
func ParseChannel(tag string) (Channel, error) {
	switch strings.TrimSpace(tag) {
	case "R":
		return Red, nil
	case "G":
		return Green, nil
	case "B":
		return Blue, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrInvalidChannel, tag)
	}
}
