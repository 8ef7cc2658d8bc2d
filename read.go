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

// Limits of the Photoshop curves (.acv) format.
const (
	acvMinPoints = 2
	acvMaxPoints = 19
)

// DecodeACV decodes a Photoshop curves file.
//
// The file contains a composite curve followed by one curve per channel.
// Only files whose composite curve is the identity can be represented and
// are accepted. Curves for channels beyond blue are ignored, and channels
// missing from the file get the identity curve.
//
// Photoshop allows the end points of a curve to move horizontally, in
// which case the curve is constant outside the end points. Such curves are
// extended by a flat segment to input 0 and 255.
//
// Since Photoshop draws smooth curves through the control points, while
// this package interpolates linearly, images processed with the decoded
// curves can differ slightly from Photoshop's output.
func DecodeACV(data []byte) ([NumChannels][]ControlPoint, error) {
	var curves [NumChannels][]ControlPoint

	if len(data) < 4 {
		return curves, malformedByte(0, "file is too short")
	}
	version := getUint16(data, 0)
	if version != 1 && version != 4 {
		return curves, malformedByte(0, fmt.Sprintf("unsupported version %d", version))
	}
	numCurves := int(getUint16(data, 2))
	if numCurves == 0 {
		return curves, malformedByte(2, "no curves")
	}

	pos := 4
	for k := range min(numCurves, NumChannels+1) {
		start := pos
		points, next, err := decodeACVCurve(data, pos)
		if err != nil {
			return curves, err
		}
		pos = next

		if k == 0 {
			if !isIdentityCurve(points) {
				return curves, malformedByte(start, "composite curve is not supported")
			}
			continue
		}
		curves[k-1] = points
	}

	for ch := range curves {
		if curves[ch] == nil {
			curves[ch] = DefaultPoints()
		}
	}
	return curves, nil
}

func decodeACVCurve(data []byte, pos int) ([]ControlPoint, int, error) {
	if pos+2 > len(data) {
		return nil, 0, malformedByte(pos, "missing point count")
	}
	n := int(getUint16(data, pos))
	if n < acvMinPoints || n > acvMaxPoints {
		return nil, 0, malformedByte(pos, fmt.Sprintf("invalid point count %d", n))
	}
	pos += 2
	if pos+4*n > len(data) {
		return nil, 0, malformedByte(pos, "curve is truncated")
	}

	points := make([]ControlPoint, 0, n+2)
	for i := range n {
		offset := pos + 4*i
		out := getUint16(data, offset)
		in := getUint16(data, offset+2)
		if out > 255 || in > 255 {
			return nil, 0, malformedByte(offset, fmt.Sprintf("point (%d,%d) out of range", in, out))
		}
		if i > 0 && uint8(in) <= points[i-1].In {
			return nil, 0, malformedByte(offset, "input values not increasing")
		}
		points = append(points, ControlPoint{In: uint8(in), Out: uint8(out)})
	}

	if first := points[0]; first.In > 0 {
		points = append([]ControlPoint{{In: 0, Out: first.Out}}, points...)
	}
	if last := points[len(points)-1]; last.In < 255 {
		points = append(points, ControlPoint{In: 255, Out: last.Out})
	}
	return points, pos + 4*n, nil
}

func isIdentityCurve(points []ControlPoint) bool {
	lut, err := BuildLUT(points)
	return err == nil && lut.IsIdentity()
}

func getUint16(data []byte, offset int) uint16 {
	return uint16(data[offset])<<8 | uint16(data[offset+1])
}
