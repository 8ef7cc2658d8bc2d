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

// EncodeACV converts the curves to the Photoshop curves (.acv) format.
// The file starts with an identity composite curve, followed by the red,
// green and blue curves. The format allows at most 19 points per curve.
func EncodeACV(curves [NumChannels][]ControlPoint) ([]byte, error) {
	all := [NumChannels + 1][]ControlPoint{DefaultPoints()}
	size := 4 + 2 + 4*len(all[0])
	for ch, points := range curves {
		if len(points) < acvMinPoints || len(points) > acvMaxPoints {
			return nil, fmt.Errorf("tonecurve: cannot store %d points for channel %s in ACV format",
				len(points), Channel(ch))
		}
		all[ch+1] = points
		size += 2 + 4*len(points)
	}

	buf := make([]byte, size)
	putUint16(buf, 0, 4) // version
	putUint16(buf, 2, uint16(len(all)))
	pos := 4
	for _, points := range all {
		putUint16(buf, pos, uint16(len(points)))
		pos += 2
		for _, p := range points {
			putUint16(buf, pos, uint16(p.Out))
			putUint16(buf, pos+2, uint16(p.In))
			pos += 4
		}
	}
	return buf, nil
}

func putUint16(data []byte, offset int, value uint16) {
	data[offset] = byte(value >> 8)
	data[offset+1] = byte(value)
}
