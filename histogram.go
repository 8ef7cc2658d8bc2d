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

import "image"

// Histogram holds, for each channel, the number of pixels at each intensity.
type Histogram [NumChannels][256]int

// ComputeHistogram counts the pixel intensities of img, separately for
// each channel. Every pixel is counted, regardless of its alpha value.
// A nil or empty image gives all-zero counts.
func ComputeHistogram(img *image.NRGBA) *Histogram {
	h := new(Histogram)
	if img == nil || img.Rect.Empty() {
		return h
	}

	r, g, b := &h[Red], &h[Green], &h[Blue]
	w := img.Rect.Dx() * 4
	for y := 0; y < img.Rect.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		for i := 0; i+3 < len(row); i += 4 {
			r[row[i+0]]++
			g[row[i+1]]++
			b[row[i+2]]++
		}
	}
	return h
}

// Total returns the number of pixels counted for channel ch.
func (h *Histogram) Total(ch Channel) int {
	n := 0
	for _, c := range h[ch] {
		n += c
	}
	return n
}

// Max returns the largest count for channel ch.
func (h *Histogram) Max(ch Channel) int {
	m := 0
	for _, c := range h[ch] {
		m = max(m, c)
	}
	return m
}
