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
	"image"
	"image/color"
	"testing"
)

func TestHistogramSums(t *testing.T) {
	for _, size := range []image.Point{{1, 1}, {7, 3}, {64, 65}} {
		img := testImage(size.X, size.Y, int64(size.X))
		h := ComputeHistogram(img)
		n := size.X * size.Y
		for _, ch := range Channels {
			if got := h.Total(ch); got != n {
				t.Errorf("%v: total for %s = %d, want %d", size, ch, got, n)
			}
		}
	}
}

func TestHistogramCounts(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := range 2 {
		for x := range 3 {
			img.SetNRGBA(x, y, color.NRGBA{R: 10, G: uint8(x), B: uint8(255 * y), A: 0})
		}
	}
	h := ComputeHistogram(img)

	if h[Red][10] != 6 {
		t.Errorf("red[10] = %d, want 6", h[Red][10])
	}
	for x := range 3 {
		if h[Green][x] != 2 {
			t.Errorf("green[%d] = %d, want 2", x, h[Green][x])
		}
	}
	if h[Blue][0] != 3 || h[Blue][255] != 3 {
		t.Errorf("blue[0], blue[255] = %d, %d, want 3, 3", h[Blue][0], h[Blue][255])
	}
	if got := h.Max(Red); got != 6 {
		t.Errorf("Max(Red) = %d, want 6", got)
	}
}

func TestHistogramSubImage(t *testing.T) {
	full := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range full.Pix {
		full.Pix[i] = 200
	}
	sub := full.SubImage(image.Rect(1, 1, 3, 3)).(*image.NRGBA)
	for i := range 2 {
		for j := range 2 {
			sub.SetNRGBA(1+i, 1+j, color.NRGBA{R: 5, G: 5, B: 5, A: 255})
		}
	}

	h := ComputeHistogram(sub)
	if h[Red][5] != 4 || h.Total(Red) != 4 {
		t.Errorf("red[5] = %d, total = %d, want 4, 4", h[Red][5], h.Total(Red))
	}
}

func TestHistogramEmpty(t *testing.T) {
	for _, img := range []*image.NRGBA{nil, {}} {
		h := ComputeHistogram(img)
		for _, ch := range Channels {
			if h.Total(ch) != 0 {
				t.Errorf("total for %s = %d, want 0", ch, h.Total(ch))
			}
		}
	}
}
