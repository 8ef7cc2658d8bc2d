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
	"image/draw"
)

// Remap applies one lookup table per channel to every pixel of src and
// returns the result as a new image with the same bounds.
// The alpha channel is copied unchanged. The source image is not modified.
//
// A nil or empty source gives an empty image.
func Remap(src *image.NRGBA, luts *[NumChannels]LUT) *image.NRGBA {
	if src == nil || src.Rect.Empty() {
		return &image.NRGBA{}
	}

	b := src.Rect
	dst := image.NewNRGBA(b)
	r, g, bl := &luts[Red], &luts[Green], &luts[Blue]
	w := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		in := src.Pix[y*src.Stride : y*src.Stride+w]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for i := 0; i+3 < len(in); i += 4 {
			out[i+0] = r[in[i+0]]
			out[i+1] = g[in[i+1]]
			out[i+2] = bl[in[i+2]]
			out[i+3] = in[i+3]
		}
	}

	Logger().Debug("image remapped", "width", b.Dx(), "height", b.Dy())
	return dst
}

// ToNRGBA returns a copy of img as a non-premultiplied 8-bit RGBA image.
// The result never shares memory with img. A nil image gives an empty
// image.
func ToNRGBA(img image.Image) *image.NRGBA {
	if img == nil {
		return &image.NRGBA{}
	}
	b := img.Bounds()
	if b.Empty() {
		return &image.NRGBA{}
	}
	out := image.NewNRGBA(b)
	if src, ok := img.(*image.NRGBA); ok {
		w := b.Dx() * 4
		for y := 0; y < b.Dy(); y++ {
			copy(out.Pix[y*out.Stride:y*out.Stride+w], src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):])
		}
		return out
	}
	draw.Draw(out, b, img, b.Min, draw.Src)
	return out
}
