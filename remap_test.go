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
	"bytes"
	"image"
	"image/color"
	"math/rand"
	"testing"
)

// testImage returns a w×h image filled with pseudo-random pixels.
func testImage(w, h int, seed int64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	rng := rand.New(rand.NewSource(seed))
	rng.Read(img.Pix)
	return img
}

func identityLUTs() *[NumChannels]LUT {
	return &[NumChannels]LUT{*IdentityLUT(), *IdentityLUT(), *IdentityLUT()}
}

func TestRemapIdentity(t *testing.T) {
	src := testImage(17, 9, 1)
	out := Remap(src, identityLUTs())
	if out.Rect != src.Rect {
		t.Errorf("bounds = %v, want %v", out.Rect, src.Rect)
	}
	if !bytes.Equal(out.Pix, src.Pix) {
		t.Error("identity tables changed the image")
	}
}

func TestRemapChannels(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	src.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 100, B: 0, A: 255})

	luts := identityLUTs()
	for i := range 256 {
		luts[Red][i] = uint8(255 - i)
		luts[Green][i] = uint8(i / 2)
		luts[Blue][i] = 7
	}
	out := Remap(src, luts)

	want := []color.NRGBA{
		{R: 245, G: 10, B: 7, A: 40},
		{R: 55, G: 50, B: 7, A: 255},
	}
	for x, w := range want {
		if got := out.NRGBAAt(x, 0); got != w {
			t.Errorf("pixel %d = %v, want %v", x, got, w)
		}
	}
}

func TestRemapPure(t *testing.T) {
	src := testImage(32, 32, 2)
	orig := bytes.Clone(src.Pix)

	luts := identityLUTs()
	for i := range 256 {
		luts[Green][i] = uint8(255 - i)
	}
	a := Remap(src, luts)
	b := Remap(src, luts)

	if !bytes.Equal(src.Pix, orig) {
		t.Error("Remap modified its source")
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("repeated Remap gave different results")
	}
	if &a.Pix[0] == &src.Pix[0] {
		t.Error("result shares memory with the source")
	}
}

func TestRemapSubImage(t *testing.T) {
	full := testImage(10, 10, 3)
	sub := full.SubImage(image.Rect(2, 3, 7, 8)).(*image.NRGBA)

	luts := identityLUTs()
	for i := range 256 {
		luts[Red][i] = uint8(255 - i)
	}
	out := Remap(sub, luts)
	if out.Rect != sub.Rect {
		t.Fatalf("bounds = %v, want %v", out.Rect, sub.Rect)
	}
	for y := 3; y < 8; y++ {
		for x := 2; x < 7; x++ {
			in := full.NRGBAAt(x, y)
			got := out.NRGBAAt(x, y)
			want := color.NRGBA{R: 255 - in.R, G: in.G, B: in.B, A: in.A}
			if got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRemapEmpty(t *testing.T) {
	for _, src := range []*image.NRGBA{nil, {}, image.NewNRGBA(image.Rect(5, 5, 5, 9))} {
		out := Remap(src, identityLUTs())
		if out == nil || !out.Rect.Empty() {
			t.Errorf("Remap(%v) = %v, want empty image", src, out)
		}
	}
}

func TestToNRGBA(t *testing.T) {
	gray := image.NewGray(image.Rect(1, 1, 4, 3))
	for i := range gray.Pix {
		gray.Pix[i] = uint8(40 * i)
	}
	out := ToNRGBA(gray)
	if out.Rect != gray.Rect {
		t.Fatalf("bounds = %v, want %v", out.Rect, gray.Rect)
	}
	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			v := gray.GrayAt(x, y).Y
			want := color.NRGBA{R: v, G: v, B: v, A: 255}
			if got := out.NRGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}

	src := testImage(4, 4, 4)
	cp := ToNRGBA(src)
	if !bytes.Equal(cp.Pix, src.Pix) {
		t.Error("copy differs from source")
	}
	cp.Pix[0]++
	if cp.Pix[0] == src.Pix[0] {
		t.Error("copy shares memory with the source")
	}

	if out := ToNRGBA(nil); !out.Rect.Empty() {
		t.Errorf("ToNRGBA(nil) = %v, want empty image", out.Rect)
	}
}

func BenchmarkRemap(b *testing.B) {
	src := testImage(1920, 1080, 5)
	luts := identityLUTs()
	for i := range 256 {
		luts[Red][i] = uint8(255 - i)
	}
	b.SetBytes(int64(len(src.Pix)))
	b.ResetTimer()
	for range b.N {
		Remap(src, luts)
	}
}
