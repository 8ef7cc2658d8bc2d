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

// Processor transforms one image or video frame into another.
// Process must not modify its argument.
type Processor interface {
	Process(img image.Image) *image.NRGBA
}

// Filter applies a fixed set of lookup tables to images.
//
// A Filter is immutable once created and is safe for concurrent use.
type Filter struct {
	luts         [NumChannels]LUT
	autoContrast bool
	cutoff       float64
}

// NewFilter returns a filter which applies the given curves.
func NewFilter(curves [NumChannels][]ControlPoint) (*Filter, error) {
	f := &Filter{}
	for ch, points := range curves {
		lut, err := BuildLUT(points)
		if err != nil {
			return nil, err
		}
		f.luts[ch] = *lut
	}
	return f, nil
}

// WithAutoContrast returns a copy of f which stretches the intensity range
// of each channel after applying the curves. See [AutoContrast] for the
// meaning of cutoff.
func (f *Filter) WithAutoContrast(cutoff float64) *Filter {
	g := *f
	g.autoContrast = true
	g.cutoff = cutoff
	return &g
}

// LUTs returns the lookup tables of the filter.
func (f *Filter) LUTs() [NumChannels]LUT {
	return f.luts
}

// Process applies the filter to img and returns the result.
// The input image is not modified.
func (f *Filter) Process(img image.Image) *image.NRGBA {
	var src *image.NRGBA
	if nrgba, ok := img.(*image.NRGBA); ok {
		src = nrgba // Remap does not write to its source
	} else {
		src = ToNRGBA(img)
	}
	return f.apply(src)
}

func (f *Filter) apply(src *image.NRGBA) *image.NRGBA {
	out := Remap(src, &f.luts)
	if f.autoContrast {
		stretch := AutoContrast(ComputeHistogram(out), f.cutoff)
		out = Remap(out, &stretch)
	}
	return out
}
