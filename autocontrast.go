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

// AutoContrast computes lookup tables which stretch the intensity range of
// each channel to the full range [0, 255].
//
// For every channel, cutoff percent of the pixels are ignored at the dark
// end and at the bright end of the histogram. The darkest remaining
// intensity is then mapped to 0 and the brightest to 255. Channels with
// fewer than two distinct remaining intensities get the identity table.
func AutoContrast(h *Histogram, cutoff float64) [NumChannels]LUT {
	cutoff = clamp(cutoff, 0, 50)

	var luts [NumChannels]LUT
	for ch := range luts {
		counts := h[ch] // copy, trimmed below
		n := 0
		for _, c := range counts {
			n += c
		}
		if cut := int(float64(n) * cutoff / 100); cut > 0 {
			trim(counts[:], cut, false)
			trim(counts[:], cut, true)
		}

		lo := 0
		for lo < 255 && counts[lo] == 0 {
			lo++
		}
		hi := 255
		for hi > 0 && counts[hi] == 0 {
			hi--
		}

		if hi <= lo {
			luts[ch] = *IdentityLUT()
			continue
		}
		scale := 255 / float64(hi-lo)
		offset := -float64(lo) * scale
		for i := range luts[ch] {
			luts[ch][i] = uint8(clamp(int(float64(i)*scale+offset), 0, 255))
		}
	}
	return luts
}

// trim removes cut pixels from one end of the histogram counts.
func trim(counts []int, cut int, fromTop bool) {
	for k := range counts {
		i := k
		if fromTop {
			i = len(counts) - 1 - k
		}
		if cut > counts[i] {
			cut -= counts[i]
			counts[i] = 0
		} else {
			counts[i] -= cut
			return
		}
	}
}
