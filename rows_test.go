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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowsFromCurves(t *testing.T) {
	curves := [NumChannels][]ControlPoint{
		{{0, 5}, {255, 250}, {100, 90}}, // unsorted
		DefaultPoints(),
		{{0, 255}, {255, 0}},
	}
	got := RowsFromCurves(curves)
	want := []Row{
		{Red, 0, 5}, {Red, 100, 90}, {Red, 255, 250},
		{Green, 0, 0}, {Green, 255, 255},
		{Blue, 0, 255}, {Blue, 255, 0},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, ControlPoint{255, 250}, curves[Red][1], "input was modified")
}

func TestCurvesFromRowsOrder(t *testing.T) {
	rows := []Row{
		{Blue, 255, 0},
		{Red, 128, 64},
		{Blue, 0, 255},
		{Red, 255, 255},
		{Red, 0, 0},
	}
	curves, err := CurvesFromRows(rows)
	require.NoError(t, err)
	assert.Equal(t, []ControlPoint{{0, 0}, {128, 64}, {255, 255}}, curves[Red])
	assert.Equal(t, DefaultPoints(), curves[Green])
	assert.Equal(t, []ControlPoint{{0, 255}, {255, 0}}, curves[Blue])
}

func TestCurvesFromRowsEmpty(t *testing.T) {
	curves, err := CurvesFromRows(nil)
	require.NoError(t, err)
	for _, ch := range Channels {
		assert.Equal(t, DefaultPoints(), curves[ch])
	}
}

func TestCurvesFromRowsMalformed(t *testing.T) {
	ends := []Row{{Red, 0, 0}, {Red, 255, 255}}
	tests := []struct {
		name     string
		extra    []Row
		location string
	}{
		{"x too large", []Row{{Green, 256, 0}}, "row 3"},
		{"negative y", []Row{{Red, 10, -3}}, "row 3"},
		{"unknown channel", []Row{{Channel(3), 10, 10}}, "row 3"},
		{"duplicate x", []Row{{Red, 255, 0}}, "channel R"},
		{"missing end point", []Row{{Blue, 0, 0}}, "channel B"},
		{"duplicate start", []Row{{Green, 0, 0}, {Green, 0, 1}}, "channel G"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := append(append([]Row{}, ends...), tt.extra...)
			_, err := CurvesFromRows(rows)
			var merr *MalformedDataError
			require.ErrorAs(t, err, &merr)
			assert.Equal(t, tt.location, merr.Location)
		})
	}
}

func TestParseRecords(t *testing.T) {
	rows, err := parseRecords([][]string{
		{" channel", "x ", "y"},
		{"R", " 0", "7"},
		{},
		{"B", "255", "255 "},
	})
	require.NoError(t, err)
	assert.Equal(t, []Row{{Red, 0, 7}, {Blue, 255, 255}}, rows)
}
