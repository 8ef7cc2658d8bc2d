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
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Row is one control point in a stored curve table.
// X is the input intensity and Y the output intensity.
type Row struct {
	Channel Channel
	X, Y    int
}

// tableHeader is the first row of every stored curve table.
var tableHeader = []string{"channel", "x", "y"}

// RowsFromCurves flattens the control points of all channels into a table.
// The rows are ordered by channel (red, green, blue) and then by input
// value.
func RowsFromCurves(curves [NumChannels][]ControlPoint) []Row {
	var rows []Row
	for _, ch := range Channels {
		pts := slices.Clone(curves[ch])
		slices.SortFunc(pts, func(a, b ControlPoint) int { return int(a.In) - int(b.In) })
		rows = append(rows, lo.Map(pts, func(p ControlPoint, _ int) Row {
			return Row{Channel: ch, X: int(p.In), Y: int(p.Out)}
		})...)
	}
	return rows
}

// CurvesFromRows reconstructs the control points of all channels from a
// table. The order of the rows does not matter. Channels without any rows
// get the identity curve.
//
// Every channel which is present must form a valid curve: the coordinates
// must be in [0, 255], no input value may occur twice, and the inputs 0 and
// 255 must both be present. Otherwise a [*MalformedDataError] is returned.
func CurvesFromRows(rows []Row) ([NumChannels][]ControlPoint, error) {
	var curves [NumChannels][]ControlPoint

	for i, r := range rows {
		if !r.Channel.Valid() {
			return curves, malformedRow(i+1, fmt.Sprintf("unknown channel %d", int(r.Channel)))
		}
		if r.X < 0 || r.X > 255 || r.Y < 0 || r.Y > 255 {
			return curves, malformedRow(i+1, fmt.Sprintf("point (%d,%d) out of range", r.X, r.Y))
		}
	}

	byChannel := lo.GroupBy(rows, func(r Row) Channel { return r.Channel })
	for _, ch := range Channels {
		group, ok := byChannel[ch]
		if !ok {
			curves[ch] = DefaultPoints()
			continue
		}
		pts := lo.Map(group, func(r Row, _ int) ControlPoint {
			return ControlPoint{In: uint8(r.X), Out: uint8(r.Y)}
		})
		slices.SortStableFunc(pts, func(a, b ControlPoint) int { return int(a.In) - int(b.In) })
		for i := 1; i < len(pts); i++ {
			if pts[i].In == pts[i-1].In {
				return curves, malformedChannel(ch, "duplicate input "+strconv.Itoa(int(pts[i].In)))
			}
		}
		if err := checkPoints(pts); err != nil {
			return curves, malformedChannel(ch, err.Error())
		}
		curves[ch] = pts
	}
	return curves, nil
}

// parseRecords converts the string records of a stored table, including
// the header, into rows. Empty records are skipped.
// It is shared by the CSV and spreadsheet readers.
func parseRecords(records [][]string) ([]Row, error) {
	if len(records) == 0 {
		return nil, malformedRow(1, "missing header")
	}
	if !slices.Equal(lo.Map(records[0], func(s string, _ int) string { return trimField(s) }), tableHeader) {
		return nil, malformedRow(1, fmt.Sprintf("header %q, want %q", records[0], tableHeader))
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) == 0 {
			continue
		}
		if len(rec) != len(tableHeader) {
			return nil, malformedRow(line, fmt.Sprintf("%d fields, want %d", len(rec), len(tableHeader)))
		}
		ch, err := ParseChannel(rec[0])
		if err != nil {
			return nil, malformedRow(line, fmt.Sprintf("unknown channel %q", rec[0]))
		}
		x, err := strconv.Atoi(trimField(rec[1]))
		if err != nil {
			return nil, malformedRow(line, fmt.Sprintf("x is not a number: %q", rec[1]))
		}
		y, err := strconv.Atoi(trimField(rec[2]))
		if err != nil {
			return nil, malformedRow(line, fmt.Sprintf("y is not a number: %q", rec[2]))
		}
		rows = append(rows, Row{Channel: ch, X: x, Y: y})
	}
	return rows, nil
}

func formatRecord(r Row) []string {
	return []string{r.Channel.String(), strconv.Itoa(r.X), strconv.Itoa(r.Y)}
}

func trimField(s string) string {
	return strings.TrimSpace(s)
}
