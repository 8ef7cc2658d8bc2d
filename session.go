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
	"image"
)

// Observer is notified whenever a session produces a new adjusted image.
// ImageUpdated is always called before HistogramUpdated.
// The arguments must not be modified.
type Observer interface {
	ImageUpdated(img *image.NRGBA)
	HistogramUpdated(h *Histogram)
}

// ObserverFuncs adapts two functions to the [Observer] interface.
// Either function may be nil.
type ObserverFuncs struct {
	Image     func(img *image.NRGBA)
	Histogram func(h *Histogram)
}

// ImageUpdated implements the [Observer] interface.
func (o ObserverFuncs) ImageUpdated(img *image.NRGBA) {
	if o.Image != nil {
		o.Image(img)
	}
}

// HistogramUpdated implements the [Observer] interface.
func (o ObserverFuncs) HistogramUpdated(h *Histogram) {
	if o.Histogram != nil {
		o.Histogram(h)
	}
}

// Options configures a [Session].
type Options struct {
	// Observer, if not nil, receives every adjusted image and its histogram.
	Observer Observer

	// AutoContrast enables stretching the intensity range of each channel
	// after the curves have been applied.
	AutoContrast bool

	// AutoContrastCutoff is the percentage of pixels ignored at each end
	// of the histogram when AutoContrast is set.
	AutoContrastCutoff float64
}

// Session holds the state of an interactive tone curve editor: the original
// image, one curve and lookup table per channel, and the adjusted image.
//
// Every editing operation rebuilds the lookup table of the affected channel,
// applies all three tables to the original image and recomputes the
// histogram of the result before it returns. The adjusted image is thus
// always determined by the original image and the current curves alone.
// Operations which return an error leave the session unchanged.
//
// A Session is not safe for concurrent use. Use [Session.Filter] to process
// images in other goroutines.
type Session struct {
	opts Options

	curves [NumChannels]*Curve
	luts   [NumChannels]LUT

	source     *image.NRGBA
	sourceHist *Histogram
	output     *image.NRGBA
	outputHist *Histogram
}

// NewSession creates a session with identity curves and no image.
// If opts is nil, default options are used.
func NewSession(opts *Options) *Session {
	s := &Session{
		source:     &image.NRGBA{},
		sourceHist: new(Histogram),
		output:     &image.NRGBA{},
		outputHist: new(Histogram),
	}
	if opts != nil {
		s.opts = *opts
	}
	for ch := range s.curves {
		s.curves[ch] = NewCurve()
		s.luts[ch] = *IdentityLUT()
	}
	return s
}

// SetSourceImage replaces the original image. The session keeps a private
// copy of img. The curves are kept and applied to the new image.
func (s *Session) SetSourceImage(img image.Image) {
	s.source = ToNRGBA(img)
	s.sourceHist = ComputeHistogram(s.source)
	Logger().Debug("source image set", "bounds", s.source.Rect)
	s.update()
}

// HasSource reports whether a non-empty original image is set.
func (s *Session) HasSource() bool {
	return !s.source.Rect.Empty()
}

// Source returns the original image. The image must not be modified.
func (s *Session) Source() *image.NRGBA {
	return s.source
}

// SourceHistogram returns the histogram of the original image.
func (s *Session) SourceHistogram() *Histogram {
	return s.sourceHist
}

// Image returns the adjusted image. The image must not be modified.
// If no original image is set, the result is empty.
func (s *Session) Image() *image.NRGBA {
	return s.output
}

// Histogram returns the histogram of the adjusted image.
func (s *Session) Histogram() *Histogram {
	return s.outputHist
}

// Points returns a copy of the control points for channel ch.
func (s *Session) Points(ch Channel) []ControlPoint {
	if !ch.Valid() {
		return nil
	}
	return s.curves[ch].Points()
}

// LUT returns the current lookup table for channel ch.
func (s *Session) LUT(ch Channel) LUT {
	if !ch.Valid() {
		return *IdentityLUT()
	}
	return s.luts[ch]
}

// LUTs returns the current lookup tables for all channels.
func (s *Session) LUTs() [NumChannels]LUT {
	return s.luts
}

// AddPoint adds a control point (x, y) to the curve for channel ch and
// returns the index of the new point. See [Curve.Add].
func (s *Session) AddPoint(ch Channel, x, y int) (int, error) {
	c, err := s.curve(ch)
	if err != nil {
		return -1, err
	}
	idx, err := c.Add(x, y)
	if err != nil {
		return -1, err
	}
	s.rebuild(ch)
	return idx, nil
}

// MovePoint moves control point i of channel ch. See [Curve.Move].
func (s *Session) MovePoint(ch Channel, i, x, y int) error {
	c, err := s.curve(ch)
	if err != nil {
		return err
	}
	if _, err := c.Move(i, x, y); err != nil {
		return err
	}
	s.rebuild(ch)
	return nil
}

// DeletePoint removes control point i of channel ch. See [Curve.Delete].
func (s *Session) DeletePoint(ch Channel, i int) error {
	c, err := s.curve(ch)
	if err != nil {
		return err
	}
	if err := c.Delete(i); err != nil {
		return err
	}
	s.rebuild(ch)
	return nil
}

// FindNearest returns the index of the interior control point of channel
// ch which is closest to (x, y). See [Curve.Nearest].
func (s *Session) FindNearest(ch Channel, x, y int) (int, bool) {
	c, err := s.curve(ch)
	if err != nil {
		return -1, false
	}
	return c.Nearest(x, y)
}

// Reset restores the identity curve for channel ch.
func (s *Session) Reset(ch Channel) error {
	c, err := s.curve(ch)
	if err != nil {
		return err
	}
	c.Reset()
	s.rebuild(ch)
	return nil
}

// ResetAll restores the identity curve for all channels.
func (s *Session) ResetAll() {
	for _, ch := range Channels {
		s.curves[ch].Reset()
	}
	s.rebuild(Channels[:]...)
}

// SavePoints returns the control points of all channels as a table.
func (s *Session) SavePoints() []Row {
	return RowsFromCurves(s.allPoints())
}

// LoadPoints replaces the control points of all channels by the points
// given in rows. Channels without rows are reset to the identity curve.
// If any row is invalid, no curve is changed and a [*MalformedDataError]
// is returned.
func (s *Session) LoadPoints(rows []Row) error {
	curves, err := CurvesFromRows(rows)
	if err != nil {
		Logger().Warn("curve data rejected", "error", err)
		return err
	}
	return s.SetCurves(curves)
}

// SetCurves replaces the control points of all channels.
// Either all curves are replaced or, if one of them is invalid, none.
func (s *Session) SetCurves(curves [NumChannels][]ControlPoint) error {
	for ch, points := range curves {
		if err := checkPoints(points); err != nil {
			return fmt.Errorf("channel %s: %w", Channel(ch), err)
		}
	}
	for ch, points := range curves {
		// cannot fail after the check above
		_ = s.curves[ch].SetPoints(points)
	}
	s.rebuild(Channels[:]...)
	return nil
}

// ApplyProcess applies the current lookup tables to img and returns the
// result. Neither img nor the session are modified, so that ApplyProcess
// can be called for many frames in a row.
func (s *Session) ApplyProcess(img image.Image) *image.NRGBA {
	return s.Filter().Process(img)
}

// Process implements the [Processor] interface using [Session.ApplyProcess].
func (s *Session) Process(img image.Image) *image.NRGBA {
	return s.ApplyProcess(img)
}

// Filter returns a snapshot of the current lookup tables. Later changes to
// the session do not affect the returned filter.
func (s *Session) Filter() *Filter {
	f := &Filter{luts: s.luts}
	if s.opts.AutoContrast {
		f = f.WithAutoContrast(s.opts.AutoContrastCutoff)
	}
	return f
}

func (s *Session) curve(ch Channel) (*Curve, error) {
	if !ch.Valid() {
		return nil, fmt.Errorf("%w %d", ErrInvalidChannel, int(ch))
	}
	return s.curves[ch], nil
}

func (s *Session) allPoints() [NumChannels][]ControlPoint {
	var res [NumChannels][]ControlPoint
	for ch, c := range s.curves {
		res[ch] = c.Points()
	}
	return res
}

// rebuild recomputes the lookup tables of the given channels and then
// updates the adjusted image.
func (s *Session) rebuild(channels ...Channel) {
	for _, ch := range channels {
		s.luts[ch] = *s.curves[ch].LUT()
		Logger().Debug("curve changed", "channel", ch, "points", s.curves[ch].Len())
	}
	s.update()
}

// update remaps the original image and recomputes the histogram.
func (s *Session) update() {
	if !s.HasSource() {
		s.output = &image.NRGBA{}
		s.outputHist = new(Histogram)
		return
	}

	s.output = s.Filter().apply(s.source)
	s.outputHist = ComputeHistogram(s.output)

	if obs := s.opts.Observer; obs != nil {
		obs.ImageUpdated(s.output)
		obs.HistogramUpdated(s.outputHist)
	}
}
