// SPDX-License-Identifier: MIT
// Package: plotting
//
// Purpose:
//   - Chart builders over plain float slices and labeled points.
//   - Output helpers shared by every chart.

package plotting

import (
	"image/color"
	"io"
	"math"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/scratchml/knn"
	"github.com/katalvlaran/scratchml/linalg"
)

const (
	opRegression = "RegressionPlot"
	opHistogram  = "Histogram"
	opScatter    = "LabeledScatter"
	opBarChart   = "BarChart"
	opSave       = "Save"
	opEncode     = "Encode"
	opMark       = "MarkPoints"
)

// Options sets titles and the output size.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

const defaultSide = 4 * vg.Inch

// DefaultOptions returns an untitled 4×4 inch canvas.
func DefaultOptions() Options {
	return Options{Width: defaultSide, Height: defaultSide}
}

// size returns the canvas size, substituting the default for unset sides.
func (o Options) size() (w, h vg.Length) {
	w, h = o.Width, o.Height
	if w <= 0 {
		w = defaultSide
	}
	if h <= 0 {
		h = defaultSide
	}
	return w, h
}

func newPlot(o Options) *plot.Plot {
	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	return p
}

var (
	pointColor = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	lineColor  = color.RGBA{R: 255, A: 255}
)

// RegressionPlot scatters (xs, ys) and draws y = alpha + beta·x across the
// x range of the data.
//
// Errors:
//   - ErrEmptyInput if xs is empty.
//   - ErrLengthMismatch if len(xs) != len(ys).
func RegressionPlot(xs, ys []float64, alpha, beta float64, o Options) (*plot.Plot, error) {
	if len(xs) != len(ys) {
		return nil, plottingErrorf(opRegression, ErrLengthMismatch)
	}
	if len(xs) == 0 {
		return nil, plottingErrorf(opRegression, ErrEmptyInput)
	}
	p := newPlot(o)

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, plottingErrorf(opRegression, err)
	}
	s.Color = pointColor
	p.Add(s)

	lo, hi := slices.Min(xs), slices.Max(xs)
	l, err := plotter.NewLine(plotter.XYs{
		{X: lo, Y: alpha + beta*lo},
		{X: hi, Y: alpha + beta*hi},
	})
	if err != nil {
		return nil, plottingErrorf(opRegression, err)
	}
	l.Color = lineColor
	l.LineStyle.Width = vg.Points(2)
	p.Add(l)
	return p, nil
}

// Histogram bins values into the given number of equal-width bins.
//
// Errors:
//   - ErrEmptyInput if values is empty.
//   - ErrBadBins if bins <= 0.
func Histogram(values []float64, bins int, o Options) (*plot.Plot, error) {
	if len(values) == 0 {
		return nil, plottingErrorf(opHistogram, ErrEmptyInput)
	}
	if bins <= 0 {
		return nil, plottingErrorf(opHistogram, ErrBadBins)
	}
	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return nil, plottingErrorf(opHistogram, err)
	}
	p := newPlot(o)
	p.Add(h)
	return p, nil
}

// LabeledScatter plots feature xIdx against feature yIdx, one series per
// label in order of first appearance, with a legend.
//
// Errors:
//   - ErrEmptyInput if points is empty.
//   - ErrFeatureIndex if an index is negative or beyond some point's length.
func LabeledScatter(points []knn.LabeledPoint, xIdx, yIdx int, o Options) (*plot.Plot, error) {
	if len(points) == 0 {
		return nil, plottingErrorf(opScatter, ErrEmptyInput)
	}
	var labels []string
	series := make(map[string]plotter.XYs)
	for _, pt := range points {
		if xIdx < 0 || yIdx < 0 || xIdx >= len(pt.Point) || yIdx >= len(pt.Point) {
			return nil, plottingErrorf(opScatter, ErrFeatureIndex)
		}
		if _, ok := series[pt.Label]; !ok {
			labels = append(labels, pt.Label)
		}
		series[pt.Label] = append(series[pt.Label], plotter.XY{X: pt.Point[xIdx], Y: pt.Point[yIdx]})
	}

	p := newPlot(o)
	for i, label := range labels {
		s, err := plotter.NewScatter(series[label])
		if err != nil {
			return nil, plottingErrorf(opScatter, err)
		}
		s.Color = plotutil.Color(i)
		s.Shape = plotutil.Shape(i)
		s.Radius = vg.Points(3)
		p.Add(s)
		p.Legend.Add(label, s)
	}
	p.Legend.Top = true
	return p, nil
}

// BarChart draws one bar per label.
//
// Errors:
//   - ErrEmptyInput if labels is empty.
//   - ErrLengthMismatch if len(labels) != len(values).
func BarChart(labels []string, values []float64, o Options) (*plot.Plot, error) {
	if len(labels) != len(values) {
		return nil, plottingErrorf(opBarChart, ErrLengthMismatch)
	}
	if len(labels) == 0 {
		return nil, plottingErrorf(opBarChart, ErrEmptyInput)
	}
	w, _ := o.size()
	bars, err := plotter.NewBarChart(plotter.Values(values), barWidth(w, len(values)))
	if err != nil {
		return nil, plottingErrorf(opBarChart, err)
	}
	bars.Color = pointColor
	bars.LineStyle.Width = 0
	p := newPlot(o)
	p.Add(bars)
	p.NominalX(labels...)
	return p, nil
}

// barWidth spreads n bars over roughly two thirds of the canvas.
func barWidth(total vg.Length, n int) vg.Length {
	return vg.Length(math.Max(2, float64(total)*2/3/float64(n)))
}

// Save writes p to path; the extension picks the format.
func Save(p *plot.Plot, path string, o Options) error {
	w, h := o.size()
	if err := p.Save(w, h, path); err != nil {
		return plottingErrorf(opSave, err)
	}
	return nil
}

// Encode writes p to w in format ("png", "svg", "pdf", ...).
func Encode(w io.Writer, p *plot.Plot, format string, o Options) error {
	width, height := o.size()
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return plottingErrorf(opEncode, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return plottingErrorf(opEncode, err)
	}
	return nil
}

// MarkPoints adds crosses at the first two coordinates of each point, as a
// legend entry called name. Points with fewer than two coordinates are
// rejected.
//
// Errors:
//   - ErrEmptyInput if pts is empty.
//   - ErrFeatureIndex for a point shorter than two.
func MarkPoints(p *plot.Plot, name string, pts ...linalg.Vector) error {
	if len(pts) == 0 {
		return plottingErrorf(opMark, ErrEmptyInput)
	}
	xys := make(plotter.XYs, len(pts))
	for i, v := range pts {
		if len(v) < 2 {
			return plottingErrorf(opMark, ErrFeatureIndex)
		}
		xys[i] = plotter.XY{X: v[0], Y: v[1]}
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return plottingErrorf(opMark, err)
	}
	s.Shape = draw.CrossGlyph{}
	s.Radius = vg.Points(5)
	s.Color = color.Black
	p.Add(s)
	if name != "" {
		p.Legend.Add(name, s)
	}
	return nil
}
