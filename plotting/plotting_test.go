// SPDX-License-Identifier: MIT

package plotting_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scratchml/dataset"
	"github.com/katalvlaran/scratchml/knn"
	"github.com/katalvlaran/scratchml/linalg"
	"github.com/katalvlaran/scratchml/plotting"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestRegressionPlot_EncodesPNG(t *testing.T) {
	t.Parallel()

	xs, ys := dataset.GoodSeries()
	o := plotting.DefaultOptions()
	o.Title = "minutes vs friends"
	p, err := plotting.RegressionPlot(xs, ys, 22.95, 0.9039, o)
	require.NoError(t, err)
	assert.Equal(t, "minutes vs friends", p.Title.Text)

	var buf bytes.Buffer
	require.NoError(t, plotting.Encode(&buf, p, "png", o))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestHistogram_EncodesSVG(t *testing.T) {
	t.Parallel()

	p, err := plotting.Histogram(dataset.NumFriends(), 10, plotting.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, plotting.Encode(&buf, p, "svg", plotting.Options{}))
	assert.Contains(t, buf.String(), "<svg")
}

func TestLabeledScatter_Iris(t *testing.T) {
	t.Parallel()

	p, err := plotting.LabeledScatter(dataset.Iris(), 0, 2, plotting.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, plotting.MarkPoints(p, "query", linalg.Vector{5.5, 3.0}))

	var buf bytes.Buffer
	require.NoError(t, plotting.Encode(&buf, p, "png", plotting.DefaultOptions()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestBarChart_Save(t *testing.T) {
	t.Parallel()

	p, err := plotting.BarChart([]string{"a", "b", "c"}, []float64{3, 1, 2}, plotting.DefaultOptions())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "bars.png")
	require.NoError(t, plotting.Save(p, path, plotting.DefaultOptions()))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, pngMagic))
}

func TestPlotting_Errors(t *testing.T) {
	t.Parallel()

	o := plotting.DefaultOptions()
	_, err := plotting.RegressionPlot(nil, nil, 0, 1, o)
	assert.ErrorIs(t, err, plotting.ErrEmptyInput)
	_, err = plotting.RegressionPlot([]float64{1}, nil, 0, 1, o)
	assert.ErrorIs(t, err, plotting.ErrLengthMismatch)

	_, err = plotting.Histogram(nil, 3, o)
	assert.ErrorIs(t, err, plotting.ErrEmptyInput)
	_, err = plotting.Histogram([]float64{1}, 0, o)
	assert.ErrorIs(t, err, plotting.ErrBadBins)

	_, err = plotting.LabeledScatter(nil, 0, 1, o)
	assert.ErrorIs(t, err, plotting.ErrEmptyInput)
	pts := []knn.LabeledPoint{{Point: linalg.Vector{1, 2}, Label: "a"}}
	_, err = plotting.LabeledScatter(pts, 0, 2, o)
	assert.ErrorIs(t, err, plotting.ErrFeatureIndex)

	_, err = plotting.BarChart([]string{"a"}, nil, o)
	assert.ErrorIs(t, err, plotting.ErrLengthMismatch)
	_, err = plotting.BarChart(nil, nil, o)
	assert.ErrorIs(t, err, plotting.ErrEmptyInput)

	p, err := plotting.LabeledScatter(pts, 0, 1, o)
	require.NoError(t, err)
	assert.ErrorIs(t, plotting.MarkPoints(p, "x"), plotting.ErrEmptyInput)
	assert.ErrorIs(t, plotting.MarkPoints(p, "x", linalg.Vector{1}), plotting.ErrFeatureIndex)

	var buf bytes.Buffer
	assert.Error(t, plotting.Encode(&buf, p, "bogus", o))
}
