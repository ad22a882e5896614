// SPDX-License-Identifier: MIT

package gradient_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scratchml/gradient"
	"github.com/katalvlaran/scratchml/linalg"
)

type point struct{ x, y float64 }

// line returns (x, 20x+5) for integer x in [lo, hi).
func line(lo, hi int) []point {
	out := make([]point, 0, hi-lo)
	for x := lo; x < hi; x++ {
		out = append(out, point{float64(x), 20*float64(x) + 5})
	}
	return out
}

// linearGradient is the squared-error gradient of y ≈ theta[0]·x + theta[1].
func linearGradient(p point, theta linalg.Vector) (linalg.Vector, error) {
	e := theta[0]*p.x + theta[1] - p.y
	return linalg.Vector{2 * e * p.x, 2 * e}, nil
}

func TestFit_PerExample(t *testing.T) {
	t.Parallel()

	opts := gradient.DefaultOptions()
	opts.Epochs = 1000
	opts.Shuffle = true
	opts.Seed = 0
	theta, err := gradient.Fit(line(-10, 10), 2, linearGradient, opts)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, theta[0], 0.01)
	assert.InDelta(t, 5.0, theta[1], 0.01)
}

func TestFit_Minibatch(t *testing.T) {
	t.Parallel()

	opts := gradient.DefaultOptions()
	opts.Epochs = 2000
	opts.BatchSize = 5
	opts.Shuffle = true
	opts.Seed = 42
	theta, err := gradient.Fit(line(-10, 10), 2, linearGradient, opts)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, theta[0], 0.01)
	assert.InDelta(t, 5.0, theta[1], 0.01)
}

func TestFit_FullBatch(t *testing.T) {
	t.Parallel()

	data := line(-50, 50)
	opts := gradient.DefaultOptions()
	opts.Epochs = 5000
	opts.BatchSize = len(data)
	theta, err := gradient.Fit(data, 2, linearGradient, opts)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, theta[0], 0.01)
	assert.InDelta(t, 5.0, theta[1], 0.01)
}

func TestFit_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	data := line(-50, 50)
	opts := gradient.DefaultOptions()
	opts.Epochs = 500
	opts.BatchSize = len(data)
	seq, err := gradient.Fit(data, 2, linearGradient, opts)
	require.NoError(t, err)

	opts.Workers = 4
	par, err := gradient.Fit(data, 2, linearGradient, opts)
	require.NoError(t, err)
	for i := range seq {
		assert.InDelta(t, seq[i], par[i], 1e-9)
	}
}

func TestFit_ToleranceStopsEarly(t *testing.T) {
	t.Parallel()

	data := line(-50, 50)
	calls := 0
	counting := func(p point, theta linalg.Vector) (linalg.Vector, error) {
		calls++
		return linearGradient(p, theta)
	}
	opts := gradient.DefaultOptions()
	opts.Epochs = 20000
	opts.BatchSize = len(data)
	opts.Tolerance = 1e-6
	theta, err := gradient.Fit(data, 2, counting, opts)
	require.NoError(t, err)
	assert.Less(t, calls, opts.Epochs*len(data))
	assert.InDelta(t, 20.0, theta[0], 0.01)
	assert.InDelta(t, 5.0, theta[1], 0.01)
}

func TestFitFrom_DoesNotMutateStart(t *testing.T) {
	t.Parallel()

	start := linalg.Vector{0, 0}
	opts := gradient.DefaultOptions()
	opts.Epochs = 10
	_, err := gradient.FitFrom(line(-5, 5), start, linearGradient, opts)
	require.NoError(t, err)
	assert.Equal(t, linalg.Vector{0, 0}, start)
}

func TestFit_Deterministic(t *testing.T) {
	t.Parallel()

	opts := gradient.DefaultOptions()
	opts.Epochs = 20
	opts.Shuffle = true
	opts.Seed = 99
	a, err := gradient.Fit(line(-10, 10), 2, linearGradient, opts)
	require.NoError(t, err)
	b, err := gradient.Fit(line(-10, 10), 2, linearGradient, opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFit_Errors(t *testing.T) {
	t.Parallel()

	good := gradient.DefaultOptions()
	data := line(0, 5)

	_, err := gradient.Fit([]point{}, 2, linearGradient, good)
	assert.ErrorIs(t, err, gradient.ErrEmptyDataset)

	_, err = gradient.Fit(data, 0, linearGradient, good)
	assert.ErrorIs(t, err, gradient.ErrBadOptions)

	_, err = gradient.Fit[point](data, 2, nil, good)
	assert.ErrorIs(t, err, gradient.ErrNilGradient)

	bad := good
	bad.BatchSize = 0
	_, err = gradient.Fit(data, 2, linearGradient, bad)
	assert.ErrorIs(t, err, gradient.ErrBadBatchSize)

	for name, mutate := range map[string]func(*gradient.Options){
		"epochs":    func(o *gradient.Options) { o.Epochs = 0 },
		"rate":      func(o *gradient.Options) { o.LearningRate = 0 },
		"init":      func(o *gradient.Options) { o.InitLow, o.InitHigh = 1, 0 },
		"tolerance": func(o *gradient.Options) { o.Tolerance = -1 },
		"workers":   func(o *gradient.Options) { o.Workers = -2 },
	} {
		o := good
		mutate(&o)
		_, err = gradient.Fit(data, 2, linearGradient, o)
		assert.ErrorIs(t, err, gradient.ErrBadOptions, name)
	}

	wrongLen := func(point, linalg.Vector) (linalg.Vector, error) { return linalg.Vector{1}, nil }
	_, err = gradient.Fit(data, 2, wrongLen, good)
	assert.ErrorIs(t, err, gradient.ErrLengthMismatch)

	boom := errors.New("boom")
	failing := func(point, linalg.Vector) (linalg.Vector, error) { return nil, boom }
	_, err = gradient.Fit(data, 2, failing, good)
	assert.ErrorIs(t, err, boom)

	good.Workers = 3
	_, err = gradient.Fit(data, 2, failing, good)
	assert.ErrorIs(t, err, boom)
}
