// SPDX-License-Identifier: MIT

package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/scratchml/dataset"
	"github.com/katalvlaran/scratchml/stats"
)

func TestCentralTendency_NumFriends(t *testing.T) {
	t.Parallel()

	xs := dataset.NumFriends()

	mean, err := stats.Mean(xs)
	require.NoError(t, err)
	assert.InDelta(t, 7.3333, mean, 1e-4)
	assert.InDelta(t, stat.Mean(xs, nil), mean, 1e-12)

	med, err := stats.Median(xs)
	require.NoError(t, err)
	assert.Equal(t, 6.0, med)

	for _, tc := range []struct{ p, want float64 }{
		{0.10, 1}, {0.25, 3}, {0.75, 9}, {0.90, 13},
	} {
		q, err := stats.Quantile(xs, tc.p)
		require.NoError(t, err)
		assert.Equal(t, tc.want, q, "p=%v", tc.p)
	}

	modes, err := stats.Mode(xs)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 6}, modes)
}

func TestDispersion_NumFriends(t *testing.T) {
	t.Parallel()

	xs := dataset.NumFriends()

	r, err := stats.DataRange(xs)
	require.NoError(t, err)
	assert.Equal(t, 99.0, r)

	v, err := stats.Variance(xs)
	require.NoError(t, err)
	assert.InDelta(t, 81.5435, v, 1e-4)
	assert.InDelta(t, stat.Variance(xs, nil), v, 1e-9)

	sd, err := stats.StandardDeviation(xs)
	require.NoError(t, err)
	assert.InDelta(t, 9.03014, sd, 1e-5)
	assert.InDelta(t, stat.StdDev(xs, nil), sd, 1e-9)

	iqr, err := stats.InterquartileRange(xs)
	require.NoError(t, err)
	assert.Equal(t, 6.0, iqr)
}

func TestMedian_EvenAndUnsorted(t *testing.T) {
	t.Parallel()

	xs := []float64{9, 1, 5, 3}
	m, err := stats.Median(xs)
	require.NoError(t, err)
	assert.Equal(t, 4.0, m)
	assert.Equal(t, []float64{9, 1, 5, 3}, xs, "input must not be reordered")

	m, err = stats.Median([]float64{2, 7, 1})
	require.NoError(t, err)
	assert.Equal(t, 2.0, m)
}

func TestDeMean(t *testing.T) {
	t.Parallel()

	d, err := stats.DeMean([]float64{1, 2, 3, 6})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -1, 0, 3}, d)
	assert.InDelta(t, 0, stats.Sum(d), 1e-12)
	assert.Equal(t, 0.0, stats.Sum(nil))
}

func TestStats_Errors(t *testing.T) {
	t.Parallel()

	_, err := stats.Mean(nil)
	assert.ErrorIs(t, err, stats.ErrEmptyInput)
	_, err = stats.Median(nil)
	assert.ErrorIs(t, err, stats.ErrEmptyInput)
	_, err = stats.Mode(nil)
	assert.ErrorIs(t, err, stats.ErrEmptyInput)
	_, err = stats.DataRange(nil)
	assert.ErrorIs(t, err, stats.ErrEmptyInput)
	_, err = stats.Quantile(nil, 0.5)
	assert.ErrorIs(t, err, stats.ErrEmptyInput)
	_, err = stats.Variance([]float64{1})
	assert.ErrorIs(t, err, stats.ErrInsufficientData)
	_, err = stats.StandardDeviation(nil)
	assert.ErrorIs(t, err, stats.ErrInsufficientData)

	for _, p := range []float64{-0.1, 1, math.NaN()} {
		_, err = stats.Quantile([]float64{1, 2}, p)
		assert.ErrorIs(t, err, stats.ErrQuantileRange)
	}
}

func TestCovarianceCorrelation(t *testing.T) {
	t.Parallel()

	xs := dataset.NumFriends()
	ys := dataset.DailyMinutes()

	cov, err := stats.Covariance(xs, ys)
	require.NoError(t, err)
	assert.InDelta(t, 22.4254, cov, 1e-4)
	assert.InDelta(t, stat.Covariance(xs, ys, nil), cov, 1e-9)

	r, err := stats.Correlation(xs, ys)
	require.NoError(t, err)
	assert.InDelta(t, 0.24737, r, 1e-5)
	assert.InDelta(t, stat.Correlation(xs, ys, nil), r, 1e-12)

	gf, gm := dataset.GoodSeries()
	r, err = stats.Correlation(gf, gm)
	require.NoError(t, err)
	assert.InDelta(t, 0.57368, r, 1e-5)
}

func TestCorrelation_DegenerateAndErrors(t *testing.T) {
	t.Parallel()

	r, err := stats.Correlation([]float64{3, 3, 3}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)

	_, err = stats.Covariance([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, stats.ErrLengthMismatch)
	_, err = stats.Covariance([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, stats.ErrInsufficientData)
	_, err = stats.Correlation([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, stats.ErrLengthMismatch)
}
