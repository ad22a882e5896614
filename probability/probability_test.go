// SPDX-License-Identifier: MIT

package probability_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/scratchml/internal/rng"
	"github.com/katalvlaran/scratchml/probability"
)

func TestUniform(t *testing.T) {
	t.Parallel()

	cases := []struct{ x, pdf, cdf float64 }{
		{-0.5, 0, 0},
		{0, 1, 0},
		{0.25, 1, 0.25},
		{0.999, 1, 0.999},
		{1, 0, 1},
		{3, 0, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.pdf, probability.UniformPDF(c.x), "pdf(%v)", c.x)
		assert.Equal(t, c.cdf, probability.UniformCDF(c.x), "cdf(%v)", c.x)
	}
}

func TestNormal_MatchesGonum(t *testing.T) {
	t.Parallel()

	for _, d := range []distuv.Normal{{Mu: 0, Sigma: 1}, {Mu: 0, Sigma: 0.5}, {Mu: -1, Sigma: 2}, {Mu: 500, Sigma: 15.8}} {
		for x := -5.0; x <= 5.0; x += 0.1 {
			xx := d.Mu + x*d.Sigma
			assert.InDelta(t, d.Prob(xx), probability.NormalPDF(xx, d.Mu, d.Sigma), 1e-12)
			assert.InDelta(t, d.CDF(xx), probability.NormalCDF(xx, d.Mu, d.Sigma), 1e-12)
		}
	}
	assert.True(t, math.IsNaN(probability.NormalPDF(0, 0, 0)))
	assert.True(t, math.IsNaN(probability.NormalCDF(0, 0, -1)))
}

func TestInverseNormalCDF(t *testing.T) {
	t.Parallel()

	z, err := probability.InverseNormalCDF(0.975, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.96, z, 1e-4)

	for _, p := range []float64{0.01, 0.1, 0.5, 0.9, 0.99} {
		x, err := probability.InverseNormalCDF(p, 3, 2)
		require.NoError(t, err)
		want := distuv.Normal{Mu: 3, Sigma: 2}.Quantile(p)
		assert.InDelta(t, want, x, 2*2*probability.DefaultTolerance, "p=%v", p)
	}

	lo, err := probability.InverseNormalCDF(0, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, -10, lo, 1e-4)

	fine, err := probability.InverseNormalCDFTol(0.975, 0, 1, 1e-10)
	require.NoError(t, err)
	assert.InDelta(t, distuv.UnitNormal.Quantile(0.975), fine, 1e-9)
}

func TestInverseNormalCDF_Errors(t *testing.T) {
	t.Parallel()

	_, err := probability.InverseNormalCDF(1.5, 0, 1)
	assert.ErrorIs(t, err, probability.ErrProbabilityRange)
	_, err = probability.InverseNormalCDF(-0.1, 0, 1)
	assert.ErrorIs(t, err, probability.ErrProbabilityRange)
	_, err = probability.InverseNormalCDF(math.NaN(), 0, 1)
	assert.ErrorIs(t, err, probability.ErrProbabilityRange)
	_, err = probability.InverseNormalCDF(0.5, 0, 0)
	assert.ErrorIs(t, err, probability.ErrNonPositiveSigma)
	_, err = probability.InverseNormalCDFTol(0.5, 0, 1, 0)
	assert.ErrorIs(t, err, probability.ErrBadTolerance)
}

func TestBinomial(t *testing.T) {
	t.Parallel()

	r := rng.New(17)
	const n, p, draws = 100, 0.75, 2000
	var sum float64
	for i := 0; i < draws; i++ {
		k, err := probability.Binomial(n, p, r)
		require.NoError(t, err)
		require.GreaterOrEqual(t, k, 0)
		require.LessOrEqual(t, k, n)
		sum += float64(k)
	}
	assert.InDelta(t, n*p, sum/draws, 0.5)

	k, err := probability.Binomial(0, 0.3, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, k)

	_, err = probability.Binomial(-1, 0.5, nil)
	assert.ErrorIs(t, err, probability.ErrNegativeTrials)
	_, err = probability.Binomial(10, 1.2, nil)
	assert.ErrorIs(t, err, probability.ErrProbabilityRange)
}

func TestBernoulliTrial_Extremes(t *testing.T) {
	t.Parallel()

	r := rng.New(3)
	for i := 0; i < 100; i++ {
		assert.Equal(t, 0, probability.BernoulliTrial(0, r))
		assert.Equal(t, 1, probability.BernoulliTrial(1, r))
	}
}

func TestConditionalKids(t *testing.T) {
	t.Parallel()

	res, err := probability.ConditionalKids(10000, rng.New(1))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, res.BothGivenOlder, 0.03)
	assert.InDelta(t, 1.0/3, res.BothGivenEither, 0.03)

	_, err = probability.ConditionalKids(-1, nil)
	assert.ErrorIs(t, err, probability.ErrNegativeTrials)
}
