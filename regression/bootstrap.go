// SPDX-License-Identifier: MIT

package regression

import (
	"math/rand"

	"github.com/katalvlaran/scratchml/inference"
	"github.com/katalvlaran/scratchml/linalg"
	"github.com/katalvlaran/scratchml/probability"
	"github.com/katalvlaran/scratchml/stats"
)

const (
	opBootstrapStandardErrors = "BootstrapStandardErrors"
	opCoefficientPValue       = "CoefficientPValue"
)

// BootstrapFitOptions returns the fit used per bootstrap sample on the
// friends/minutes data: lr 0.001, 5000 epochs, batch 25, sequential.
func BootstrapFitOptions() FitOptions {
	o := DefaultFitOptions()
	o.Epochs = 5000
	o.BatchSize = 25
	return o
}

// EstimateSampleBeta fits one bootstrap sample with FitMultiple.
func EstimateSampleBeta(sample []Example, opts FitOptions) (linalg.Vector, error) {
	return FitMultiple(sample, opts)
}

// BootstrapStandardErrors refits beta on numSamples bootstrap resamples of
// examples and returns, per coefficient, the standard deviation of the
// refitted values.
//
// Errors:
//   - ErrBadSamples if numSamples < 2.
//   - FitMultiple errors.
func BootstrapStandardErrors(examples []Example, numSamples int, opts FitOptions, r *rand.Rand) (linalg.Vector, error) {
	if numSamples < 2 {
		return nil, regressionErrorf(opBootstrapStandardErrors, ErrBadSamples)
	}
	dim, err := featureCount(examples)
	if err != nil {
		return nil, regressionErrorf(opBootstrapStandardErrors, err)
	}
	betas, err := inference.BootstrapStatistic(examples, func(sample []Example) (linalg.Vector, error) {
		return EstimateSampleBeta(sample, opts)
	}, numSamples, r)
	if err != nil {
		return nil, regressionErrorf(opBootstrapStandardErrors, err)
	}

	out := make(linalg.Vector, dim)
	column := make([]float64, numSamples)
	for j := 0; j < dim; j++ {
		for i, b := range betas {
			column[i] = b[j]
		}
		if out[j], err = stats.StandardDeviation(column); err != nil {
			return nil, regressionErrorf(opBootstrapStandardErrors, err)
		}
	}
	return out, nil
}

// CoefficientPValue returns the two-sided p-value of the hypothesis
// "the true coefficient is 0" given estimate betaHat and standard error
// sigmaHat, under a normal approximation.
//
// Errors:
//   - ErrNonPositiveSigma if sigmaHat <= 0.
func CoefficientPValue(betaHat, sigmaHat float64) (float64, error) {
	if !(sigmaHat > 0) {
		return 0, regressionErrorf(opCoefficientPValue, ErrNonPositiveSigma)
	}
	z := betaHat / sigmaHat
	if betaHat > 0 {
		return 2 * (1 - probability.NormalCDF(z, 0, 1)), nil
	}
	return 2 * probability.NormalCDF(z, 0, 1), nil
}
