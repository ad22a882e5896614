// SPDX-License-Identifier: MIT
// Package: inference
//
// Purpose:
//   - Tail and interval probabilities of N(mu, sigma²).
//   - Symmetric and one-sided bounds obtained from InverseNormalCDF.

package inference

import (
	"math"

	"github.com/katalvlaran/scratchml/probability"
)

const (
	opApproximation  = "NormalApproximationToBinomial"
	opUpperBound     = "NormalUpperBound"
	opLowerBound     = "NormalLowerBound"
	opTwoSidedBounds = "TwoSidedBounds"
)

// NormalApproximationToBinomial returns the (mu, sigma) of the normal
// distribution approximating Binomial(n, p): mu = np, sigma = sqrt(np(1-p)).
//
// Errors:
//   - ErrNoTrials if n <= 0.
//   - probability.ErrProbabilityRange if p is not in [0, 1].
func NormalApproximationToBinomial(n int, p float64) (mu, sigma float64, err error) {
	if n <= 0 {
		return 0, 0, inferenceErrorf(opApproximation, ErrNoTrials)
	}
	if !(p >= 0 && p <= 1) {
		return 0, 0, inferenceErrorf(opApproximation, probability.ErrProbabilityRange)
	}
	mu = p * float64(n)
	return mu, math.Sqrt(p * (1 - p) * float64(n)), nil
}

// NormalProbabilityBelow returns P(X <= x).
func NormalProbabilityBelow(x, mu, sigma float64) float64 {
	return probability.NormalCDF(x, mu, sigma)
}

// NormalProbabilityAbove returns P(X > lo).
func NormalProbabilityAbove(lo, mu, sigma float64) float64 {
	return 1 - probability.NormalCDF(lo, mu, sigma)
}

// NormalProbabilityBetween returns P(lo < X <= hi).
func NormalProbabilityBetween(lo, hi, mu, sigma float64) float64 {
	return probability.NormalCDF(hi, mu, sigma) - probability.NormalCDF(lo, mu, sigma)
}

// NormalProbabilityOutside returns 1 - NormalProbabilityBetween(lo, hi).
func NormalProbabilityOutside(lo, hi, mu, sigma float64) float64 {
	return 1 - NormalProbabilityBetween(lo, hi, mu, sigma)
}

// NormalUpperBound returns z such that P(X <= z) = prob.
func NormalUpperBound(prob, mu, sigma float64) (float64, error) {
	z, err := probability.InverseNormalCDF(prob, mu, sigma)
	if err != nil {
		return 0, inferenceErrorf(opUpperBound, err)
	}
	return z, nil
}

// NormalLowerBound returns z such that P(X >= z) = prob.
func NormalLowerBound(prob, mu, sigma float64) (float64, error) {
	z, err := probability.InverseNormalCDF(1-prob, mu, sigma)
	if err != nil {
		return 0, inferenceErrorf(opLowerBound, err)
	}
	return z, nil
}

// TwoSidedBounds returns the symmetric interval around mu that contains
// probability prob.
//
// Errors:
//   - probability.ErrProbabilityRange if prob is not in [0, 1].
//   - probability.ErrNonPositiveSigma if sigma <= 0.
func TwoSidedBounds(prob, mu, sigma float64) (lo, hi float64, err error) {
	tail := (1 - prob) / 2
	if hi, err = NormalLowerBound(tail, mu, sigma); err != nil {
		return 0, 0, inferenceErrorf(opTwoSidedBounds, err)
	}
	if lo, err = NormalUpperBound(tail, mu, sigma); err != nil {
		return 0, 0, inferenceErrorf(opTwoSidedBounds, err)
	}
	return lo, hi, nil
}

// TwoSidedPValue returns the probability of a value at least as extreme as
// x, in either direction, under N(mu, sigma²).
func TwoSidedPValue(x, mu, sigma float64) float64 {
	if x >= mu {
		return 2 * NormalProbabilityAbove(x, mu, sigma)
	}
	return 2 * NormalProbabilityBelow(x, mu, sigma)
}

// Power returns 1 - P(lo < X <= hi) for X ~ N(mu1, sigma1²): the probability
// of rejecting when the alternative (mu1, sigma1) is true and the acceptance
// region is (lo, hi]. Use lo = -Inf for a one-sided test.
func Power(lo, hi, mu1, sigma1 float64) float64 {
	return 1 - NormalProbabilityBetween(lo, hi, mu1, sigma1)
}
