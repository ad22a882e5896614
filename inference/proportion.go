// SPDX-License-Identifier: MIT

package inference

import (
	"math"
)

const (
	opEstimatedParameters = "EstimatedParameters"
	opConfidenceInterval  = "ProportionConfidenceInterval"
	opABTestStatistic     = "ABTestStatistic"
)

// EstimatedParameters returns the observed success rate p = successes/trials
// and its standard error sqrt(p(1-p)/trials).
//
// Errors:
//   - ErrNoTrials if trials <= 0.
//   - ErrSuccessesRange if successes is not in [0, trials].
func EstimatedParameters(trials, successes int) (p, sigma float64, err error) {
	if trials <= 0 {
		return 0, 0, inferenceErrorf(opEstimatedParameters, ErrNoTrials)
	}
	if successes < 0 || successes > trials {
		return 0, 0, inferenceErrorf(opEstimatedParameters, ErrSuccessesRange)
	}
	p = float64(successes) / float64(trials)
	return p, math.Sqrt(p * (1 - p) / float64(trials)), nil
}

// ProportionConfidenceInterval returns the normal-approximation interval
// containing the true success rate with the given confidence.
//
// Errors:
//   - EstimatedParameters errors.
//   - ErrZeroVariance if every trial succeeded or none did.
//   - probability.ErrProbabilityRange if confidence is not in [0, 1].
func ProportionConfidenceInterval(trials, successes int, confidence float64) (lo, hi float64, err error) {
	p, sigma, err := EstimatedParameters(trials, successes)
	if err != nil {
		return 0, 0, inferenceErrorf(opConfidenceInterval, err)
	}
	if sigma == 0 {
		return 0, 0, inferenceErrorf(opConfidenceInterval, ErrZeroVariance)
	}
	lo, hi, err = TwoSidedBounds(confidence, p, sigma)
	if err != nil {
		return 0, 0, inferenceErrorf(opConfidenceInterval, err)
	}
	return lo, hi, nil
}

// ABTestStatistic returns the z statistic for "B's rate differs from A's":
// (pB - pA) / sqrt(sigmaA² + sigmaB²). Feed it to TwoSidedPValue(z, 0, 1).
//
// Errors:
//   - EstimatedParameters errors for either arm.
//   - ErrZeroVariance if both arms have zero standard error.
func ABTestStatistic(trialsA, successesA, trialsB, successesB int) (float64, error) {
	pA, sigmaA, err := EstimatedParameters(trialsA, successesA)
	if err != nil {
		return 0, inferenceErrorf(opABTestStatistic, err)
	}
	pB, sigmaB, err := EstimatedParameters(trialsB, successesB)
	if err != nil {
		return 0, inferenceErrorf(opABTestStatistic, err)
	}
	den := math.Sqrt(sigmaA*sigmaA + sigmaB*sigmaB)
	if den == 0 {
		return 0, inferenceErrorf(opABTestStatistic, ErrZeroVariance)
	}
	return (pB - pA) / den, nil
}
