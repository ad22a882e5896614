// SPDX-License-Identifier: MIT

package regression

import (
	"github.com/katalvlaran/scratchml/gradient"
	"github.com/katalvlaran/scratchml/linalg"
)

const (
	opSquaredErrorRidge    = "SquaredErrorRidge"
	opSqErrorRidgeGradient = "SqErrorRidgeGradient"
	opFitRidge             = "FitRidge"
)

// RidgePenalty returns alpha·Σ beta[1:]². beta[0] is the intercept and is
// not penalised.
func RidgePenalty(beta linalg.Vector, alpha float64) float64 {
	if len(beta) < 2 {
		return 0
	}
	return alpha * linalg.SumOfSquares(beta[1:])
}

// SquaredErrorRidge returns SquaredError + RidgePenalty.
func SquaredErrorRidge(x linalg.Vector, y float64, beta linalg.Vector, alpha float64) (float64, error) {
	se, err := SquaredError(x, y, beta)
	if err != nil {
		return 0, regressionErrorf(opSquaredErrorRidge, err)
	}
	return se + RidgePenalty(beta, alpha), nil
}

// RidgePenaltyGradient returns [0, 2·alpha·beta[1], ..., 2·alpha·beta[n-1]].
func RidgePenaltyGradient(beta linalg.Vector, alpha float64) linalg.Vector {
	out := make(linalg.Vector, len(beta))
	for i := 1; i < len(beta); i++ {
		out[i] = 2 * alpha * beta[i]
	}
	return out
}

// SqErrorRidgeGradient returns SqErrorGradient + RidgePenaltyGradient.
func SqErrorRidgeGradient(x linalg.Vector, y float64, beta linalg.Vector, alpha float64) (linalg.Vector, error) {
	g, err := SqErrorGradient(x, y, beta)
	if err != nil {
		return nil, regressionErrorf(opSqErrorRidgeGradient, err)
	}
	out, err := linalg.Add(g, RidgePenaltyGradient(beta, alpha))
	if err != nil {
		return nil, regressionErrorf(opSqErrorRidgeGradient, err)
	}
	return out, nil
}

// FitRidge is FitMultiple with the ridge penalty added to every example's
// loss. alpha == 0 reduces to FitMultiple.
//
// Errors:
//   - ErrNegativeAlpha if alpha < 0.
//   - same as FitMultiple otherwise.
func FitRidge(examples []Example, alpha float64, opts FitOptions) (linalg.Vector, error) {
	if alpha < 0 {
		return nil, regressionErrorf(opFitRidge, ErrNegativeAlpha)
	}
	dim, err := featureCount(examples)
	if err != nil {
		return nil, regressionErrorf(opFitRidge, err)
	}
	beta, err := gradient.Fit(examples, dim, func(ex Example, beta linalg.Vector) (linalg.Vector, error) {
		return SqErrorRidgeGradient(ex.X, ex.Y, beta, alpha)
	}, opts)
	if err != nil {
		return nil, regressionErrorf(opFitRidge, err)
	}
	return beta, nil
}
