// SPDX-License-Identifier: MIT

package gradient

import (
	"github.com/katalvlaran/scratchml/linalg"
)

const (
	opDifferenceQuotient        = "DifferenceQuotient"
	opPartialDifferenceQuotient = "PartialDifferenceQuotient"
	opEstimateGradient          = "EstimateGradient"
	opStep                      = "Step"
	opDescend                   = "Descend"
)

// DifferenceQuotient returns (f(x+h) - f(x)) / h, the forward-difference
// estimate of f'(x).
//
// Errors:
//   - ErrZeroStep if h == 0.
func DifferenceQuotient(f func(float64) float64, x, h float64) (float64, error) {
	if h == 0 {
		return 0, gradientErrorf(opDifferenceQuotient, ErrZeroStep)
	}
	return (f(x+h) - f(x)) / h, nil
}

// PartialDifferenceQuotient estimates ∂f/∂v[i] by bumping only coordinate i
// by h. v is not modified.
//
// Errors:
//   - ErrZeroStep if h == 0.
//   - ErrOutOfRange if i is not in [0, len(v)).
func PartialDifferenceQuotient(f func(linalg.Vector) float64, v linalg.Vector, i int, h float64) (float64, error) {
	if h == 0 {
		return 0, gradientErrorf(opPartialDifferenceQuotient, ErrZeroStep)
	}
	if i < 0 || i >= len(v) {
		return 0, gradientErrorf(opPartialDifferenceQuotient, ErrOutOfRange)
	}
	w := v.Clone()
	w[i] += h
	return (f(w) - f(v)) / h, nil
}

// EstimateGradient returns the vector of partial difference quotients of f
// at v. It evaluates f 2·len(v) times.
//
// Errors:
//   - ErrZeroStep if h == 0.
func EstimateGradient(f func(linalg.Vector) float64, v linalg.Vector, h float64) (linalg.Vector, error) {
	if h == 0 {
		return nil, gradientErrorf(opEstimateGradient, ErrZeroStep)
	}
	out := make(linalg.Vector, len(v))
	for i := range v {
		d, err := PartialDifferenceQuotient(f, v, i, h)
		if err != nil {
			return nil, gradientErrorf(opEstimateGradient, err)
		}
		out[i] = d
	}
	return out, nil
}

// Step moves v by stepSize along g: v + stepSize·g.
// A negative stepSize moves against the gradient.
//
// Errors:
//   - ErrLengthMismatch if len(v) != len(g).
func Step(v, g linalg.Vector, stepSize float64) (linalg.Vector, error) {
	if len(v) != len(g) {
		return nil, gradientErrorf(opStep, ErrLengthMismatch)
	}
	out, err := linalg.Add(v, linalg.ScalarMultiply(stepSize, g))
	if err != nil {
		return nil, gradientErrorf(opStep, err)
	}
	return out, nil
}

// SumOfSquaresGradient is the gradient of Σ v[i]², namely 2v.
func SumOfSquaresGradient(v linalg.Vector) linalg.Vector {
	return linalg.ScalarMultiply(2, v)
}

// Descend runs steps fixed-size updates theta ← theta + stepSize·gradFn(theta)
// starting from a copy of theta0 and returns the final iterate.
// Pass a negative stepSize to minimise.
//
// Errors:
//   - ErrNilGradient if gradFn is nil.
//   - ErrBadOptions if steps < 0.
//   - ErrLengthMismatch if gradFn returns a vector of the wrong length.
func Descend(theta0 linalg.Vector, gradFn func(linalg.Vector) linalg.Vector, stepSize float64, steps int) (linalg.Vector, error) {
	if gradFn == nil {
		return nil, gradientErrorf(opDescend, ErrNilGradient)
	}
	if steps < 0 {
		return nil, gradientErrorf(opDescend, ErrBadOptions)
	}
	theta := theta0.Clone()
	for s := 0; s < steps; s++ {
		next, err := Step(theta, gradFn(theta), stepSize)
		if err != nil {
			return nil, gradientErrorf(opDescend, err)
		}
		theta = next
	}
	return theta, nil
}
