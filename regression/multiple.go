// SPDX-License-Identifier: MIT
// Package: regression
//
// Purpose:
//   - Multiple linear regression y ≈ x·beta over Examples.
//   - Per-example squared error and its gradient, fitted with the shared
//     minibatch loop in package gradient.

package regression

import (
	"github.com/katalvlaran/scratchml/gradient"
	"github.com/katalvlaran/scratchml/linalg"
)

// Example is one labeled observation. X usually starts with the constant 1
// so that beta[0] acts as the intercept.
type Example struct {
	X linalg.Vector
	Y float64
}

// FitOptions configures FitMultiple, FitRidge and the bootstrap.
type FitOptions = gradient.Options

// DefaultFitOptions returns lr 0.001, 1000 epochs, batch 1, sequential
// batches, seed 0.
func DefaultFitOptions() FitOptions {
	return gradient.DefaultOptions()
}

const (
	opNewExamples      = "NewExamples"
	opPredictMultiple  = "PredictMultiple"
	opSqErrorGradient  = "SqErrorGradient"
	opFitMultiple      = "FitMultiple"
	opMultipleRSquared = "MultipleRSquared"
)

// NewExamples zips feature rows with targets. Rows are copied.
//
// Errors:
//   - ErrLengthMismatch if len(xs) != len(ys) or rows differ in length.
func NewExamples(xs []linalg.Vector, ys []float64) ([]Example, error) {
	if len(xs) != len(ys) {
		return nil, regressionErrorf(opNewExamples, ErrLengthMismatch)
	}
	out := make([]Example, len(xs))
	for i := range xs {
		if len(xs[i]) != len(xs[0]) {
			return nil, regressionErrorf(opNewExamples, ErrLengthMismatch)
		}
		out[i] = Example{X: xs[i].Clone(), Y: ys[i]}
	}
	return out, nil
}

// PredictMultiple returns Dot(x, beta).
//
// Errors:
//   - linalg.ErrLengthMismatch if len(x) != len(beta).
func PredictMultiple(x, beta linalg.Vector) (float64, error) {
	p, err := linalg.Dot(x, beta)
	if err != nil {
		return 0, regressionErrorf(opPredictMultiple, err)
	}
	return p, nil
}

// ErrorMultiple returns PredictMultiple(x, beta) - y.
func ErrorMultiple(x linalg.Vector, y float64, beta linalg.Vector) (float64, error) {
	p, err := PredictMultiple(x, beta)
	if err != nil {
		return 0, err
	}
	return p - y, nil
}

// SquaredError returns ErrorMultiple(x, y, beta)².
func SquaredError(x linalg.Vector, y float64, beta linalg.Vector) (float64, error) {
	e, err := ErrorMultiple(x, y, beta)
	if err != nil {
		return 0, err
	}
	return e * e, nil
}

// SqErrorGradient returns ∂SquaredError/∂beta = 2·err·x.
func SqErrorGradient(x linalg.Vector, y float64, beta linalg.Vector) (linalg.Vector, error) {
	e, err := ErrorMultiple(x, y, beta)
	if err != nil {
		return nil, regressionErrorf(opSqErrorGradient, err)
	}
	return linalg.ScalarMultiply(2*e, x), nil
}

// FitMultiple fits beta by minibatch gradient descent on the mean squared
// error. The dimension is taken from the first example.
//
// Errors:
//   - ErrEmptyInput if examples is empty.
//   - ErrLengthMismatch if examples differ in feature count.
//   - gradient option errors (ErrBadBatchSize, ErrBadOptions).
func FitMultiple(examples []Example, opts FitOptions) (linalg.Vector, error) {
	dim, err := featureCount(examples)
	if err != nil {
		return nil, regressionErrorf(opFitMultiple, err)
	}
	beta, err := gradient.Fit(examples, dim, func(ex Example, beta linalg.Vector) (linalg.Vector, error) {
		return SqErrorGradient(ex.X, ex.Y, beta)
	}, opts)
	if err != nil {
		return nil, regressionErrorf(opFitMultiple, err)
	}
	return beta, nil
}

// MultipleRSquared returns 1 - Σ err² / TotalSumOfSquares(Y).
//
// Errors:
//   - ErrEmptyInput if examples is empty.
//   - ErrZeroVariance if every Y is equal.
//   - linalg.ErrLengthMismatch if an example does not match len(beta).
func MultipleRSquared(examples []Example, beta linalg.Vector) (float64, error) {
	if len(examples) == 0 {
		return 0, regressionErrorf(opMultipleRSquared, ErrEmptyInput)
	}
	var sse float64
	ys := make([]float64, len(examples))
	for i, ex := range examples {
		se, err := SquaredError(ex.X, ex.Y, beta)
		if err != nil {
			return 0, regressionErrorf(opMultipleRSquared, err)
		}
		sse += se
		ys[i] = ex.Y
	}
	tss := TotalSumOfSquares(ys)
	if tss == 0 {
		return 0, regressionErrorf(opMultipleRSquared, ErrZeroVariance)
	}
	return 1 - sse/tss, nil
}

// featureCount returns the shared len(X) of examples.
func featureCount(examples []Example) (int, error) {
	if len(examples) == 0 {
		return 0, ErrEmptyInput
	}
	dim := len(examples[0].X)
	if dim == 0 {
		return 0, ErrEmptyInput
	}
	for _, ex := range examples[1:] {
		if len(ex.X) != dim {
			return 0, ErrLengthMismatch
		}
	}
	return dim, nil
}
