// SPDX-License-Identifier: MIT
// Package: regression
//
// Purpose:
//   - One-variable least squares, y ≈ alpha + beta·x.
//   - Closed form from correlation and standard deviations, plus a
//     summed-gradient descent fit that converges to the same line.

package regression

import (
	"github.com/katalvlaran/scratchml/gradient"
	"github.com/katalvlaran/scratchml/internal/rng"
	"github.com/katalvlaran/scratchml/linalg"
	"github.com/katalvlaran/scratchml/stats"
)

const (
	opSumOfSqErrors     = "SumOfSqErrors"
	opLeastSquaresFit   = "LeastSquaresFit"
	opRSquared          = "RSquared"
	opFitSimpleGradient = "FitSimpleGradient"
)

// Predict returns beta·x + alpha.
func Predict(alpha, beta, x float64) float64 {
	return beta*x + alpha
}

// Error returns Predict(alpha, beta, x) - y.
func Error(alpha, beta, x, y float64) float64 {
	return Predict(alpha, beta, x) - y
}

// SumOfSqErrors returns Σ Error(alpha, beta, xs[i], ys[i])².
//
// Errors:
//   - ErrLengthMismatch if len(xs) != len(ys).
func SumOfSqErrors(alpha, beta float64, xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, regressionErrorf(opSumOfSqErrors, ErrLengthMismatch)
	}
	var s float64
	for i := range xs {
		e := Error(alpha, beta, xs[i], ys[i])
		s += e * e
	}
	return s, nil
}

// LeastSquaresFit returns the (alpha, beta) minimising SumOfSqErrors:
// beta = corr(x, y)·sd(y)/sd(x), alpha = mean(y) - beta·mean(x).
//
// Errors:
//   - ErrLengthMismatch if len(xs) != len(ys).
//   - ErrZeroVariance if xs is constant.
//   - stats.ErrInsufficientData for fewer than two points.
func LeastSquaresFit(xs, ys []float64) (alpha, beta float64, err error) {
	if len(xs) != len(ys) {
		return 0, 0, regressionErrorf(opLeastSquaresFit, ErrLengthMismatch)
	}
	sx, err := stats.StandardDeviation(xs)
	if err != nil {
		return 0, 0, regressionErrorf(opLeastSquaresFit, err)
	}
	if sx == 0 {
		return 0, 0, regressionErrorf(opLeastSquaresFit, ErrZeroVariance)
	}
	sy, err := stats.StandardDeviation(ys)
	if err != nil {
		return 0, 0, regressionErrorf(opLeastSquaresFit, err)
	}
	r, err := stats.Correlation(xs, ys)
	if err != nil {
		return 0, 0, regressionErrorf(opLeastSquaresFit, err)
	}
	beta = r * sy / sx
	mx, _ := stats.Mean(xs)
	my, _ := stats.Mean(ys)
	return my - beta*mx, beta, nil
}

// TotalSumOfSquares returns Σ (y - ȳ)², the variation of ys around its mean
// (0 for an empty slice).
func TotalSumOfSquares(ys []float64) float64 {
	d, err := stats.DeMean(ys)
	if err != nil {
		return 0
	}
	return linalg.SumOfSquares(d)
}

// RSquared returns 1 - SumOfSqErrors/TotalSumOfSquares, the fraction of the
// variation in ys captured by the line.
//
// Errors:
//   - ErrLengthMismatch if len(xs) != len(ys).
//   - ErrZeroVariance if ys is constant or empty.
func RSquared(alpha, beta float64, xs, ys []float64) (float64, error) {
	sse, err := SumOfSqErrors(alpha, beta, xs, ys)
	if err != nil {
		return 0, regressionErrorf(opRSquared, err)
	}
	tss := TotalSumOfSquares(ys)
	if tss == 0 {
		return 0, regressionErrorf(opRSquared, ErrZeroVariance)
	}
	return 1 - sse/tss, nil
}

// SimpleGradientOptions configures FitSimpleGradient.
//
// The loss is the SUM of squared errors over all points, so LearningRate is
// applied to the summed gradient. The defaults (1e-5, 10000 epochs)
// reach the closed-form line on the friends/minutes data.
type SimpleGradientOptions struct {
	LearningRate float64
	Epochs       int
	Seed         int64
}

// DefaultSimpleGradientOptions returns lr 1e-5, 10000 epochs, seed 0.
func DefaultSimpleGradientOptions() SimpleGradientOptions {
	return SimpleGradientOptions{LearningRate: 1e-5, Epochs: 10000}
}

type pair struct{ x, y float64 }

// FitSimpleGradient fits (alpha, beta) by full-batch gradient descent on the
// summed squared error, starting from a uniform [0, 1) guess.
//
// Errors:
//   - ErrLengthMismatch if len(xs) != len(ys).
//   - ErrEmptyInput if xs is empty.
//   - gradient.ErrBadOptions for a non-positive or non-finite learning rate
//     or non-positive epochs.
func FitSimpleGradient(xs, ys []float64, opts SimpleGradientOptions) (alpha, beta float64, err error) {
	if len(xs) != len(ys) {
		return 0, 0, regressionErrorf(opFitSimpleGradient, ErrLengthMismatch)
	}
	if len(xs) == 0 {
		return 0, 0, regressionErrorf(opFitSimpleGradient, ErrEmptyInput)
	}
	data := make([]pair, len(xs))
	for i := range xs {
		data[i] = pair{xs[i], ys[i]}
	}

	r := rng.New(opts.Seed)
	// Mean gradient × n·lr equals summed gradient × lr.
	gopts := gradient.Options{
		Epochs:       opts.Epochs,
		LearningRate: opts.LearningRate * float64(len(data)),
		BatchSize:    len(data),
		Rand:         r,
		InitLow:      0,
		InitHigh:     1,
		Workers:      1,
	}
	theta, err := gradient.Fit(data, 2, func(p pair, theta linalg.Vector) (linalg.Vector, error) {
		e := Error(theta[0], theta[1], p.x, p.y)
		return linalg.Vector{2 * e, 2 * e * p.x}, nil
	}, gopts)
	if err != nil {
		return 0, 0, regressionErrorf(opFitSimpleGradient, err)
	}
	return theta[0], theta[1], nil
}
