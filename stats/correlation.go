// SPDX-License-Identifier: MIT

package stats

import "github.com/katalvlaran/scratchml/linalg"

const (
	opCovariance  = "Covariance"
	opCorrelation = "Correlation"
)

// Covariance returns the sample covariance of paired samples:
// Dot(DeMean(xs), DeMean(ys)) / (n-1).
//
// Errors:
//   - ErrLengthMismatch if len(xs) != len(ys).
//   - ErrInsufficientData if fewer than two pairs are given.
func Covariance(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, statsErrorf(opCovariance, ErrLengthMismatch)
	}
	if len(xs) < 2 {
		return 0, statsErrorf(opCovariance, ErrInsufficientData)
	}
	dx, err := DeMean(xs)
	if err != nil {
		return 0, statsErrorf(opCovariance, err)
	}
	dy, err := DeMean(ys)
	if err != nil {
		return 0, statsErrorf(opCovariance, err)
	}
	d, err := linalg.Dot(dx, dy)
	if err != nil {
		return 0, statsErrorf(opCovariance, err)
	}
	return d / float64(len(xs)-1), nil
}

// Correlation returns Pearson's r. When either sample has zero standard
// deviation the correlation is defined as 0.
//
// Errors: same as Covariance.
func Correlation(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, statsErrorf(opCorrelation, ErrLengthMismatch)
	}
	sx, err := StandardDeviation(xs)
	if err != nil {
		return 0, statsErrorf(opCorrelation, err)
	}
	sy, err := StandardDeviation(ys)
	if err != nil {
		return 0, statsErrorf(opCorrelation, err)
	}
	if sx <= 0 || sy <= 0 {
		return 0, nil
	}
	cov, err := Covariance(xs, ys)
	if err != nil {
		return 0, statsErrorf(opCorrelation, err)
	}
	return cov / sx / sy, nil
}
