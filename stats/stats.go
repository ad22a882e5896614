// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Central tendency and dispersion over a single sample.
//   - Every statistic is a deterministic left-to-right pass; sorting happens
//     on a private copy.

package stats

import (
	"math"
	"sort"

	"github.com/katalvlaran/scratchml/linalg"
)

const (
	opMean     = "Mean"
	opMedian   = "Median"
	opQuantile = "Quantile"
	opMode     = "Mode"
	opRange    = "DataRange"
	opDeMean   = "DeMean"
	opVariance = "Variance"
	opIQR      = "InterquartileRange"
)

// Sum returns Σ xs (0 for an empty slice).
func Sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

// Mean returns the arithmetic mean.
//
// Errors:
//   - ErrEmptyInput if xs is empty.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, statsErrorf(opMean, ErrEmptyInput)
	}
	return Sum(xs) / float64(len(xs)), nil
}

// sortedCopy returns xs sorted ascending without touching xs.
func sortedCopy(xs []float64) []float64 {
	s := make([]float64, len(xs))
	copy(s, xs)
	sort.Float64s(s)
	return s
}

// Median returns the middle value; for an even count, the mean of the two
// middle values.
//
// Errors:
//   - ErrEmptyInput if xs is empty.
//
// Complexity: O(n log n).
func Median(xs []float64) (float64, error) {
	n := len(xs)
	if n == 0 {
		return 0, statsErrorf(opMedian, ErrEmptyInput)
	}
	s := sortedCopy(xs)
	mid := n / 2
	if n%2 == 1 {
		return s[mid], nil
	}
	return (s[mid-1] + s[mid]) / 2, nil
}

// Quantile returns the value below which a fraction p of the data lies:
// the element at index floor(p·n) of the sorted sample.
//
// Errors:
//   - ErrEmptyInput if xs is empty.
//   - ErrQuantileRange if p is not in [0, 1).
func Quantile(xs []float64, p float64) (float64, error) {
	if len(xs) == 0 {
		return 0, statsErrorf(opQuantile, ErrEmptyInput)
	}
	if !(p >= 0 && p < 1) {
		return 0, statsErrorf(opQuantile, ErrQuantileRange)
	}
	idx := int(p * float64(len(xs)))
	return sortedCopy(xs)[idx], nil
}

// Mode returns every value that occurs with the maximal frequency, in
// ascending order.
//
// Errors:
//   - ErrEmptyInput if xs is empty.
func Mode(xs []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, statsErrorf(opMode, ErrEmptyInput)
	}
	counts := make(map[float64]int, len(xs))
	best := 0
	for _, x := range xs {
		counts[x]++
		if counts[x] > best {
			best = counts[x]
		}
	}
	modes := make([]float64, 0, 1)
	for x, c := range counts {
		if c == best {
			modes = append(modes, x)
		}
	}
	sort.Float64s(modes)
	return modes, nil
}

// DataRange returns max(xs) - min(xs).
//
// Errors:
//   - ErrEmptyInput if xs is empty.
func DataRange(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, statsErrorf(opRange, ErrEmptyInput)
	}
	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return hi - lo, nil
}

// DeMean returns xs shifted so that the result has mean zero.
//
// Errors:
//   - ErrEmptyInput if xs is empty.
func DeMean(xs []float64) ([]float64, error) {
	xBar, err := Mean(xs)
	if err != nil {
		return nil, statsErrorf(opDeMean, err)
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x - xBar
	}
	return out, nil
}

// Variance returns the sample variance Σ(x-x̄)² / (n-1).
//
// Errors:
//   - ErrInsufficientData if len(xs) < 2.
func Variance(xs []float64) (float64, error) {
	n := len(xs)
	if n < 2 {
		return 0, statsErrorf(opVariance, ErrInsufficientData)
	}
	deviations, err := DeMean(xs)
	if err != nil {
		return 0, statsErrorf(opVariance, err)
	}
	return linalg.SumOfSquares(deviations) / float64(n-1), nil
}

// StandardDeviation returns sqrt(Variance(xs)).
//
// Errors: same as Variance.
func StandardDeviation(xs []float64) (float64, error) {
	v, err := Variance(xs)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// InterquartileRange returns Quantile(0.75) - Quantile(0.25).
func InterquartileRange(xs []float64) (float64, error) {
	q3, err := Quantile(xs, 0.75)
	if err != nil {
		return 0, statsErrorf(opIQR, err)
	}
	q1, err := Quantile(xs, 0.25)
	if err != nil {
		return 0, statsErrorf(opIQR, err)
	}
	return q3 - q1, nil
}
