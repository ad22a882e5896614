// SPDX-License-Identifier: MIT

// Package stats implements descriptive statistics over []float64 samples:
// central tendency (Mean, Median, Mode, Quantile), dispersion (DataRange,
// Variance, StandardDeviation, InterquartileRange) and association
// (Covariance, Correlation).
//
// Variance and everything built on it use the sample (n-1) denominator and
// require at least two observations. A zero standard deviation in
// Correlation is a defined degenerate case that yields 0, not an error.
//
// Inputs are never reordered; functions that sort work on a copy.
package stats
