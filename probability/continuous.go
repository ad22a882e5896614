// SPDX-License-Identifier: MIT

package probability

import "math"

const (
	opInverseNormalCDF = "InverseNormalCDF"

	// DefaultTolerance is the bisection width at which InverseNormalCDF stops.
	DefaultTolerance = 1e-5

	// searchLow and searchHigh bound the standard-normal bisection.
	searchLow  = -10.0
	searchHigh = 10.0
)

var sqrtTwoPi = math.Sqrt(2 * math.Pi)

// UniformPDF is the density of U[0, 1): 1 on [0, 1), 0 elsewhere.
func UniformPDF(x float64) float64 {
	if x >= 0 && x < 1 {
		return 1
	}
	return 0
}

// UniformCDF returns P(U <= x) for U ~ U[0, 1).
func UniformCDF(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x < 1:
		return x
	default:
		return 1
	}
}

// NormalPDF is the N(mu, sigma²) density. It returns NaN for sigma <= 0.
func NormalPDF(x, mu, sigma float64) float64 {
	if !(sigma > 0) {
		return math.NaN()
	}
	d := x - mu
	return math.Exp(-d*d/2/(sigma*sigma)) / (sqrtTwoPi * sigma)
}

// NormalCDF returns P(X <= x) for X ~ N(mu, sigma²). It returns NaN for
// sigma <= 0.
func NormalCDF(x, mu, sigma float64) float64 {
	if !(sigma > 0) {
		return math.NaN()
	}
	return (1 + math.Erf((x-mu)/math.Sqrt2/sigma)) / 2
}

// InverseNormalCDF returns an x with NormalCDF(x, mu, sigma) ≈ p, found by
// bisection to DefaultTolerance in standard units.
func InverseNormalCDF(p, mu, sigma float64) (float64, error) {
	return InverseNormalCDFTol(p, mu, sigma, DefaultTolerance)
}

// InverseNormalCDFTol is InverseNormalCDF with an explicit tolerance.
//
// The search is done on the standard normal over [-10, 10] and rescaled, so
// p = 0 and p = 1 return the ends of the search window mapped through
// mu + sigma·z rather than ±Inf.
//
// Errors:
//   - ErrProbabilityRange if p is not in [0, 1].
//   - ErrNonPositiveSigma if sigma <= 0.
//   - ErrBadTolerance if tol <= 0.
func InverseNormalCDFTol(p, mu, sigma, tol float64) (float64, error) {
	if !(p >= 0 && p <= 1) {
		return 0, probabilityErrorf(opInverseNormalCDF, ErrProbabilityRange)
	}
	if !(sigma > 0) {
		return 0, probabilityErrorf(opInverseNormalCDF, ErrNonPositiveSigma)
	}
	if !(tol > 0) {
		return 0, probabilityErrorf(opInverseNormalCDF, ErrBadTolerance)
	}

	lo, hi, mid := searchLow, searchHigh, 0.0
	for hi-lo > tol {
		mid = (lo + hi) / 2
		if NormalCDF(mid, 0, 1) < p {
			lo = mid
		} else {
			hi = mid
		}
	}
	return mu + sigma*mid, nil
}
