// SPDX-License-Identifier: MIT

// Package inference implements classical hypothesis testing on top of the
// normal approximation: significance bounds, p-values, confidence
// intervals, A/B test statistics, the beta density used for Bayesian
// updates, and bootstrap resampling.
//
// Conventions:
//   - Functions taking (mu, sigma) expect sigma > 0. The float-only helpers
//     (NormalProbability*, TwoSidedPValue) propagate NaN for bad sigma;
//     functions that already return an error report ErrNonPositiveSigma.
//   - Every random draw uses a caller-supplied *rand.Rand (nil selects the
//     default seed).
package inference
