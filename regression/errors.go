// SPDX-License-Identifier: MIT

package regression

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when paired inputs differ in length.
	ErrLengthMismatch = errors.New("regression: inputs differ in length")

	// ErrEmptyInput is returned when no examples are given.
	ErrEmptyInput = errors.New("regression: no examples")

	// ErrZeroVariance is returned when a fit or R² needs a non-constant
	// sample and gets a constant one.
	ErrZeroVariance = errors.New("regression: sample has zero variance")

	// ErrNegativeAlpha is returned for a negative ridge penalty weight.
	ErrNegativeAlpha = errors.New("regression: ridge alpha must be non-negative")

	// ErrNonPositiveSigma is returned when a standard error is not > 0.
	ErrNonPositiveSigma = errors.New("regression: standard error must be positive")

	// ErrBadSamples is returned for fewer than two bootstrap samples.
	ErrBadSamples = errors.New("regression: bootstrap needs at least two samples")

	// ErrSingular is returned when the design matrix has no unique
	// least-squares solution.
	ErrSingular = errors.New("regression: design matrix is rank deficient")
)

func regressionErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
