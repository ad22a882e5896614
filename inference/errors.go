// SPDX-License-Identifier: MIT

package inference

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTrials is returned when a trial count is not positive.
	ErrNoTrials = errors.New("inference: number of trials must be positive")

	// ErrSuccessesRange is returned when successes exceed trials or are negative.
	ErrSuccessesRange = errors.New("inference: successes must be in [0, trials]")

	// ErrZeroVariance is returned when a test statistic has a zero denominator.
	ErrZeroVariance = errors.New("inference: zero standard error")

	// ErrNonPositiveSigma is returned for a standard deviation <= 0.
	ErrNonPositiveSigma = errors.New("inference: sigma must be positive")

	// ErrEmptyData is returned when bootstrapping an empty sample.
	ErrEmptyData = errors.New("inference: empty data")

	// ErrBadSamples is returned for a non-positive resample count.
	ErrBadSamples = errors.New("inference: number of samples must be positive")
)

func inferenceErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
