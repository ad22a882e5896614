// SPDX-License-Identifier: MIT

package probability

import (
	"errors"
	"fmt"
)

var (
	// ErrProbabilityRange is returned for a probability outside [0, 1].
	ErrProbabilityRange = errors.New("probability: probability must be in [0, 1]")

	// ErrNonPositiveSigma is returned for a standard deviation <= 0.
	ErrNonPositiveSigma = errors.New("probability: sigma must be positive")

	// ErrBadTolerance is returned for a bisection tolerance <= 0.
	ErrBadTolerance = errors.New("probability: tolerance must be positive")

	// ErrNegativeTrials is returned for a negative trial count.
	ErrNegativeTrials = errors.New("probability: number of trials must be non-negative")
)

func probabilityErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
