// SPDX-License-Identifier: MIT

package evaluation

import (
	"errors"
	"fmt"
)

var (
	// ErrFractionRange is returned for a split fraction outside [0, 1].
	ErrFractionRange = errors.New("evaluation: fraction must be in [0, 1]")

	// ErrLengthMismatch is returned when paired slices differ in length.
	ErrLengthMismatch = errors.New("evaluation: inputs differ in length")

	// ErrUndefined is returned when a metric's denominator is zero.
	ErrUndefined = errors.New("evaluation: metric undefined (zero denominator)")

	// ErrNegativeCount is returned for a negative confusion count.
	ErrNegativeCount = errors.New("evaluation: counts must be non-negative")
)

func evaluationErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
