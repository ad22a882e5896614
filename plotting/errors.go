// SPDX-License-Identifier: MIT

package plotting

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when there is nothing to draw.
	ErrEmptyInput = errors.New("plotting: nothing to plot")

	// ErrLengthMismatch is returned when paired series differ in length.
	ErrLengthMismatch = errors.New("plotting: series differ in length")

	// ErrBadBins is returned for a non-positive bin count.
	ErrBadBins = errors.New("plotting: bins must be positive")

	// ErrFeatureIndex is returned when a scatter axis index is out of range
	// for some point.
	ErrFeatureIndex = errors.New("plotting: feature index out of range")
)

func plottingErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
