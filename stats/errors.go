// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a statistic needs at least one value.
	ErrEmptyInput = errors.New("stats: empty input")

	// ErrInsufficientData is returned when a sample statistic needs at
	// least two values (variance, covariance).
	ErrInsufficientData = errors.New("stats: variance requires at least two elements")

	// ErrLengthMismatch is returned when paired samples differ in length.
	ErrLengthMismatch = errors.New("stats: xs and ys must have the same number of elements")

	// ErrQuantileRange is returned for a quantile p outside [0, 1).
	ErrQuantileRange = errors.New("stats: quantile must be in [0, 1)")
)

func statsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
