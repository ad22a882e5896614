// SPDX-License-Identifier: MIT

package knn

import (
	"errors"
	"fmt"
)

var (
	// ErrNoLabels is returned when voting over no labels.
	ErrNoLabels = errors.New("knn: no labels to vote on")

	// ErrBadK is returned when k is not in [1, len(points)].
	ErrBadK = errors.New("knn: k must be in [1, number of points]")
)

func knnErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
