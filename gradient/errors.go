// SPDX-License-Identifier: MIT

package gradient

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroStep is returned when a finite-difference step h is zero.
	ErrZeroStep = errors.New("gradient: difference step h must be non-zero")

	// ErrOutOfRange is returned for a coordinate index outside the vector.
	ErrOutOfRange = errors.New("gradient: coordinate index out of range")

	// ErrLengthMismatch is returned when a parameter vector and a gradient
	// differ in length.
	ErrLengthMismatch = errors.New("gradient: parameter and gradient lengths differ")

	// ErrEmptyDataset is returned when a fit or minibatch pass gets no data.
	ErrEmptyDataset = errors.New("gradient: empty dataset")

	// ErrBadBatchSize is returned for a batch size <= 0.
	ErrBadBatchSize = errors.New("gradient: batch size must be positive")

	// ErrBadOptions is returned for meaningless Options (epochs, learning
	// rate, init range, dimension, tolerance, workers).
	ErrBadOptions = errors.New("gradient: invalid options")

	// ErrNilGradient is returned when a nil gradient function is supplied.
	ErrNilGradient = errors.New("gradient: gradient function is nil")
)

func gradientErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
