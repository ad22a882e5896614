// SPDX-License-Identifier: MIT
// Package: linalg
//
// errors.go: sentinel errors for the linalg package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Operations add context with fmt.Errorf("%s: %w", op, ErrX); sentinels
//     themselves never carry formatted parameters.

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when vectors participating in an
	// elementwise operation differ in length.
	ErrLengthMismatch = errors.New("linalg: vectors must be the same length")

	// ErrEmptyInput is returned when at least one vector is required
	// (VectorSum, VectorMean) but none was supplied.
	ErrEmptyInput = errors.New("linalg: no vectors provided")

	// ErrRaggedMatrix is returned when matrix rows differ in length.
	ErrRaggedMatrix = errors.New("linalg: matrix rows differ in length")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrBadShape is returned for negative matrix dimensions.
	ErrBadShape = errors.New("linalg: invalid shape")

	// ErrNilEntryFn is returned when MakeMatrix receives a nil entry function.
	ErrNilEntryFn = errors.New("linalg: entry function is nil")
)

// linalgErrorf tags err with the operation name.
func linalgErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
