// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord is returned for an iris row that does not have four
	// numeric fields and a label.
	ErrMalformedRecord = errors.New("dataset: malformed record")

	// ErrNoOutlier is returned by WithoutOutlier when no 100-friend user exists.
	ErrNoOutlier = errors.New("dataset: outlier not present")

	// ErrLengthMismatch is returned when paired series differ in length.
	ErrLengthMismatch = errors.New("dataset: series differ in length")
)

func datasetErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
