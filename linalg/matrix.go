// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Row-major matrices as slices of equal-length Vectors.
//   - Shape queries, row/column access, and entry-function construction.
//
// Contract:
//   - Every row of a Matrix has the same length. NewMatrix enforces this;
//     the accessors below assume it and report ErrRaggedMatrix if a caller
//     built a ragged literal by hand.
//   - An empty matrix has shape (0, 0).

package linalg

// Matrix is an ordered sequence of row Vectors.
type Matrix []Vector

const (
	opNewMatrix      = "NewMatrix"
	opGetRow         = "GetRow"
	opGetColumn      = "GetColumn"
	opMakeMatrix     = "MakeMatrix"
	opIdentityMatrix = "IdentityMatrix"
)

// NewMatrix returns a deep copy of rows after checking that every row has
// the same length.
//
// Errors:
//   - ErrRaggedMatrix if any row length differs from the first.
//
// Complexity: O(rows·cols) time and space.
func NewMatrix(rows []Vector) (Matrix, error) {
	if err := validateRectangular(rows); err != nil {
		return nil, linalgErrorf(opNewMatrix, err)
	}
	out := make(Matrix, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}
	return out, nil
}

// validateRectangular reports ErrRaggedMatrix for rows of unequal length.
func validateRectangular(rows []Vector) error {
	if len(rows) == 0 {
		return nil
	}
	c := len(rows[0])
	for _, r := range rows[1:] {
		if len(r) != c {
			return ErrRaggedMatrix
		}
	}
	return nil
}

// Shape returns (rows, cols); (0, 0) for an empty matrix.
func Shape(a Matrix) (int, int) {
	if len(a) == 0 {
		return 0, 0
	}
	return len(a), len(a[0])
}

// GetRow returns a copy of row i.
//
// Errors:
//   - ErrOutOfRange if i is not in [0, rows).
func GetRow(a Matrix, i int) (Vector, error) {
	if i < 0 || i >= len(a) {
		return nil, linalgErrorf(opGetRow, ErrOutOfRange)
	}
	return a[i].Clone(), nil
}

// GetColumn returns column j as a new Vector.
//
// Errors:
//   - ErrOutOfRange if j is not in [0, cols).
//   - ErrRaggedMatrix if a has rows of unequal length.
//
// Complexity: O(rows).
func GetColumn(a Matrix, j int) (Vector, error) {
	if err := validateRectangular(a); err != nil {
		return nil, linalgErrorf(opGetColumn, err)
	}
	_, c := Shape(a)
	if j < 0 || j >= c {
		return nil, linalgErrorf(opGetColumn, ErrOutOfRange)
	}
	out := make(Vector, len(a))
	for i, row := range a {
		out[i] = row[j]
	}
	return out, nil
}

// MakeMatrix returns a rows×cols matrix whose (i, j) entry is entryFn(i, j).
// Entries are generated in row-major order.
//
// Errors:
//   - ErrBadShape if rows or cols is negative.
//   - ErrNilEntryFn if entryFn is nil.
func MakeMatrix(rows, cols int, entryFn func(i, j int) float64) (Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, linalgErrorf(opMakeMatrix, ErrBadShape)
	}
	if entryFn == nil {
		return nil, linalgErrorf(opMakeMatrix, ErrNilEntryFn)
	}
	out := make(Matrix, rows)
	for i := 0; i < rows; i++ {
		row := make(Vector, cols)
		for j := 0; j < cols; j++ {
			row[j] = entryFn(i, j)
		}
		out[i] = row
	}
	return out, nil
}

// IdentityMatrix returns the n×n identity matrix.
//
// Errors:
//   - ErrBadShape if n is negative.
func IdentityMatrix(n int) (Matrix, error) {
	m, err := MakeMatrix(n, n, func(i, j int) float64 {
		if i == j {
			return 1
		}
		return 0
	})
	if err != nil {
		return nil, linalgErrorf(opIdentityMatrix, err)
	}
	return m, nil
}
