// SPDX-License-Identifier: MIT

// Package linalg provides the vector and matrix arithmetic every other
// scratchml package is built on.
//
// 🚀 What is in here?
//
//	Vector: an ordered []float64 of fixed length per use:
//	  • Add, Subtract, ScalarMultiply
//	  • VectorSum, VectorMean over collections of vectors
//	  • Dot, SumOfSquares, Magnitude, SquaredDistance, Distance
//
//	Matrix: a slice of equal-length row Vectors:
//	  • NewMatrix (validating copy), Shape, GetRow, GetColumn
//	  • MakeMatrix (entry function), IdentityMatrix
//
// ✨ Guarantees:
//   - Pure functions: inputs are never mutated, results are fresh slices.
//   - Binary operations reject operands of different length with
//     ErrLengthMismatch; nothing is padded or truncated.
//   - No panics on user input; all failures are sentinel errors (errors.go).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/scratchml/linalg"
//
//	d, err := linalg.Distance(linalg.Vector{0, 0}, linalg.Vector{3, 4})
//	// d == 5
//
// Complexity: every vector operation is O(n); GetColumn is O(rows);
// MakeMatrix is O(rows·cols).
package linalg
