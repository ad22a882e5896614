// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Elementwise vector arithmetic and the norms/distances derived from Dot.
//
// Determinism & Performance:
//   - Fixed left-to-right accumulation order; results are bit-stable for a
//     given input.
//   - One allocation per returned vector; scalar results allocate nothing.

package linalg

import "math"

// Vector is an ordered sequence of float64 values.
type Vector []float64

// Operation names used for error wrapping.
const (
	opAdd             = "Add"
	opSubtract        = "Subtract"
	opVectorSum       = "VectorSum"
	opVectorMean      = "VectorMean"
	opDot             = "Dot"
	opSquaredDistance = "SquaredDistance"
	opDistance        = "Distance"
)

// Clone returns a copy of v that shares no memory with it.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Zeros returns a vector of n zeros.
func Zeros(n int) Vector {
	if n < 0 {
		n = 0
	}
	return make(Vector, n)
}

// Add returns v + w.
//
// Errors:
//   - ErrLengthMismatch if len(v) != len(w).
//
// Complexity: O(n) time, O(n) space.
func Add(v, w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, linalgErrorf(opAdd, ErrLengthMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + w[i]
	}
	return out, nil
}

// Subtract returns v - w.
//
// Errors:
//   - ErrLengthMismatch if len(v) != len(w).
//
// Complexity: O(n) time, O(n) space.
func Subtract(v, w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, linalgErrorf(opSubtract, ErrLengthMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] - w[i]
	}
	return out, nil
}

// VectorSum returns the componentwise sum of vectors.
//
// Errors:
//   - ErrEmptyInput if vectors is empty.
//   - ErrLengthMismatch if any vector differs in length from the first.
//
// Complexity: O(k·n) time for k vectors of length n, O(n) space.
func VectorSum(vectors []Vector) (Vector, error) {
	if len(vectors) == 0 {
		return nil, linalgErrorf(opVectorSum, ErrEmptyInput)
	}
	n := len(vectors[0])
	for _, vec := range vectors[1:] {
		if len(vec) != n {
			return nil, linalgErrorf(opVectorSum, ErrLengthMismatch)
		}
	}

	out := vectors[0].Clone()
	for _, vec := range vectors[1:] {
		for i := 0; i < n; i++ {
			out[i] += vec[i]
		}
	}
	return out, nil
}

// ScalarMultiply returns c·v.
func ScalarMultiply(c float64, v Vector) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = c * x
	}
	return out
}

// VectorMean returns the componentwise mean of vectors.
//
// Errors: same as VectorSum.
func VectorMean(vectors []Vector) (Vector, error) {
	sum, err := VectorSum(vectors)
	if err != nil {
		return nil, linalgErrorf(opVectorMean, err)
	}
	return ScalarMultiply(1/float64(len(vectors)), sum), nil
}

// Dot returns Σ v[i]·w[i].
//
// Errors:
//   - ErrLengthMismatch if len(v) != len(w).
func Dot(v, w Vector) (float64, error) {
	if len(v) != len(w) {
		return 0, linalgErrorf(opDot, ErrLengthMismatch)
	}
	return dot(v, w), nil
}

// dot assumes equal lengths.
func dot(v, w Vector) float64 {
	var s float64
	for i := range v {
		s += v[i] * w[i]
	}
	return s
}

// SumOfSquares returns Dot(v, v).
func SumOfSquares(v Vector) float64 {
	return dot(v, v)
}

// Magnitude returns the Euclidean length sqrt(Dot(v, v)).
func Magnitude(v Vector) float64 {
	return math.Sqrt(SumOfSquares(v))
}

// SquaredDistance returns SumOfSquares(v - w).
//
// Errors:
//   - ErrLengthMismatch if len(v) != len(w).
func SquaredDistance(v, w Vector) (float64, error) {
	diff, err := Subtract(v, w)
	if err != nil {
		return 0, linalgErrorf(opSquaredDistance, err)
	}
	return SumOfSquares(diff), nil
}

// Distance returns the Euclidean distance Magnitude(v - w).
// Distance is symmetric and Distance(v, v) == 0.
//
// Errors:
//   - ErrLengthMismatch if len(v) != len(w).
func Distance(v, w Vector) (float64, error) {
	diff, err := Subtract(v, w)
	if err != nil {
		return 0, linalgErrorf(opDistance, err)
	}
	return Magnitude(diff), nil
}
