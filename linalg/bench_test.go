// SPDX-License-Identifier: MIT

package linalg_test

import (
	"testing"

	"github.com/katalvlaran/scratchml/linalg"
)

// benchmarkVectorMean averages k vectors of length n.
func benchmarkVectorMean(b *testing.B, k, n int) {
	vs := make([]linalg.Vector, k)
	for i := range vs {
		vs[i] = make(linalg.Vector, n)
		for j := range vs[i] {
			vs[i][j] = float64(i + j)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := linalg.VectorMean(vs); err != nil {
			b.Fatalf("VectorMean failed: %v", err)
		}
	}
}

func BenchmarkVectorMean_25x4(b *testing.B)    { benchmarkVectorMean(b, 25, 4) }
func BenchmarkVectorMean_1000x64(b *testing.B) { benchmarkVectorMean(b, 1000, 64) }

func BenchmarkDistance_128(b *testing.B) {
	v, w := make(linalg.Vector, 128), make(linalg.Vector, 128)
	for i := range v {
		v[i], w[i] = float64(i), float64(2*i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := linalg.Distance(v, w); err != nil {
			b.Fatalf("Distance failed: %v", err)
		}
	}
}
