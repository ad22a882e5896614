// SPDX-License-Identifier: MIT

package gradient_test

import (
	"testing"

	"github.com/katalvlaran/scratchml/gradient"
)

func BenchmarkFit_FullBatch(b *testing.B) {
	data := line(-50, 50)
	opts := gradient.DefaultOptions()
	opts.Epochs = 100
	opts.BatchSize = len(data)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gradient.Fit(data, 2, linearGradient, opts)
	}
}

func BenchmarkFit_FullBatchParallel(b *testing.B) {
	data := line(-50, 50)
	opts := gradient.DefaultOptions()
	opts.Epochs = 100
	opts.BatchSize = len(data)
	opts.Workers = 4
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gradient.Fit(data, 2, linearGradient, opts)
	}
}
