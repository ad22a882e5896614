// SPDX-License-Identifier: MIT

package regression_test

import (
	"testing"

	"github.com/katalvlaran/scratchml/dataset"
	"github.com/katalvlaran/scratchml/regression"
)

func BenchmarkFitMultiple(b *testing.B) {
	ex := dataset.RegressionExamples()
	opts := regression.DefaultFitOptions()
	opts.Epochs = 10
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = regression.FitMultiple(ex, opts)
	}
}

func BenchmarkExactLeastSquares(b *testing.B) {
	ex := dataset.RegressionExamples()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = regression.ExactLeastSquares(ex)
	}
}
