// SPDX-License-Identifier: MIT

package regression_test

import (
	"fmt"

	"github.com/katalvlaran/scratchml/dataset"
	"github.com/katalvlaran/scratchml/regression"
)

func ExampleLeastSquaresFit() {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{-5, -2, 1, 4, 7}
	alpha, beta, err := regression.LeastSquaresFit(xs, ys)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("alpha=%.2f beta=%.2f\n", alpha, beta)
	// Output: alpha=-5.00 beta=3.00
}

func ExampleExactLeastSquares() {
	beta, err := regression.ExactLeastSquares(dataset.RegressionExamples())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.3f\n", []float64(beta))
	// Output: [30.579 0.973 -1.865 0.923]
}
