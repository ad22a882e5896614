// SPDX-License-Identifier: MIT

package inference_test

import (
	"fmt"

	"github.com/katalvlaran/scratchml/inference"
)

// ExampleTwoSidedBounds shows the 95% acceptance region for 1000 flips of a
// fair coin.
func ExampleTwoSidedBounds() {
	mu, sigma, _ := inference.NormalApproximationToBinomial(1000, 0.5)
	lo, hi, err := inference.TwoSidedBounds(0.95, mu, sigma)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.1f %.1f\n", lo, hi)
	// Output: 469.0 531.0
}

func ExampleABTestStatistic() {
	z, _ := inference.ABTestStatistic(1000, 200, 1000, 150)
	fmt.Printf("z=%.2f p=%.3f\n", z, inference.TwoSidedPValue(z, 0, 1))
	// Output: z=-2.95 p=0.003
}
