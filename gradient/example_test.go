// SPDX-License-Identifier: MIT

package gradient_test

import (
	"fmt"

	"github.com/katalvlaran/scratchml/gradient"
	"github.com/katalvlaran/scratchml/linalg"
)

// ExampleMinibatches shows chunking without shuffling.
func ExampleMinibatches() {
	seq, err := gradient.Minibatches([]string{"a", "b", "c", "d", "e"}, 2, gradient.WithShuffle(false))
	if err != nil {
		fmt.Println(err)
		return
	}
	for batch := range seq {
		fmt.Println(batch)
	}
	// Output:
	// [a b]
	// [c d]
	// [e]
}

// ExampleStep moves against the gradient.
func ExampleStep() {
	v, _ := gradient.Step(linalg.Vector{1, 1}, linalg.Vector{2, -2}, -0.25)
	fmt.Println(v)
	// Output: [0.5 1.5]
}
