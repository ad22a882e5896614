// SPDX-License-Identifier: MIT

package linalg_test

import (
	"fmt"

	"github.com/katalvlaran/scratchml/linalg"
)

// ExampleDistance measures the straight-line distance between two points.
func ExampleDistance() {
	d, err := linalg.Distance(linalg.Vector{0, 0}, linalg.Vector{3, 4})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(d)
	// Output: 5
}

// ExampleIdentityMatrix builds I₃ and reports its shape.
func ExampleIdentityMatrix() {
	id, _ := linalg.IdentityMatrix(3)
	r, c := linalg.Shape(id)
	fmt.Println(r, c, id[1])
	// Output: 3 3 [0 1 0]
}

// ExampleAdd shows the length-mismatch contract.
func ExampleAdd() {
	_, err := linalg.Add(linalg.Vector{1, 2}, linalg.Vector{1, 2, 3})
	fmt.Println(err)
	// Output: Add: linalg: vectors must be the same length
}
