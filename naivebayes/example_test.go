// SPDX-License-Identifier: MIT

package naivebayes_test

import (
	"fmt"

	"github.com/katalvlaran/scratchml/naivebayes"
)

func ExampleClassifier_Predict() {
	c := naivebayes.New()
	c.Train([]naivebayes.Message{
		{Text: "win cash now", IsSpam: true},
		{Text: "cheap cash offer", IsSpam: true},
		{Text: "lunch at noon", IsSpam: false},
		{Text: "meeting notes for noon", IsSpam: false},
	})
	fmt.Println(c.Predict("cash offer") > 0.5)
	fmt.Println(c.Predict("noon meeting") > 0.5)
	// Output:
	// true
	// false
}

func ExampleTokenize() {
	fmt.Println(naivebayes.Tokenize("Data Science is science").Sorted())
	// Output: [data is science]
}
