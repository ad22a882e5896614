// SPDX-License-Identifier: MIT

package naivebayes_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/scratchml/naivebayes"
)

func BenchmarkPredict(b *testing.B) {
	msgs := make([]naivebayes.Message, 0, 1000)
	for i := 0; i < 1000; i++ {
		msgs = append(msgs, naivebayes.Message{Text: fmt.Sprintf("token%d shared words here", i), IsSpam: i%3 == 0})
	}
	c := naivebayes.New()
	c.Train(msgs)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Predict("token7 shared offer")
	}
}
