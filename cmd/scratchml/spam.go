// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/scratchml/dataset"
	"github.com/katalvlaran/scratchml/evaluation"
	"github.com/katalvlaran/scratchml/internal/rng"
	"github.com/katalvlaran/scratchml/naivebayes"
)

// sampleMessages stand in for a corpus when none is given.
var sampleMessages = []naivebayes.Message{
	{Text: "cheap pills offer now", IsSpam: true},
	{Text: "limited offer win cash now", IsSpam: true},
	{Text: "win a free cruise", IsSpam: true},
	{Text: "cash prize waiting claim now", IsSpam: true},
	{Text: "free money for you", IsSpam: true},
	{Text: "lowest mortgage rates offer", IsSpam: true},
	{Text: "exclusive deal just for you win", IsSpam: true},
	{Text: "claim your free gift card", IsSpam: true},
	{Text: "meeting moved to noon", IsSpam: false},
	{Text: "lunch tomorrow with the team", IsSpam: false},
	{Text: "draft of the quarterly report", IsSpam: false},
	{Text: "notes from the design review", IsSpam: false},
	{Text: "can you review my patch", IsSpam: false},
	{Text: "team offsite agenda", IsSpam: false},
	{Text: "build failed on the main branch", IsSpam: false},
	{Text: "reminder dentist appointment tomorrow", IsSpam: false},
}

func runSpam(args []string, w io.Writer) error {
	fs := newFlagSet("spam", w)
	corpus := fs.String("corpus", "", "directory of SpamAssassin-style message folders (paths containing \"ham\" are ham)")
	bodies := fs.Bool("bodies", false, "use message bodies as well as subjects")
	stem := fs.Bool("stem", false, "stem tokens with the English snowball stemmer")
	k := fs.Float64("k", naivebayes.DefaultK, "smoothing pseudo-count")
	threshold := fs.Float64("threshold", 0.5, "spam probability above which a message is flagged")
	testPct := fs.Float64("test", 0.25, "fraction of messages held out for testing")
	seed := seedFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// 1) Load messages
	messages := sampleMessages
	if *corpus != "" {
		var opts []dataset.SpamOption
		if *bodies {
			opts = append(opts, dataset.WithBodies())
		}
		loaded, err := dataset.LoadSpamCorpus(os.DirFS(*corpus), ".", opts...)
		if err != nil {
			return err
		}
		messages = loaded
	}
	fmt.Fprintf(w, "messages: %d\n", len(messages))

	// 2) Split and train
	test, train, err := evaluation.SplitData(messages, *testPct, rng.New(*seed))
	if err != nil {
		return err
	}
	nbOpts := []naivebayes.Option{naivebayes.WithK(*k)}
	if *stem {
		st, err := naivebayes.NewStemmer("english")
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()
		nbOpts = append(nbOpts, naivebayes.WithTokenizer(st.Tokenizer()))
	}
	model := naivebayes.New(nbOpts...)
	model.Train(train)
	fmt.Fprintf(w, "trained on %d spam / %d ham, vocabulary %d\n",
		model.SpamMessages(), model.HamMessages(), len(model.Vocabulary()))

	// 3) Evaluate
	predicted := make([]bool, len(test))
	actual := make([]bool, len(test))
	for i, m := range test {
		predicted[i] = model.Predict(m.Text) > *threshold
		actual[i] = m.IsSpam
	}
	counts, err := evaluation.CountBinary(predicted, actual)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "test: tp=%d fp=%d fn=%d tn=%d\n", counts.TP, counts.FP, counts.FN, counts.TN)
	for _, m := range []struct {
		name string
		fn   func(evaluation.BinaryCounts) (float64, error)
	}{
		{"accuracy", evaluation.Accuracy},
		{"precision", evaluation.Precision},
		{"recall", evaluation.Recall},
		{"f1", evaluation.F1},
	} {
		v, err := m.fn(counts)
		switch {
		case errors.Is(err, evaluation.ErrUndefined):
			fmt.Fprintf(w, "  %s: undefined\n", m.name)
		case err != nil:
			return err
		default:
			fmt.Fprintf(w, "  %s: %.4f\n", m.name, v)
		}
	}

	// 4) Most telling words
	fmt.Fprintf(w, "spammiest words: %v\n", model.SpammiestWords(5))
	fmt.Fprintf(w, "hammiest words: %v\n", model.HammiestWords(5))
	return nil
}
