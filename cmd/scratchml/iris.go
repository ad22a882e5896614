// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/scratchml/dataset"
	"github.com/katalvlaran/scratchml/evaluation"
	"github.com/katalvlaran/scratchml/internal/rng"
	"github.com/katalvlaran/scratchml/knn"
)

func runKNN(args []string, w io.Writer) error {
	fs := newFlagSet("knn", w)
	k := fs.Int("k", 5, "number of neighbors that vote")
	trainPct := fs.Float64("train", 0.70, "fraction of the iris data used as neighbors")
	seed := seedFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// 1) Split the iris measurements
	train, test, err := evaluation.SplitData(dataset.Iris(), *trainPct, rng.New(*seed))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "iris: %d neighbors, %d to classify, k=%d\n", len(train), len(test), *k)

	// 2) Classify every held-out flower
	predicted := make([]string, len(test))
	actual := make([]string, len(test))
	for i, p := range test {
		if predicted[i], err = knn.Classify(*k, train, p.Point); err != nil {
			return err
		}
		actual[i] = p.Label
	}

	// 3) Confusion matrix
	cm, err := evaluation.ConfusionMatrix(predicted, actual)
	if err != nil {
		return err
	}
	cells := make([]evaluation.Outcome[string], 0, len(cm))
	for o := range cm {
		cells = append(cells, o)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Predicted != cells[j].Predicted {
			return cells[i].Predicted < cells[j].Predicted
		}
		return cells[i].Actual < cells[j].Actual
	})
	for _, o := range cells {
		fmt.Fprintf(w, "  predicted %-10s actual %-10s %d\n", o.Predicted, o.Actual, cm[o])
	}
	acc, err := evaluation.MatrixAccuracy(cm)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "accuracy: %.4f\n", acc)
	return nil
}
