// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"

	"github.com/katalvlaran/scratchml/dataset"
	"github.com/katalvlaran/scratchml/knn"
	"github.com/katalvlaran/scratchml/linalg"
	"github.com/katalvlaran/scratchml/plotting"
	"github.com/katalvlaran/scratchml/regression"
	"github.com/katalvlaran/scratchml/social"
)

func runPlot(args []string, w io.Writer) error {
	fs := newFlagSet("plot", w)
	out := fs.String("out", ".", "directory the charts are written to")
	format := fs.String("format", "png", "image format: png, svg, pdf, ...")
	bins := fs.Int("bins", 20, "histogram bins")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		return err
	}

	save := func(name string, p *plot.Plot, o plotting.Options) error {
		path := filepath.Join(*out, name+"."+*format)
		if err := plotting.Save(p, path, o); err != nil {
			return err
		}
		fmt.Fprintf(w, "wrote %s\n", path)
		return nil
	}

	// 1) Minutes against friends with the least-squares line
	xs, ys := dataset.GoodSeries()
	alpha, beta, err := regression.LeastSquaresFit(xs, ys)
	if err != nil {
		return err
	}
	o := plotting.DefaultOptions()
	o.Title, o.XLabel, o.YLabel = "Daily minutes vs friends", "# of friends", "minutes per day"
	p, err := plotting.RegressionPlot(xs, ys, alpha, beta, o)
	if err != nil {
		return err
	}
	if err := save("regression", p, o); err != nil {
		return err
	}

	// 2) Friend count histogram
	o = plotting.DefaultOptions()
	o.Title, o.XLabel, o.YLabel = "Friend counts", "# of friends", "# of people"
	if p, err = plotting.Histogram(dataset.NumFriends(), *bins, o); err != nil {
		return err
	}
	if err := save("friends_hist", p, o); err != nil {
		return err
	}

	// 3) Iris petal length against sepal length, with the class means marked
	iris := dataset.Iris()
	o = plotting.DefaultOptions()
	o.Title, o.XLabel, o.YLabel = "Iris", "sepal length", "petal length"
	if p, err = plotting.LabeledScatter(iris, 0, 2, o); err != nil {
		return err
	}
	if err := plotting.MarkPoints(p, "class mean", classMeans(iris, 0, 2)...); err != nil {
		return err
	}
	if err := save("iris", p, o); err != nil {
		return err
	}

	// 4) Average salary by tenure bucket
	buckets := []string{social.BucketUnderTwo, social.BucketTwoToFive, social.BucketMoreThanFive}
	avg := social.AverageSalaryByBucket(dataset.SalariesAndTenures())
	values := make([]float64, len(buckets))
	for i, b := range buckets {
		values[i] = avg[b]
	}
	o = plotting.DefaultOptions()
	o.Width = 6 * o.Width / 4
	o.Title, o.YLabel = "Average salary by tenure", "salary"
	if p, err = plotting.BarChart(buckets, values, o); err != nil {
		return err
	}
	return save("salary", p, o)
}

// classMeans returns, per label in first-seen order, the mean of features
// xIdx and yIdx.
func classMeans(points []knn.LabeledPoint, xIdx, yIdx int) []linalg.Vector {
	var order []string
	groups := make(map[string][]linalg.Vector)
	for _, p := range points {
		if _, ok := groups[p.Label]; !ok {
			order = append(order, p.Label)
		}
		groups[p.Label] = append(groups[p.Label], linalg.Vector{p.Point[xIdx], p.Point[yIdx]})
	}
	out := make([]linalg.Vector, 0, len(order))
	for _, label := range order {
		m, err := linalg.VectorMean(groups[label])
		if err != nil {
			continue
		}
		out = append(out, m)
	}
	return out
}
