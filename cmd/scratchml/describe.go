// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/scratchml/dataset"
	"github.com/katalvlaran/scratchml/stats"
)

func runStats(args []string, w io.Writer) error {
	fs := newFlagSet("stats", w)
	if err := fs.Parse(args); err != nil {
		return err
	}

	friends := dataset.NumFriends()
	minutes := dataset.DailyMinutes()

	// 1) Central tendency
	mean, err := stats.Mean(friends)
	if err != nil {
		return err
	}
	median, err := stats.Median(friends)
	if err != nil {
		return err
	}
	modes, err := stats.Mode(friends)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "friends: n=%d mean=%.4f median=%g mode=%v\n", len(friends), mean, median, modes)
	for _, p := range []float64{0.10, 0.25, 0.75, 0.90} {
		q, err := stats.Quantile(friends, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  quantile(%.2f) = %g\n", p, q)
	}

	// 2) Dispersion
	spread, err := stats.DataRange(friends)
	if err != nil {
		return err
	}
	variance, err := stats.Variance(friends)
	if err != nil {
		return err
	}
	sd, err := stats.StandardDeviation(friends)
	if err != nil {
		return err
	}
	iqr, err := stats.InterquartileRange(friends)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "range=%g variance=%.4f sd=%.4f iqr=%g\n", spread, variance, sd, iqr)

	// 3) Correlation, with and without the outlier
	cov, err := stats.Covariance(friends, minutes)
	if err != nil {
		return err
	}
	r, err := stats.Correlation(friends, minutes)
	if err != nil {
		return err
	}
	gf, gm := dataset.GoodSeries()
	rGood, err := stats.Correlation(gf, gm)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "covariance=%.4f correlation=%.4f (without outlier %.4f)\n", cov, r, rGood)
	return nil
}
