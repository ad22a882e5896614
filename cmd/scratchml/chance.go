// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/scratchml/inference"
	"github.com/katalvlaran/scratchml/internal/rng"
	"github.com/katalvlaran/scratchml/probability"
)

func runProbability(args []string, w io.Writer) error {
	fs := newFlagSet("probability", w)
	families := fs.Int("families", 10000, "number of simulated two-child families")
	trials := fs.Int("trials", 100, "Bernoulli trials per binomial sample")
	seed := seedFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	r := rng.New(*seed)

	// 1) Conditional probability by simulation
	kids, err := probability.ConditionalKids(*families, r)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "P(both girls | older girl)  = %.3f\n", kids.BothGivenOlder)
	fmt.Fprintf(w, "P(both girls | either girl) = %.3f\n", kids.BothGivenEither)

	// 2) Continuous distributions
	fmt.Fprintf(w, "uniform cdf(0.3) = %.2f, normal pdf(0) = %.4f, normal cdf(1) = %.4f\n",
		probability.UniformCDF(0.3), probability.NormalPDF(0, 0, 1), probability.NormalCDF(1, 0, 1))
	z, err := probability.InverseNormalCDF(0.975, 0, 1)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "inverse normal cdf(0.975) = %.3f\n", z)

	// 3) Binomial sampling
	b, err := probability.Binomial(*trials, 0.5, r)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "binomial(%d, 0.5) sample = %d\n", *trials, b)
	return nil
}

func runInference(args []string, w io.Writer) error {
	fs := newFlagSet("inference", w)
	flips := fs.Int("flips", 1000, "coin flips per experiment")
	experiments := fs.Int("experiments", 1000, "simulated experiments for the rejection count")
	seed := seedFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// 1) Is the coin fair?
	mu0, sigma0, err := inference.NormalApproximationToBinomial(*flips, 0.5)
	if err != nil {
		return err
	}
	lo, hi, err := inference.TwoSidedBounds(0.95, mu0, sigma0)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "fair coin, %d flips: mu=%.1f sigma=%.4f, 95%% bounds [%.1f, %.1f]\n", *flips, mu0, sigma0, lo, hi)

	mu1, sigma1, err := inference.NormalApproximationToBinomial(*flips, 0.55)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "power against p=0.55: %.4f\n", inference.Power(lo, hi, mu1, sigma1))

	upper, err := inference.NormalUpperBound(0.95, mu0, sigma0)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "one-sided power: %.4f\n", inference.Power(math.Inf(-1), upper, mu1, sigma1))

	x := mu0 + 29.5
	fmt.Fprintf(w, "two-sided p-value of %.1f heads: %.4f\n", x, inference.TwoSidedPValue(x, mu0, sigma0))

	r := rng.New(*seed)
	extreme, err := inference.ExtremeValueCount(*experiments, *flips, int(math.Ceil(x)), r)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "simulated p-value: %.4f\n", float64(extreme)/float64(*experiments))

	rejections, err := inference.CountRejections(*experiments, *flips, int(lo), int(hi)+1, r)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "fair-coin experiments rejected: %d of %d\n", rejections, *experiments)

	// 2) Confidence interval
	ciLo, ciHi, err := inference.ProportionConfidenceInterval(1000, 540, 0.95)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "540 heads in 1000: 95%% interval [%.4f, %.4f]\n", ciLo, ciHi)

	// 3) A/B test
	zAB, err := inference.ABTestStatistic(1000, 200, 1000, 150)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "A/B z=%.3f p=%.4f\n", zAB, inference.TwoSidedPValue(zAB, 0, 1))

	// 4) Bayesian prior
	fmt.Fprintf(w, "Beta(20, 20) density at 0.5: %.4f\n", inference.BetaPDF(0.5, 20, 20))
	return nil
}
