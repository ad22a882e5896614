// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/scratchml/dataset"
	"github.com/katalvlaran/scratchml/gradient"
	"github.com/katalvlaran/scratchml/internal/rng"
	"github.com/katalvlaran/scratchml/linalg"
	"github.com/katalvlaran/scratchml/regression"
)

type point struct{ x, y float64 }

func runGradient(args []string, w io.Writer) error {
	fs := newFlagSet("gradient", w)
	epochs := fs.Int("epochs", 1000, "passes over the line data")
	seed := seedFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// 1) Minimise Σ v² from a random start
	start := linalg.Vector(rng.Uniform(3, -10, 10, rng.New(*seed)))
	v, err := gradient.Descend(start, gradient.SumOfSquaresGradient, -0.01, 1000)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "sum of squares minimum after 1000 steps: |v| = %.6f\n", linalg.Magnitude(v))

	// 2) Recover y = 20x + 5 by per-example descent
	var pts []point
	for x := -10; x < 10; x++ {
		pts = append(pts, point{float64(x), 20*float64(x) + 5})
	}
	opts := gradient.DefaultOptions()
	opts.Epochs = *epochs
	opts.Shuffle = true
	opts.Seed = *seed
	theta, err := gradient.Fit(pts, 2, func(p point, theta linalg.Vector) (linalg.Vector, error) {
		e := theta[0]*p.x + theta[1] - p.y
		return linalg.Vector{2 * e * p.x, 2 * e}, nil
	}, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "fitted slope=%.3f intercept=%.3f (want 20, 5)\n", theta[0], theta[1])
	return nil
}

func runRegression(args []string, w io.Writer) error {
	fs := newFlagSet("regression", w)
	epochs := fs.Int("epochs", 5000, "epochs for the multiple and ridge fits")
	samples := fs.Int("samples", 20, "bootstrap resamples for standard errors")
	workers := fs.Int("workers", 1, "goroutines summing each batch gradient")
	seed := seedFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// 1) Simple regression: minutes ~ friends
	xs, ys := dataset.GoodSeries()
	alpha, beta, err := regression.LeastSquaresFit(xs, ys)
	if err != nil {
		return err
	}
	r2, err := regression.RSquared(alpha, beta, xs, ys)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "simple: alpha=%.4f beta=%.4f R²=%.4f\n", alpha, beta, r2)

	gdOpts := regression.DefaultSimpleGradientOptions()
	gdOpts.Seed = *seed
	gAlpha, gBeta, err := regression.FitSimpleGradient(xs, ys, gdOpts)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "simple (gradient descent): alpha=%.4f beta=%.4f\n", gAlpha, gBeta)

	// 2) Multiple regression: [1, friends, work hours, PhD]
	examples := dataset.RegressionExamples()
	exact, err := regression.ExactLeastSquares(examples)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "multiple (exact): beta=%.4f\n", []float64(exact))

	opts := regression.BootstrapFitOptions()
	opts.Epochs = *epochs
	opts.Seed = *seed
	opts.Workers = *workers
	fitted, err := regression.FitMultiple(examples, opts)
	if err != nil {
		return err
	}
	mr2, err := regression.MultipleRSquared(examples, fitted)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "multiple (gradient descent): beta=%.4f R²=%.4f\n", []float64(fitted), mr2)

	// 3) Standard errors by bootstrap
	se, err := regression.BootstrapStandardErrors(examples, *samples, opts, rng.New(*seed))
	if err != nil {
		return err
	}
	for j := range fitted {
		if se[j] == 0 {
			fmt.Fprintf(w, "  beta[%d]=%.4f se=0\n", j, fitted[j])
			continue
		}
		p, err := regression.CoefficientPValue(fitted[j], se[j])
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  beta[%d]=%.4f se=%.4f p=%.4f\n", j, fitted[j], se[j], p)
	}

	// 4) Ridge sweep
	for _, a := range []float64{0, 0.1, 1, 10} {
		rb, err := regression.FitRidge(examples, a, opts)
		if err != nil {
			return err
		}
		rr2, err := regression.MultipleRSquared(examples, rb)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "ridge alpha=%-4g penalty norm=%.4f R²=%.4f\n", a, linalg.SumOfSquares(rb[1:]), rr2)
	}
	return nil
}
