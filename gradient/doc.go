// SPDX-License-Identifier: MIT

// Package gradient implements first-principles gradient descent: numeric
// difference quotients, a single gradient step, a minibatch generator and a
// fixed-epoch fitting loop that regression models plug their per-example
// loss gradients into.
//
// 🚀 Building blocks
//
//	DifferenceQuotient / PartialDifferenceQuotient / EstimateGradient
//	    forward finite differences, for checking analytic gradients.
//	Step(v, g, s)
//	    v + s·g. Negative s descends, positive s ascends.
//	Descend(theta, gradFn, s, steps)
//	    plain fixed-step loop for objectives with a closed-form gradient.
//	Minibatches(data, size, ...BatchOption)
//	    iter.Seq of contiguous chunks; shuffling permutes chunk STARTS only.
//	Fit / FitFrom
//	    epochs × batches × mean per-example gradient × Step(-LearningRate).
//
// ⚙️ Usage:
//
//	opts := gradient.DefaultOptions()
//	opts.Epochs, opts.BatchSize = 5000, 25
//	theta, err := gradient.Fit(examples, dim, sqErrGrad, opts)
//
// Minibatch shuffling:
//
//	With shuffling enabled the order in which chunks are visited changes on
//	every pass, but each chunk always holds the same contiguous run of
//	examples in dataset order. Callers that need per-example shuffling must
//	shuffle the dataset themselves before fitting.
//
// Stopping:
//
//	Fitting runs exactly Options.Epochs epochs unless Options.Tolerance > 0,
//	in which case it also stops after the first epoch whose net parameter
//	change has magnitude below Tolerance.
package gradient
