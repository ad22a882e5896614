// SPDX-License-Identifier: MIT

// Package regression fits linear models to labeled numeric data.
//
// ✨ Models:
//
//	Simple    y ≈ alpha + beta·x
//	          LeastSquaresFit (closed form) or FitSimpleGradient.
//	Multiple  y ≈ x·beta, where x[0] is conventionally the constant 1
//	          FitMultiple (minibatch gradient descent) or ExactLeastSquares
//	          (QR solve, gonum/mat).
//	Ridge     FitRidge adds alpha·Σ beta[1:]² to the squared error; the
//	          constant term beta[0] is never penalised.
//
// Goodness of fit is reported by RSquared / MultipleRSquared, and
// coefficient uncertainty by BootstrapStandardErrors + CoefficientPValue.
//
// ⚙️ Gradient fits delegate to package gradient: pass a FitOptions
// (an alias of gradient.Options) to control epochs, learning rate, batch size,
// shuffling and seeding. The defaults are lr 0.001, 1000 epochs, batch 1,
// sequential batches.
package regression
