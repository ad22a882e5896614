// SPDX-License-Identifier: MIT

// Package scratchml is a small data-science toolkit written from first
// principles: the linear algebra, statistics, probability and learning
// algorithms are implemented in plain Go over float64 slices, and each
// package can be read on its own.
//
// 🚀 What is inside?
//
//	• Vectors & matrices: arithmetic, norms, distances, shapes
//	• Descriptive statistics: mean, median, quantiles, mode, dispersion, correlation
//	• Probability: uniform & normal distributions, inverse CDF, Bernoulli/binomial sampling
//	• Inference: normal approximation, hypothesis bounds, power, p-values, A/B tests, bootstrap
//	• Gradient descent: difference quotients, minibatches, a generic fit loop
//	• Regression: simple, multiple (gradient & exact), ridge, bootstrap standard errors
//	• Classification: naive Bayes spam filter, k-nearest neighbors
//	• Evaluation: train/test splits, precision, recall, F1, confusion matrices
//	• Social network: friendships, interests, salaries, degrees of separation
//
// ✨ Ground rules
//
//   - Errors, not panics: every precondition is a sentinel error matched with errors.Is
//   - Reproducible: every random choice takes a *rand.Rand or a seed
//   - Inputs are never mutated; results are fresh slices
//
// Subpackages:
//
//	linalg/      Vector, Matrix and their operations
//	stats/       descriptive statistics
//	probability/ distributions and sampling
//	inference/   hypothesis testing and resampling
//	gradient/    gradient estimation, minibatches, Fit
//	regression/  simple, multiple and ridge regression
//	naivebayes/  tokenizer and spam classifier
//	knn/         majority vote and nearest-neighbor classification
//	evaluation/  splits and classifier metrics
//	social/      the DataSciencester network
//	dataset/     built-in data, iris and spam-corpus loaders
//	plotting/    charts with gonum/plot
//
// Try it:
//
//	go run ./cmd/scratchml regression
package scratchml
