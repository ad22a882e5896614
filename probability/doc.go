// SPDX-License-Identifier: MIT

// Package probability provides the continuous distributions and discrete
// random draws used by the inference and regression packages.
//
//	UniformPDF / UniformCDF       U[0, 1)
//	NormalPDF / NormalCDF         N(mu, sigma²), closed form via math.Erf
//	InverseNormalCDF              bisection on [-10, 10] in standard units
//	BernoulliTrial / Binomial     draws from a caller-supplied *rand.Rand
//	ConditionalKids               the "two children" conditional-probability
//	                              simulation
//
// All draws take an explicit *rand.Rand; nil selects the package-wide
// default seed, so results are reproducible.
package probability
