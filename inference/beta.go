// SPDX-License-Identifier: MIT

package inference

import "math"

// BetaFunction returns B(alpha, beta) = Γ(alpha)Γ(beta)/Γ(alpha+beta).
func BetaFunction(alpha, beta float64) float64 {
	return math.Gamma(alpha) * math.Gamma(beta) / math.Gamma(alpha+beta)
}

// BetaPDF is the Beta(alpha, beta) density. It is 0 outside the open
// interval (0, 1).
func BetaPDF(x, alpha, beta float64) float64 {
	if x <= 0 || x >= 1 {
		return 0
	}
	return math.Pow(x, alpha-1) * math.Pow(1-x, beta-1) / BetaFunction(alpha, beta)
}
