// SPDX-License-Identifier: MIT

package regression

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/scratchml/linalg"
)

const opExactLeastSquares = "ExactLeastSquares"

// ExactLeastSquares returns the beta minimising Σ (x·beta - y)² in closed
// form, via a QR least-squares solve of X·beta = Y.
// It is the fixed point FitMultiple descends towards.
//
// Errors:
//   - ErrEmptyInput if examples is empty.
//   - ErrLengthMismatch if examples differ in feature count.
//   - ErrSingular if there are fewer examples than features or X is rank
//     deficient.
func ExactLeastSquares(examples []Example) (linalg.Vector, error) {
	p, err := featureCount(examples)
	if err != nil {
		return nil, regressionErrorf(opExactLeastSquares, err)
	}
	n := len(examples)
	if n < p {
		return nil, regressionErrorf(opExactLeastSquares, ErrSingular)
	}

	x := mat.NewDense(n, p, nil)
	y := mat.NewVecDense(n, nil)
	for i, ex := range examples {
		x.SetRow(i, ex.X)
		y.SetVec(i, ex.Y)
	}

	var qr mat.QR
	qr.Factorize(x)
	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, y); err != nil {
		return nil, regressionErrorf(opExactLeastSquares, ErrSingular)
	}

	out := make(linalg.Vector, p)
	for j := range out {
		out[j] = beta.AtVec(j)
	}
	return out, nil
}
