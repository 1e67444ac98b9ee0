package linalg

import (
	"gonum.org/v1/gonum/mat"
)

// Vandermonde builds the design matrix for a polynomial fit of the given
// degree. Row i holds the consecutive powers of x[i] from x^0 up to x^degree,
// so the resulting matrix is len(x) by degree+1. Powers are accumulated by
// repeated multiplication keeping integer-valued samples exact and rounding
// consistent across columns. Callers guarantee len(x) > 0 and degree >= 0.
func Vandermonde(x []float64, degree int) *mat.Dense {
	v := mat.NewDense(len(x), degree+1, nil)
	for i := range x {
		for j, p := 0, 1.0; j <= degree; j, p = j+1, p*x[i] {
			v.Set(i, j, p)
		}
	}
	return v
}
