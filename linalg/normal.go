package linalg

import (
	"gonum.org/v1/gonum/mat"
)

// NormalEquations reduces the least squares problem min ||Xw - y||^2 to the
// square system A*w = b where A = XᵗX and b = Xᵗy. A is symmetric with
// dimensions matching the column count of x. No conditioning checks happen
// here; a rank deficient system surfaces later as a singular matrix during
// inversion.
func NormalEquations(x *mat.Dense, y []float64) (*mat.Dense, *mat.VecDense) {
	var a mat.Dense
	a.Mul(x.T(), x)

	var b mat.VecDense
	b.MulVec(x.T(), mat.NewVecDense(len(y), y))

	return &a, &b
}
