// Package linalg implements the dense matrix routines behind a closed-form
// polynomial least squares fit
package linalg

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// PivotTol is the smallest pivot magnitude Gauss-Jordan elimination accepts
// before declaring the matrix singular.
const PivotTol = 1e-10

var (
	ErrSingular  = errors.New("matrix is singular to working precision")
	ErrNonSquare = errors.New("matrix is not square")
)

// Invert computes the inverse of the square matrix a using Gauss-Jordan
// elimination with partial pivoting. The input matrix is left unmodified.
// Returns ErrSingular wrapped with the offending column if any pivot
// magnitude falls below PivotTol.
func Invert(a *mat.Dense) (*mat.Dense, error) {
	m, n := a.Dims()
	if m != n {
		return nil, fmt.Errorf("got a %dx%d matrix, %w", m, n, ErrNonSquare)
	}

	var work mat.Dense
	work.CloneFrom(a)
	inv := identity(m)

	for i := 0; i < m; i++ {
		// bring the largest remaining entry of column i into pivot position
		pivot := i
		for k := i + 1; k < m; k++ {
			if math.Abs(work.At(k, i)) > math.Abs(work.At(pivot, i)) {
				pivot = k
			}
		}
		if math.Abs(work.At(pivot, i)) < PivotTol {
			return nil, fmt.Errorf("no usable pivot in column %d, %w", i, ErrSingular)
		}
		if pivot != i {
			swapRows(&work, i, pivot)
			swapRows(inv, i, pivot)
		}

		p := work.At(i, i)
		floats.Scale(1.0/p, work.RawRowView(i))
		floats.Scale(1.0/p, inv.RawRowView(i))

		for k := 0; k < m; k++ {
			if k == i {
				continue
			}
			f := work.At(k, i)
			if f == 0.0 {
				continue
			}
			floats.AddScaled(work.RawRowView(k), -f, work.RawRowView(i))
			floats.AddScaled(inv.RawRowView(k), -f, inv.RawRowView(i))
		}
	}

	return inv, nil
}

func identity(n int) *mat.Dense {
	id := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1.0)
	}
	return id
}

func swapRows(m *mat.Dense, i, j int) {
	ri := m.RawRowView(i)
	rj := m.RawRowView(j)
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
