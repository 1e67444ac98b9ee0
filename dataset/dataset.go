package dataset

import (
	"errors"
	"fmt"
	"math"
)

var ErrDatasetLenMismatch = errors.New("input feature has a different length than observations")

// Dataset represents a univariate sample set storing a slice of input values
// and observations. Both must be of the same length.
type Dataset struct {
	X []float64
	Y []float64
}

// NewUnivariateDataset returns an instance of a Dataset given an input and an
// observation slice. Both slices are copied so later mutations by the caller
// do not leak into a fit.
func NewUnivariateDataset(x, y []float64) (*Dataset, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf(
			"input feature has length of %d, but observations has a length of %d, %w",
			len(x), len(y), ErrDatasetLenMismatch,
		)
	}

	xSeries := make([]float64, len(x))
	ySeries := make([]float64, len(y))
	copy(xSeries, x)
	copy(ySeries, y)
	ds := &Dataset{
		X: xSeries,
		Y: ySeries,
	}

	return ds, nil
}

func (d *Dataset) Copy() *Dataset {
	xSeries := make([]float64, len(d.X))
	ySeries := make([]float64, len(d.Y))
	copy(xSeries, d.X)
	copy(ySeries, d.Y)
	return &Dataset{
		X: xSeries,
		Y: ySeries,
	}
}

// DropNan returns a new Dataset without the sample pairs where either the
// input or the observation is NaN.
func (d *Dataset) DropNan() *Dataset {
	if d == nil {
		return nil
	}

	xSeries := make([]float64, 0, len(d.X))
	ySeries := make([]float64, 0, len(d.Y))
	for i := 0; i < len(d.X); i++ {
		if math.IsNaN(d.X[i]) || math.IsNaN(d.Y[i]) {
			continue
		}
		xSeries = append(xSeries, d.X[i])
		ySeries = append(ySeries, d.Y[i])
	}
	return &Dataset{
		X: xSeries,
		Y: ySeries,
	}
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.X)
}
