package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnivariateDataset(t *testing.T) {
	testData := map[string]struct {
		x        []float64
		y        []float64
		expected *Dataset
		err      error
	}{
		"length mismatch": {
			x:   []float64{1, 2},
			y:   []float64{1},
			err: ErrDatasetLenMismatch,
		},
		"empty": {
			expected: &Dataset{
				X: []float64{},
				Y: []float64{},
			},
		},
		"valid": {
			x: []float64{0, 1, 2},
			y: []float64{4, 5, 6},
			expected: &Dataset{
				X: []float64{0, 1, 2},
				Y: []float64{4, 5, 6},
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			ds, err := NewUnivariateDataset(td.x, td.y)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, ds)
		})
	}
}

func TestDatasetOwnsItsData(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{4, 5, 6}
	ds, err := NewUnivariateDataset(x, y)
	require.Nil(t, err)

	x[0] = 99
	y[0] = 99
	assert.Equal(t, []float64{0, 1, 2}, ds.X)
	assert.Equal(t, []float64{4, 5, 6}, ds.Y)
}

func TestCopy(t *testing.T) {
	ds, err := NewUnivariateDataset([]float64{0, 1}, []float64{2, 3})
	require.Nil(t, err)

	nextDs := ds.Copy()
	require.Equal(t, ds, nextDs)

	ds.X = []float64{4, 5}
	require.NotEqual(t, nextDs, ds)
}

func TestDropNan(t *testing.T) {
	testData := map[string]struct {
		ds       *Dataset
		expected *Dataset
	}{
		"nil input for nan drop": {ds: nil, expected: nil},
		"no data to drop": {
			ds: &Dataset{},
			expected: &Dataset{
				X: []float64{},
				Y: []float64{},
			},
		},
		"no NaNs": {
			ds: &Dataset{
				X: []float64{1, 2, 3, 4},
				Y: []float64{5, 6, 7, 8},
			},
			expected: &Dataset{
				X: []float64{1, 2, 3, 4},
				Y: []float64{5, 6, 7, 8},
			},
		},
		"observations with NaNs": {
			ds: &Dataset{
				X: []float64{1, 2, 3, 4, 5, 6, 7},
				Y: []float64{math.NaN(), 2, 3, math.NaN(), 5, 6, math.NaN()},
			},
			expected: &Dataset{
				X: []float64{2, 3, 5, 6},
				Y: []float64{2, 3, 5, 6},
			},
		},
		"inputs with NaNs": {
			ds: &Dataset{
				X: []float64{1, math.NaN(), 3},
				Y: []float64{4, 5, 6},
			},
			expected: &Dataset{
				X: []float64{1, 3},
				Y: []float64{4, 6},
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res := td.ds.DropNan()
			assert.Equal(t, td.expected, res)
		})
	}
}

func TestLen(t *testing.T) {
	var nilDs *Dataset
	assert.Equal(t, 0, nilDs.Len())

	ds, err := NewUnivariateDataset([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.Nil(t, err)
	assert.Equal(t, 3, ds.Len())
}
