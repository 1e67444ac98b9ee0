package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateX(t *testing.T) {
	x := GenerateX(5, 0.0, 1.0)
	assert.Equal(t, []float64{0.0, 0.25, 0.5, 0.75, 1.0}, x)
}

func TestGeneratePolyY(t *testing.T) {
	testData := map[string]struct {
		x        []float64
		coef     []float64
		expected Series
	}{
		"constant": {
			x:        []float64{-1, 0, 7},
			coef:     []float64{5},
			expected: Series{5, 5, 5},
		},
		"line": {
			x:        []float64{0, 1, 2},
			coef:     []float64{1, 2},
			expected: Series{1, 3, 5},
		},
		"quadratic": {
			x:        []float64{0, 1, 2, 3, 4},
			coef:     []float64{3, 1, 2},
			expected: Series{3, 6, 13, 24, 39},
		},
		"no coefficients": {
			x:        []float64{1, 2},
			coef:     nil,
			expected: Series{0, 0},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, GeneratePolyY(td.x, td.coef))
		})
	}
}

func TestSeriesAdd(t *testing.T) {
	y := GenerateConstY(3, 2.0).Add(Series{1, 2, 3})
	assert.Equal(t, Series{3, 4, 5}, y)
}

func TestSeriesSetConst(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := GenerateConstY(4, 1.0).SetConst(x, 9.0, 1.0, 3.0)
	assert.Equal(t, Series{1, 9, 9, 1}, y)
}

func TestGenerateNoise(t *testing.T) {
	y := GenerateNoise(100, 0.1)
	require.Len(t, y, 100)
	for _, v := range y {
		assert.Less(t, v, 1.0)
		assert.Greater(t, v, -1.0)
	}
}

func TestGenerateSpikes(t *testing.T) {
	y := GenerateSpikes(100, 50.0, 0.1)
	require.Len(t, y, 100)
	for _, v := range y {
		if v != 0.0 {
			assert.Equal(t, 50.0, v)
		}
	}
}
