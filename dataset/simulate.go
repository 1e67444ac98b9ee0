package dataset

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// GenerateX returns n evenly spaced input samples spanning start through end
// inclusive. n must be at least 2.
func GenerateX(n int, start, end float64) []float64 {
	return floats.Span(make([]float64, n), start, end)
}

type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

func (s Series) SetConst(x []float64, val, start, end float64) Series {
	n := len(s)
	for i := 0; i < n; i++ {
		if x[i] >= start && x[i] < end {
			s[i] = val
		}
	}
	return s
}

// GeneratePolyY evaluates the polynomial with the given coefficients, ordered
// from the constant term up, at every input sample.
func GeneratePolyY(x []float64, coef []float64) Series {
	y := make([]float64, 0, len(x))
	for _, xi := range x {
		val := 0.0
		for j := len(coef) - 1; j >= 0; j-- {
			val = val*xi + coef[j]
		}
		y = append(y, val)
	}
	return Series(y)
}

func GenerateConstY(n int, val float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Series(y)
}

func GenerateNoise(n int, scale float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, rand.NormFloat64()*scale)
	}
	return Series(y)
}

// GenerateSpikes returns a series that is zero everywhere except at points
// selected with probability rate, which are set to amp.
func GenerateSpikes(n int, amp, rate float64) Series {
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		if rand.Float64() < rate {
			y[i] = amp
		}
	}
	return Series(y)
}
