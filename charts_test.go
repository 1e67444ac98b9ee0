package polyfit

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/aouyang1/go-polyfit/dataset"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineFitRender(t *testing.T) {
	td := &dataset.Dataset{X: []float64{0, 1, 2}, Y: []float64{1, 3, 5}}

	page := components.NewPage()
	page.AddCharts(LineFit(td, []float64{1.1, 2.9, 5.2}))

	var buf bytes.Buffer
	require.Nil(t, page.Render(&buf))
	assert.Contains(t, buf.String(), "Polynomial Fit")
}

func TestLineXYSeriesRender(t *testing.T) {
	line := LineXYSeries(
		"Fit Residual",
		[]string{"Residual"},
		[]float64{0, 1, 2},
		[][]float64{{0.5, math.NaN(), -0.5}},
	)

	page := components.NewPage()
	page.AddCharts(line)

	var buf bytes.Buffer
	require.Nil(t, page.Render(&buf))
	assert.Contains(t, buf.String(), "Fit Residual")
}

func TestPlotFit(t *testing.T) {
	r, err := New(2, nil)
	require.Nil(t, err)
	require.Nil(t, r.Fit([]float64{4, 0, 2, 1, 3}, []float64{35, 3, 11, 5, 21}))

	path := filepath.Join(t.TempDir(), "fit.html")
	require.Nil(t, r.PlotFit(path))

	info, err := os.Stat(path)
	require.Nil(t, err)
	assert.Greater(t, info.Size(), int64(0))

	untrained, err := New(1, nil)
	require.Nil(t, err)
	require.ErrorIs(t, untrained.PlotFit(path), ErrUntrainedRegression)

	restored, err := NewFromModel(Model{Degree: 1, Coefficients: []float64{1, 2}})
	require.Nil(t, err)
	require.ErrorIs(t, restored.PlotFit(path), ErrNoTrainingData)
}
