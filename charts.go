package polyfit

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/aouyang1/go-polyfit/dataset"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
)

// LineXYSeries generates an echart multi-line chart for some arbitrary x/value combination.
// The input y is a slice of series that must have the same length as the input x slice.
func LineXYSeries(title string, seriesName []string, x []float64, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	lineData := make([][]opts.LineData, len(y))

	filteredX := make([]float64, 0, len(x))
	for i := 0; i < len(y); i++ {
		lineData[i] = make([]opts.LineData, 0, len(y[i]))
		for j := 0; j < len(y[i]); j++ {
			if math.IsNaN(y[i][j]) {
				continue
			}
			if i == 0 {
				filteredX = append(filteredX, x[j])
			}
			lineData[i] = append(lineData[i], opts.LineData{Value: y[i][j]})
		}
	}

	line = line.SetXAxis(filteredX)
	for i, series := range seriesName {
		line = line.AddSeries(series, lineData[i])
	}

	return line
}

// LineFit generates an echart line chart for a fit result plotting the observed values
// along with the modeled values.
func LineFit(trainingData *dataset.Dataset, fit []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Polynomial Fit",
			},
		),
	)

	lineDataActual := make([]opts.LineData, 0, len(trainingData.Y))
	lineDataFit := make([]opts.LineData, 0, len(fit))

	for i := 0; i < len(fit); i++ {
		lineDataActual = append(lineDataActual, opts.LineData{Value: trainingData.Y[i]})
		lineDataFit = append(lineDataFit, opts.LineData{Value: fit[i]})
	}

	line.SetXAxis(trainingData.X).
		AddSeries("Actual", lineDataActual).
		AddSeries("Fit", lineDataFit)
	return line
}

// PlotFit uses the Apache Echarts library to generate an html file showing the resulting
// fit against the training data along with the fit residual. Points are ordered by the
// training feature value so the curve reads left to right.
func (r *Regression) PlotFit(path string) error {
	if r == nil {
		return ErrUninitializedRegression
	}
	if !r.trained {
		return ErrUntrainedRegression
	}

	td := r.TrainingData().DropNan()
	if td.Len() == 0 {
		return ErrNoTrainingData
	}

	inds := make([]int, td.Len())
	x := make([]float64, td.Len())
	copy(x, td.X)
	floats.Argsort(x, inds)

	y := make([]float64, 0, td.Len())
	for _, idx := range inds {
		y = append(y, td.Y[idx])
	}

	fit, err := r.Predict(x)
	if err != nil {
		return fmt.Errorf("unable to predict over the training feature, %w", err)
	}

	residual := make([]float64, len(y))
	copy(residual, y)
	floats.Sub(residual, fit)

	page := components.NewPage()
	page.AddCharts(
		LineFit(&dataset.Dataset{X: x, Y: y}, fit),
		LineXYSeries(
			"Fit Residual",
			[]string{"Residual"},
			x,
			[][]float64{residual},
		),
	)
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return page.Render(io.MultiWriter(file))
}
