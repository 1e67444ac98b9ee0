package polyfit

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/aouyang1/go-polyfit/dataset"
	"github.com/aouyang1/go-polyfit/linalg"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrUninitializedRegression  = errors.New("uninitialized regression")
	ErrNegativeDegree           = errors.New("polynomial degree must not be negative")
	ErrInsufficientTrainingData = errors.New("insufficient training data after removing Nans")
	ErrUntrainedRegression      = errors.New("regression has not been trained yet")
	ErrNoModelCoefficients      = errors.New("no model coefficients from fit")
	ErrCoefLenMismatch          = errors.New("model coefficients do not match the polynomial degree")
	ErrNoTrainingData           = errors.New("no training data stored with this regression")
)

// Regression fits a single polynomial curve to a set of observations using the method
// of least squares. The coefficients are solved in closed form through the normal
// equations and an exact matrix inverse.
type Regression struct {
	opt *Options

	degree int
	scores *Scores // score calculations after training

	fitTrainingData *dataset.Dataset
	residual        []float64

	coef    []float64
	trained bool
}

// New creates a new regression instance for a polynomial of the given degree with the
// provided options. If none are provided, a default is used.
func New(degree int, opt *Options) (*Regression, error) {
	if degree < 0 {
		return nil, fmt.Errorf("got degree %d, %w", degree, ErrNegativeDegree)
	}
	if opt == nil {
		opt = NewDefaultOptions()
	}

	return &Regression{opt: opt, degree: degree}, nil
}

// NewFromModel creates a new regression instance given a polynomial Model to initialize.
// This instance can be used for inference immediately and does not need to be trained
// again.
func NewFromModel(model Model) (*Regression, error) {
	if model.Degree < 0 {
		return nil, fmt.Errorf("got degree %d, %w", model.Degree, ErrNegativeDegree)
	}
	if len(model.Coefficients) != model.Degree+1 {
		return nil, fmt.Errorf("got %d coefficients for degree %d, %w",
			len(model.Coefficients), model.Degree, ErrCoefLenMismatch)
	}
	opt := model.Options
	if opt == nil {
		opt = NewDefaultOptions()
	}

	coef := make([]float64, len(model.Coefficients))
	copy(coef, model.Coefficients)

	r := &Regression{
		opt:     opt,
		degree:  model.Degree,
		coef:    coef,
		scores:  model.Scores,
		trained: true,
	}
	return r, nil
}

// Fit takes the input training data and fits the polynomial coefficients minimizing
// the squared error over all samples. A failed fit leaves any previously trained
// coefficients untouched.
func (r *Regression) Fit(x, y []float64) error {
	if r == nil {
		return ErrUninitializedRegression
	}

	td, err := dataset.NewUnivariateDataset(x, y)
	if err != nil {
		return fmt.Errorf("unable to create training dataset, %w", err)
	}
	orig := td.Copy()

	coef, err := r.fitWithOutliers(td)
	if err != nil {
		return err
	}

	r.coef = coef
	r.trained = true
	r.fitTrainingData = orig

	// td.Y carries NaN in place of any masked outliers at this point so the scores
	// and residuals only reflect the samples backing the final coefficients
	predicted, err := r.Predict(td.X)
	if err != nil {
		return err
	}

	scores, err := NewScores(predicted, td.Y)
	if err != nil {
		return err
	}
	r.scores = scores

	residual := make([]float64, len(td.Y))
	copy(residual, td.Y)
	floats.Sub(residual, predicted)
	r.residual = residual

	return nil
}

// fitWithOutliers iterates the closed form fit masking detected outliers between
// passes. The input dataset observations are overwritten with NaN at masked points.
func (r *Regression) fitWithOutliers(td *dataset.Dataset) ([]float64, error) {
	numPasses := 0
	if r.opt.OutlierOptions != nil && r.opt.OutlierOptions.NumPasses > 0 {
		numPasses = r.opt.OutlierOptions.NumPasses
	}

	var coef []float64
	for i := 0; i <= numPasses; i++ {
		var err error
		coef, err = r.fitCoefficients(td)
		if err != nil {
			return nil, err
		}

		// the final pass only fits so the returned coefficients cover every
		// sample left unmasked
		if i == numPasses {
			break
		}

		predicted := predictWith(coef, td.X)
		residual := make([]float64, len(td.Y))
		copy(residual, td.Y)
		floats.Sub(residual, predicted)

		outlierIdxs := detectOutliers(
			residual,
			r.opt.OutlierOptions.LowerPercentile,
			r.opt.OutlierOptions.UpperPercentile,
			r.opt.OutlierOptions.TukeyFactor,
		)

		// no more outliers detected with outlier options so break early
		if len(outlierIdxs) == 0 {
			break
		}

		// masking every remaining outlier would leave too few samples to support
		// the polynomial so keep the current coefficients
		if td.DropNan().Len()-len(outlierIdxs) <= r.degree {
			slog.Warn("skipping outlier removal pass",
				"num_outliers", len(outlierIdxs),
				"num_samples", td.DropNan().Len(),
				"degree", r.degree)
			break
		}

		for _, idx := range outlierIdxs {
			td.Y[idx] = math.NaN()
		}
	}
	return coef, nil
}

// fitCoefficients solves the normal equations for the current unmasked samples
// returning the polynomial coefficients ordered from the intercept up.
func (r *Regression) fitCoefficients(td *dataset.Dataset) ([]float64, error) {
	clean := td.DropNan()
	n := clean.Len()
	if n <= r.degree {
		return nil, fmt.Errorf("got %d samples fitting %d coefficients, %w",
			n, r.degree+1, ErrInsufficientTrainingData)
	}

	v := linalg.Vandermonde(clean.X, r.degree)
	a, b := linalg.NormalEquations(v, clean.Y)

	aInv, err := linalg.Invert(a)
	if err != nil {
		return nil, err
	}

	var w mat.VecDense
	w.MulVec(aInv, b)

	return mat.Col(nil, 0, &w), nil
}

func predictWith(coef, x []float64) []float64 {
	if len(x) == 0 {
		return []float64{}
	}

	wMx := mat.NewDense(1, len(coef), coef)
	featMx := linalg.Vandermonde(x, len(coef)-1).T()

	var resMx mat.Dense
	resMx.Mul(wMx, featMx)

	return mat.Row(nil, 0, &resMx)
}

// Predict takes a slice of feature values in any order and produces the predicted
// value for those features given a pre-trained model.
func (r *Regression) Predict(x []float64) ([]float64, error) {
	if r == nil {
		return nil, ErrUninitializedRegression
	}
	if !r.trained {
		return nil, ErrUntrainedRegression
	}

	return predictWith(r.coef, x), nil
}

// Coefficients returns a slice copy of the polynomial coefficients ordered from the
// intercept up to the highest degree term
func (r *Regression) Coefficients() ([]float64, error) {
	if r == nil {
		return nil, ErrUninitializedRegression
	}
	if len(r.coef) == 0 {
		return nil, ErrNoModelCoefficients
	}
	coef := make([]float64, len(r.coef))
	copy(coef, r.coef)
	return coef, nil
}

// Intercept returns the constant term of the polynomial model
func (r *Regression) Intercept() float64 {
	if r == nil || len(r.coef) == 0 {
		return 0
	}
	return r.coef[0]
}

// Degree returns the degree of the polynomial being fit
func (r *Regression) Degree() int {
	if r == nil {
		return 0
	}
	return r.degree
}

// Model returns the serializeable format of the polynomial model composing of the
// degree, fit options, coefficients, and the model fit scores
func (r *Regression) Model() (Model, error) {
	if r == nil {
		return Model{}, ErrUninitializedRegression
	}
	if !r.trained {
		return Model{}, ErrUntrainedRegression
	}

	coef := make([]float64, len(r.coef))
	copy(coef, r.coef)

	m := Model{
		Degree:       r.degree,
		Options:      r.opt,
		Scores:       r.scores,
		Coefficients: coef,
	}
	return m, nil
}

// ModelEq returns a string representation of the polynomial equation in the format of
// y ~ b + m1*x + m2*x^2 + ...
func (r *Regression) ModelEq() (string, error) {
	if r == nil {
		return "", ErrUninitializedRegression
	}

	coef, err := r.Coefficients()
	if err != nil {
		return "", err
	}

	eq := "y ~ "
	eq += fmt.Sprintf("%.2f", coef[0])
	for i := 1; i < len(coef); i++ {
		if coef[i] == 0 {
			continue
		}
		eq += fmt.Sprintf("+%.2f*%s", coef[i], termLabel(i))
	}
	return eq, nil
}

// Scores returns the fit scores for evaluating how well the resulting model
// fit the training data
func (r *Regression) Scores() Scores {
	if r == nil {
		return Scores{}
	}
	if r.scores == nil {
		return Scores{}
	}
	return *r.scores
}

// Residuals returns a slice of values representing the difference between the
// training data and the fit data
func (r *Regression) Residuals() []float64 {
	if r == nil {
		return nil
	}
	res := make([]float64, len(r.residual))
	copy(res, r.residual)
	return res
}

// TrainingData returns a copy of the stored training data from the last fit
func (r *Regression) TrainingData() *dataset.Dataset {
	if r == nil || r.fitTrainingData == nil {
		return nil
	}
	return r.fitTrainingData.Copy()
}
