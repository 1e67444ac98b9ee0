package polyfit

// OutlierOptions configures the iterative outlier removal performed while
// fitting. Residual outliers are detected with Tukey fences, masked out of the
// training set, and the polynomial refit up to NumPasses times. The final pass
// fits without masking so the reported scores and residuals cover every sample
// behind the returned coefficients. A NumPasses of zero or less fits once with
// no removal.
type OutlierOptions struct {
	NumPasses       int     `json:"num_passes"`
	UpperPercentile float64 `json:"upper_percentile"`
	LowerPercentile float64 `json:"lower_percentile"`
	TukeyFactor     float64 `json:"tukey_factor"`
}

func NewOutlierOptions() *OutlierOptions {
	return &OutlierOptions{
		NumPasses:       3,
		UpperPercentile: 0.9,
		LowerPercentile: 0.1,
		TukeyFactor:     1.0,
	}
}

// Options configures a polynomial fit. Fits are run on the training data as
// provided unless outlier removal is requested with OutlierOptions.
type Options struct {
	OutlierOptions *OutlierOptions `json:"outlier_options"`
}

// NewDefaultOptions returns a set of default fit options
func NewDefaultOptions() *Options {
	return &Options{}
}
