// Package model defines the interfaces shared by fitted curves and the
// serialisable form of their coefficients.
package model

// Fitter fits a curve to samples (x[i], y[i]).
type Fitter interface {
	Fit(x, y []float64) error
}

// Predictor evaluates a fitted curve.
type Predictor interface {
	Predict(x []float64) ([]float64, error)
}

// Scorer returns the coefficient of determination of the curve on samples.
type Scorer interface {
	Score(x, y []float64) (float64, error)
}

// WeightExporter converts a curve to and from ModelWeights.
type WeightExporter interface {
	ExportWeights() (*ModelWeights, error)
	ImportWeights(w *ModelWeights) error
}

// Curve is a fitted parametric curve y = f(x).
type Curve interface {
	Fitter
	Predictor
	Scorer
	WeightExporter

	// IsFitted reports whether Fit has succeeded at least once.
	IsFitted() bool

	// Coefficients returns the fitted parameters in model order.
	Coefficients() []float64

	// Formula renders the fitted equation, e.g. "y = 2.000000x + 3.000000".
	Formula() string
}
