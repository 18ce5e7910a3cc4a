package regression

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/curvefit/core/model"
	"github.com/YuminosukeSato/curvefit/metrics"
	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// Keys used in exported ModelWeights.
const (
	hyperSingularityCheck = "singularity_check"
	metaSamples           = "samples"
)

// LinearRegression is the estimator form of FitLinear.
type LinearRegression struct {
	model.BaseEstimator
	opts []Option
	fit  LinearFit
}

// NewLinearRegression creates an unfitted linear estimator. opts are passed
// to every Fit.
func NewLinearRegression(opts ...Option) *LinearRegression {
	return &LinearRegression{opts: opts}
}

// Fit fits the line. On failure the previous coefficients are kept.
func (r *LinearRegression) Fit(x, y []float64) error {
	fit, err := FitLinear(x, y, r.opts...)
	if err != nil {
		return err
	}
	r.fit = fit
	r.SetFitted(len(x))
	return nil
}

// Predict evaluates the fitted line at each x.
func (r *LinearRegression) Predict(x []float64) ([]float64, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}
	return predictEach(x, r.fit.Predict), nil
}

// Score returns R² of the fitted line on (x, y).
func (r *LinearRegression) Score(x, y []float64) (float64, error) {
	return score("LinearRegression", r, x, y)
}

// Result returns the last successful fit.
func (r *LinearRegression) Result() LinearFit {
	return r.fit
}

// Coefficients returns [slope, intercept], or nil before Fit.
func (r *LinearRegression) Coefficients() []float64 {
	if !r.IsFitted() {
		return nil
	}
	return []float64{r.fit.Slope, r.fit.Intercept}
}

// Formula renders "y = mx + b".
func (r *LinearRegression) Formula() string {
	return fmt.Sprintf("y = %fx + %f", r.fit.Slope, r.fit.Intercept)
}

// ExportWeights implements model.WeightExporter.
func (r *LinearRegression) ExportWeights() (*model.ModelWeights, error) {
	return exportWeights("LinearRegression", KindLinear, r, r.opts)
}

// ImportWeights implements model.WeightExporter.
func (r *LinearRegression) ImportWeights(w *model.ModelWeights) error {
	coef, n, err := importWeights("LinearRegression", KindLinear, w, 2)
	if err != nil {
		return err
	}
	r.fit = LinearFit{Slope: coef[0], Intercept: coef[1]}
	r.SetFitted(n)
	return nil
}

// QuadraticRegression is the estimator form of FitQuadratic.
type QuadraticRegression struct {
	model.BaseEstimator
	opts []Option
	fit  QuadraticFit
}

// NewQuadraticRegression creates an unfitted quadratic estimator.
func NewQuadraticRegression(opts ...Option) *QuadraticRegression {
	return &QuadraticRegression{opts: opts}
}

// Fit fits the parabola. On failure the previous coefficients are kept.
func (r *QuadraticRegression) Fit(x, y []float64) error {
	fit, err := FitQuadratic(x, y, r.opts...)
	if err != nil {
		return err
	}
	r.fit = fit
	r.SetFitted(len(x))
	return nil
}

// Predict evaluates the fitted parabola at each x.
func (r *QuadraticRegression) Predict(x []float64) ([]float64, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("QuadraticRegression", "Predict")
	}
	return predictEach(x, r.fit.Predict), nil
}

// Score returns R² of the fitted parabola on (x, y).
func (r *QuadraticRegression) Score(x, y []float64) (float64, error) {
	return score("QuadraticRegression", r, x, y)
}

// Result returns the last successful fit.
func (r *QuadraticRegression) Result() QuadraticFit {
	return r.fit
}

// Coefficients returns [a, b, c], or nil before Fit.
func (r *QuadraticRegression) Coefficients() []float64 {
	if !r.IsFitted() {
		return nil
	}
	return []float64{r.fit.A, r.fit.B, r.fit.C}
}

// Formula renders "y = ax^2 + bx + c".
func (r *QuadraticRegression) Formula() string {
	return fmt.Sprintf("y = %fx^2 + %fx + %f", r.fit.A, r.fit.B, r.fit.C)
}

// ExportWeights implements model.WeightExporter.
func (r *QuadraticRegression) ExportWeights() (*model.ModelWeights, error) {
	return exportWeights("QuadraticRegression", KindQuadratic, r, r.opts)
}

// ImportWeights implements model.WeightExporter.
func (r *QuadraticRegression) ImportWeights(w *model.ModelWeights) error {
	coef, n, err := importWeights("QuadraticRegression", KindQuadratic, w, 3)
	if err != nil {
		return err
	}
	r.fit = QuadraticFit{A: coef[0], B: coef[1], C: coef[2]}
	r.SetFitted(n)
	return nil
}

// ExponentialRegression is the estimator form of FitExponential.
type ExponentialRegression struct {
	model.BaseEstimator
	opts []Option
	fit  ExponentialFit
}

// NewExponentialRegression creates an unfitted exponential estimator.
func NewExponentialRegression(opts ...Option) *ExponentialRegression {
	return &ExponentialRegression{opts: opts}
}

// Fit fits the curve. On failure the previous coefficients are kept.
func (r *ExponentialRegression) Fit(x, y []float64) error {
	fit, err := FitExponential(x, y, r.opts...)
	if err != nil {
		return err
	}
	r.fit = fit
	r.SetFitted(len(x))
	return nil
}

// Predict evaluates the fitted curve at each x.
func (r *ExponentialRegression) Predict(x []float64) ([]float64, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("ExponentialRegression", "Predict")
	}
	return predictEach(x, r.fit.Predict), nil
}

// Score returns R² of the fitted curve on (x, y), measured in y rather
// than ln y.
func (r *ExponentialRegression) Score(x, y []float64) (float64, error) {
	return score("ExponentialRegression", r, x, y)
}

// Result returns the last successful fit.
func (r *ExponentialRegression) Result() ExponentialFit {
	return r.fit
}

// Coefficients returns [A, r], or nil before Fit.
func (r *ExponentialRegression) Coefficients() []float64 {
	if !r.IsFitted() {
		return nil
	}
	return []float64{r.fit.A, r.fit.R}
}

// Formula renders "y = A * r^x".
func (r *ExponentialRegression) Formula() string {
	return fmt.Sprintf("y = %f * %f^x", r.fit.A, r.fit.R)
}

// ExportWeights implements model.WeightExporter.
func (r *ExponentialRegression) ExportWeights() (*model.ModelWeights, error) {
	return exportWeights("ExponentialRegression", KindExponential, r, r.opts)
}

// ImportWeights implements model.WeightExporter.
func (r *ExponentialRegression) ImportWeights(w *model.ModelWeights) error {
	coef, n, err := importWeights("ExponentialRegression", KindExponential, w, 2)
	if err != nil {
		return err
	}
	r.fit = ExponentialFit{A: coef[0], R: coef[1]}
	r.SetFitted(n)
	return nil
}

func predictEach(x []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = f(xi)
	}
	return out
}

func score(name string, c model.Curve, x, y []float64) (float64, error) {
	if !c.IsFitted() {
		return 0, errors.NewNotFittedError(name, "Score")
	}
	if len(x) != len(y) {
		return 0, errors.NewDimensionError(name+".Score", len(x), len(y), 0)
	}
	if len(x) == 0 {
		return 0, errors.NewModelError(name+".Score", "empty data", errors.ErrEmptyData)
	}
	pred, err := c.Predict(x)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(mat.NewVecDense(len(y), y), mat.NewVecDense(len(pred), pred))
}

type fittedCurve interface {
	IsFitted() bool
	NSamples() int
	Coefficients() []float64
}

func exportWeights(name string, kind Kind, c fittedCurve, opts []Option) (*model.ModelWeights, error) {
	if !c.IsFitted() {
		return nil, errors.NewNotFittedError(name, "ExportWeights")
	}
	cfg := newConfig(opts)
	return &model.ModelWeights{
		ModelType:    kind.String(),
		Version:      model.WeightsVersion,
		Coefficients: c.Coefficients(),
		Hyperparameters: map[string]interface{}{
			hyperSingularityCheck: cfg.singularityCheck,
		},
		Metadata: map[string]interface{}{
			metaSamples: c.NSamples(),
		},
		IsFitted: true,
	}, nil
}

// importWeights validates w for kind and returns its coefficients and the
// recorded sample count.
func importWeights(name string, kind Kind, w *model.ModelWeights, nCoef int) ([]float64, int, error) {
	op := name + ".ImportWeights"
	if w == nil {
		return nil, 0, errors.NewValueError(op, "weights are nil")
	}
	if err := w.Validate(); err != nil {
		return nil, 0, err
	}
	if w.ModelType != kind.String() {
		return nil, 0, errors.NewValueError(op, fmt.Sprintf("model type %q does not match %q", w.ModelType, kind))
	}
	if !w.IsFitted {
		return nil, 0, errors.NewValueError(op, "weights are not fitted")
	}
	if len(w.Coefficients) != nCoef {
		return nil, 0, errors.NewDimensionError(op, nCoef, len(w.Coefficients), 1)
	}

	// JSON numbers decode as float64.
	n := 0
	switch v := w.Metadata[metaSamples].(type) {
	case int:
		n = v
	case float64:
		n = int(v)
	}
	return append([]float64(nil), w.Coefficients...), n, nil
}
