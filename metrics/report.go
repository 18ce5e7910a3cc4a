package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// Report summarises how well predictions match observations.
type Report struct {
	R2   float64 // NaN when the observations have no variance
	RMSE float64
	MAE  float64
}

// Evaluate computes a Report for equal-length observation and prediction
// slices.
func Evaluate(yTrue, yPred []float64) (Report, error) {
	if len(yTrue) == 0 {
		return Report{}, errors.NewValueError("Evaluate", "empty vector")
	}
	if len(yPred) != len(yTrue) {
		return Report{}, errors.NewDimensionError("Evaluate", len(yTrue), len(yPred), 0)
	}

	t := mat.NewVecDense(len(yTrue), yTrue)
	p := mat.NewVecDense(len(yPred), yPred)

	var r Report
	var err error
	if r.RMSE, err = RMSE(t, p); err != nil {
		return Report{}, err
	}
	if r.MAE, err = MAE(t, p); err != nil {
		return Report{}, err
	}
	r.R2, err = R2Score(t, p)
	if errors.Is(err, ErrNoVariance) {
		r.R2 = math.NaN()
	} else if err != nil {
		return Report{}, err
	}
	return r, nil
}
