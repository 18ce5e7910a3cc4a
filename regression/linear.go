package regression

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/curvefit/metrics"
	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"github.com/YuminosukeSato/curvefit/pkg/log"
)

const opLinear = "FitLinear"

// LinearFit holds the coefficients of y = Slope·x + Intercept.
type LinearFit struct {
	Slope     float64
	Intercept float64
	// Quality is the coefficient of determination on the fitted samples, or
	// 0 when it is undefined (all y equal).
	Quality float64
}

// Predict evaluates the line at x.
func (f LinearFit) Predict(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// FitLinear fits y = m·x + b by least squares:
//
//	m = (n·Σxy − Σx·Σy) / (n·Σx² − (Σx)²)
//	b = (Σy − m·Σx) / n
//
// It fails with ErrDegenerateInput and a zero LinearFit when the
// denominator is zero, which covers no samples, a single sample, and
// samples that all share one x value. Non-finite inputs are not rejected
// and propagate into the result.
func FitLinear(x, y []float64, opts ...Option) (LinearFit, error) {
	cfg := newConfig(opts)
	logger := cfg.logger.With(log.ModelNameKey, KindLinear.String(), log.OperationKey, log.OperationFit)

	if err := checkSamples(opLinear, x, y); err != nil {
		return LinearFit{}, err
	}

	slope, intercept, err := lineCoefficients(opLinear, x, y)
	if err != nil {
		logger.Debug("fit failed", log.SamplesKey, len(x), log.ErrorCodeKey, log.ErrorDegenerateInput)
		return LinearFit{}, err
	}

	fit := LinearFit{Slope: slope, Intercept: intercept}
	pred := make([]float64, len(x))
	for i, xi := range x {
		pred[i] = fit.Predict(xi)
	}
	fit.Quality = quality(y, pred)

	logger.Debug("fit completed",
		log.SamplesKey, len(x),
		log.CoefficientsKey, []float64{slope, intercept},
		log.R2ScoreKey, fit.Quality,
	)
	return fit, nil
}

// lineCoefficients is the closed-form core shared by FitLinear and
// FitExponential.
func lineCoefficients(op string, x, y []float64) (slope, intercept float64, err error) {
	n := float64(len(x))
	sumX := floats.Sum(x)
	sumY := floats.Sum(y)
	sumX2 := floats.Dot(x, x)
	sumXY := floats.Dot(x, y)

	denom := n*sumX2 - sumX*sumX
	// Identical x values can leave rounding residue instead of an exact zero.
	if denom == 0 || !hasDistinct(x, 2) {
		return 0, 0, errors.NewDegenerateInputError(op, nil)
	}

	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept, nil
}

func quality(y, pred []float64) float64 {
	report, err := metrics.Evaluate(y, pred)
	if err != nil || math.IsNaN(report.R2) {
		return 0
	}
	return report.R2
}
