package regression

import (
	"math"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"github.com/YuminosukeSato/curvefit/pkg/log"
)

const opExponential = "FitExponential"

// ExponentialFit holds the coefficients of y = A·Rˣ.
type ExponentialFit struct {
	A float64
	R float64
}

// Predict evaluates the curve at x.
func (f ExponentialFit) Predict(x float64) float64 {
	return f.A * math.Pow(f.R, x)
}

// allocScratch allocates the ln(y) buffer. Tests replace it to simulate
// allocation failure.
var allocScratch = func(n int) []float64 {
	return make([]float64, n)
}

// FitExponential fits y = A·rˣ by fitting ln y = ln A + x·ln r as a line.
//
// Every y must be positive; the first non-positive sample fails the fit
// with a *errors.DomainError before any computation. A degenerate x
// distribution fails with ErrDegenerateInput, and a failed scratch
// allocation with ErrResourceExhausted. Failures return a zero
// ExponentialFit.
func FitExponential(x, y []float64, opts ...Option) (ExponentialFit, error) {
	cfg := newConfig(opts)
	logger := cfg.logger.With(log.ModelNameKey, KindExponential.String(), log.OperationKey, log.OperationFit)

	if err := checkSamples(opExponential, x, y); err != nil {
		return ExponentialFit{}, err
	}
	for i, v := range y {
		if v <= 0 {
			logger.Debug("fit failed", log.SamplesKey, len(x), log.ErrorCodeKey, log.ErrorDomainViolation)
			return ExponentialFit{}, errors.NewDomainError(opExponential, i, v, "must be positive for the log transform")
		}
	}

	var logY []float64
	err := errors.SafeExecute(opExponential, func() error {
		logY = allocScratch(len(y))
		return nil
	})
	if err != nil {
		logger.Debug("fit failed", log.SamplesKey, len(x), log.ErrorCodeKey, log.ErrorResourceExhausted)
		return ExponentialFit{}, errors.NewResourceExhaustedError(opExponential, err)
	}
	for i, v := range y {
		logY[i] = math.Log(v)
	}

	slope, intercept, err := lineCoefficients(opExponential, x, logY)
	if err != nil {
		logger.Debug("fit failed", log.SamplesKey, len(x), log.ErrorCodeKey, log.ErrorDegenerateInput)
		return ExponentialFit{}, err
	}

	fit := ExponentialFit{A: math.Exp(intercept), R: math.Exp(slope)}
	logger.Debug("fit completed",
		log.SamplesKey, len(x),
		log.CoefficientsKey, []float64{fit.A, fit.R},
	)
	return fit, nil
}
