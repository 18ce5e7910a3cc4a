package regression

import (
	"github.com/YuminosukeSato/curvefit/linalg"
	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"github.com/YuminosukeSato/curvefit/pkg/log"
)

const opQuadratic = "FitQuadratic"

// QuadraticFit holds the coefficients of y = A·x² + B·x + C.
type QuadraticFit struct {
	A, B, C float64
	// Quality is the coefficient of determination on the fitted samples, or
	// 0 when it is undefined.
	Quality float64
}

// Predict evaluates the parabola at x.
func (f QuadraticFit) Predict(x float64) float64 {
	return (f.A*x+f.B)*x + f.C
}

// FitQuadratic fits y = a·x² + b·x + c by solving the normal equations
//
//	[Σx⁴  Σx³  Σx² | Σx²y]
//	[Σx³  Σx²  Σx  | Σxy ]
//	[Σx²  Σx   n   | Σy  ]
//
// with a fixed elimination sequence: pivot rows 0 and 1 on column 0 and
// eliminate column 0 from rows 1 and 2; pivot rows 1 and 2 on column 1 and
// eliminate column 1 from row 2; back-substitute.
//
// The system is singular when the samples have fewer than three distinct x
// values. By default that case, and any zero divisor met during the solve,
// fails with ErrDegenerateInput wrapping ErrSingularMatrix. See
// WithSingularityCheck for the unchecked behavior.
func FitQuadratic(x, y []float64, opts ...Option) (QuadraticFit, error) {
	cfg := newConfig(opts)
	logger := cfg.logger.With(log.ModelNameKey, KindQuadratic.String(), log.OperationKey, log.OperationFit)

	if err := checkSamples(opQuadratic, x, y); err != nil {
		return QuadraticFit{}, err
	}
	if cfg.singularityCheck && !hasDistinct(x, 3) {
		logger.Debug("fit failed", log.SamplesKey, len(x), log.ErrorCodeKey, log.ErrorDegenerateInput)
		return QuadraticFit{}, errors.NewDegenerateInputError(opQuadratic,
			errors.Wrap(errors.ErrSingularMatrix, "fewer than three distinct x values"))
	}

	m, err := normalEquations(x, y)
	if err != nil {
		return QuadraticFit{}, err
	}
	fit, err := solveNormalEquations(m, cfg, logger)
	if err != nil {
		logger.Debug("fit failed", log.SamplesKey, len(x), log.ErrorCodeKey, log.ErrorDegenerateInput)
		return QuadraticFit{}, err
	}

	pred := make([]float64, len(x))
	for i, xi := range x {
		pred[i] = fit.Predict(xi)
	}
	fit.Quality = quality(y, pred)

	logger.Debug("fit completed",
		log.SamplesKey, len(x),
		log.CoefficientsKey, []float64{fit.A, fit.B, fit.C},
		log.R2ScoreKey, fit.Quality,
	)
	return fit, nil
}

func normalEquations(x, y []float64) (*linalg.Matrix, error) {
	var sumX, sumY, sumX2, sumX3, sumX4, sumXY, sumX2Y float64
	for i, xi := range x {
		x2 := xi * xi
		sumX += xi
		sumY += y[i]
		sumX2 += x2
		sumX3 += x2 * xi
		sumX4 += x2 * x2
		sumXY += xi * y[i]
		sumX2Y += x2 * y[i]
	}
	n := float64(len(x))

	return linalg.NewMatrix([][]float64{
		{sumX4, sumX3, sumX2, sumX2Y},
		{sumX3, sumX2, sumX, sumXY},
		{sumX2, sumX, n, sumY},
	})
}

func solveNormalEquations(m *linalg.Matrix, cfg *config, logger log.Logger) (QuadraticFit, error) {
	const rowLength = 4

	pivot := func(rowA, rowB, col int) error {
		swapped := m.SelectPivot(rowA, rowB, col) == rowB
		if swapped {
			m.SwapRows(rowA, rowB)
		}
		logger.Debug("pivot selected",
			log.PivotRowKey, rowA,
			log.PivotColumnKey, col,
			log.SwappedKey, swapped,
		)
		return checkDivisor(m, cfg, rowA, col)
	}

	if err := pivot(0, 1, 0); err != nil {
		return QuadraticFit{}, err
	}
	m.EliminateRow(0, 1, 0, rowLength)
	m.EliminateRow(0, 2, 0, rowLength)

	if err := pivot(1, 2, 1); err != nil {
		return QuadraticFit{}, err
	}
	m.EliminateRow(1, 2, 1, rowLength)

	if err := checkDivisor(m, cfg, 2, 2); err != nil {
		return QuadraticFit{}, err
	}

	r0, r1, r2 := m.Row(0), m.Row(1), m.Row(2)
	c := r2[3] / r2[2]
	b := (r1[3] - r1[2]*c) / r1[1]
	a := (r0[3] - r0[2]*c - r0[1]*b) / r0[0]
	return QuadraticFit{A: a, B: b, C: c}, nil
}

// checkDivisor rejects a zero m[row][col] when singularity checks are on,
// and otherwise warns that the division will not be finite.
func checkDivisor(m *linalg.Matrix, cfg *config, row, col int) error {
	if m.At(row, col) != linalg.ZeroPivot {
		return nil
	}
	if cfg.singularityCheck {
		return errors.NewDegenerateInputError(opQuadratic,
			errors.Wrapf(errors.ErrSingularMatrix, "zero pivot at row %d, column %d", row, col))
	}
	errors.Warn(errors.NewSingularPivotWarning(opQuadratic, row, col))
	return nil
}
