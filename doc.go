// Package curvefit fits simple parametric curves to (x, y) samples by least
// squares.
//
// Three curve families are supported:
//
//   - linear: y = m·x + b
//   - quadratic: y = a·x² + b·x + c
//   - exponential: y = A·rˣ
//
// The quadratic fit solves its 3×3 normal equations with a small Gaussian
// elimination solver whose primitives (pivot selection, row swap, row
// elimination) live in the linalg package.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/curvefit/regression"
//	)
//
//	func main() {
//	    x := []float64{-1, 0, 1, 2}
//	    y := []float64{4, 1, 0, 1}
//
//	    fit, err := regression.FitQuadratic(x, y)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("y = %fx^2 + %fx + %f\n", fit.A, fit.B, fit.C)
//	}
//
// # Packages
//
//   - regression: FitLinear, FitQuadratic, FitExponential and estimator types
//   - linalg: augmented matrices and Gaussian elimination with partial pivoting
//   - metrics: MSE, RMSE, MAE and R²
//   - core/model: estimator interfaces and JSON weight files
//   - pkg/errors: error taxonomy, warnings and panic recovery
//   - pkg/log: structured logging on zerolog or log/slog
//
// The curvefit command (cmd/curvefit) reads samples from a file or stdin,
// prints the fitted equation and can plot the result.
//
// # Error Handling
//
// A failed fit returns a zero result and an error. Use errors.Is from
// pkg/errors to classify it:
//
//	_, err := regression.FitExponential(x, y)
//	switch {
//	case errors.Is(err, errors.ErrDomainViolation):
//	    // a y value was not positive
//	case errors.Is(err, errors.ErrDegenerateInput):
//	    // the x values cannot determine a curve
//	}
package curvefit
