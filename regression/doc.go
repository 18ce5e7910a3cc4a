// Package regression fits linear, quadratic and exponential curves to
// (x, y) samples by least squares.
//
// Three fitting functions cover the curve families:
//
//   - FitLinear: y = m·x + b, from the closed-form normal-equation sums.
//   - FitQuadratic: y = a·x² + b·x + c, by solving the 3×3 normal-equation
//     system with the linalg elimination primitives.
//   - FitExponential: y = A·rˣ, by fitting a line to (x, ln y).
//
// A fit either returns its coefficients and a nil error, or a zero result
// and an error from pkg/errors. Use errors.Is with ErrDegenerateInput,
// ErrDomainViolation, ErrResourceExhausted or ErrSingularMatrix to tell the
// failures apart.
//
// The estimator types (LinearRegression, QuadraticRegression,
// ExponentialRegression) wrap the functions with Predict, Score and weight
// export, and implement model.Curve.
//
//	fit, err := regression.FitQuadratic(x, y)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("y = %fx^2 + %fx + %f\n", fit.A, fit.B, fit.C)
package regression
