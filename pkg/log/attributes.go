// Package log defines the attribute keys used by curvefit log records.
//
// Keys follow a dotted, hierarchical naming convention ("model.name",
// "data.samples") so records from different packages can be filtered the
// same way.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the curve family being fitted.
	// Examples: "LinearRegression", "QuadraticRegression"
	ModelNameKey = "model.name"

	// OperationKey names the operation being performed.
	// Standard values: "fit", "predict", "score", "solve"
	OperationKey = "ml.operation"

	// ComponentKey identifies the package emitting the record.
	// Examples: "regression", "linalg", "cli"
	ComponentKey = "ml.component"
)

// Data shape.
const (
	// SamplesKey is the number of (x, y) samples in the fit.
	SamplesKey = "data.samples"

	// UnknownsKey is the number of unknowns in a linear system.
	UnknownsKey = "data.unknowns"
)

// Fit results.
const (
	// CoefficientsKey holds the fitted coefficients in model order.
	CoefficientsKey = "fit.coefficients"

	// FormulaKey holds the human-readable fitted equation.
	FormulaKey = "fit.formula"

	// R2ScoreKey records the coefficient of determination.
	R2ScoreKey = "metrics.r2_score"

	// RMSEKey records the root mean squared error of a fit.
	RMSEKey = "metrics.rmse"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Elimination details.
const (
	// PivotRowKey is the row chosen as pivot.
	PivotRowKey = "solver.pivot_row"

	// PivotColumnKey is the column being eliminated.
	PivotColumnKey = "solver.pivot_column"

	// SwappedKey reports whether pivoting exchanged two rows.
	SwappedKey = "solver.swapped"
)

// Error context.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// SuggestionKey carries a hint for resolving the failure.
	SuggestionKey = "error.suggestion"
)

// Standard attribute values.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"
	OperationSolve   = "solve"

	ErrorDegenerateInput   = "DEGENERATE_INPUT"
	ErrorDomainViolation   = "DOMAIN_VIOLATION"
	ErrorResourceExhausted = "RESOURCE_EXHAUSTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorNotFitted         = "NOT_FITTED"
	ErrorEmptyData         = "EMPTY_DATA"
)
