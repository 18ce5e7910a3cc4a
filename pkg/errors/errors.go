// Package errors provides the error taxonomy and warning system shared by the
// curvefit packages. Every constructor attaches a stack trace through
// cockroachdb/errors, and the structured types implement
// zerolog.LogObjectMarshaler so they can be logged as objects.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("curvefit-warning: %v\n", w)
	}
	// set by the log layer to avoid an import cycle
	zerologWarnFunc func(warning error)
)

// SetWarningHandler replaces the process-wide warning handler.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a structured-logger warning sink, usually
// from log.ZerologLogger.CaptureWarnings. It takes precedence over the
// handler set by SetWarningHandler. Passing nil restores the plain handler.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning through the zerolog sink if one is installed,
// otherwise through the warning handler.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warnings
//
// ===========================================================================

// SingularPivotWarning is emitted when elimination divides by a zero pivot
// because singularity checks were disabled. The resulting coefficients are
// non-finite.
type SingularPivotWarning struct {
	Op     string
	Row    int
	Column int
}

func (w *SingularPivotWarning) Error() string {
	return fmt.Sprintf("%s: zero pivot at row %d, column %d; coefficients will not be finite", w.Op, w.Row, w.Column)
}

// MarshalZerologObject adds the warning fields to a zerolog event.
func (w *SingularPivotWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		Int("row", w.Row).
		Int("column", w.Column).
		Str("type", "SingularPivotWarning")
}

// NewSingularPivotWarning creates a SingularPivotWarning.
func NewSingularPivotWarning(op string, row, column int) *SingularPivotWarning {
	return &SingularPivotWarning{Op: op, Row: row, Column: column}
}

// ===========================================================================
//
//	Structured errors
//
// ===========================================================================

// NotFittedError is returned when Predict, Score or ExportWeights is called
// before a successful Fit.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("curvefit: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError reports sequences whose lengths do not match.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for samples, 1 for columns
}

func (e *DimensionError) Error() string {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "samples"
	}
	return fmt.Sprintf("curvefit: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "samples"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// DomainError reports a sample that lies outside the domain of a transform,
// such as a non-positive y value fed to a logarithm.
type DomainError struct {
	Op     string
	Index  int
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("curvefit: %s: sample %d (%g) %s", e.Op, e.Index, e.Value, e.Reason)
}

// Unwrap ties every DomainError to ErrDomainViolation.
func (e *DomainError) Unwrap() error {
	return ErrDomainViolation
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *DomainError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("index", e.Index).
		Float64("value", e.Value).
		Str("reason", e.Reason).
		Str("type", "DomainError")
}

// NewDomainError creates a DomainError with a stack trace.
func NewDomainError(op string, index int, value float64, reason string) error {
	err := &DomainError{Op: op, Index: index, Value: value, Reason: reason}
	return errors.WithStack(err)
}

// ValueError reports an argument with an unusable value.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("curvefit: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ModelError is the general failure of a fit. Kind names the failure class
// and Err carries the sentinel (and any cause) for errors.Is.
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("curvefit: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("curvefit: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *ModelError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("kind", e.Kind).
		Str("type", "ModelError")
	if e.Err != nil {
		event.Str("cause", e.Err.Error())
	}
}

// NewModelError creates a ModelError with a stack trace.
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// Failure kinds used with NewModelError.
const (
	KindDegenerateInput    = "degenerate input"
	KindResourceExhaustion = "resource exhausted"
)

// NewDegenerateInputError reports a sample set that cannot determine a
// unique fit. cause may be nil; when set it is kept in the chain next to
// ErrDegenerateInput.
func NewDegenerateInputError(op string, cause error) error {
	err := ErrDegenerateInput
	if cause != nil {
		err = errors.Mark(cause, ErrDegenerateInput)
	}
	return NewModelError(op, KindDegenerateInput, err)
}

// NewResourceExhaustedError reports a scratch allocation that could not be
// obtained. cause is usually a *PanicError.
func NewResourceExhaustedError(op string, cause error) error {
	err := ErrResourceExhausted
	if cause != nil {
		err = errors.Mark(cause, ErrResourceExhausted)
	}
	return NewModelError(op, KindResourceExhaustion, err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates an error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to err.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Numerical errors
//
// ===========================================================================

// NumericalInstabilityError reports NaN or Inf values where finite values
// are required.
type NumericalInstabilityError struct {
	Operation string
	Values    []float64
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("curvefit: numerical instability detected in %s. Values: [%s]", e.Operation, valStr)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Floats64("values", e.Values).
		Str("type", "NumericalInstabilityError")
}

// NewNumericalInstabilityError creates a NumericalInstabilityError with a stack trace.
func NewNumericalInstabilityError(operation string, values []float64) error {
	err := &NumericalInstabilityError{Operation: operation, Values: values}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Sentinels
//
// ===========================================================================

var (
	// ErrEmptyData is returned when no samples are supplied where some are required.
	ErrEmptyData = New("empty data")

	// ErrDegenerateInput marks sample sets that cannot determine a unique fit.
	ErrDegenerateInput = New("degenerate input")

	// ErrDomainViolation marks samples outside a transform's domain.
	ErrDomainViolation = New("domain violation")

	// ErrResourceExhausted marks failed scratch allocations.
	ErrResourceExhausted = New("resource exhausted")

	// ErrSingularMatrix marks linear systems with a zero pivot after pivoting.
	ErrSingularMatrix = New("singular matrix")
)
