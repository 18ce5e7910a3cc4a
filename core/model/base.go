package model

// EstimatorState は推定器の学習状態を表す
type EstimatorState int

const (
	// NotFitted は未学習の状態
	NotFitted EstimatorState = iota
	// Fitted は学習済みの状態
	Fitted
)

// BaseEstimator is embedded by every curve. It tracks whether a fit has
// succeeded and how many samples it used.
type BaseEstimator struct {
	state    EstimatorState
	nSamples int
}

// IsFitted reports whether the last successful Fit has completed.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the estimator as fitted on nSamples samples.
func (e *BaseEstimator) SetFitted(nSamples int) {
	e.state = Fitted
	e.nSamples = nSamples
}

// NSamples returns the number of samples used by the last successful Fit.
func (e *BaseEstimator) NSamples() int {
	return e.nSamples
}

// Reset returns the estimator to the unfitted state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
	e.nSamples = 0
}
