package model

import (
	"encoding/json"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// WeightsVersion is written into every exported ModelWeights.
const WeightsVersion = "1.0"

// ModelWeights is the serialisable form of a fitted curve.
type ModelWeights struct {
	// ModelType names the curve family ("linear", "quadratic", "exponential").
	ModelType string `json:"model_type"`

	// Version of the weights layout.
	Version string `json:"version"`

	// Coefficients in model order: [slope, intercept], [a, b, c] or [A, r].
	Coefficients []float64 `json:"coefficients"`

	// Hyperparameters used for the fit.
	Hyperparameters map[string]interface{} `json:"hyperparameters,omitempty"`

	// Metadata such as the sample count and fit quality.
	Metadata map[string]interface{} `json:"metadata,omitempty"`

	IsFitted bool `json:"is_fitted"`
}

// ToJSON serialises the weights as indented JSON after validating them.
func (mw *ModelWeights) ToJSON() ([]byte, error) {
	if err := mw.Validate(); err != nil {
		return nil, err
	}
	return json.MarshalIndent(mw, "", "  ")
}

// FromJSON replaces mw with the decoded weights and validates the result.
func (mw *ModelWeights) FromJSON(data []byte) error {
	var decoded ModelWeights
	if err := json.Unmarshal(data, &decoded); err != nil {
		return errors.Wrap(err, "decode model weights")
	}
	if err := decoded.Validate(); err != nil {
		return err
	}
	*mw = decoded
	return nil
}

// Validate checks that required fields are present and that coefficients
// are finite.
func (mw *ModelWeights) Validate() error {
	if mw.ModelType == "" {
		return errors.NewValueError("ModelWeights.Validate", "model_type is required")
	}
	if mw.Version == "" {
		return errors.NewValueError("ModelWeights.Validate", "version is required")
	}
	if !mw.IsFitted && len(mw.Coefficients) > 0 {
		return errors.NewValueError("ModelWeights.Validate", "unfitted model should not have coefficients")
	}
	if mw.IsFitted && len(mw.Coefficients) == 0 {
		return errors.NewValueError("ModelWeights.Validate", "fitted model must have coefficients")
	}
	return errors.CheckNumericalStability("ModelWeights.Validate", mw.Coefficients)
}

// Clone returns a deep copy. Map values are copied shallowly.
func (mw *ModelWeights) Clone() *ModelWeights {
	clone := &ModelWeights{
		ModelType:    mw.ModelType,
		Version:      mw.Version,
		IsFitted:     mw.IsFitted,
		Coefficients: append([]float64(nil), mw.Coefficients...),
	}
	if mw.Hyperparameters != nil {
		clone.Hyperparameters = make(map[string]interface{}, len(mw.Hyperparameters))
		for k, v := range mw.Hyperparameters {
			clone.Hyperparameters[k] = v
		}
	}
	if mw.Metadata != nil {
		clone.Metadata = make(map[string]interface{}, len(mw.Metadata))
		for k, v := range mw.Metadata {
			clone.Metadata[k] = v
		}
	}
	return clone
}
