package model

import (
	"io"
	"os"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// SaveWeights writes the curve's weights to filename as JSON.
//
// Example:
//
//	curve := regression.NewQuadraticRegression()
//	// ... curve.Fit(x, y) ...
//	err := model.SaveWeights(curve, "quadratic.json")
func SaveWeights(curve WeightExporter, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create weights file")
	}
	defer file.Close()

	return SaveWeightsToWriter(curve, file)
}

// SaveWeightsToWriter writes the curve's weights to w as JSON.
func SaveWeightsToWriter(curve WeightExporter, w io.Writer) error {
	weights, err := curve.ExportWeights()
	if err != nil {
		return err
	}
	data, err := weights.ToJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return errors.Wrap(err, "write model weights")
	}
	return nil
}

// LoadWeights reads JSON weights from filename into curve.
func LoadWeights(curve WeightExporter, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "open weights file")
	}
	defer file.Close()

	return LoadWeightsFromReader(curve, file)
}

// LoadWeightsFromReader reads JSON weights from r into curve.
func LoadWeightsFromReader(curve WeightExporter, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "read model weights")
	}
	var weights ModelWeights
	if err := weights.FromJSON(data); err != nil {
		return err
	}
	return curve.ImportWeights(&weights)
}
