package cli

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/curvefit/core/model"
	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

const plotSamples = 200

// WritePlot draws the samples and the fitted curve and saves the image to
// path. The format follows the file extension.
func WritePlot(path string, x, y []float64, curve model.Curve, width, height vg.Length) error {
	p := plot.New()
	p.Title.Text = curve.Formula()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "plot samples")
	}

	fn := plotter.NewFunction(func(v float64) float64 {
		pred, err := curve.Predict([]float64{v})
		if err != nil {
			return math.NaN()
		}
		return pred[0]
	})
	fn.Samples = plotSamples
	fn.XMin, fn.XMax = xRange(x)
	fn.Width = vg.Points(1.5)

	p.Add(scatter, fn)
	p.Legend.Add("samples", scatter)
	p.Legend.Add("fit", fn)

	if err := p.Save(width, height, path); err != nil {
		return errors.Wrap(err, "save plot")
	}
	return nil
}

func xRange(x []float64) (lo, hi float64) {
	lo, hi = x[0], x[0]
	for _, v := range x[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
