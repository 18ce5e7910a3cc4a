package regression

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"github.com/YuminosukeSato/curvefit/pkg/log"
)

const tolerance = 1e-9

func sampleLine(m, b float64, from, to int) (x, y []float64) {
	for i := from; i <= to; i++ {
		xi := float64(i)
		x = append(x, xi)
		y = append(y, m*xi+b)
	}
	return x, y
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestFitLinear(t *testing.T) {
	tests := []struct {
		name          string
		x, y          []float64
		wantSlope     float64
		wantIntercept float64
		wantQuality   float64
	}{
		{
			name:          "y = 2x + 3",
			x:             []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
			y:             []float64{3, 5, 7, 9, 11, 13, 15, 17, 19, 21},
			wantSlope:     2,
			wantIntercept: 3,
			wantQuality:   1,
		},
		{
			name:          "two points",
			x:             []float64{1, 3},
			y:             []float64{1, 5},
			wantSlope:     2,
			wantIntercept: -1,
			wantQuality:   1,
		},
		{
			name:          "horizontal line has no variance",
			x:             []float64{1, 2, 3, 4},
			y:             []float64{7, 7, 7, 7},
			wantSlope:     0,
			wantIntercept: 7,
			wantQuality:   0,
		},
		{
			name:          "noisy samples",
			x:             []float64{0, 1, 2, 3},
			y:             []float64{1, 3, 2, 4},
			wantSlope:     0.8,
			wantIntercept: 1.3,
			wantQuality:   0.64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fit, err := FitLinear(tt.x, tt.y)
			if err != nil {
				t.Fatalf("FitLinear() error = %v", err)
			}
			if !approxEqual(fit.Slope, tt.wantSlope) {
				t.Errorf("Slope = %v, want %v", fit.Slope, tt.wantSlope)
			}
			if !approxEqual(fit.Intercept, tt.wantIntercept) {
				t.Errorf("Intercept = %v, want %v", fit.Intercept, tt.wantIntercept)
			}
			if !approxEqual(fit.Quality, tt.wantQuality) {
				t.Errorf("Quality = %v, want %v", fit.Quality, tt.wantQuality)
			}
		})
	}
}

func TestFitLinearDegenerate(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
	}{
		{name: "no samples", x: nil, y: nil},
		{name: "single sample", x: []float64{2}, y: []float64{5}},
		{name: "identical x", x: []float64{3, 3, 3, 3}, y: []float64{1, 2, 3, 4}},
		{name: "identical non-integer x", x: []float64{0.1, 0.1, 0.1}, y: []float64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fit, err := FitLinear(tt.x, tt.y)
			if !errors.Is(err, errors.ErrDegenerateInput) {
				t.Fatalf("expected ErrDegenerateInput, got %v", err)
			}
			if fit != (LinearFit{}) {
				t.Errorf("expected zero LinearFit, got %+v", fit)
			}
			var modelErr *errors.ModelError
			if !errors.As(err, &modelErr) || modelErr.Kind != errors.KindDegenerateInput {
				t.Errorf("expected ModelError of kind %q, got %v", errors.KindDegenerateInput, err)
			}
		})
	}
}

func TestFitLinearDimensionMismatch(t *testing.T) {
	_, err := FitLinear([]float64{1, 2, 3}, []float64{1, 2})

	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected DimensionError, got %v", err)
	}
	if dimErr.Expected != 3 || dimErr.Got != 2 {
		t.Errorf("unexpected dimensions %+v", dimErr)
	}
}

func TestFitLinearNonFinitePropagates(t *testing.T) {
	fit, err := FitLinear([]float64{0, 1, math.NaN()}, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("FitLinear() error = %v", err)
	}
	if !math.IsNaN(fit.Slope) || !math.IsNaN(fit.Intercept) {
		t.Errorf("expected NaN coefficients, got %+v", fit)
	}
	if fit.Quality != 0 {
		t.Errorf("Quality = %v, want 0", fit.Quality)
	}
}

func TestFitLinearDoesNotMutateInput(t *testing.T) {
	x, y := sampleLine(2, 3, 0, 9)
	xCopy := append([]float64(nil), x...)
	yCopy := append([]float64(nil), y...)

	if _, err := FitLinear(x, y); err != nil {
		t.Fatal(err)
	}
	for i := range x {
		if x[i] != xCopy[i] || y[i] != yCopy[i] {
			t.Fatalf("input modified at %d", i)
		}
	}
}

func TestFitLinearLogs(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelDebug)
	x, y := sampleLine(2, 3, 0, 9)

	if _, err := FitLinear(x, y, WithLogger(logger)); err != nil {
		t.Fatal(err)
	}
	if !logger.ContainsMessage("fit completed") {
		t.Error("expected a fit completed record")
	}
	if !logger.ContainsField(log.ModelNameKey, "linear") {
		t.Error("expected model name field")
	}
	if !logger.ContainsField(log.SamplesKey, float64(10)) {
		t.Error("expected sample count field")
	}

	logger.Clear()
	_, _ = FitLinear([]float64{1, 1}, []float64{1, 2}, WithLogger(logger))
	if !logger.ContainsField(log.ErrorCodeKey, log.ErrorDegenerateInput) {
		t.Error("expected degenerate input error code")
	}
}

func BenchmarkFitLinear(b *testing.B) {
	x, y := sampleLine(2, 3, 0, 999)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = FitLinear(x, y)
	}
}
