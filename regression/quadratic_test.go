package regression

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/curvefit/linalg"
	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"github.com/YuminosukeSato/curvefit/pkg/log"
)

func sampleParabola(a, b, c float64, from, to int) (x, y []float64) {
	for i := from; i <= to; i++ {
		xi := float64(i)
		x = append(x, xi)
		y = append(y, a*xi*xi+b*xi+c)
	}
	return x, y
}

// collectWarnings routes errors.Warn into a slice for the duration of the
// test.
func collectWarnings(t *testing.T) *[]error {
	t.Helper()
	var warnings []error
	errors.SetZerologWarnFunc(nil)
	errors.SetWarningHandler(func(w error) {
		warnings = append(warnings, w)
	})
	t.Cleanup(func() {
		errors.SetWarningHandler(nil)
	})
	return &warnings
}

func TestFitQuadratic(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		from    int
		to      int
	}{
		{name: "x^2 - 2x + 1", a: 1, b: -2, c: 1, from: -2, to: 5},
		{name: "downward", a: -0.5, b: 3, c: 4, from: 0, to: 10},
		{name: "three points", a: 2, b: 1, c: -3, from: 1, to: 3},
		{name: "straight line", a: 0, b: 4, c: 1, from: -3, to: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := sampleParabola(tt.a, tt.b, tt.c, tt.from, tt.to)

			fit, err := FitQuadratic(x, y)
			if err != nil {
				t.Fatalf("FitQuadratic() error = %v", err)
			}
			if !approxEqual(fit.A, tt.a) || !approxEqual(fit.B, tt.b) || !approxEqual(fit.C, tt.c) {
				t.Errorf("got (%v, %v, %v), want (%v, %v, %v)", fit.A, fit.B, fit.C, tt.a, tt.b, tt.c)
			}
			if !approxEqual(fit.Quality, 1) {
				t.Errorf("Quality = %v, want 1", fit.Quality)
			}
		})
	}
}

func TestFitQuadraticSampleOrderInvariance(t *testing.T) {
	x := []float64{5, -2, 3, 0, 4, -1, 1, 2}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = xi*xi - 2*xi + 1
	}

	fit, err := FitQuadratic(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(fit.A, 1) || !approxEqual(fit.B, -2) || !approxEqual(fit.C, 1) {
		t.Errorf("unexpected fit %+v", fit)
	}
}

func TestFitQuadraticSingular(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
	}{
		{name: "no samples"},
		{name: "identical x", x: []float64{3, 3, 3, 3}, y: []float64{1, 2, 3, 4}},
		{name: "two distinct x", x: []float64{1, 2, 1, 2}, y: []float64{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fit, err := FitQuadratic(tt.x, tt.y)
			if !errors.Is(err, errors.ErrDegenerateInput) {
				t.Fatalf("expected ErrDegenerateInput, got %v", err)
			}
			if !errors.Is(err, errors.ErrSingularMatrix) {
				t.Errorf("expected ErrSingularMatrix in chain, got %v", err)
			}
			if fit != (QuadraticFit{}) {
				t.Errorf("expected zero QuadraticFit, got %+v", fit)
			}
		})
	}
}

func TestFitQuadraticLegacySingular(t *testing.T) {
	warnings := collectWarnings(t)

	fit, err := FitQuadratic([]float64{1, 1, 1}, []float64{1, 2, 3}, WithSingularityCheck(false))
	if err != nil {
		t.Fatalf("legacy FitQuadratic() error = %v", err)
	}
	if !math.IsNaN(fit.A) && !math.IsInf(fit.A, 0) {
		t.Errorf("expected non-finite A, got %v", fit.A)
	}
	if len(*warnings) == 0 {
		t.Fatal("expected a SingularPivotWarning")
	}
	var w *errors.SingularPivotWarning
	if !errors.As((*warnings)[0], &w) {
		t.Fatalf("expected SingularPivotWarning, got %T", (*warnings)[0])
	}
	if w.Row != 1 || w.Column != 1 {
		t.Errorf("warning at (%d, %d), want (1, 1)", w.Row, w.Column)
	}
}

func TestFitQuadraticLegacyMatchesHardened(t *testing.T) {
	warnings := collectWarnings(t)
	x, y := sampleParabola(1, -2, 1, -2, 5)

	hardened, err := FitQuadratic(x, y)
	if err != nil {
		t.Fatal(err)
	}
	legacy, err := FitQuadratic(x, y, WithSingularityCheck(false))
	if err != nil {
		t.Fatal(err)
	}
	if hardened != legacy {
		t.Errorf("legacy %+v differs from hardened %+v", legacy, hardened)
	}
	if len(*warnings) != 0 {
		t.Errorf("unexpected warnings %v", *warnings)
	}
}

func TestSolveNormalEquationsZeroDivisor(t *testing.T) {
	rows := [][]float64{
		{0, 0, 0, 1},
		{0, 0, 0, 1},
		{0, 0, 0, 1},
	}

	t.Run("checked", func(t *testing.T) {
		m, err := linalg.NewMatrix(rows)
		if err != nil {
			t.Fatal(err)
		}
		_, err = solveNormalEquations(m, newConfig(nil), log.GetLogger())
		if !errors.Is(err, errors.ErrSingularMatrix) {
			t.Errorf("expected ErrSingularMatrix, got %v", err)
		}
	})

	t.Run("unchecked", func(t *testing.T) {
		warnings := collectWarnings(t)
		m, err := linalg.NewMatrix(rows)
		if err != nil {
			t.Fatal(err)
		}
		fit, err := solveNormalEquations(m, newConfig([]Option{WithSingularityCheck(false)}), log.GetLogger())
		if err != nil {
			t.Fatal(err)
		}
		if !math.IsNaN(fit.C) && !math.IsInf(fit.C, 0) {
			t.Errorf("expected non-finite c, got %v", fit.C)
		}
		if len(*warnings) == 0 {
			t.Fatal("expected a SingularPivotWarning")
		}
		var w *errors.SingularPivotWarning
		if !errors.As((*warnings)[0], &w) || w.Row != 0 || w.Column != 0 {
			t.Errorf("expected first warning at (0, 0), got %v", (*warnings)[0])
		}
	})
}

func TestFitQuadraticPivotLogging(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelDebug)
	x, y := sampleParabola(1, -2, 1, -2, 5)

	if _, err := FitQuadratic(x, y, WithLogger(logger)); err != nil {
		t.Fatal(err)
	}
	entries, err := logger.GetLogEntries()
	if err != nil {
		t.Fatal(err)
	}
	pivots := 0
	for _, e := range entries {
		if e["message"] == "pivot selected" {
			pivots++
		}
	}
	if pivots != 2 {
		t.Errorf("pivot records = %d, want 2", pivots)
	}
}

func BenchmarkFitQuadratic(b *testing.B) {
	x, y := sampleParabola(1, -2, 1, -500, 499)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = FitQuadratic(x, y)
	}
}
