package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	cferrors "github.com/YuminosukeSato/curvefit/pkg/errors"
)

func TestTestLogger(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	testLogger.Info("info message", OperationKey, OperationFit)
	testLogger.Warn("warning message", ErrorCodeKey, ErrorDegenerateInput)
	testLogger.Error("error message", fmt.Errorf("boom"), SamplesKey, 3)

	if buffer.String() == "" {
		t.Fatal("Expected log output, got empty string")
	}
	for _, msg := range []string{"debug message", "info message", "warning message", "error message"} {
		if !testLogger.ContainsMessage(msg) {
			t.Errorf("%q not found in output", msg)
		}
	}
	if !testLogger.ContainsField("number", 42.0) {
		t.Error("Expected field number=42 not found")
	}
	if !testLogger.ContainsField(ErrAttrKey, "boom") {
		t.Error("Expected leading error to be recorded under the error key")
	}
}

func TestTestLoggerWithAndLevels(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)
	ctx := context.Background()

	if testLogger.Enabled(ctx, LevelDebug) {
		t.Error("Logger should not be enabled for Debug level")
	}
	if !testLogger.Enabled(ctx, LevelError) {
		t.Error("Logger should be enabled for Error level")
	}

	child := testLogger.With(ModelNameKey, "QuadraticRegression", ComponentKey, "regression")
	child.Debug("hidden")
	child.Info("fit completed", SamplesKey, 8)

	if testLogger.ContainsMessage("hidden") {
		t.Error("Debug message should not appear when level is Info")
	}
	if !testLogger.ContainsField(ModelNameKey, "QuadraticRegression") {
		t.Error("Model name context not found")
	}
	if !testLogger.ContainsField(SamplesKey, 8.0) {
		t.Error("Samples field not found")
	}
}

func TestTestLoggerProvider(t *testing.T) {
	provider, buffer := NewTestLoggerProvider(LevelDebug)

	provider.GetLogger().Info("provider test message")
	provider.GetLoggerWithName("linalg").Info("named logger message")

	out := buffer.String()
	for _, want := range []string{"provider test message", "named logger message", "linalg"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	provider.SetLevel(LevelError)
	provider.GetLogger().Info("dropped")
	if strings.Contains(buffer.String(), "dropped") {
		t.Error("SetLevel should filter Info records")
	}
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)

	if logger.Enabled(context.Background(), LevelDebug) {
		t.Error("Info logger should not be enabled for Debug")
	}

	child := logger.With(ModelNameKey, "LinearRegression")
	child.Debug("not written")
	child.Info("fit completed",
		OperationKey, OperationFit,
		CoefficientsKey, []float64{2, 3},
	)
	child.Error("fit failed", cferrors.NewDomainError("FitExponential", 1, -2, "must be positive"),
		"detail", cferrors.NewDimensionError("FitLinear", 3, 2, 0),
	)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 records, got %d: %s", len(lines), buf.String())
	}

	var first map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if first[ModelNameKey] != "LinearRegression" || first[OperationKey] != OperationFit {
		t.Errorf("context fields missing: %v", first)
	}
	if coeffs, ok := first[CoefficientsKey].([]interface{}); !ok || len(coeffs) != 2 {
		t.Errorf("coefficients not logged as array: %v", first[CoefficientsKey])
	}

	if !strings.Contains(lines[1], `"error":"curvefit: FitExponential: sample 1 (-2) must be positive"`) {
		t.Errorf("error record missing error text: %s", lines[1])
	}
	if !strings.Contains(lines[1], `"detail"`) {
		t.Errorf("error record missing detail field: %s", lines[1])
	}
}

func TestCaptureWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf))
	logger.CaptureWarnings()
	defer cferrors.SetZerologWarnFunc(nil)

	cferrors.Warn(cferrors.NewSingularPivotWarning("FitQuadratic", 2, 2))

	out := buf.String()
	if !strings.Contains(out, `"level":"warn"`) || !strings.Contains(out, `"type":"SingularPivotWarning"`) {
		t.Errorf("warning not routed through zerolog: %s", out)
	}
}

func TestDefaultLogger(t *testing.T) {
	if GetLogger().Enabled(context.Background(), LevelError) {
		t.Error("default logger should discard everything")
	}

	testLogger, _ := NewTestLogger(LevelDebug)
	SetLogger(testLogger)
	defer SetLogger(nil)

	GetLogger().Info("through default")
	if !testLogger.ContainsMessage("through default") {
		t.Error("SetLogger did not replace the default")
	}
}

func TestSetupLogger(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	var buf bytes.Buffer
	if err := SetupLogger(&buf, "info"); err != nil {
		t.Fatalf("SetupLogger: %v", err)
	}
	slog.Error("fit failed", ErrAttr(errors.New("singular")))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if entry["message"] != "fit failed" || entry["severity"] != "ERROR" {
		t.Errorf("unexpected record: %v", entry)
	}
	if _, ok := entry[StacktraceAttrKey]; !ok {
		t.Errorf("expected %s attribute: %v", StacktraceAttrKey, entry)
	}

	if err := SetupLogger(&buf, "verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLevelString(t *testing.T) {
	tests := map[Level]string{
		LevelDebug: "DEBUG",
		LevelInfo:  "INFO",
		LevelWarn:  "WARN",
		LevelError: "ERROR",
		Level(99):  "UNKNOWN",
	}
	for level, want := range tests {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}

func BenchmarkZerologLogger(b *testing.B) {
	logger := New(&bytes.Buffer{}, LevelInfo).With(ModelNameKey, "LinearRegression")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("fit completed", OperationKey, OperationFit, SamplesKey, 1000)
	}
}

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger := NewSlogLogger(slog.New(handler)).With(ModelNameKey, "quadratic")

	if !logger.Enabled(context.Background(), LevelDebug) {
		t.Fatal("debug should be enabled")
	}
	logger.Error("fit failed", errors.New("singular"), SamplesKey, 3)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if entry[ModelNameKey] != "quadratic" || entry[SamplesKey] != float64(3) {
		t.Errorf("unexpected record: %v", entry)
	}
	if _, ok := entry[StacktraceAttrKey]; !ok {
		t.Errorf("expected %s attribute: %v", StacktraceAttrKey, entry)
	}
}
