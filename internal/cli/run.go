package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/curvefit/core/model"
	"github.com/YuminosukeSato/curvefit/metrics"
	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"github.com/YuminosukeSato/curvefit/pkg/log"
	"github.com/YuminosukeSato/curvefit/regression"
)

// Main parses args, runs the command and returns the process exit status:
// 0 when the fit succeeded, 1 otherwise.
func Main(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("curvefit", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg, err := ParseConfig(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "parse flags: %v\n", err)
		return 1
	}
	if err := Run(cfg, stdin, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// Run fits the configured curve to the samples read from cfg.Input, or
// from stdin when no input file is set, and writes the report to stdout.
// Log records go to stderr.
func Run(cfg Config, stdin io.Reader, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	kind, err := regression.ParseKind(cfg.Model)
	if err != nil {
		return err
	}
	logger, restore, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}
	defer restore()
	logger = logger.With(log.ComponentKey, "cli", log.ModelNameKey, kind.String())

	x, y, err := readInput(cfg.Input, stdin)
	if err != nil {
		return err
	}

	opts := []regression.Option{regression.WithLogger(logger)}
	if cfg.Legacy {
		opts = append(opts, regression.WithSingularityCheck(false))
	}
	curve, err := regression.New(kind, opts...)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := curve.Fit(x, y); err != nil {
		logger.Error("fit failed", err, log.SamplesKey, len(x))
		fmt.Fprintln(stdout, "Not successful!")
		return err
	}
	logger.Info("fit completed",
		log.SamplesKey, len(x),
		log.FormulaKey, curve.Formula(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)

	if err := writeReport(stdout, curve, x, y); err != nil {
		return err
	}

	if cfg.PlotPath != "" {
		width := vg.Length(cfg.PlotWidth) * vg.Inch
		height := vg.Length(cfg.PlotHeight) * vg.Inch
		if err := WritePlot(cfg.PlotPath, x, y, curve, width, height); err != nil {
			return err
		}
	}
	if cfg.WeightsPath != "" {
		if err := model.SaveWeights(curve, cfg.WeightsPath); err != nil {
			return errors.Wrap(err, "save weights")
		}
	}
	return nil
}

// newLogger builds the logger for cfg and routes errors.Warn through it.
// The returned func detaches the warning routing.
func newLogger(cfg Config, stderr io.Writer) (log.Logger, func(), error) {
	level, err := log.ToLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	if cfg.LogFormat == "slog" {
		previous := slog.Default()
		if err := log.SetupLogger(stderr, cfg.LogLevel); err != nil {
			return nil, nil, err
		}
		logger := log.NewSlogLogger(slog.Default())
		errors.SetZerologWarnFunc(func(w error) {
			logger.Warn(w.Error())
		})
		return logger, func() {
			errors.SetZerologWarnFunc(nil)
			slog.SetDefault(previous)
		}, nil
	}

	logger := log.New(stderr, log.Level(level))
	logger.CaptureWarnings()
	return logger, func() { errors.SetZerologWarnFunc(nil) }, nil
}

func readInput(path string, stdin io.Reader) (x, y []float64, err error) {
	if path == "" {
		return ReadPoints(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open input")
	}
	defer f.Close()
	return ReadPoints(f)
}

func writeReport(w io.Writer, curve model.Curve, x, y []float64) error {
	pred, err := curve.Predict(x)
	if err != nil {
		return err
	}
	report, err := metrics.Evaluate(y, pred)
	if err != nil {
		return err
	}

	r2 := "n/a"
	if !math.IsNaN(report.R2) {
		r2 = fmt.Sprintf("%f", report.R2)
	}
	_, err = fmt.Fprintf(w, "%s\nR2 = %s\nRMSE = %f\nMAE = %f\n", curve.Formula(), r2, report.RMSE, report.MAE)
	return err
}
