// Package cli implements the curvefit command: it reads (x, y) samples,
// fits the selected curve and reports the equation.
package cli

import (
	"flag"

	"github.com/caarlos0/env/v11"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// Config holds curvefit command configuration. Environment variables
// provide defaults that flags override.
type Config struct {
	Model       string  `env:"CURVEFIT_MODEL"          envDefault:"linear"`
	Input       string  `env:"CURVEFIT_INPUT"`
	PlotPath    string  `env:"CURVEFIT_PLOT"`
	WeightsPath string  `env:"CURVEFIT_SAVE"`
	Legacy      bool    `env:"CURVEFIT_LEGACY"         envDefault:"false"`
	LogLevel    string  `env:"CURVEFIT_LOG_LEVEL"      envDefault:"warn"`
	LogFormat   string  `env:"CURVEFIT_LOG_FORMAT"     envDefault:"zerolog"`
	PlotWidth   float64 `env:"CURVEFIT_PLOT_WIDTH_IN"  envDefault:"6"`
	PlotHeight  float64 `env:"CURVEFIT_PLOT_HEIGHT_IN" envDefault:"4"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}

	fs.StringVar(&cfg.Model, "model", cfg.Model, "curve to fit: linear, quadratic, exponential (or 1, 2, 3)")
	fs.StringVar(&cfg.Input, "input", cfg.Input, "file of \"x y\" pairs, one per line (default: stdin)")
	fs.StringVar(&cfg.PlotPath, "plot", cfg.PlotPath, "write a plot of the samples and the fitted curve to this file (.png, .svg, .pdf)")
	fs.StringVar(&cfg.WeightsPath, "save", cfg.WeightsPath, "write the fitted coefficients as JSON to this file")
	fs.BoolVar(&cfg.Legacy, "legacy", cfg.Legacy, "disable singular system detection in quadratic fits")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log backend: zerolog or slog")
	fs.Float64Var(&cfg.PlotWidth, "plot-width", cfg.PlotWidth, "plot width in inches")
	fs.Float64Var(&cfg.PlotHeight, "plot-height", cfg.PlotHeight, "plot height in inches")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that flags and env cannot constrain.
func (c Config) Validate() error {
	if c.PlotWidth <= 0 || c.PlotHeight <= 0 {
		return errors.NewValueError("cli.Config", "plot dimensions must be positive")
	}
	switch c.LogFormat {
	case "zerolog", "slog":
	default:
		return errors.NewValueError("cli.Config", "log format must be zerolog or slog")
	}
	return nil
}
