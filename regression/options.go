package regression

import (
	"github.com/YuminosukeSato/curvefit/pkg/log"
)

// Option configures a fit.
type Option func(*config)

type config struct {
	singularityCheck bool
	logger           log.Logger
}

func newConfig(opts []Option) *config {
	cfg := &config{
		singularityCheck: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.GetLogger()
	}
	return cfg
}

// WithSingularityCheck controls whether FitQuadratic rejects singular
// normal-equation systems (the default). With the check disabled, zero
// pivots are divided through, the fit reports success with non-finite
// coefficients, and a SingularPivotWarning is emitted for each zero divisor.
func WithSingularityCheck(enabled bool) Option {
	return func(c *config) {
		c.singularityCheck = enabled
	}
}

// WithLogger sets the logger used for debug records. Defaults to
// log.GetLogger().
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
