package engine

import (
	"github.com/sirupsen/logrus"
)

// ============================================================================
// ENGINE OPTIONS: Functional options for ApplyFilters() and Choices()
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	NumericColumns map[string]bool // columns compared by parsed number
	Logger         logrus.FieldLogger
}

// WithNumericColumns marks columns whose values compare numerically,
// so a filter of "1" matches a cell holding "1.0".
func WithNumericColumns(columns ...string) Option {
	return func(c *config) {
		for _, col := range columns {
			c.NumericColumns[col] = true
		}
	}
}

// WithLogger sets the logger used for filter diagnostics.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		NumericColumns: make(map[string]bool),
		Logger:         logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
