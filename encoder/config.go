package encoder

import (
	"go.uber.org/zap"

	"github.com/arloliu/dicol/internal/metrics"
	"github.com/arloliu/dicol/internal/options"
)

// Config holds the optional collaborators of an encoding run.
type Config struct {
	logger  *zap.Logger
	metrics *metrics.Collector
}

func newConfig() *Config {
	return &Config{logger: zap.NewNop()}
}

// Option configures Encode.
type Option = options.Option[*Config]

// WithLogger logs the shard layout at debug level and a merge summary at info level.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithMetrics records encode duration, row count, dictionary size and shard count.
func WithMetrics(collector *metrics.Collector) Option {
	return options.NoError(func(c *Config) {
		c.metrics = collector
	})
}
