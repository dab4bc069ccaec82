package query

import (
	"time"

	"go.uber.org/zap"

	"github.com/arloliu/dicol/column"
	"github.com/arloliu/dicol/internal/metrics"
	"github.com/arloliu/dicol/internal/options"
)

// EngineConfig holds the optional collaborators of an Engine.
type EngineConfig struct {
	logger  *zap.Logger
	metrics *metrics.Collector
}

// EngineOption configures an Engine.
type EngineOption = options.Option[*EngineConfig]

// WithLogger logs every query at debug level.
func WithLogger(logger *zap.Logger) EngineOption {
	return options.NoError(func(c *EngineConfig) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithMetrics records query durations and match counts per query kind.
func WithMetrics(collector *metrics.Collector) EngineOption {
	return options.NoError(func(c *EngineConfig) {
		c.metrics = collector
	})
}

// Engine runs queries against one dictionary-encoded column.
//
// The dictionary and column are read-only, so an Engine is safe for
// concurrent use.
type Engine struct {
	*EngineConfig
	dict *column.Dictionary
	col  column.Encoded
}

// NewEngine creates an Engine over dict and col.
func NewEngine(dict *column.Dictionary, col column.Encoded, opts ...EngineOption) (*Engine, error) {
	cfg := &EngineConfig{logger: zap.NewNop()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Engine{EngineConfig: cfg, dict: dict, col: col}, nil
}

// Exact runs FindExact.
func (e *Engine) Exact(literal string) Result {
	start := time.Now()
	res := FindExact(e.dict, e.col, literal)
	e.observe(metrics.KindExact, literal, res, time.Since(start))

	return res
}

// Prefix runs FindPrefix.
func (e *Engine) Prefix(prefix string) Result {
	start := time.Now()
	res := FindPrefix(e.dict, e.col, prefix)
	e.observe(metrics.KindPrefix, prefix, res, time.Since(start))

	return res
}

func (e *Engine) observe(kind, operand string, res Result, elapsed time.Duration) {
	e.metrics.ObserveQuery(kind, res.Len(), elapsed)
	e.logger.Debug("query finished",
		zap.String("kind", kind),
		zap.String("operand", operand),
		zap.Int("matches", res.Len()),
		zap.Duration("elapsed", elapsed),
	)
}
