package algovista

import (
	"log/slog"
	"runtime"

	"github.com/iayr1/algovista-sub001/catalog"
	"github.com/iayr1/algovista-sub001/codec"
)

// DefaultCacheBytes bounds the widget drawing cache when WithCacheBytes is not set.
const DefaultCacheBytes = 4 << 20

type options struct {
	catalog           *catalog.Catalog
	codec             codec.Codec
	metricsCollector  MetricsCollector
	logger            *Logger
	cacheBytes        int64
	renderConcurrency int
}

// Option configures New.
type Option func(*options)

// WithCatalog serves the given catalog instead of catalog.Default().
func WithCatalog(c *catalog.Catalog) Option {
	return func(o *options) {
		o.catalog = c
	}
}

// WithCodec configures the codec used for API responses and exported JSON.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &algovista.BasicMetricsCollector{}
//	site, _ := algovista.New(algovista.WithMetricsCollector(metrics))
//	// ... serve ...
//	stats := metrics.GetStats()
//	fmt.Printf("Renders: %d, cache hits: %d\n", stats.RenderCount, stats.CacheHits)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := algovista.NewJSONLogger(slog.LevelInfo)
//	site, _ := algovista.New(algovista.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithCacheBytes bounds the widget drawing cache. Zero or less disables it.
func WithCacheBytes(n int64) Option {
	return func(o *options) {
		o.cacheBytes = n
	}
}

// WithRenderConcurrency bounds how many widget drawings are produced at once.
// Values <= 0 select GOMAXPROCS.
func WithRenderConcurrency(n int) Option {
	return func(o *options) {
		o.renderConcurrency = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		catalog:          catalog.Default(),
		codec:            codec.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		cacheBytes:       DefaultCacheBytes,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.catalog == nil {
		o.catalog = catalog.Default()
	}
	if o.renderConcurrency <= 0 {
		o.renderConcurrency = runtime.GOMAXPROCS(0)
	}
	return o
}
