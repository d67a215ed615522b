package algovista

import (
	"sync/atomic"
	"time"
)

// View names passed to MetricsCollector.RecordRender.
const (
	ViewIndex    = "index"
	ViewDetail   = "detail"
	ViewNotFound = "not-found"
	ViewWidget   = "widget"
	ViewAPI      = "api"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems;
// metric.PrometheusCollector is the Prometheus implementation.
type MetricsCollector interface {
	// RecordRender is called after each view is rendered.
	// view is one of the View constants, err is nil if successful.
	RecordRender(view string, duration time.Duration, err error)

	// RecordNotFound is called when an unknown algorithm id is requested.
	RecordNotFound(id string)

	// RecordPublish is called after each static export.
	// objects and bytes count everything written, including compressed siblings.
	RecordPublish(objects int, bytes int64, duration time.Duration, err error)

	// RecordCache is called on every widget drawing lookup.
	RecordCache(hit bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRender(string, time.Duration, error)      {}
func (NoopMetricsCollector) RecordNotFound(string)                          {}
func (NoopMetricsCollector) RecordPublish(int, int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordCache(bool)                               {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RenderCount      atomic.Int64
	RenderErrors     atomic.Int64
	RenderTotalNanos atomic.Int64
	NotFoundCount    atomic.Int64
	PublishCount     atomic.Int64
	PublishErrors    atomic.Int64
	PublishObjects   atomic.Int64
	PublishBytes     atomic.Int64
	CacheHits        atomic.Int64
	CacheMisses      atomic.Int64
}

// RecordRender implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRender(_ string, duration time.Duration, err error) {
	b.RenderCount.Add(1)
	b.RenderTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RenderErrors.Add(1)
	}
}

// RecordNotFound implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNotFound(string) {
	b.NotFoundCount.Add(1)
}

// RecordPublish implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPublish(objects int, bytes int64, _ time.Duration, err error) {
	b.PublishCount.Add(1)
	b.PublishObjects.Add(int64(objects))
	b.PublishBytes.Add(bytes)
	if err != nil {
		b.PublishErrors.Add(1)
	}
}

// RecordCache implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCache(hit bool) {
	if hit {
		b.CacheHits.Add(1)
	} else {
		b.CacheMisses.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RenderCount:    b.RenderCount.Load(),
		RenderErrors:   b.RenderErrors.Load(),
		RenderAvgNanos: b.getAvgRenderNanos(),
		NotFoundCount:  b.NotFoundCount.Load(),
		PublishCount:   b.PublishCount.Load(),
		PublishErrors:  b.PublishErrors.Load(),
		PublishObjects: b.PublishObjects.Load(),
		PublishBytes:   b.PublishBytes.Load(),
		CacheHits:      b.CacheHits.Load(),
		CacheMisses:    b.CacheMisses.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRenderNanos() int64 {
	count := b.RenderCount.Load()
	if count == 0 {
		return 0
	}
	return b.RenderTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RenderCount    int64
	RenderErrors   int64
	RenderAvgNanos int64
	NotFoundCount  int64
	PublishCount   int64
	PublishErrors  int64
	PublishObjects int64
	PublishBytes   int64
	CacheHits      int64
	CacheMisses    int64
}
