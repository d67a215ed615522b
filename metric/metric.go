// Package metric exports algovista operational metrics to Prometheus.
package metric

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "algovista"

// PrometheusCollector implements algovista.MetricsCollector on a private
// registry and serves it over HTTP.
type PrometheusCollector struct {
	registry *prometheus.Registry

	renderLatency  *prometheus.HistogramVec
	notFound       prometheus.Counter
	publishes      *prometheus.CounterVec
	publishObjects prometheus.Counter
	publishBytes   prometheus.Counter
	publishLatency prometheus.Histogram
	cacheLookups   *prometheus.CounterVec
	requests       *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewPrometheusCollector creates the collectors and registers them, together
// with the Go runtime and process collectors, on a new registry.
func NewPrometheusCollector() *PrometheusCollector {
	p := &PrometheusCollector{
		registry: prometheus.NewRegistry(),
		renderLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Latency of view rendering",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		}, []string{"view", "status"}),
		notFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "not_found_total",
			Help:      "Requests for unknown algorithm ids",
		}),
		publishes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_total",
			Help:      "Static exports by outcome",
		}, []string{"status"}),
		publishObjects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_objects_total",
			Help:      "Objects written by static exports",
		}),
		publishBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_bytes_total",
			Help:      "Bytes written by static exports",
		}),
		publishLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "publish_duration_seconds",
			Help:      "Duration of static exports",
			Buckets:   prometheus.DefBuckets,
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "widget_cache_lookups_total",
			Help:      "Widget drawing cache lookups by result",
		}, []string{"result"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by status code and method",
		}, []string{"code", "method"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"code", "method"}),
	}

	p.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.renderLatency,
		p.notFound,
		p.publishes,
		p.publishObjects,
		p.publishBytes,
		p.publishLatency,
		p.cacheLookups,
		p.requests,
		p.requestLatency,
	)
	return p
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordRender implements algovista.MetricsCollector.
func (p *PrometheusCollector) RecordRender(view string, d time.Duration, err error) {
	p.renderLatency.WithLabelValues(view, status(err)).Observe(d.Seconds())
}

// RecordNotFound implements algovista.MetricsCollector. The id is not a
// label: it is caller-controlled.
func (p *PrometheusCollector) RecordNotFound(string) {
	p.notFound.Inc()
}

// RecordPublish implements algovista.MetricsCollector.
func (p *PrometheusCollector) RecordPublish(objects int, bytes int64, d time.Duration, err error) {
	p.publishes.WithLabelValues(status(err)).Inc()
	p.publishObjects.Add(float64(objects))
	p.publishBytes.Add(float64(bytes))
	p.publishLatency.Observe(d.Seconds())
}

// RecordCache implements algovista.MetricsCollector.
func (p *PrometheusCollector) RecordCache(hit bool) {
	if hit {
		p.cacheLookups.WithLabelValues("hit").Inc()
	} else {
		p.cacheLookups.WithLabelValues("miss").Inc()
	}
}

// InstrumentHandler counts and times requests served by next.
func (p *PrometheusCollector) InstrumentHandler(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerCounter(p.requests,
		promhttp.InstrumentHandlerDuration(p.requestLatency, next))
}

// Handler serves the registry in the Prometheus exposition format.
func (p *PrometheusCollector) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}
