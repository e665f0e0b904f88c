// Package metrics maintains the process-wide Prometheus instruments updated
// on every HTTP request and renders them in the plaintext exposition format.
//
// One Collector is constructed at startup and injected by reference into the
// request-wrapping middleware and the scrape handler; the global default
// registry is never used.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// requestDurationBuckets spans low-single-digit milliseconds to several
// seconds, matching typical auth/catalog handler latencies.
var requestDurationBuckets = []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5}

// Collector owns the Prometheus registry and all custom instruments.
// All instruments are safe for concurrent update from in-flight requests.
type Collector struct {
	registry *prometheus.Registry

	requestDuration  *prometheus.HistogramVec
	inProgress       prometheus.Gauge
	errorsTotal      *prometheus.CounterVec
	upstreamDuration prometheus.Histogram
}

// NewCollector creates a fresh registry, registers the default Go and
// process collectors on it, and registers the HTTP request instruments.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	c := &Collector{
		registry: registry,
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: requestDurationBuckets,
			},
			[]string{"method", "route", "status_code"},
		),
		inProgress: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_inprogress_requests",
				Help: "Number of in-progress HTTP requests",
			},
		),
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "route", "status_code"},
		),
		upstreamDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_seconds",
				Help:    "Duration of upstream catalog requests in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),
	}

	registry.MustRegister(c.requestDuration)
	registry.MustRegister(c.inProgress)
	registry.MustRegister(c.errorsTotal)
	registry.MustRegister(c.upstreamDuration)

	return c
}

// RequestStarted increments the in-progress gauge. Every call must be paired
// with exactly one RequestFinished, regardless of how the request completes.
func (c *Collector) RequestStarted() {
	c.inProgress.Inc()
}

// RequestFinished records one completed request: it observes the duration
// histogram, decrements the in-progress gauge, and increments the error
// counter for status codes >= 400.
func (c *Collector) RequestFinished(method, route string, statusCode int, elapsed time.Duration) {
	status := strconv.Itoa(statusCode)

	c.requestDuration.WithLabelValues(method, route, status).Observe(elapsed.Seconds())
	c.inProgress.Dec()

	if statusCode >= http.StatusBadRequest {
		c.errorsTotal.WithLabelValues(method, route, status).Inc()
	}
}

// ObserveUpstream records the duration of one upstream catalog request.
func (c *Collector) ObserveUpstream(elapsed time.Duration) {
	c.upstreamDuration.Observe(elapsed.Seconds())
}

// Handler returns the scrape endpoint rendering every registered instrument
// in the plaintext exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests and additional
// registrations.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
