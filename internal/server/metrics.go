// This file contains the Prometheus metrics surface of the listener:
// the exposition handler plus the request gauges the middleware drives.

package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registered once on the default registry, alongside the evaluation metrics
// the domain packages register at init. A plain counter (no labels) so the
// series is exported even before the first request.
var (
	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fibspiral_active_requests",
		Help: "Number of HTTP requests currently being served.",
	})
	requestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fibspiral_requests_total",
		Help: "Total number of HTTP requests served.",
	})
)

// Metrics bundles the exposition handler with the request instruments.
// Instantiating it more than once is safe: the underlying collectors are
// package-level singletons.
type Metrics struct {
	handler http.Handler
}

// NewMetrics creates the metrics surface backed by the default Prometheus
// registry, which also carries the Go runtime collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		handler: promhttp.Handler(),
	}
}

// IncrementActiveRequests marks a request as in flight.
func (m *Metrics) IncrementActiveRequests() {
	activeRequests.Inc()
	requestsTotal.Inc()
}

// DecrementActiveRequests marks an in-flight request as finished.
func (m *Metrics) DecrementActiveRequests() {
	activeRequests.Dec()
}

// WritePrometheus serves the Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
