// Package metrics exposes the server's Prometheus collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks RPC traffic and the rent returned to owners.
// A nil *Metrics records nothing.
type Metrics struct {
	RequestsTotal *prometheus.CounterVec
	Duration      *prometheus.HistogramVec
	RentRefunded  prometheus.Counter
}

// New registers all collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "todokeeper_rpc_requests_total",
			Help: "Total number of RPCs by method and status code",
		}, []string{"method", "code"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "todokeeper_rpc_duration_seconds",
			Help:    "RPC latency by method",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method"}),
		RentRefunded: f.NewCounter(prometheus.CounterOpts{
			Name: "todokeeper_rent_refunded_total",
			Help: "Rent units returned to owners by deleted todos",
		}),
	}
}

// ObserveRPC records one finished call.
func (m *Metrics) ObserveRPC(method, code string, start time.Time) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, code).Inc()
	m.Duration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

// AddRefund records rent returned by a delete.
func (m *Metrics) AddRefund(units uint64) {
	if m == nil {
		return
	}
	m.RentRefunded.Add(float64(units))
}

// Handler serves the registry in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
