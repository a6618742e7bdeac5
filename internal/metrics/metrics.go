// Package metrics exposes Prometheus instrumentation for the HTTP API and
// the balance engine.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fkhayef/splitledger/internal/balance"
)

const namespace = "splitledger"

// Balance computation outcomes
const (
	OutcomeOK            = "ok"
	OutcomeNotFound      = "not_found"
	OutcomeDataIntegrity = "data_integrity"
	OutcomeError         = "error"
)

// Metrics owns a private registry so tests and binaries never share state.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	balanceComputations *prometheus.CounterVec
	balanceDuration     *prometheus.HistogramVec
}

// New creates and registers all collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		balanceComputations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "balance_computations_total",
			Help:      "Balance view computations by scope and outcome.",
		}, []string{"scope", "outcome"}),
		balanceDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "balance_computation_duration_seconds",
			Help:      "Time spent recomputing balances from the ledger.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"scope"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.balanceComputations,
		m.balanceDuration,
	)
	return m
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP records one served request
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveBalance records one balance computation
func (m *Metrics) ObserveBalance(scope string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.balanceComputations.WithLabelValues(scope, outcome(err)).Inc()
	m.balanceDuration.WithLabelValues(scope).Observe(duration.Seconds())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, balance.ErrGroupNotFound), errors.Is(err, balance.ErrUserNotFound):
		return OutcomeNotFound
	case errors.Is(err, balance.ErrDataIntegrity):
		return OutcomeDataIntegrity
	default:
		return OutcomeError
	}
}
