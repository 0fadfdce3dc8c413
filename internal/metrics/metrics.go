// Package metrics holds the prometheus collectors of the check-in API.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Computation kinds recorded by the insights service. Window insights are
// recorded under the window name.
const (
	KindSeries    = "series"
	KindDashboard = "dashboard"
)

// Metrics groups every collector the API exports. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	authRejections      *prometheus.CounterVec
	rateLimited         prometheus.Counter

	computationsTotal   *prometheus.CounterVec
	computationDuration *prometheus.HistogramVec
	fetchFailures       *prometheus.CounterVec
	checkinsCreated     prometheus.Counter
	checkinsUpdated     prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		authRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_rejections_total",
				Help: "Total number of unauthenticated requests",
			},
			[]string{"reason"},
		),
		rateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "rate_limited_requests_total",
				Help: "Total number of requests rejected by the rate limiter",
			},
		),
		computationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkin_analytics_computations_total",
				Help: "Analytics computations by kind (series, dashboard or insight window)",
			},
			[]string{"kind"},
		),
		computationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "checkin_analytics_computation_duration_seconds",
				Help:    "Time spent fetching records and computing analytics",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"kind"},
		),
		fetchFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkin_record_fetch_failures_total",
				Help: "Record store failures by reason",
			},
			[]string{"reason"},
		),
		checkinsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "checkins_created_total",
				Help: "Total number of check-ins stored",
			},
		),
		checkinsUpdated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "checkins_updated_total",
				Help: "Total number of check-ins edited after creation",
			},
		),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.authRejections,
		m.rateLimited,
		m.computationsTotal,
		m.computationDuration,
		m.fetchFailures,
		m.checkinsCreated,
		m.checkinsUpdated,
	)

	return m
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// AuthRejected records a rejected authentication attempt
func (m *Metrics) AuthRejected(reason string) {
	if m == nil {
		return
	}
	m.authRejections.WithLabelValues(reason).Inc()
}

// RateLimited records a request refused by the rate limiter
func (m *Metrics) RateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}

// ObserveComputation records a finished analytics computation
func (m *Metrics) ObserveComputation(kind string, d time.Duration) {
	if m == nil {
		return
	}
	m.computationsTotal.WithLabelValues(kind).Inc()
	m.computationDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// FetchFailed records a record store failure
func (m *Metrics) FetchFailed(reason string) {
	if m == nil {
		return
	}
	m.fetchFailures.WithLabelValues(reason).Inc()
}

// CheckinCreated records a stored check-in
func (m *Metrics) CheckinCreated() {
	if m == nil {
		return
	}
	m.checkinsCreated.Inc()
}

// CheckinUpdated records an edited check-in
func (m *Metrics) CheckinUpdated() {
	if m == nil {
		return
	}
	m.checkinsUpdated.Inc()
}
