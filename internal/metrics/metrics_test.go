package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRequest("/api/v1/checkins/stats", "GET", 200, 20*time.Millisecond)
	m.ObserveRequest("/api/v1/checkins/stats", "GET", 200, 5*time.Millisecond)
	m.ObserveComputation(KindDashboard, time.Millisecond)
	m.FetchFailed("unavailable")
	m.CheckinCreated()
	m.CheckinUpdated()
	m.CheckinUpdated()
	m.RateLimited()
	m.AuthRejected("missing_token")

	if got := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("/api/v1/checkins/stats", "GET", "200")); got != 2 {
		t.Errorf("http_requests_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.computationsTotal.WithLabelValues(KindDashboard)); got != 1 {
		t.Errorf("computations_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.fetchFailures.WithLabelValues("unavailable")); got != 1 {
		t.Errorf("fetch_failures_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.checkinsCreated); got != 1 {
		t.Errorf("checkins_created_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.checkinsUpdated); got != 2 {
		t.Errorf("checkins_updated_total = %v, want 2", got)
	}

	count, err := testutil.GatherAndCount(reg, "http_request_duration_seconds")
	if err != nil {
		t.Fatalf("GatherAndCount() error = %v", err)
	}
	if count != 1 {
		t.Errorf("expected one duration series, got %d", count)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveRequest("/", "GET", 200, time.Second)
	m.ObserveComputation(KindSeries, time.Second)
	m.FetchFailed("invalid_user")
	m.CheckinCreated()
	m.CheckinUpdated()
	m.RateLimited()
	m.AuthRejected("invalid_token")
}
