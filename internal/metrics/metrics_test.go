package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"

	"github.com/fkhayef/splitledger/internal/balance"
)

// counterValue returns the value of the counter series matching labels,
// or -1 when no such series exists.
func counterValue(t *testing.T, m *Metrics, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if matches(metric, labels) {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return -1
}

func matches(metric *dto.Metric, labels map[string]string) bool {
	if len(metric.GetLabel()) != len(labels) {
		return false
	}
	for _, pair := range metric.GetLabel() {
		if labels[pair.GetName()] != pair.GetValue() {
			return false
		}
	}
	return true
}

func TestObserveBalanceOutcomes(t *testing.T) {
	m := New()

	m.ObserveBalance(balance.ScopeGroup, time.Millisecond, nil)
	m.ObserveBalance(balance.ScopeGroup, time.Millisecond, nil)
	m.ObserveBalance(balance.ScopeGroup, time.Millisecond, balance.ErrGroupNotFound)
	m.ObserveBalance(balance.ScopeUser, time.Millisecond, &balance.DataIntegrityError{Entity: "user", ID: 3})
	m.ObserveBalance(balance.ScopeUser, time.Millisecond, errors.New("connection reset"))

	tests := []struct {
		scope   string
		outcome string
		want    float64
	}{
		{balance.ScopeGroup, OutcomeOK, 2},
		{balance.ScopeGroup, OutcomeNotFound, 1},
		{balance.ScopeUser, OutcomeDataIntegrity, 1},
		{balance.ScopeUser, OutcomeError, 1},
		{balance.ScopeUser, OutcomeOK, -1},
	}

	for _, tt := range tests {
		got := counterValue(t, m, "splitledger_balance_computations_total", map[string]string{"scope": tt.scope, "outcome": tt.outcome})
		if got != tt.want {
			t.Errorf("computations{scope=%s,outcome=%s} = %v, want %v", tt.scope, tt.outcome, got, tt.want)
		}
	}
}

func TestObserveHTTP(t *testing.T) {
	m := New()

	m.ObserveHTTP(http.MethodGet, "/api/v1/balances/groups/{groupId}", http.StatusOK, 5*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/api/v1/balances/groups/{groupId}", http.StatusNotFound, time.Millisecond)

	got := counterValue(t, m, "splitledger_http_requests_total", map[string]string{
		"method": "GET",
		"route":  "/api/v1/balances/groups/{groupId}",
		"status": "404",
	})
	if got != 1 {
		t.Errorf("requests{status=404} = %v, want 1", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	m.ObserveBalance(balance.ScopeGroup, time.Millisecond, nil)
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveBalance(balance.ScopeGroup, time.Millisecond, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `splitledger_balance_computations_total{outcome="ok",scope="group"} 1`) {
		t.Errorf("exposition is missing the balance counter:\n%s", body)
	}
}
