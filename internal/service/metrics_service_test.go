package service

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServiceSnapshotAndExposition(t *testing.T) {
	m := NewMetricsService()
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/staff", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/staff", http.StatusOK, 40*time.Millisecond)
	m.ObserveDBQuery("ping", 5*time.Millisecond)

	snap := m.Snapshot()
	assert.Equal(t, uint64(2), snap.RequestsTotal)
	assert.InDelta(t, 30.0, snap.AverageRequestDurationMs, 0.001)
	assert.Equal(t, uint64(1), snap.DBQueryCount)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `http_requests_total{method="GET",path="/api/v1/staff",status="200"} 2`))
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	m.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	assert.Equal(t, MetricsSnapshot{}, m.Snapshot())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
