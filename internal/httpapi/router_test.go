package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"carelink-api/internal/metrics"
)

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	h := New(&Config{Logger: zerolog.Nop()})
	rec := serve(h, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	down := New(&Config{Logger: zerolog.Nop(), Ready: func(context.Context) error { return errors.New("redis down") }})
	rec = serve(down, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "redis down")
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg).ObserveSlots(0)

	h := New(&Config{Logger: zerolog.Nop(), MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{})})
	rec := serve(h, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `carelink_availability_resolutions_total{outcome="none"} 1`)
}

func TestBridgeMount(t *testing.T) {
	var hit string
	bridge := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = r.Method + " " + r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	h := New(&Config{Logger: zerolog.Nop(), Bridge: bridge})

	serve(h, http.MethodPost, "/carelink.v1.CareService/Login")
	assert.Equal(t, "POST /carelink.v1.CareService/Login", hit)

	serve(h, http.MethodOptions, "/carelink.v1.CareService/ListVitals")
	assert.Equal(t, "OPTIONS /carelink.v1.CareService/ListVitals", hit)

	rec := serve(h, http.MethodPost, "/other.Service/Login")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
