package server

import (
	"compress/gzip"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	algovista "github.com/iayr1/algovista-sub001"
	"github.com/iayr1/algovista-sub001/metric"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	site, err := algovista.New()
	require.NoError(t, err)
	s, err := New(site, cfg)
	require.NoError(t, err)
	return s
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRoutes(t *testing.T) {
	h := newTestServer(t, Config{}).Handler()

	tests := []struct {
		target      string
		status      int
		contentType string
		contains    string
	}{
		{"/algorithms", http.StatusOK, "text/html", "Linear Regression"},
		{"/algorithms/", http.StatusOK, "text/html", "K-Means Clustering"},
		{"/algorithms/linear-regression", http.StatusOK, "text/html", "<h1>Linear Regression</h1>"},
		{"/algorithms/k-means?tab=formulas", http.StatusOK, "text/html", "Assignment step"},
		{"/algorithms/linear-regression?tab=visualization&slope=2&intercept=1", http.StatusOK, "text/html", "y = 2.0x + 1.0"},
		{"/algorithms/nonexistent-algo", http.StatusNotFound, "text/html", "Algorithm not found"},
		{"/algorithms/k-means/formulas/", http.StatusOK, "text/html", "Assignment step"},
		{"/algorithms/k-means/nope/", http.StatusNotFound, "text/html", "Algorithm not found"},
		{"/algorithms/nonexistent-algo/code/", http.StatusNotFound, "text/html", "nonexistent-algo"},
		{"/algorithms/k-means/widget.svg?k=2", http.StatusOK, "image/svg+xml", "<svg"},
		{"/algorithms/nonexistent-algo/widget.svg", http.StatusNotFound, "text/plain", "unknown algorithm"},
		{"/api/algorithms", http.StatusOK, "application/json", `"id":"k-means"`},
		{"/api/algorithms/linear-regression", http.StatusOK, "application/json", `"difficulty":"Beginner"`},
		{"/api/algorithms/nonexistent-algo", http.StatusNotFound, "application/json", `{"error":`},
		{"/healthz", http.StatusOK, "text/plain", "ok"},
		{"/no/such/page", http.StatusNotFound, "text/html", "Back to algorithms"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(t, h, tt.target)
			assert.Equal(t, tt.status, rec.Code)
			assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), tt.contentType), rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestRootRedirect(t *testing.T) {
	rec := get(t, newTestServer(t, Config{}).Handler(), "/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/algorithms", rec.Header().Get("Location"))
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestServer(t, Config{}).Handler()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/algorithms", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRateLimit(t *testing.T) {
	h := newTestServer(t, Config{RateLimit: 0.001, Burst: 2}).Handler()

	assert.Equal(t, http.StatusOK, get(t, h, "/algorithms").Code)
	assert.Equal(t, http.StatusOK, get(t, h, "/algorithms").Code)
	rec := get(t, h, "/algorithms")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, get(t, h, "/healthz").Code, "health checks are exempt")
}

func TestGzip(t *testing.T) {
	h := newTestServer(t, Config{Gzip: true}).Handler()

	req := httptest.NewRequest(http.MethodGet, "/algorithms/k-means", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<h1>K-Means Clustering</h1>")
}

func TestMetricsEndpoint(t *testing.T) {
	prom := metric.NewPrometheusCollector()
	site, err := algovista.New(algovista.WithMetricsCollector(prom))
	require.NoError(t, err)
	s, err := New(site, Config{Metrics: prom})
	require.NoError(t, err)
	h := s.Handler()

	get(t, h, "/algorithms/nonexistent-algo")
	rec := get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "algovista_not_found_total 1")
	assert.Contains(t, rec.Body.String(), `algovista_http_requests_total{code="404",method="get"} 1`)

	assert.Equal(t, http.StatusNotFound, get(t, newTestServer(t, Config{}).Handler(), "/metrics").Code)
}

func TestRecoverPanics(t *testing.T) {
	h := recoverPanics(algovista.NoopLogger(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := get(t, h, "/")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStatusRecorder(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
	_, _ = rec.Write([]byte("hello"))
	rec.WriteHeader(http.StatusTeapot)
	assert.Equal(t, http.StatusOK, rec.status)
	assert.Equal(t, 5, rec.bytes)
}

func TestServe_GracefulShutdown(t *testing.T) {
	s := newTestServer(t, Config{ShutdownTimeout: time.Second})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_ListenError(t *testing.T) {
	s := newTestServer(t, Config{Addr: "256.0.0.1:bad"})
	err := s.Run(context.Background())
	assert.Error(t, err)
}
