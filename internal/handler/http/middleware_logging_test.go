package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestWithLogging_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(t, nil)
	h.logger = logger.NewLoggerWithWriter("test", &buf)

	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging)
	router.Get("/api/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/teapot?x=1", nil))

	out := buf.String()
	assert.Contains(t, out, `"uri":"/api/teapot?x=1"`)
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"size":15`)
	assert.Contains(t, out, `"duration"`)
}

func TestWithLogging_RecordsRoutePattern(t *testing.T) {
	h := newTestHandler(t, nil)

	router := chi.NewRouter()
	router.Use(h.withLogging)
	router.Get("/api/things/{id}", func(w http.ResponseWriter, r *http.Request) {})

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/api/things/{id}", "200")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"1", "2", "3"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/things/"+id, nil))
	}

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
}

func TestRoutePattern_Unmatched(t *testing.T) {
	assert.Equal(t, "unmatched", routePattern(httptest.NewRequest(http.MethodGet, "/", nil)))
}
