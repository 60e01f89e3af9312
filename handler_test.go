package promexpose_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kroma-labs/promexpose"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestHandler_Snapshot(t *testing.T) {
	t.Parallel()

	t.Run("given an empty registry, then the snapshot is well-formed and empty", func(t *testing.T) {
		h := promexpose.Handler(promexpose.GathererOf(prometheus.NewRegistry()))

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
		assert.Equal(t, "0", rec.Header().Get("Content-Length"))
		assert.Empty(t, rec.Body.String())
	})

	t.Run("given registered metrics, then the body carries their current values", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		gauge := prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "test_queue_depth",
			Help: "Queue depth seen by the test.",
		})
		reg.MustRegister(gauge)
		gauge.Set(3)

		h := promexpose.Handler(promexpose.GathererOf(reg))

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "test_queue_depth 3")
	})
}

func TestHandler_ProviderFailure(t *testing.T) {
	t.Parallel()

	t.Run("given a failing provider, then the handler responds with a JSON 500", func(t *testing.T) {
		h := promexpose.Handler(func(context.Context) (prometheus.Gatherer, error) {
			return nil, errors.New("registry lookup failed")
		})

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), `"message"`)
	})
}
