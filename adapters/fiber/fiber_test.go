package fiber_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	fiberlib "github.com/gofiber/fiber/v2"
	"github.com/kroma-labs/promexpose"
	fiberpromexpose "github.com/kroma-labs/promexpose/adapters/fiber"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttach(t *testing.T) {
	t.Parallel()

	t.Run("given a Fiber app, when attached, then the endpoint serves metrics", func(t *testing.T) {
		app := fiberlib.New()

		_, err := fiberpromexpose.Attach(app, "/metrics")
		require.NoError(t, err)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
		assert.Contains(t, string(body), "go_goroutines")
	})

	t.Run("given a verb string option, then the endpoint registers under it", func(t *testing.T) {
		app := fiberlib.New()
		reg := prometheus.NewRegistry()

		_, err := fiberpromexpose.Attach(app, "/metrics", promexpose.Options{
			Provider: promexpose.GathererOf(reg),
			Method:   "post",
		})
		require.NoError(t, err)

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/metrics", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
