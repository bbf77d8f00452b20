package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(m.Handler())
	app.Get("/posts/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/posts/abc", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/posts/def", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)

	// Both requests share the route pattern label; /metrics is excluded.
	count := testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/posts/:id", "200"))
	assert.Equal(t, 2.0, count)

	metricsCount := testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/metrics", "200"))
	assert.Equal(t, 0.0, metricsCount)
}

func TestPrometheusMiddlewareDoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	_, err = NewPrometheusMiddleware(reg)
	assert.Error(t, err)
}
