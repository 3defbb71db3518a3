package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetricsApp(t *testing.T) (*fiber.App, *PrometheusMiddleware, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	pm, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(pm.Handler())
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/leaderboard", ok)
	app.Post("/votes", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })
	app.Get("/submissions/:id/votes", ok)
	app.Get("/metrics", ok)
	app.Get("/prompts/current", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "no prompt")
	})
	app.Get("/boom", func(c *fiber.Ctx) error { return assert.AnError })
	return app, pm, reg
}

func TestPrometheusMiddleware_Counts(t *testing.T) {
	app, pm, _ := newMetricsApp(t)

	tests := []struct {
		method, target string
		labels         []string
	}{
		{"GET", "/leaderboard", []string{"GET", "/leaderboard", "200"}},
		{"POST", "/votes", []string{"POST", "/votes", "201"}},
		{"GET", "/prompts/current", []string{"GET", "/prompts/current", "404"}},
		{"GET", "/boom", []string{"GET", "/boom", "500"}},
		{"GET", "/submissions/3f6c1a52-7d0e-4c4b-9a43-3b1f0c2f8e11/votes", []string{"GET", "/submissions/:id/votes", "200"}},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			_, err := app.Test(httptest.NewRequest(tt.method, tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, 1.0, testutil.ToFloat64(pm.requestCount.WithLabelValues(tt.labels...)))
		})
	}

	assert.Equal(t, 5, testutil.CollectAndCount(pm.requestDuration))
}

func TestPrometheusMiddleware_SkipsMetricsEndpoint(t *testing.T) {
	app, _, reg := newMetricsApp(t)

	_, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)

	n, err := testutil.GatherAndCount(reg, "http_requests_total")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNewPrometheusMiddleware_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	_, err = NewPrometheusMiddleware(reg)
	assert.Error(t, err)
}
