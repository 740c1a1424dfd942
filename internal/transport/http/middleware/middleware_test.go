package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggerFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestLogger(zap.New(core).Sugar()))
	app.Get("/engineers/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusTeapot)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/engineers/e1?x=1", nil))
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	entries := logs.FilterMessage("http").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "GET", fields["method"])
	require.Equal(t, "/engineers/e1?x=1", fields["path"])
	require.EqualValues(t, http.StatusTeapot, fields["status"])
	require.NotEmpty(t, fields["request_id"])
}

func TestRequestLoggerServerErrorLevel(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := fiber.New()
	app.Use(RequestLogger(zap.New(core).Sugar()))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusInternalServerError)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	require.Equal(t, 1, logs.FilterLevelExact(zap.ErrorLevel).Len())
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	app := fiber.New()
	app.Use(Metrics())
	app.Get("/projects/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	for _, id := range []string{"p1", "p2", "p3"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/projects/"+id, nil))
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
	}

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range families {
		if mf.GetName() != "resource_manager_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["route"] == "/projects/:id" && labels["status"] == "200" {
				found = true
				require.Equal(t, float64(3), m.GetCounter().GetValue())
			}
		}
	}
	require.True(t, found)
}
