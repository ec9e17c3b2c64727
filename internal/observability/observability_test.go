package observability

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-analytics-service/internal/config"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, config.LoggingConfig{Level: "warn", Format: "json"})

	logger.Info("hidden")
	logger.Warn("chart computed", "chart", 3)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "chart computed", line["msg"])
	assert.Equal(t, "sales-analytics", line["service"])
	assert.Equal(t, float64(3), line["chart"])
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, config.LoggingConfig{Level: "debug", Format: "text"})

	logger.Debug("loaded", "rows", 10)
	assert.Contains(t, buf.String(), "msg=loaded")
	assert.Contains(t, buf.String(), "rows=10")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, -4, int(parseLevel("debug")))
	assert.Equal(t, 8, int(parseLevel("error")))
	assert.Equal(t, 0, int(parseLevel("chatty")))
}

func scrape(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/debug/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics_Observers(t *testing.T) {
	m := NewMetrics()
	app := fiber.New()
	app.Get("/debug/metrics", m.Handler())

	m.ObserveChart(3, 120, 4, 20*time.Millisecond)
	m.ObserveChart(3, 120, 4, 10*time.Millisecond)
	m.ObserveImport(50, 2)

	body := scrape(t, app)
	assert.Contains(t, body, `sales_chart_computations_total{chart="3"} 2`)
	assert.Contains(t, body, `sales_chart_skipped_rows_total{chart="3"} 8`)
	assert.Contains(t, body, "sales_dataset_rows 120")
	assert.Contains(t, body, "sales_imported_lines_total 50")
	assert.Contains(t, body, "sales_import_skipped_rows_total 2")
}

func TestMetrics_Middleware(t *testing.T) {
	m := NewMetrics()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/charts/:id", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/broken", func(c *fiber.Ctx) error { return fiber.ErrServiceUnavailable })
	app.Get("/debug/metrics", m.Handler())

	for _, path := range []string{"/charts/3", "/charts/7", "/broken"} {
		_, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
	}

	body := scrape(t, app)
	assert.Contains(t, body, `sales_http_request_duration_seconds_count{method="GET",route="/charts/:id",status="200"} 2`)
	assert.Contains(t, body, `sales_http_request_duration_seconds_count{method="GET",route="/broken",status="503"} 1`)
}
