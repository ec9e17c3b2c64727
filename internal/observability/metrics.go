package observability

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is a private prometheus registry with the service collectors.
// It implements the chart and import observers of the use cases.
type Metrics struct {
	reg *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	ChartsComputed  *prometheus.CounterVec
	ChartDuration   *prometheus.HistogramVec
	DatasetRows     prometheus.Gauge
	SkippedRows     *prometheus.CounterVec
	ImportedLines   prometheus.Counter
	ImportSkipped   prometheus.Counter
}

func NewMetrics() *Metrics {
	r := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sales_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
	chartsComputed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_chart_computations_total",
		Help: "Chart datasets computed.",
	}, []string{"chart"})
	chartDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sales_chart_duration_seconds",
		Help:    "Time spent computing one chart dataset.",
		Buckets: prometheus.DefBuckets,
	}, []string{"chart"})
	datasetRows := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sales_dataset_rows",
		Help: "Rows in the most recently loaded snapshot.",
	})
	skippedRows := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_chart_skipped_rows_total",
		Help: "Rows excluded from a chart for lacking a required field.",
	}, []string{"chart"})
	importedLines := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sales_imported_lines_total",
		Help: "Order lines written by imports.",
	})
	importSkipped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sales_import_skipped_rows_total",
		Help: "Blank rows ignored by imports.",
	})

	r.MustRegister(
		requestDuration, chartsComputed, chartDuration, datasetRows, skippedRows, importedLines, importSkipped,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		reg:             r,
		RequestDuration: requestDuration,
		ChartsComputed:  chartsComputed,
		ChartDuration:   chartDuration,
		DatasetRows:     datasetRows,
		SkippedRows:     skippedRows,
		ImportedLines:   importedLines,
		ImportSkipped:   importSkipped,
	}
}

func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

func (m *Metrics) ObserveChart(chartID int, rows, skipped int, elapsed time.Duration) {
	id := strconv.Itoa(chartID)
	m.ChartsComputed.WithLabelValues(id).Inc()
	m.ChartDuration.WithLabelValues(id).Observe(elapsed.Seconds())
	m.SkippedRows.WithLabelValues(id).Add(float64(skipped))
	m.DatasetRows.Set(float64(rows))
}

func (m *Metrics) ObserveImport(imported, skipped int) {
	m.ImportedLines.Add(float64(imported))
	m.ImportSkipped.Add(float64(skipped))
}

// Middleware records the latency of every request under its route
// pattern, so /charts/3 and /charts/7 share one series.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		m.RequestDuration.
			WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{}))
}
