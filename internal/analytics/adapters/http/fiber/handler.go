package fiber

import (
	"bytes"
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"sales-analytics-service/internal/analytics/adapters/render"
	"sales-analytics-service/internal/analytics/core/domain"
	"sales-analytics-service/internal/analytics/core/ports"
	"sales-analytics-service/internal/analytics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetChartUseCase interface {
	Catalog() []domain.Descriptor
	Execute(ctx context.Context, in usecase.GetChartInput) (*domain.Chart, error)
	Dashboard(ctx context.Context, in usecase.DashboardInput) ([]*domain.Chart, error)
}

type ChartHandler struct {
	uc     GetChartUseCase
	render render.Context
}

func NewChartHandler(uc GetChartUseCase, rc render.Context) *ChartHandler {
	return &ChartHandler{uc: uc, render: rc}
}

// ListCharts godoc
// @Summary List charts
// @Description Returns the id, name and kind of every available chart
// @Tags Charts
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /charts [get]
func (h *ChartHandler) ListCharts(c *fiber.Ctx) error {
	catalog := h.uc.Catalog()
	resp := CatalogResponse{Charts: make([]ChartDescriptorResponse, 0, len(catalog))}
	for _, d := range catalog {
		resp.Charts = append(resp.Charts, descriptorResponse(d))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetChart godoc
// @Summary Compute one chart
// @Description Loads the current dataset and returns the aggregated rows of one chart
// @Tags Charts
// @Produce json
// @Param id path int true "Chart id"
// @Param group query string false "Item group code (charts 9 and 10)"
// @Param bin_width query number false "Spend bin width (chart 12)"
// @Success 200 {object} ChartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /charts/{id} [get]
func (h *ChartHandler) GetChart(c *fiber.Ctx) error {
	in, ok := h.chartInput(c)
	if !ok {
		return nil
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(chartResponse(res))
}

// GetChartSVG godoc
// @Summary Render one chart
// @Description Computes one chart and renders it as SVG
// @Tags Charts
// @Produce image/svg+xml
// @Param id path int true "Chart id"
// @Param group query string false "Item group code (charts 9 and 10)"
// @Param bin_width query number false "Spend bin width (chart 12)"
// @Param width query int false "Image width in pixels"
// @Param height query int false "Image height in pixels"
// @Success 200 {string} string "SVG document"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /charts/{id}/svg [get]
func (h *ChartHandler) GetChartSVG(c *fiber.Ctx) error {
	in, ok := h.chartInput(c)
	if !ok {
		return nil
	}

	rc := h.render
	rc.Width = c.QueryInt("width", rc.Width)
	rc.Height = c.QueryInt("height", rc.Height)
	if err := rc.Validate(); err != nil {
		return writeError(c, err)
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	var buf bytes.Buffer
	if err := render.SVG(&buf, res, rc); err != nil {
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

// GetDashboard godoc
// @Summary Compute every chart
// @Description Computes all charts from a single load of the dataset
// @Tags Charts
// @Produce json
// @Param group query string false "Item group code (charts 9 and 10)"
// @Param bin_width query number false "Spend bin width (chart 12)"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard [get]
func (h *ChartHandler) GetDashboard(c *fiber.Ctx) error {
	binWidth, ok := binWidthQuery(c)
	if !ok {
		return nil
	}

	res, err := h.uc.Dashboard(c.UserContext(), usecase.DashboardInput{
		Group:    c.Query("group", ""),
		BinWidth: binWidth,
	})
	if err != nil {
		return writeError(c, err)
	}

	resp := DashboardResponse{Charts: make([]ChartResponse, 0, len(res))}
	for _, ch := range res {
		resp.Charts = append(resp.Charts, chartResponse(ch))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// chartInput parses path and query parameters. On failure it has already
// written the 400 response.
func (h *ChartHandler) chartInput(c *fiber.Ctx) (usecase.GetChartInput, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		_ = c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: "invalid chart id",
		})
		return usecase.GetChartInput{}, false
	}

	binWidth, ok := binWidthQuery(c)
	if !ok {
		return usecase.GetChartInput{}, false
	}

	return usecase.GetChartInput{
		ChartID:  id,
		Group:    c.Query("group", ""),
		BinWidth: binWidth,
	}, true
}

func binWidthQuery(c *fiber.Ctx) (float64, bool) {
	raw := c.Query("bin_width", "")
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		_ = c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: "invalid 'bin_width' parameter",
		})
		return 0, false
	}
	return v, true
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidBinWidth),
		errors.Is(err, render.ErrInvalidSize):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrUnknownChart):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "chart_not_found",
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrDatasetUnavailable):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Error:   "dataset_unavailable",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
