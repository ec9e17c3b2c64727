package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"sales-analytics-service/internal/analytics/core/charts"
	"sales-analytics-service/internal/analytics/core/distribution"
	"sales-analytics-service/internal/analytics/core/domain"
	"sales-analytics-service/internal/analytics/core/normalize"
	"sales-analytics-service/internal/analytics/core/ports"
)

var (
	ErrUnknownChart    = errors.New("unknown chart")
	ErrInvalidBinWidth = errors.New("invalid bin width")
)

type GetChartInput struct {
	ChartID  int
	Group    string
	BinWidth float64 // only used by the spend distribution
}

type DashboardInput struct {
	Group    string
	BinWidth float64
}

// ChartObserver receives one call per computed chart.
type ChartObserver interface {
	ObserveChart(chartID int, rows, skipped int, elapsed time.Duration)
}

type GetChartUseCase struct {
	source   ports.DatasetSource
	dates    normalize.DateResolver
	logger   *slog.Logger
	observer ChartObserver
	binWidth float64
}

type Option func(*GetChartUseCase)

func WithLogger(l *slog.Logger) Option {
	return func(uc *GetChartUseCase) { uc.logger = l }
}

func WithObserver(o ChartObserver) Option {
	return func(uc *GetChartUseCase) { uc.observer = o }
}

// WithSpendBinWidth sets the spend histogram bin width used when a request
// does not name one.
func WithSpendBinWidth(w float64) Option {
	return func(uc *GetChartUseCase) { uc.binWidth = w }
}

func NewGetChartUseCase(source ports.DatasetSource, dates normalize.DateResolver, opts ...Option) *GetChartUseCase {
	uc := &GetChartUseCase{source: source, dates: dates, logger: slog.Default()}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *GetChartUseCase) Catalog() []domain.Descriptor {
	return charts.Catalog()
}

// Execute validates the input, loads a fresh snapshot and computes one chart.
func (uc *GetChartUseCase) Execute(ctx context.Context, in GetChartInput) (*domain.Chart, error) {
	if _, ok := charts.Lookup(in.ChartID); !ok {
		return nil, ErrUnknownChart
	}
	if !validBinWidth(in.BinWidth) {
		return nil, ErrInvalidBinWidth
	}

	snap, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return uc.compute(in.ChartID, snap, uc.params(in.Group, in.BinWidth))
}

// Dashboard computes every chart in the catalog from a single snapshot.
func (uc *GetChartUseCase) Dashboard(ctx context.Context, in DashboardInput) ([]*domain.Chart, error) {
	if !validBinWidth(in.BinWidth) {
		return nil, ErrInvalidBinWidth
	}

	snap, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	catalog := charts.Catalog()
	out := make([]*domain.Chart, len(catalog))
	params := uc.params(in.Group, in.BinWidth)

	g, ctx := errgroup.WithContext(ctx)
	for i, d := range catalog {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := uc.compute(d.ID, snap, params)
			if err != nil {
				return err
			}
			out[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// validBinWidth accepts 0 (use the default) and finite positive widths.
func validBinWidth(w float64) bool {
	return w >= 0 && !math.IsInf(w, 0)
}

func (uc *GetChartUseCase) params(group string, binWidth float64) charts.Params {
	if binWidth == 0 {
		binWidth = uc.binWidth
	}
	return charts.Params{Group: group, BinWidth: binWidth}
}

func (uc *GetChartUseCase) snapshot(ctx context.Context) (*charts.Snapshot, error) {
	table, err := uc.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	return charts.NewSnapshot(table, uc.dates), nil
}

func (uc *GetChartUseCase) compute(id int, snap *charts.Snapshot, p charts.Params) (*domain.Chart, error) {
	start := time.Now()

	c, err := charts.Compute(id, snap, p)
	if errors.Is(err, distribution.ErrInvalidBinning) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidBinWidth, p.BinWidth)
	}
	if err != nil {
		return nil, fmt.Errorf("compute: %w", err)
	}

	elapsed := time.Since(start)
	uc.logger.Debug("chart computed",
		slog.Int("chart", id),
		slog.Int("rows", c.Rows),
		slog.Int("skipped", c.Skipped),
		slog.Duration("elapsed", elapsed),
	)
	if uc.observer != nil {
		uc.observer.ObserveChart(id, c.Rows, c.Skipped, elapsed)
	}

	return c, nil
}
