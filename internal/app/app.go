// Package app wires configuration into the adapters and use cases shared by
// the HTTP server and the CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	analyticsPg "sales-analytics-service/internal/analytics/adapters/postgres"
	"sales-analytics-service/internal/analytics/adapters/source"
	"sales-analytics-service/internal/analytics/core/dates"
	"sales-analytics-service/internal/analytics/core/ports"
	analyticsUsecase "sales-analytics-service/internal/analytics/core/usecase"
	"sales-analytics-service/internal/config"
	ingestPg "sales-analytics-service/internal/ingest/adapters/postgres"
	ingestUsecase "sales-analytics-service/internal/ingest/core/usecase"
	"sales-analytics-service/internal/observability"
	"sales-analytics-service/internal/storage"
)

// App holds the long-lived dependencies built from one Config.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *observability.Metrics
	DB      *sqlx.DB // nil when no DSN is configured

	Resolver *dates.Resolver
	Source   ports.DatasetSource
}

// New opens the database when one is configured and selects the dataset
// source named by cfg.Dataset.Source.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:   cfg,
		Logger:   logger,
		Metrics:  observability.NewMetrics(),
		Resolver: dates.NewResolver(dates.WithLocation(loc), dates.WithYearPivot(cfg.Charts.YearPivot)),
	}

	if cfg.HasDatabase() {
		a.DB, err = storage.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
	}

	switch cfg.Dataset.Source {
	case config.SourcePostgres:
		if a.DB == nil {
			return nil, config.ErrPostgresDSNRequired
		}
		a.Source = analyticsPg.NewTableRepository(analyticsPg.NewSQLDB(a.DB), loc)
	case config.SourceFile:
		a.Source = source.NewFile(cfg.Dataset.Path, &http.Client{Timeout: cfg.Server.ReadTimeout})
	default:
		return nil, fmt.Errorf("unknown dataset source %q", cfg.Dataset.Source)
	}

	return a, nil
}

// WithSource swaps the dataset source, e.g. for a one-off file from the CLI.
func (a *App) WithSource(s ports.DatasetSource) *App {
	a.Source = s
	return a
}

func (a *App) ChartUseCase() *analyticsUsecase.GetChartUseCase {
	return analyticsUsecase.NewGetChartUseCase(a.Source, a.Resolver,
		analyticsUsecase.WithLogger(a.Logger),
		analyticsUsecase.WithObserver(a.Metrics),
		analyticsUsecase.WithSpendBinWidth(a.Config.Charts.SpendBinWidth),
	)
}

// ImportUseCase is nil when no database is configured.
func (a *App) ImportUseCase() *ingestUsecase.ImportDatasetUseCase {
	if a.DB == nil {
		return nil
	}
	repo := ingestPg.NewOrderLineRepository(ingestPg.NewSQLDB(a.DB))
	return ingestUsecase.NewImportDatasetUseCase(repo, a.Resolver,
		ingestUsecase.WithLogger(a.Logger),
		ingestUsecase.WithObserver(a.Metrics),
	)
}

func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
