package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	_ "time/tzdata"

	analyticsHttp "sales-analytics-service/internal/analytics/adapters/http/fiber"
	"sales-analytics-service/internal/analytics/adapters/render"
	"sales-analytics-service/internal/app"
	"sales-analytics-service/internal/config"
	ingestHttp "sales-analytics-service/internal/ingest/adapters/http/fiber"
	"sales-analytics-service/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "sales-analytics-service/docs"
)

// @title Sales Analytics Service API
// @version 1.0
// @description Sales dataset charts and imports.
// @BasePath /
func main() {
	// .env is optional
	_ = godotenv.Load()

	// Config
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(os.Stdout, cfg.Logging)
	slog.SetDefault(logger)

	// Dependencies
	a, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to initialise", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	// HTTP (Fiber) app + handlers
	srv := fiber.New(fiber.Config{
		BodyLimit:   cfg.Server.BodyLimit,
		ReadTimeout: cfg.Server.ReadTimeout,
	})
	srv.Use(a.Metrics.Middleware())

	// chart endpoints
	chartHandler := analyticsHttp.NewChartHandler(a.ChartUseCase(), render.DefaultContext())
	srv.Get("/charts", chartHandler.ListCharts)
	srv.Get("/charts/:id", chartHandler.GetChart)
	srv.Get("/charts/:id/svg", chartHandler.GetChartSVG)
	srv.Get("/dashboard", chartHandler.GetDashboard)

	// import endpoint needs a database
	if importUC := a.ImportUseCase(); importUC != nil {
		importHandler := ingestHttp.NewImportHandler(importUC)
		srv.Post("/imports", importHandler.CreateImport)
	} else {
		logger.Warn("no postgres dsn configured, imports disabled")
	}

	srv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	srv.Get("/debug/metrics", a.Metrics.Handler())

	// Swagger
	srv.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	addr := ":" + strconv.Itoa(cfg.Server.Port)
	go func() {
		if err := srv.Listen(addr); err != nil {
			logger.Error("fiber stopped", "error", err)
		}
	}()

	logger.Info("server started",
		slog.String("addr", addr),
		slog.String("dataset_source", cfg.Dataset.Source),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.ShutdownWithContext(ctx); err != nil {
		logger.Error("fiber shutdown error", "error", err)
	}

	logger.Info("server exiting")
}
