package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"sales-analytics-service/internal/analytics/adapters/render"
	"sales-analytics-service/internal/analytics/adapters/source"
	"sales-analytics-service/internal/analytics/core/charts"
	"sales-analytics-service/internal/analytics/core/usecase"
	"sales-analytics-service/internal/app"
	"sales-analytics-service/internal/config"
	ingestUsecase "sales-analytics-service/internal/ingest/core/usecase"
	"sales-analytics-service/internal/observability"
)

var errNoDatabase = errors.New("import needs a postgres dsn (SALES_POSTGRES_DSN)")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "salesctl",
		Short:         "Import sales datasets and inspect chart datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newChartsCmd(),
		newChartCmd(),
		newImportCmd(),
	)
	return rootCmd
}

// setup loads .env and the configuration, then builds the dependencies.
// Logs go to stderr so stdout stays machine readable.
func setup(cmd *cobra.Command) (*app.App, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := observability.NewLogger(cmd.ErrOrStderr(), cfg.Logging)
	return app.New(cmd.Context(), cfg, logger)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newChartsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "charts",
		Short: "List the available charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), charts.Catalog())
		},
	}
}

func newChartCmd() *cobra.Command {
	var (
		group    string
		binWidth float64
		from     string
		svgPath  string
	)

	cmd := &cobra.Command{
		Use:   "chart [id]",
		Short: "Compute one chart and print its dataset as JSON",
		Long: `Compute one chart from the configured dataset source, or from the
file or URL given with --source.

Example: salesctl chart 12 --bin-width 100000 --source ./sales.csv --svg spend.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid chart id %q: %w", args[0], err)
			}

			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if from != "" {
				a.WithSource(source.NewFile(from, nil))
			}

			c, err := a.ChartUseCase().Execute(cmd.Context(), usecase.GetChartInput{
				ChartID:  id,
				Group:    group,
				BinWidth: binWidth,
			})
			if err != nil {
				return err
			}

			if svgPath != "" {
				f, err := os.Create(svgPath)
				if err != nil {
					return err
				}
				if err := render.SVG(f, c, render.DefaultContext()); err != nil {
					f.Close()
					return fmt.Errorf("render svg: %w", err)
				}
				if err := f.Close(); err != nil {
					return err
				}
			}

			return writeJSON(cmd.OutOrStdout(), c)
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "Item group code for charts 9 and 10")
	cmd.Flags().Float64Var(&binWidth, "bin-width", 0, "Spend bin width for chart 12 (default from config)")
	cmd.Flags().StringVar(&from, "source", "", "Dataset file path or URL overriding the configured source")
	cmd.Flags().StringVar(&svgPath, "svg", "", "Also render the chart as SVG into this file")

	return cmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import a CSV, TSV or XLSX sales dataset into Postgres",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			uc := a.ImportUseCase()
			if uc == nil {
				return errNoDatabase
			}

			table, err := source.NewFile(args[0], nil).Load(cmd.Context())
			if err != nil {
				return err
			}

			res, err := uc.Execute(cmd.Context(), ingestUsecase.ImportInput{Table: table})
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"batch_id": res.BatchID.String(),
				"imported": res.Imported,
				"skipped":  res.Skipped,
			})
		},
	}
}
