package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ametelkin/weathercast/internal/config"
	"github.com/ametelkin/weathercast/internal/report"
	"github.com/ametelkin/weathercast/internal/store"
	"github.com/ametelkin/weathercast/internal/weather"
	"github.com/ametelkin/weathercast/internal/weather/providers"
)

var (
	reportUnits string
	reportChart string
)

var reportCmd = &cobra.Command{
	Use:   "report [locations...]",
	Short: "Fetch current conditions and a multi-day forecast",
	Long: `Fetch current conditions for the given locations (cache-first) and
print a per-date forecast listing. Locations may be separate arguments
or comma-separated ("London, Paris").`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&reportUnits, "units", "u", "c", `Degree token: "c" for metric, anything else for imperial`)
	reportCmd.Flags().StringVar(&reportChart, "chart", "", "Write a temperature PNG chart to this path")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	locations := config.SplitLocations(strings.Join(args, ","))
	if len(locations) == 0 {
		return errors.New("no locations given")
	}
	units := weather.UnitSystemFromToken(reportUnits)

	ctx := cmd.Context()

	cacheStore, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	httpClient := &http.Client{Timeout: 10 * time.Second}
	provider := providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey)
	service := weather.NewService(cacheStore, provider, cfg.CacheTTL, cfg.ForecastDates)

	builder := report.NewBuilder(units.Label())

	results := service.GetAll(ctx, locations, units)
	builder.Conditions(cmd.OutOrStdout(), results)

	windows := make(map[string]weather.ForecastWindow, len(locations))
	for _, location := range locations {
		window, err := service.GetForecast(ctx, location, units)
		if err != nil {
			if errors.Is(err, weather.ErrLocationNotFound) {
				fmt.Fprintf(os.Stderr, "skipping forecast for %s: %v\n", location, err)
				continue
			}
			fmt.Fprintf(os.Stderr, "forecast for %s failed: %v\n", location, err)
			continue
		}
		windows[location] = window
	}

	builder.Listing(cmd.OutOrStdout(), locations, windows)

	if reportChart != "" {
		if err := writeChart(builder, windows, units.Label()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nchart written to %s\n", reportChart)
	}

	return nil
}

func writeChart(builder *report.Builder, windows map[string]weather.ForecastWindow, unitLabel string) error {
	points := builder.Series(windows)

	f, err := os.Create(reportChart)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := report.RenderTemperatureChart(f, points, unitLabel); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// openStore picks the cache backend: Postgres when DATABASE_URL is set,
// the in-memory store otherwise.
func openStore(ctx context.Context, cfg *config.AppConfig) (weather.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		return store.NewMemory(), func() {}, nil
	}

	pg, err := store.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open cache store: %w", err)
	}
	return pg, pg.Close, nil
}
