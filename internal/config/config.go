package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/ametelkin/weathercast/internal/weather"
)

// AppConfig carries everything a run needs up front: the provider
// credential, the cache backend, freshness and window bounds, and the
// tracked locations.
type AppConfig struct {
	OpenWeatherAPIKey string

	// DatabaseURL selects the Postgres cache backend; empty means the
	// in-memory store.
	DatabaseURL string

	// CacheTTL is the freshness threshold for cached snapshots.
	CacheTTL time.Duration

	// ForecastDates bounds the aggregated forecast window.
	ForecastDates int

	// FetchInterval controls how often the scheduler refreshes the
	// tracked locations.
	FetchInterval time.Duration

	// Locations to track, already normalized.
	Locations []string

	// Units is derived once from the UNITS degree token.
	Units weather.UnitSystem

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	ttlStr := getenvDefault("CACHE_TTL", "1h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	cfg.ForecastDates = getenvInt("FORECAST_DATES", weather.DefaultForecastDates)

	intervalStr := getenvDefault("FETCH_INTERVAL", "15m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_INTERVAL: %w", err)
	}
	cfg.FetchInterval = interval

	cfg.Locations = SplitLocations(os.Getenv("WEATHER_LOCATIONS"))
	cfg.Units = weather.UnitSystemFromToken(getenvDefault("UNITS", "c"))
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

// SplitLocations parses a comma-separated location list, trimming each
// entry and dropping empty ones.
func SplitLocations(raw string) []string {
	if raw == "" {
		return nil
	}
	var locations []string
	for _, part := range strings.Split(raw, ",") {
		if loc := weather.NormalizeLocation(part); loc != "" {
			locations = append(locations, loc)
		}
	}
	return locations
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
