package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ametelkin/weathercast/internal/weather"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.OpenWeatherAPIKey)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, weather.DefaultForecastDates, cfg.ForecastDates)
	assert.Equal(t, 15*time.Minute, cfg.FetchInterval)
	assert.Equal(t, weather.UnitsMetric, cfg.Units)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CACHE_TTL", "30m")
	t.Setenv("FORECAST_DATES", "5")
	t.Setenv("UNITS", "f")
	t.Setenv("WEATHER_LOCATIONS", "London, Paris ,  Berlin")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 5, cfg.ForecastDates)
	assert.Equal(t, weather.UnitsImperial, cfg.Units)
	assert.Equal(t, []string{"London", "Paris", "Berlin"}, cfg.Locations)
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestSplitLocations(t *testing.T) {
	assert.Nil(t, SplitLocations(""))
	assert.Equal(t, []string{"London"}, SplitLocations(" London "))
	assert.Equal(t, []string{"London", "Paris"}, SplitLocations("London,,Paris,"))
}
