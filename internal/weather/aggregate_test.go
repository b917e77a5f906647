package weather

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeHourlyFeed builds a chronologically ordered feed in the
// provider's 3-hour step shape, starting at start's midnight and
// spanning the given number of days.
func threeHourlyFeed(start time.Time, days int) []ForecastItem {
	var items []ForecastItem
	ts := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end := ts.AddDate(0, 0, days)
	for ts.Before(end) {
		items = append(items, ForecastItem{
			Timestamp:   ts.Format(TimestampLayout),
			Temperature: float64(10 + ts.Hour()),
			Description: fmt.Sprintf("sample at %02d", ts.Hour()),
			Icon:        "01d",
		})
		ts = ts.Add(3 * time.Hour)
	}
	return items
}

func TestAggregateForecastWindowing(t *testing.T) {
	today := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	feed := threeHourlyFeed(today, 5)

	window := AggregateForecast(feed, today, 3)

	require.Equal(t, 3, window.Len())
	assert.Equal(t, []string{"2026-09-01", "2026-09-02", "2026-09-03"}, window.Dates)

	for _, day := range window.Dates {
		samples := window.Days[day]
		require.Len(t, samples, 2, "each date keeps exactly the two fixed sample times")
		assert.Equal(t, "12:00", samples[0].Time)
		assert.Equal(t, "21:00", samples[1].Time)
		assert.Greater(t, day, today.Format(DateLayout), "today must never enter the window")
	}
}

func TestAggregateForecastShortHorizon(t *testing.T) {
	today := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	feed := threeHourlyFeed(today, 3) // today plus only two full future days

	window := AggregateForecast(feed, today, 3)

	assert.Equal(t, 2, window.Len())
	assert.Equal(t, []string{"2026-09-01", "2026-09-02"}, window.Dates)
}

func TestAggregateForecastEmptyFeed(t *testing.T) {
	today := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)

	window := AggregateForecast(nil, today, 3)

	assert.Zero(t, window.Len())
	assert.Empty(t, window.Days)
}

func TestAggregateForecastIdempotent(t *testing.T) {
	today := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	feed := threeHourlyFeed(today, 5)

	first := AggregateForecast(feed, today, 3)
	second := AggregateForecast(feed, today, 3)

	assert.Equal(t, first, second)
}

func TestAggregateForecastDropsPastAndOffSampleTimes(t *testing.T) {
	today := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	feed := []ForecastItem{
		{Timestamp: "2026-08-30 12:00:00", Temperature: 1}, // yesterday
		{Timestamp: "2026-08-31 21:00:00", Temperature: 2}, // today
		{Timestamp: "2026-09-01 09:00:00", Temperature: 3}, // off-sample time
		{Timestamp: "2026-09-01 12:00:00", Temperature: 4},
		{Timestamp: "not a timestamp", Temperature: 5},
	}

	window := AggregateForecast(feed, today, 3)

	require.Equal(t, 1, window.Len())
	samples := window.Days["2026-09-01"]
	require.Len(t, samples, 1)
	assert.Equal(t, 4.0, samples[0].Temperature)
}

func TestAggregateForecastAppendsToAdmittedDateAfterCap(t *testing.T) {
	today := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	feed := []ForecastItem{
		{Timestamp: "2026-09-01 12:00:00", Temperature: 1},
		{Timestamp: "2026-09-02 12:00:00", Temperature: 2},
		{Timestamp: "2026-09-03 12:00:00", Temperature: 3},
		{Timestamp: "2026-09-04 12:00:00", Temperature: 4}, // new date past the cap
		{Timestamp: "2026-09-03 21:00:00", Temperature: 5}, // admitted date keeps appending
	}

	window := AggregateForecast(feed, today, 3)

	require.Equal(t, []string{"2026-09-01", "2026-09-02", "2026-09-03"}, window.Dates)
	assert.NotContains(t, window.Days, "2026-09-04")
	require.Len(t, window.Days["2026-09-03"], 2)
	assert.Equal(t, 5.0, window.Days["2026-09-03"][1].Temperature)
}

func TestAggregateForecastDefaultsMaxDates(t *testing.T) {
	today := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	feed := threeHourlyFeed(today, 6)

	window := AggregateForecast(feed, today, 0)

	assert.Equal(t, DefaultForecastDates, window.Len())
}
