// Package report turns aggregated weather data into display and chart
// output. It consumes the engine's results and owns no fetching logic.
package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/ametelkin/weathercast/internal/weather"
)

// Point is one charted value: a forecast date and its representative
// temperature.
type Point struct {
	Date        time.Time
	Temperature float64
}

// Builder flattens conditions results and forecast windows into textual
// listings and a chartable series.
type Builder struct {
	unitLabel string
}

// NewBuilder creates a Builder that annotates temperatures with the
// given unit label (e.g. "°C").
func NewBuilder(unitLabel string) *Builder {
	return &Builder{unitLabel: unitLabel}
}

// Conditions writes one line per result: the snapshot values with their
// source tag, or the failure message. Failed locations are reported
// alongside successful ones, never as an aggregate failure.
func (b *Builder) Conditions(w io.Writer, results []weather.ConditionsResult) {
	for _, res := range results {
		if !res.OK() {
			fmt.Fprintf(w, "%s: ERROR: %v\n", res.Location, res.Err)
			continue
		}
		fmt.Fprintf(w, "%s: %.1f %s, humidity %d%%, wind %.1f, source: %s\n",
			res.Location, res.Snapshot.Temperature, b.unitLabel,
			res.Snapshot.Humidity, res.Snapshot.WindSpeed, res.Source)
	}
}

// Listing writes a per-location forecast listing. Locations follow the
// given order; dates and samples keep the window's own ordering.
func (b *Builder) Listing(w io.Writer, order []string, windows map[string]weather.ForecastWindow) {
	for _, location := range order {
		window, ok := windows[location]
		if !ok {
			continue
		}

		fmt.Fprintf(w, "\nForecast for %s\n", location)
		for _, day := range window.Dates {
			date, err := time.Parse(weather.DateLayout, day)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "\n%s:\n", date.Format("Monday, 02 January"))
			for _, sample := range window.Days[day] {
				fmt.Fprintf(w, "  %s: %.1f %s, %s\n",
					sample.Time, sample.Temperature, b.unitLabel, sample.Description)
			}
		}
	}
}

// Series flattens the windows into a date-ordered temperature series for
// charting. The representative temperature for a date is the last
// retained sample seen for it (the 21:00 reading when present); when
// several locations share a date, later windows in iteration win.
func (b *Builder) Series(windows map[string]weather.ForecastWindow) []Point {
	byDate := make(map[string]float64)
	for _, window := range windows {
		for _, day := range window.Dates {
			samples := window.Days[day]
			if len(samples) == 0 {
				continue
			}
			byDate[day] = samples[len(samples)-1].Temperature
		}
	}

	days := make([]string, 0, len(byDate))
	for day := range byDate {
		days = append(days, day)
	}
	sort.Strings(days)

	points := make([]Point, 0, len(days))
	for _, day := range days {
		date, err := time.Parse(weather.DateLayout, day)
		if err != nil {
			continue
		}
		points = append(points, Point{Date: date, Temperature: byDate[day]})
	}
	return points
}
