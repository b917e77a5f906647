package weather

import (
	"strings"
	"time"
)

// TimestampLayout is the wall-clock format shared by the provider's
// forecast feed and the persisted cache rows.
const TimestampLayout = "2006-01-02 15:04:05"

// DateLayout keys forecast windows by calendar date.
const DateLayout = "2006-01-02"

// UnitSystem selects the measurement units requested from the provider.
// It is derived once from the user-supplied degree token and applies to
// every fetch of a run.
type UnitSystem string

const (
	UnitsMetric   UnitSystem = "metric"
	UnitsImperial UnitSystem = "imperial"
)

// UnitSystemFromToken maps the degree token to a unit system: "c" (any
// case) selects metric, anything else imperial.
func UnitSystemFromToken(token string) UnitSystem {
	if strings.EqualFold(strings.TrimSpace(token), "c") {
		return UnitsMetric
	}
	return UnitsImperial
}

// Label returns the degree symbol for display output.
func (u UnitSystem) Label() string {
	if u == UnitsMetric {
		return "°C"
	}
	return "°F"
}

// NormalizeLocation trims the user-supplied location name. Every cache
// key and provider query uses the normalized form.
func NormalizeLocation(location string) string {
	return strings.TrimSpace(location)
}

// Source tags where a conditions result came from.
type Source string

const (
	SourceCache    Source = "cache"
	SourceProvider Source = "provider"
)

// ConditionsSnapshot is a single point-in-time current-conditions reading
// for one location. Immutable once constructed; the cache holds at most
// one snapshot per location.
type ConditionsSnapshot struct {
	Location    string    `json:"location"`
	Temperature float64   `json:"temperature"`
	WindSpeed   float64   `json:"windSpeed"`
	Humidity    int       `json:"humidity"`
	ObservedAt  time.Time `json:"observedAt"`
}

// ConditionsResult is the per-location outcome of a conditions lookup.
// Either Snapshot and Source are set, or Err is set; never both.
type ConditionsResult struct {
	Location string             `json:"location"`
	Snapshot ConditionsSnapshot `json:"snapshot,omitempty"`
	Source   Source             `json:"source,omitempty"`
	Err      error              `json:"-"`
}

// OK reports whether the lookup produced a snapshot.
func (r ConditionsResult) OK() bool {
	return r.Err == nil
}

// ForecastSample is one retained forecast reading. Time is one of the two
// fixed sample times, "12:00" or "21:00".
type ForecastSample struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// ForecastWindow maps future calendar dates (DateLayout keys) to their
// retained samples. Dates preserves first-admission order, which equals
// chronological order for a time-sorted feed. A window never contains the
// reference date itself and is created fresh per aggregation.
type ForecastWindow struct {
	Dates []string                    `json:"dates"`
	Days  map[string][]ForecastSample `json:"days"`
}

// Len returns the number of distinct dates in the window.
func (w ForecastWindow) Len() int {
	return len(w.Dates)
}
