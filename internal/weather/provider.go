package weather

import (
	"context"
)

// CurrentObservation is a provider's raw current-conditions reading,
// before it is stamped with an observation time and cached.
type CurrentObservation struct {
	Temperature float64
	WindSpeed   float64
	Humidity    int
}

// ForecastItem is one entry of the provider's raw forecast feed. The feed
// is assumed chronologically ordered; Timestamp uses TimestampLayout.
type ForecastItem struct {
	Timestamp   string
	Temperature float64
	Description string
	Icon        string
}

// Provider abstracts the remote weather source (e.g. OpenWeatherMap).
type Provider interface {
	Name() string
	FetchCurrent(ctx context.Context, location string, units UnitSystem) (CurrentObservation, error)
	FetchForecast(ctx context.Context, location string, units UnitSystem) ([]ForecastItem, error)
}

// Store is the cache contract the in-memory store and the Postgres store
// must satisfy. Put overwrites any prior snapshot for the same location.
type Store interface {
	Get(ctx context.Context, location string) (ConditionsSnapshot, bool, error)
	Put(ctx context.Context, snapshot ConditionsSnapshot) error
}
