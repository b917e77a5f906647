package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

// Service orchestrates the cache and the remote provider. It is the
// single-location unit of work for current conditions and the entry
// point for forecast aggregation.
type Service struct {
	store         Store
	provider      Provider
	ttl           time.Duration
	forecastDates int

	// now is swappable for tests.
	now func() time.Time
}

// NewService creates a Service. Non-positive ttl and forecastDates fall
// back to DefaultFreshness and DefaultForecastDates.
func NewService(store Store, provider Provider, ttl time.Duration, forecastDates int) *Service {
	if ttl <= 0 {
		ttl = DefaultFreshness
	}
	if forecastDates <= 0 {
		forecastDates = DefaultForecastDates
	}
	return &Service{
		store:         store,
		provider:      provider,
		ttl:           ttl,
		forecastDates: forecastDates,
		now:           time.Now,
	}
}

// GetConditions resolves current conditions for one location, serving a
// fresh cached snapshot when possible and falling back to the provider
// otherwise. Provider responses are written through to the cache,
// overwriting any prior row for the location. Failures never escape as
// faults; they fold into the returned result.
func (s *Service) GetConditions(ctx context.Context, location string, units UnitSystem) ConditionsResult {
	location = NormalizeLocation(location)
	now := s.now()

	cached, found, err := s.store.Get(ctx, location)
	if err != nil {
		// A broken cache read degrades to a provider fetch.
		log.Printf("WARN: cache lookup failed for %s: %v", location, err)
	}
	if err == nil && found && IsFresh(cached.ObservedAt, now, s.ttl) {
		log.Printf("INFO: location: %s, temp: %.2f, humidity: %d, wind: %.2f, source: %s",
			location, cached.Temperature, cached.Humidity, cached.WindSpeed, SourceCache)
		return ConditionsResult{Location: location, Snapshot: cached, Source: SourceCache}
	}

	obs, err := s.provider.FetchCurrent(ctx, location, units)
	if err != nil {
		log.Printf("ERROR: conditions fetch failed for %s: %v", location, err)
		return ConditionsResult{
			Location: location,
			Err:      fmt.Errorf("fetch conditions for %q: %w", location, err),
		}
	}

	snapshot := ConditionsSnapshot{
		Location:    location,
		Temperature: obs.Temperature,
		WindSpeed:   obs.WindSpeed,
		Humidity:    obs.Humidity,
		ObservedAt:  now,
	}
	if err := s.store.Put(ctx, snapshot); err != nil {
		// The fetched snapshot is still valid for the caller.
		log.Printf("WARN: cache write failed for %s: %v", location, err)
	}

	log.Printf("INFO: location: %s, temp: %.2f, humidity: %d, wind: %.2f, source: %s",
		location, snapshot.Temperature, snapshot.Humidity, snapshot.WindSpeed, SourceProvider)
	return ConditionsResult{Location: location, Snapshot: snapshot, Source: SourceProvider}
}

// GetAll fans GetConditions out across locations concurrently and
// returns results positionally aligned with the input, regardless of
// completion order. One location's failure never affects its siblings,
// and nothing is retried at this layer. A single location is dispatched
// directly without fan-out machinery.
func (s *Service) GetAll(ctx context.Context, locations []string, units UnitSystem) []ConditionsResult {
	if len(locations) == 0 {
		return nil
	}
	if len(locations) == 1 {
		return []ConditionsResult{s.GetConditions(ctx, locations[0], units)}
	}

	results := make([]ConditionsResult, len(locations))
	var wg sync.WaitGroup
	for i, loc := range locations {
		wg.Add(1)
		go func(i int, loc string) {
			defer wg.Done()
			results[i] = s.GetConditions(ctx, loc, units)
		}(i, loc)
	}
	wg.Wait()

	return results
}

// GetForecast fetches the raw forecast feed for a location and
// aggregates it into a bounded per-date window. An unresolvable location
// surfaces as ErrLocationNotFound so multi-location runs can skip it and
// continue.
func (s *Service) GetForecast(ctx context.Context, location string, units UnitSystem) (ForecastWindow, error) {
	location = NormalizeLocation(location)

	items, err := s.provider.FetchForecast(ctx, location, units)
	if err != nil {
		var provErr *ProviderError
		if errors.As(err, &provErr) && provErr.StatusCode == http.StatusNotFound {
			return ForecastWindow{}, fmt.Errorf("%w: %q", ErrLocationNotFound, location)
		}
		return ForecastWindow{}, fmt.Errorf("fetch forecast for %q: %w", location, err)
	}

	return AggregateForecast(items, s.now(), s.forecastDates), nil
}
