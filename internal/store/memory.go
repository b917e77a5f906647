package store

import (
	"context"
	"sync"

	"github.com/ametelkin/weathercast/internal/weather"
)

// Memory is a concurrency-safe in-memory cache store holding the
// last-known snapshot per location.
type Memory struct {
	mu   sync.RWMutex
	rows map[string]weather.ConditionsSnapshot
}

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{
		rows: make(map[string]weather.ConditionsSnapshot),
	}
}

// Get returns the stored snapshot for a location, if any.
func (s *Memory) Get(_ context.Context, location string) (weather.ConditionsSnapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot, ok := s.rows[location]
	return snapshot, ok, nil
}

// Put stores a snapshot, overwriting any prior row for its location.
func (s *Memory) Put(_ context.Context, snapshot weather.ConditionsSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows[snapshot.Location] = snapshot
	return nil
}
