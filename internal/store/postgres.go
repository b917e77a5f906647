package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ametelkin/weathercast/internal/weather"
)

// Postgres is a cache store backed by a Postgres table with one row per
// location.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects to the database and ensures the cache table
// exists.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to db: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if _, err := pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS conditions (
			location    TEXT PRIMARY KEY,
			temperature DOUBLE PRECISION NOT NULL,
			wind_speed  DOUBLE PRECISION NOT NULL,
			humidity    INTEGER NOT NULL,
			observed_at TIMESTAMPTZ NOT NULL
		)`,
	); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create conditions table: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// Close releases the connection pool.
func (s *Postgres) Close() {
	s.pool.Close()
}

// Get returns the stored snapshot for a location, if any.
func (s *Postgres) Get(ctx context.Context, location string) (weather.ConditionsSnapshot, bool, error) {
	var snapshot weather.ConditionsSnapshot
	err := s.pool.QueryRow(ctx,
		`SELECT location, temperature, wind_speed, humidity, observed_at
		 FROM conditions
		 WHERE location = $1`,
		location,
	).Scan(&snapshot.Location, &snapshot.Temperature, &snapshot.WindSpeed, &snapshot.Humidity, &snapshot.ObservedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return weather.ConditionsSnapshot{}, false, nil
	}
	if err != nil {
		return weather.ConditionsSnapshot{}, false, fmt.Errorf("get snapshot: %w", err)
	}
	return snapshot, true, nil
}

// Put upserts the snapshot row for its location.
func (s *Postgres) Put(ctx context.Context, snapshot weather.ConditionsSnapshot) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO conditions (location, temperature, wind_speed, humidity, observed_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (location) DO UPDATE SET
		   temperature = $2, wind_speed = $3, humidity = $4, observed_at = $5`,
		snapshot.Location, snapshot.Temperature, snapshot.WindSpeed, snapshot.Humidity, snapshot.ObservedAt,
	)
	if err != nil {
		return fmt.Errorf("put snapshot: %w", err)
	}
	return nil
}
