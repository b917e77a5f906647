package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"

	"github.com/ametelkin/weathercast/internal/weather"
)

// Scheduler periodically refreshes current conditions for the configured
// locations, keeping the cache warm between API requests.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	locations []string
	units     weather.UnitSystem
	interval  time.Duration
}

// New creates a Scheduler.
func New(locations []string, units weather.UnitSystem, interval time.Duration, service *weather.Service) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		locations: locations,
		units:     units,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if len(s.locations) == 0 {
		log.Println("scheduler: no locations configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		runID := uuid.NewString()
		log.Printf("scheduler: refresh run %s started for %d locations", runID, len(s.locations))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		results := s.service.GetAll(ctx, s.locations, s.units)

		var failed int
		for _, res := range results {
			if !res.OK() {
				failed++
				log.Printf("scheduler: refresh run %s: %s failed: %v", runID, res.Location, res.Err)
			}
		}
		log.Printf("scheduler: refresh run %s completed (%d ok, %d failed)", runID, len(results)-failed, failed)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
