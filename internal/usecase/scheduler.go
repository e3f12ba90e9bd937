package usecase

import (
	"context"
	"time"

	"MediaScorer/internal/ports"
)

// Scheduler wires the cron-like driver to recurring feed scans.
type Scheduler struct {
	driver  ports.Scheduler
	service *Service
	feeds   []string
}

// NewScheduler returns a helper to start/stop the recurring scan job.
func NewScheduler(driver ports.Scheduler, service *Service, feeds []string) *Scheduler {
	return &Scheduler{driver: driver, service: service, feeds: feeds}
}

// Start registers the feed-scan job with the provided scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.driver == nil || s.service == nil || len(s.feeds) == 0 {
		return nil
	}

	job := func(time.Time) {
		_, _ = s.service.ScanFeeds(ctx, s.feeds)
	}

	return s.driver.Start(ctx, job)
}

// Stop gracefully tears down the underlying scheduler.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}

	return s.driver.Stop(ctx)
}
