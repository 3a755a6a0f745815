package scheduler

import (
	"context"
	"log/slog"
	"time"

	"content_tracker/internal/domain"
)

// Sweeper defines the interface for backfill operations.
type Sweeper interface {
	Sweep(ctx context.Context) (*domain.SweepStats, error)
}

// Scheduler invokes the sweeper on a fixed cadence. Runs are strictly
// sequential within a process; a slow sweep delays the next tick
// rather than overlapping it.
type Scheduler struct {
	sweeper  Sweeper
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(sweeper Sweeper, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSweep(ctx)
		}
	}
}

func (s *Scheduler) runSweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	if _, err := s.sweeper.Sweep(sweepCtx); err != nil {
		s.logger.Error("sweep failed", "error", err)
	}
}
