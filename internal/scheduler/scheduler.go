package scheduler

import (
	"context"
	"log/slog"
	"time"

	"content_scraper/internal/domain"
)

// Runner runs one batch over every enabled target.
type Runner interface {
	RunAll(ctx context.Context, force bool) []*domain.RunResult
}

// Scheduler repeats batch runs on a fixed interval. Each run is bounded by runTimeout.
type Scheduler struct {
	runner     Runner
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(runner Runner, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:     runner,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger.With("component", "scheduler"),
	}
}

// Start runs a batch immediately and then once per interval until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "run_timeout", s.runTimeout)

	s.runBatch(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runBatch(ctx)
		}
	}
}

func (s *Scheduler) runBatch(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	counts := make(map[domain.RunStatus]int)
	for _, r := range s.runner.RunAll(runCtx, false) {
		counts[r.Status]++
		if r.Status == domain.StatusError {
			s.logger.Error("target failed", "target", r.Target, "error", r.Error)
		}
	}

	s.logger.Info("batch finished",
		"success", counts[domain.StatusSuccess],
		"skipped", counts[domain.StatusSkipped],
		"empty", counts[domain.StatusEmpty],
		"error", counts[domain.StatusError],
	)
}
