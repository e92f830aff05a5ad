package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"content_scraper/internal/domain"
)

// BatchRunner scrapes every enabled target. Distinct targets may run concurrently; a single
// target always runs on one worker.
type BatchRunner struct {
	scraper Scraper
	targets TargetLister
	pool    *ants.Pool
	logger  *slog.Logger
}

func NewBatchRunner(scraper Scraper, targets TargetLister, concurrency int, logger *slog.Logger) (*BatchRunner, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	pool, err := ants.NewPool(concurrency)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}

	return &BatchRunner{
		scraper: scraper,
		targets: targets,
		pool:    pool,
		logger:  logger,
	}, nil
}

// RunAll returns one result per enabled target, in targets document order. A failing target
// never stops the others.
func (b *BatchRunner) RunAll(ctx context.Context, force bool) []*domain.RunResult {
	startTime := time.Now()
	targets := b.targets.Enabled()
	results := make([]*domain.RunResult, len(targets))

	b.logger.Info("starting batch", "targets", len(targets), "workers", b.pool.Cap(), "force", force)

	var wg sync.WaitGroup
	for i := range targets {
		target := targets[i]
		task := func() {
			defer wg.Done()
			results[i] = b.runOne(ctx, &target, force)
		}

		wg.Add(1)
		if err := b.pool.Submit(task); err != nil {
			b.logger.Warn("worker pool unavailable, running inline", "target", target.ID, "error", err)
			task()
		}
	}
	wg.Wait()

	var ok, failed int
	for _, r := range results {
		if r.OK() {
			ok++
		} else {
			failed++
		}
	}

	b.logger.Info("batch completed",
		"ok", ok,
		"failed", failed,
		"duration", time.Since(startTime),
	)

	return results
}

func (b *BatchRunner) runOne(ctx context.Context, target *domain.Target, force bool) *domain.RunResult {
	if err := ctx.Err(); err != nil {
		return &domain.RunResult{Status: domain.StatusError, Target: target.Name, Adapter: target.AdapterID(), Error: err.Error()}
	}

	result, err := b.scraper.Scrape(ctx, target.ID, force)
	if err != nil {
		b.logger.Error("scrape failed", "target", target.ID, "error", err)
		if result == nil {
			result = &domain.RunResult{Target: target.Name, Adapter: target.AdapterID()}
		}
		result.Status = domain.StatusError
		result.Error = err.Error()
	}
	return result
}

// Release stops the worker pool. The runner must not be used afterwards.
func (b *BatchRunner) Release() {
	b.pool.Release()
}
