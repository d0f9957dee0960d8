package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/founder-scout/internal/adapter"
	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/logger"
)

// Scheduler is a long-running loop that triggers pipeline runs
//
//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler.go -package=mocks -mock_names=Scheduler=MockScheduler
type Scheduler interface {
	// Start runs the loop until the context is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop signals the loop and waits for the in-progress run to finish
	Stop(ctx context.Context) error

	// Name returns the scheduler's name for logging
	Name() string
}

// SchedulerConfig holds scheduling configuration
type SchedulerConfig struct {
	Interval   time.Duration
	RunOnStart bool
	// RetryInitialInterval and RetryMaxElapsed bound the retry of a run that could not start
	RetryInitialInterval time.Duration
	RetryMaxElapsed      time.Duration
}

type scheduler struct {
	config    SchedulerConfig
	pipeline  Pipeline
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewScheduler creates a scheduler
func NewScheduler(cfg SchedulerConfig, p Pipeline, clock adapter.Clock) Scheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = domain.DEFAULT_PIPELINE_INTERVAL
	}
	if cfg.RetryInitialInterval <= 0 {
		cfg.RetryInitialInterval = 30 * time.Second
	}
	if cfg.RetryMaxElapsed <= 0 {
		cfg.RetryMaxElapsed = cfg.Interval / 2
	}
	return &scheduler{
		config:    cfg,
		pipeline:  p,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (s *scheduler) Name() string {
	return "pipeline-scheduler"
}

func (s *scheduler) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("scheduler already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting pipeline scheduler",
		zap.Duration("interval", s.config.Interval),
		zap.Bool("run_on_start", s.config.RunOnStart),
	)

	if !s.config.RunOnStart && !s.sleep(ctx, s.config.Interval) {
		logger.InfoCtx(ctx, "Pipeline scheduler stopped before first run")
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Pipeline scheduler stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Pipeline scheduler stop requested")
			return nil
		default:
			if err := s.runCycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err)
			}
			// An interrupted sleep is picked up by the select above
			s.sleep(ctx, s.config.Interval)
		}
	}
}

func (s *scheduler) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping pipeline scheduler")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Pipeline scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Pipeline scheduler stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runCycle runs the pipeline once, retrying a run that failed to start.
// Lock contention skips the cycle.
func (s *scheduler) runCycle(ctx context.Context) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.config.RetryInitialInterval
	b.MaxInterval = 5 * time.Minute
	b.MaxElapsedTime = s.config.RetryMaxElapsed
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	var attempt int
	operation := func() error {
		run, err := s.pipeline.Run(ctx)
		if err != nil {
			if IsLocked(err) || errors.Is(err, context.Canceled) {
				return backoff.Permanent(err)
			}
			return err
		}
		if run.Status == domain.RunStatusPartial {
			logger.WarnCtx(ctx, "Pipeline run finished with failed phases",
				zap.String("run_id", run.ID),
				zap.ByteString("phase_errors", run.PhaseErrors),
			)
		}
		return nil
	}
	notify := func(err error, next time.Duration) {
		attempt++
		logger.WarnCtx(ctx, "Pipeline run could not start, retrying",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Duration("next_retry_in", next),
		)
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify)
	if IsLocked(err) {
		logger.InfoCtx(ctx, "Another pipeline run holds the lock, skipping cycle")
		return nil
	}
	if err != nil {
		return fmt.Errorf("pipeline run failed after %d retries: %w", attempt, err)
	}
	return nil
}

// sleep waits for the duration; it returns false when interrupted by cancellation or Stop
func (s *scheduler) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-s.clock.After(d):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
