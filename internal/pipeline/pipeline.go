// Package pipeline runs the analytics phases in order and schedules runs.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/founder-scout/internal/adapter"
	"github.com/feral-file/founder-scout/internal/alerts"
	"github.com/feral-file/founder-scout/internal/anomaly"
	"github.com/feral-file/founder-scout/internal/clustering"
	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/embedder"
	"github.com/feral-file/founder-scout/internal/logger"
	"github.com/feral-file/founder-scout/internal/messaging"
	"github.com/feral-file/founder-scout/internal/metrics"
	"github.com/feral-file/founder-scout/internal/scoring"
	"github.com/feral-file/founder-scout/internal/store"
	"github.com/feral-file/founder-scout/internal/store/schema"
)

// Pipeline runs the analytics phases
//
//go:generate mockgen -source=pipeline.go -destination=../mocks/pipeline.go -package=mocks -mock_names=Pipeline=MockPipeline
type Pipeline interface {
	// Run executes one run to completion and returns the finished run record.
	// A failed phase is rolled back and recorded in PhaseErrors; only lock contention
	// and run bookkeeping failures are returned.
	Run(ctx context.Context) (*schema.PipelineRun, error)
	// RunAsync takes the lock and records the run, then executes it in the background.
	// It returns the run ID, or domain.ErrPipelineLocked when a run is in progress.
	RunAsync(ctx context.Context) (string, error)
	// Wait blocks until every background run has finished
	Wait()
}

// Deps holds the collaborators of a run
type Deps struct {
	Store      store.Store
	Embedder   embedder.Embedder
	Clusterer  clustering.ThemeClusterer
	Scorer     scoring.Engine
	Dispatcher alerts.Dispatcher
	Detector   anomaly.Detector
	// Publisher defaults to a no-op publisher
	Publisher messaging.Publisher
	// Locker defaults to an in-process lock
	Locker  Locker
	Metrics *metrics.Metrics
	Clock   adapter.Clock
}

type orchestrator struct {
	deps Deps
	wg   sync.WaitGroup
}

// run is a started run holding the lock
type run struct {
	token  string
	record *schema.PipelineRun
}

// NewPipeline creates a pipeline orchestrator
func NewPipeline(deps Deps) Pipeline {
	if deps.Publisher == nil {
		deps.Publisher = messaging.NewNopPublisher()
	}
	if deps.Locker == nil {
		deps.Locker = NewLocalLocker(deps.Clock)
	}
	return &orchestrator{deps: deps}
}

func (o *orchestrator) Run(ctx context.Context) (*schema.PipelineRun, error) {
	r, err := o.begin(ctx)
	if err != nil {
		return nil, err
	}
	return o.execute(ctx, r)
}

func (o *orchestrator) RunAsync(ctx context.Context) (string, error) {
	r, err := o.begin(ctx)
	if err != nil {
		return "", err
	}

	bgCtx := context.WithoutCancel(ctx)
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		if _, err := o.execute(bgCtx, r); err != nil {
			logger.ErrorCtx(bgCtx, fmt.Errorf("background pipeline run failed: %w", err), zap.String("run_id", r.record.ID))
		}
	}()
	return r.record.ID, nil
}

func (o *orchestrator) Wait() {
	o.wg.Wait()
}

// begin takes the lock and inserts the run row
func (o *orchestrator) begin(ctx context.Context) (*run, error) {
	token, err := o.deps.Locker.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	now := o.deps.Clock.Now()
	record := &schema.PipelineRun{
		ID:        ulid.MustNewDefault(now).String(),
		Status:    domain.RunStatusRunning,
		StartedAt: now,
	}
	if err := o.deps.Store.CreatePipelineRun(ctx, record); err != nil {
		o.release(ctx, token)
		return nil, fmt.Errorf("failed to create pipeline run: %w", err)
	}
	return &run{token: token, record: record}, nil
}

func (o *orchestrator) release(ctx context.Context, token string) {
	if err := o.deps.Locker.Release(context.WithoutCancel(ctx), token); err != nil {
		logger.ErrorCtx(ctx, err)
	}
}

// phase is one step of a run; count receives its aggregate on success
type phase struct {
	name  domain.Phase
	count *int
	run   func(ctx context.Context, tx store.Store) (int, error)
}

func (o *orchestrator) execute(ctx context.Context, r *run) (*schema.PipelineRun, error) {
	defer o.release(ctx, r.token)

	record := r.record
	ctx = logger.WithRun(ctx, logger.RunInfo{RunID: record.ID})
	log := logger.FromRun(ctx, logger.RunInfo{RunID: record.ID})
	log.Info("Starting pipeline run")

	phaseErrors := map[domain.Phase]string{}
	var events []schema.EmergenceEvent

	phases := []phase{
		{domain.PhaseEmbed, &record.FoundersEmbedded, func(ctx context.Context, tx store.Store) (int, error) {
			return o.deps.Embedder.EmbedAll(ctx, tx)
		}},
		{domain.PhaseCluster, &record.ThemesUpserted, func(ctx context.Context, tx store.Store) (int, error) {
			return o.deps.Clusterer.ClusterAll(ctx, tx)
		}},
		{domain.PhaseScore, &record.FoundersScored, func(ctx context.Context, tx store.Store) (int, error) {
			return o.deps.Scorer.ScoreAll(ctx, tx, record.ID)
		}},
		{domain.PhaseAlert, &record.AlertsSent, func(ctx context.Context, tx store.Store) (int, error) {
			return o.deps.Dispatcher.DispatchAll(ctx, tx, record.ID)
		}},
		{domain.PhaseAnomaly, &record.EventsFired, func(ctx context.Context, tx store.Store) (int, error) {
			fired, err := o.deps.Detector.DetectAll(ctx, tx)
			events = fired
			return len(fired), err
		}},
	}

	for _, p := range phases {
		if err := ctx.Err(); err != nil {
			phaseErrors[p.name] = err.Error()
			continue
		}

		n, err := o.runPhase(ctx, record.ID, p)
		if err != nil {
			phaseErrors[p.name] = err.Error()
			if p.name == domain.PhaseAnomaly {
				events = nil
			}
			continue
		}
		*p.count = n
	}

	// Only committed events are published
	o.publish(ctx, events)

	record.Status = domain.RunStatusSucceeded
	if len(phaseErrors) > 0 {
		record.Status = domain.RunStatusPartial
	}
	if err := o.finish(ctx, record, phaseErrors); err != nil {
		return record, err
	}

	o.deps.Metrics.RunFinished(record.Status)
	log.Info("Finished pipeline run",
		zap.String("status", string(record.Status)),
		zap.Int("founders_embedded", record.FoundersEmbedded),
		zap.Int("themes_upserted", record.ThemesUpserted),
		zap.Int("founders_scored", record.FoundersScored),
		zap.Int("alerts_sent", record.AlertsSent),
		zap.Int("events_fired", record.EventsFired),
	)
	return record, nil
}

// runPhase runs one phase in its own transaction; a failure rolls the phase back
func (o *orchestrator) runPhase(ctx context.Context, runID string, p phase) (int, error) {
	info := logger.RunInfo{RunID: runID, Phase: string(p.name)}
	phaseCtx := logger.WithRun(ctx, info)
	start := o.deps.Clock.Now()

	n := 0
	err := o.deps.Store.WithTx(phaseCtx, func(tx store.Store) error {
		var err error
		n, err = p.run(phaseCtx, tx)
		return err
	})

	o.deps.Metrics.ObservePhase(p.name, o.deps.Clock.Since(start), err)
	if err != nil {
		logger.ErrorCtx(phaseCtx, fmt.Errorf("phase %s failed: %w", p.name, err),
			zap.String("run_id", runID),
			zap.String("phase", string(p.name)),
		)
		return 0, err
	}

	o.deps.Metrics.AddPhaseCount(p.name, n)
	logger.FromRun(phaseCtx, info).Info("Phase completed", zap.Int("count", n))
	return n, nil
}

func (o *orchestrator) publish(ctx context.Context, events []schema.EmergenceEvent) {
	for i := range events {
		if err := o.deps.Publisher.PublishEvent(ctx, &events[i]); err != nil {
			logger.WarnCtx(ctx, "Failed to publish emergence event",
				zap.Error(err),
				zap.Uint64("event_id", events[i].ID),
			)
		}
	}
}

// finish writes the final status; it runs even when the caller's context was canceled
func (o *orchestrator) finish(ctx context.Context, record *schema.PipelineRun, phaseErrors map[domain.Phase]string) error {
	finishedAt := o.deps.Clock.Now()
	record.FinishedAt = &finishedAt

	if len(phaseErrors) > 0 {
		data, err := json.Marshal(phaseErrors)
		if err != nil {
			return fmt.Errorf("failed to marshal phase errors: %w", err)
		}
		record.PhaseErrors = datatypes.JSON(data)
	}

	if err := o.deps.Store.FinishPipelineRun(context.WithoutCancel(ctx), record); err != nil {
		return fmt.Errorf("failed to finish pipeline run: %w", err)
	}
	return nil
}

// IsLocked reports whether err means another run holds the lock
func IsLocked(err error) bool {
	return errors.Is(err, domain.ErrPipelineLocked)
}
