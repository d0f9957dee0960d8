package scoring

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/feral-file/founder-scout/internal/adapter"
	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/heuristics"
	"github.com/feral-file/founder-scout/internal/logger"
	"github.com/feral-file/founder-scout/internal/store"
	"github.com/feral-file/founder-scout/internal/store/schema"
)

// Breakdown is a computed score before it is persisted
type Breakdown struct {
	FounderQuality    float64
	ExecutionVelocity float64
	MarketConviction  float64
	EarlyTraction     float64
	DealAvailability  float64
	Composite         int
	// Incubator is the affiliation detected from the bio or signal labels, zero when none
	Incubator heuristics.Incubator
}

// Record converts the breakdown into a score row
func (b Breakdown) Record(founderID uint64, runID string, in Input) schema.Score {
	return schema.Score{
		FounderID:         founderID,
		FounderQuality:    b.FounderQuality,
		ExecutionVelocity: b.ExecutionVelocity,
		MarketConviction:  b.MarketConviction,
		EarlyTraction:     b.EarlyTraction,
		DealAvailability:  b.DealAvailability,
		Composite:         b.Composite,
		RunID:             runID,
		ScoredAt:          in.Now,
	}
}

// Engine computes and persists founder scores
//
//go:generate mockgen -source=engine.go -destination=../mocks/scoring.go -package=mocks -mock_names=Engine=MockScoreEngine
type Engine interface {
	// Score computes a breakdown; it never fails and performs no I/O
	Score(in Input) Breakdown
	// Evaluate loads the founder's latest stats and recent signals and scores them without persisting
	Evaluate(ctx context.Context, st store.Store, founder schema.Founder) (Breakdown, error)
	// ScoreFounder evaluates, inserts one score row and writes back a newly detected incubator
	ScoreFounder(ctx context.Context, st store.Store, founder schema.Founder, runID string) (*schema.Score, error)
	// ScoreAll scores every founder, skipping the ones that fail, and returns how many were scored
	ScoreAll(ctx context.Context, st store.Store, runID string) (int, error)
}

// Config holds engine configuration
type Config struct {
	Weights Weights
	// Tables defaults to the embedded keyword tables
	Tables *heuristics.Tables
}

type engine struct {
	weights Weights
	tables  *heuristics.Tables
	clock   adapter.Clock
	log     *zap.Logger
}

// NewEngine creates a score engine; it rejects weights that do not sum to 1.0
func NewEngine(cfg Config, clock adapter.Clock) (Engine, error) {
	if err := cfg.Weights.Validate(); err != nil {
		return nil, err
	}
	tables := cfg.Tables
	if tables == nil {
		tables = heuristics.Default()
	}
	return &engine{
		weights: cfg.Weights,
		tables:  tables,
		clock:   clock,
		log:     logger.Named("scoring"),
	}, nil
}

func (e *engine) Score(in Input) Breakdown {
	if in.Now.IsZero() {
		in.Now = e.clock.Now()
	}

	b := Breakdown{
		FounderQuality:    founderQuality(e.tables, in),
		ExecutionVelocity: executionVelocity(in),
		MarketConviction:  marketConviction(e.tables, in),
		EarlyTraction:     earlyTraction(e.tables, in),
		DealAvailability:  dealAvailability(e.tables, in),
	}

	weighted := b.FounderQuality*e.weights.FounderQuality +
		b.ExecutionVelocity*e.weights.ExecutionVelocity +
		b.MarketConviction*e.weights.MarketConviction +
		b.EarlyTraction*e.weights.EarlyTraction +
		b.DealAvailability*e.weights.DealAvailability
	b.Composite = int(Clamp(math.Round(weighted), 0, domain.MAX_SUBSCORE))

	if inc, ok := e.tables.DetectIncubator(in.Founder.Bio); ok {
		b.Incubator = inc
	} else if inc, ok := e.tables.DetectIncubatorFromLabels(signalLabels(in.Signals)); ok {
		b.Incubator = inc
	}

	return b
}

func (e *engine) input(ctx context.Context, st store.Store, founder schema.Founder) (Input, error) {
	now := e.clock.Now()

	stats, err := st.GetLatestStats(ctx, founder.ID)
	if err != nil {
		return Input{}, fmt.Errorf("failed to get latest stats: %w", err)
	}

	signals, err := st.ListRecentSignals(ctx, founder.ID, now.Add(-domain.RECENT_SIGNAL_LOOKBACK))
	if err != nil {
		return Input{}, fmt.Errorf("failed to list recent signals: %w", err)
	}

	return Input{Founder: founder, Stats: stats, Signals: signals, Now: now}, nil
}

func (e *engine) Evaluate(ctx context.Context, st store.Store, founder schema.Founder) (Breakdown, error) {
	in, err := e.input(ctx, st, founder)
	if err != nil {
		return Breakdown{}, err
	}
	return e.Score(in), nil
}

func (e *engine) ScoreFounder(ctx context.Context, st store.Store, founder schema.Founder, runID string) (*schema.Score, error) {
	in, err := e.input(ctx, st, founder)
	if err != nil {
		return nil, err
	}
	b := e.Score(in)

	record := b.Record(founder.ID, runID, in)
	if err := st.InsertScore(ctx, &record); err != nil {
		return nil, fmt.Errorf("failed to insert score: %w", err)
	}

	if label := b.Incubator.String(); label != "" && label != founder.Incubator {
		if err := st.UpdateFounderIncubator(ctx, founder.ID, label); err != nil {
			return nil, fmt.Errorf("failed to update incubator: %w", err)
		}
	}

	e.log.Debug("Scored founder",
		zap.Uint64("founder_id", founder.ID),
		zap.Int("composite", record.Composite),
		zap.Float64("founder_quality", record.FounderQuality),
		zap.Float64("execution_velocity", record.ExecutionVelocity),
		zap.Float64("market_conviction", record.MarketConviction),
		zap.Float64("early_traction", record.EarlyTraction),
		zap.Float64("deal_availability", record.DealAvailability),
	)
	return &record, nil
}

func (e *engine) ScoreAll(ctx context.Context, st store.Store, runID string) (int, error) {
	founders, err := st.ListAllFounders(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list founders: %w", err)
	}

	scored := 0
	for _, f := range founders {
		if err := ctx.Err(); err != nil {
			return scored, err
		}
		// Savepoint per founder; a failed founder rolls back alone
		err := st.WithTx(ctx, func(tx store.Store) error {
			_, err := e.ScoreFounder(ctx, tx, f, runID)
			return err
		})
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to score founder: %w", err), zap.Uint64("founder_id", f.ID))
			continue
		}
		scored++
	}

	e.log.Info("Scored founders", zap.Int("scored", scored), zap.Int("total", len(founders)))
	return scored, nil
}

func signalLabels(signals []schema.Signal) []string {
	labels := make([]string, 0, len(signals))
	for _, s := range signals {
		labels = append(labels, s.Label)
	}
	return labels
}
