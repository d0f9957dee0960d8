// Package anomaly watches founders and themes for momentum inflections and records
// deduplicated emergence events.
package anomaly

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/founder-scout/internal/adapter"
	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/logger"
	"github.com/feral-file/founder-scout/internal/store"
	"github.com/feral-file/founder-scout/internal/store/schema"
)

// Detector runs the anomaly phase
//
//go:generate mockgen -source=detector.go -destination=../mocks/detector.go -package=mocks -mock_names=Detector=MockDetector
type Detector interface {
	// DetectAll evaluates every founder and theme and returns the events it recorded.
	// A failure evaluating one entity is logged and skipped.
	DetectAll(ctx context.Context, st store.Store) ([]schema.EmergenceEvent, error)
}

// Config holds detector thresholds and dedup windows
type Config struct {
	CommitVelocityMultiplier float64
	CommitMinBase            int
	StarSpikeMinGain         int
	StarSpikeMaxBase         int
	ForumScoreSpike          int
	ScoreCrossing            int
	CrossPlatformSources     []domain.SignalSource
	// DefaultDedupWindow applies to event types missing from DedupWindows
	DefaultDedupWindow time.Duration
	// DedupWindows overrides the window per event type; zero means the event fires at most once ever
	DedupWindows map[domain.EventType]time.Duration
}

// DefaultConfig returns the stock thresholds
func DefaultConfig() Config {
	return Config{
		CommitVelocityMultiplier: domain.DEFAULT_COMMIT_VELOCITY_MULTIPLIER,
		CommitMinBase:            domain.DEFAULT_COMMIT_MIN_BASE,
		StarSpikeMinGain:         domain.DEFAULT_STAR_SPIKE_MIN_GAIN,
		StarSpikeMaxBase:         domain.DEFAULT_STAR_SPIKE_MAX_BASE,
		ForumScoreSpike:          domain.DEFAULT_FORUM_SCORE_SPIKE,
		ScoreCrossing:            domain.SCORE_CROSSING_THRESHOLD,
		CrossPlatformSources:     []domain.SignalSource{domain.SignalSourceGitHub, domain.SignalSourceHN},
		DefaultDedupWindow:       domain.DEFAULT_DEDUP_WINDOW,
		DedupWindows: map[domain.EventType]time.Duration{
			domain.EventTypeNewTheme:      domain.NEW_THEME_DEDUP_WINDOW,
			domain.EventTypeScoreCrossing: domain.SLOW_SIGNAL_DEDUP_WINDOW,
			domain.EventTypeThemeSpike:    domain.SLOW_SIGNAL_DEDUP_WINDOW,
			domain.EventTypeCrossPlatform: 0,
		},
	}
}

type detector struct {
	config Config
	clock  adapter.Clock
	log    *zap.Logger
}

// NewDetector creates a detector
func NewDetector(cfg Config, clock adapter.Clock) Detector {
	return &detector{
		config: cfg,
		clock:  clock,
		log:    logger.Named("anomaly"),
	}
}

// dedupSince returns the earliest detected_at that suppresses a new event of the type
func (d *detector) dedupSince(eventType domain.EventType) time.Time {
	window, ok := d.config.DedupWindows[eventType]
	if !ok {
		window = d.config.DefaultDedupWindow
	}
	if window <= 0 {
		return time.Time{}
	}
	return d.clock.Now().Add(-window)
}

func (d *detector) DetectAll(ctx context.Context, st store.Store) ([]schema.EmergenceEvent, error) {
	founders, err := st.ListAllFounders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list founders: %w", err)
	}

	var fired []schema.EmergenceEvent
	for _, f := range founders {
		var events []schema.EmergenceEvent
		err := st.WithTx(ctx, func(tx store.Store) error {
			var err error
			events, err = d.detectFounder(ctx, tx, f.ID)
			return err
		})
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("anomaly check failed: %w", err), zap.Uint64("founder_id", f.ID))
			continue
		}
		fired = append(fired, events...)
	}

	themes, err := st.ListThemes(ctx)
	if err != nil {
		return fired, fmt.Errorf("failed to list themes: %w", err)
	}
	for _, t := range themes {
		var events []schema.EmergenceEvent
		err := st.WithTx(ctx, func(tx store.Store) error {
			var err error
			events, err = d.detectTheme(ctx, tx, t)
			return err
		})
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("theme anomaly check failed: %w", err), zap.Uint64("theme_id", t.ID))
			continue
		}
		fired = append(fired, events...)
	}

	d.log.Info("Anomaly detection complete", zap.Int("events", len(fired)))
	return fired, nil
}

func (d *detector) detectFounder(ctx context.Context, tx store.Store, founderID uint64) ([]schema.EmergenceEvent, error) {
	var candidates []*candidate

	stats, err := tx.GetLatestTwoStats(ctx, founderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	if len(stats) == 2 {
		latest, prior := stats[0], stats[1]
		candidates = append(candidates,
			d.checkCommitVelocity(latest, prior),
			d.checkStarSpike(latest, prior),
			d.checkForumSpike(latest, prior),
		)
	}

	scores, err := tx.GetLatestTwoScores(ctx, founderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}
	if len(scores) == 2 {
		candidates = append(candidates, d.checkScoreCrossing(scores[0], scores[1]))
	}

	sources, err := tx.ListSignalSources(ctx, founderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list signal sources: %w", err)
	}
	candidates = append(candidates, d.checkCrossPlatform(sources))

	return d.fireAll(ctx, tx, founderID, domain.EntityTypeFounder, candidates)
}

func (d *detector) detectTheme(ctx context.Context, tx store.Store, theme schema.Theme) ([]schema.EmergenceEvent, error) {
	weekAgo, err := tx.GetLatestThemeHistoryBefore(ctx, theme.ID, d.clock.Now().Add(-domain.WEEK))
	if err != nil {
		return nil, fmt.Errorf("failed to get theme history: %w", err)
	}
	candidates := []*candidate{
		d.checkNewTheme(theme),
		d.checkThemeSpike(theme, weekAgo),
	}
	return d.fireAll(ctx, tx, theme.ID, domain.EntityTypeTheme, candidates)
}

func (d *detector) fireAll(ctx context.Context, tx store.Store, entityID uint64, entityType domain.EntityType, candidates []*candidate) ([]schema.EmergenceEvent, error) {
	var events []schema.EmergenceEvent
	for _, c := range candidates {
		if c == nil {
			continue
		}
		event, err := d.fire(ctx, tx, entityID, entityType, c)
		if err != nil {
			return nil, err
		}
		if event != nil {
			events = append(events, *event)
		}
	}
	return events, nil
}

// fire records the candidate unless the same (entity, event type) fired within its dedup window
func (d *detector) fire(ctx context.Context, tx store.Store, entityID uint64, entityType domain.EntityType, c *candidate) (*schema.EmergenceEvent, error) {
	seen, err := tx.HasRecentEvent(ctx, entityID, entityType, c.eventType, d.dedupSince(c.eventType))
	if err != nil {
		return nil, fmt.Errorf("failed to check recent %s: %w", c.eventType, err)
	}
	if seen {
		return nil, nil
	}

	event := &schema.EmergenceEvent{
		EventType:   c.eventType,
		EntityID:    entityID,
		EntityType:  entityType,
		Signal:      c.signal,
		DeltaBefore: c.before,
		DeltaAfter:  c.after,
		DetectedAt:  d.clock.Now(),
	}
	if c.metadata != nil {
		data, err := json.Marshal(c.metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata: %w", err)
		}
		event.Metadata = datatypes.JSON(data)
	}
	if err := tx.InsertEmergenceEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to insert %s: %w", c.eventType, err)
	}

	d.log.Info("Emergence event",
		zap.String("event_type", string(c.eventType)),
		zap.String("entity_type", string(entityType)),
		zap.Uint64("entity_id", entityID),
		zap.String("signal", c.signal),
	)
	return event, nil
}
