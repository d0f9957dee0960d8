package store

import (
	"context"
	"time"

	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// WithTx runs fn inside one transaction; the transaction commits when fn returns nil
	// and rolls back when fn returns an error or panics
	WithTx(ctx context.Context, fn func(tx Store) error) error

	// =============================================================================
	// Founders
	// =============================================================================

	// ListAllFounders returns every founder ordered by ID
	ListAllFounders(ctx context.Context) ([]schema.Founder, error)
	// ListFounders returns founders ranked by their latest composite score
	ListFounders(ctx context.Context, filter FounderFilter) ([]FounderWithScore, uint64, error)
	// GetFounder retrieves a founder by ID, nil if absent
	GetFounder(ctx context.Context, id uint64) (*schema.Founder, error)
	// UpsertFounder creates or updates a founder keyed by handle and replaces its tags
	UpsertFounder(ctx context.Context, input UpsertFounderInput) (*schema.Founder, error)
	// UpdateFounderStatus sets the outreach status
	UpdateFounderStatus(ctx context.Context, id uint64, status domain.FounderStatus) error
	// UpdateFounderIncubator sets the derived incubator label
	UpdateFounderIncubator(ctx context.Context, id uint64, incubator string) error
	// ListFounderTags returns tags grouped by founder ID
	ListFounderTags(ctx context.Context, founderIDs []uint64) (map[uint64][]string, error)

	// =============================================================================
	// Stats and signals
	// =============================================================================

	// AddStatsSnapshot appends a stats snapshot
	AddStatsSnapshot(ctx context.Context, snapshot *schema.StatsSnapshot) error
	// GetLatestStats returns the most recent snapshot, nil if none
	GetLatestStats(ctx context.Context, founderID uint64) (*schema.StatsSnapshot, error)
	// GetLatestTwoStats returns up to two snapshots, newest first
	GetLatestTwoStats(ctx context.Context, founderID uint64) ([]schema.StatsSnapshot, error)
	// AddSignal inserts a signal unless an identical label was recorded for the founder within 24h
	AddSignal(ctx context.Context, signal *schema.Signal) (bool, error)
	// ListRecentSignals returns signals detected at or after since, newest first
	ListRecentSignals(ctx context.Context, founderID uint64, since time.Time) ([]schema.Signal, error)
	// ListSignalSources returns the distinct sources a founder has signals from
	ListSignalSources(ctx context.Context, founderID uint64) ([]domain.SignalSource, error)
	// CountSignalsSince counts signals of the given founders detected at or after since
	CountSignalsSince(ctx context.Context, founderIDs []uint64, since time.Time) (int64, error)

	// =============================================================================
	// Scores
	// =============================================================================

	// InsertScore appends a score record
	InsertScore(ctx context.Context, score *schema.Score) error
	// GetLatestTwoScores returns up to two scores, newest first
	GetLatestTwoScores(ctx context.Context, founderID uint64) ([]schema.Score, error)
	// ListScoreHistory returns scores newest first
	ListScoreHistory(ctx context.Context, founderID uint64, limit int) ([]schema.Score, error)

	// =============================================================================
	// Embeddings
	// =============================================================================

	// UpsertEmbedding creates or replaces a founder's embedding
	UpsertEmbedding(ctx context.Context, embedding *schema.Embedding) error
	// GetEmbeddingHashes returns content hashes keyed by founder ID
	GetEmbeddingHashes(ctx context.Context) (map[uint64]string, error)
	// ListEmbeddings returns every embedding ordered by founder ID
	ListEmbeddings(ctx context.Context) ([]schema.Embedding, error)

	// =============================================================================
	// Themes
	// =============================================================================

	// ListThemes returns themes ordered by emergence score
	ListThemes(ctx context.Context) ([]schema.Theme, error)
	// GetTheme retrieves a theme by ID, nil if absent
	GetTheme(ctx context.Context, id uint64) (*schema.Theme, error)
	// CreateTheme inserts a theme and sets its ID
	CreateTheme(ctx context.Context, theme *schema.Theme) error
	// UpdateTheme rewrites the mutable columns of an existing theme
	UpdateTheme(ctx context.Context, theme *schema.Theme) error
	// ReplaceThemeMembers deletes every membership of the theme and inserts the new set
	ReplaceThemeMembers(ctx context.Context, themeID uint64, founderIDs []uint64, similarity float64, addedAt time.Time) error
	// ListThemeMembers returns memberships of a theme
	ListThemeMembers(ctx context.Context, themeID uint64) ([]schema.ThemeMembership, error)
	// ListMembershipsByFounders returns memberships of any of the founders
	ListMembershipsByFounders(ctx context.Context, founderIDs []uint64) ([]schema.ThemeMembership, error)
	// ListFounderThemes returns the themes a founder belongs to
	ListFounderThemes(ctx context.Context, founderID uint64) ([]schema.Theme, error)
	// AddThemeHistory appends a theme history snapshot
	AddThemeHistory(ctx context.Context, history *schema.ThemeHistory) error
	// GetLatestThemeHistoryBefore returns the newest snapshot captured strictly before the given time, nil if none
	GetLatestThemeHistoryBefore(ctx context.Context, themeID uint64, before time.Time) (*schema.ThemeHistory, error)
	// ListThemeHistory returns snapshots of a theme newest first
	ListThemeHistory(ctx context.Context, themeID uint64, limit int) ([]schema.ThemeHistory, error)

	// =============================================================================
	// Events and alerts
	// =============================================================================

	// InsertEmergenceEvent appends an emergence event
	InsertEmergenceEvent(ctx context.Context, event *schema.EmergenceEvent) error
	// HasRecentEvent reports whether the same (entity, type) fired at or after since
	HasRecentEvent(ctx context.Context, entityID uint64, entityType domain.EntityType, eventType domain.EventType, since time.Time) (bool, error)
	// ListEmergenceEvents returns events newest first
	ListEmergenceEvents(ctx context.Context, filter EventFilter) ([]schema.EmergenceEvent, error)
	// InsertAlertLog appends an alert log entry
	InsertAlertLog(ctx context.Context, entry *schema.AlertLog) error
	// ListAlertLogs returns alert log entries of a founder newest first
	ListAlertLogs(ctx context.Context, founderID uint64, limit int) ([]schema.AlertLog, error)

	// =============================================================================
	// Pipeline runs
	// =============================================================================

	// CreatePipelineRun inserts a run row
	CreatePipelineRun(ctx context.Context, run *schema.PipelineRun) error
	// FinishPipelineRun writes the final status and counts of a run
	FinishPipelineRun(ctx context.Context, run *schema.PipelineRun) error
	// ListPipelineRuns returns runs newest first
	ListPipelineRuns(ctx context.Context, limit int) ([]schema.PipelineRun, error)
}

// FounderFilter narrows ListFounders
type FounderFilter struct {
	Statuses     []domain.FounderStatus
	MinComposite *int
	Limit        int
	Offset       int
}

// FounderWithScore pairs a founder with its latest score, nil if never scored
type FounderWithScore struct {
	Founder schema.Founder
	Score   *schema.Score
}

// UpsertFounderInput is the input for UpsertFounder
type UpsertFounderInput struct {
	Name                string
	Handle              string
	Bio                 string
	Domain              string
	Stage               string
	Company             string
	Founded             string
	Status              domain.FounderStatus
	YCAlumniConnections int
	Tags                []string
}

// EventFilter narrows ListEmergenceEvents
type EventFilter struct {
	EntityType *domain.EntityType
	EntityID   *uint64
	Limit      int
}
