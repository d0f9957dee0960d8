package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/store/schema"
)

type sqlStore struct {
	db *gorm.DB
}

// NewStore creates a store over a gorm connection; the same implementation
// serves the postgres and sqlite dialects
func NewStore(db *gorm.DB) Store {
	return &sqlStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 10
//   - MaxIdleConns: 2
//   - ConnMaxLifetime: 1 hour
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 10
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 2
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = time.Hour
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// WithTx runs fn inside a transaction; nested calls use savepoints
func (s *sqlStore) WithTx(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&sqlStore{db: tx})
	})
}

// =============================================================================
// Founders
// =============================================================================

func (s *sqlStore) ListAllFounders(ctx context.Context) ([]schema.Founder, error) {
	var founders []schema.Founder
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&founders).Error; err != nil {
		return nil, fmt.Errorf("failed to list founders: %w", err)
	}
	return founders, nil
}

func (s *sqlStore) ListFounders(ctx context.Context, filter FounderFilter) ([]FounderWithScore, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Founder{})
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}

	var founders []schema.Founder
	if err := query.Find(&founders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list founders: %w", err)
	}

	latest, err := s.latestScores(ctx)
	if err != nil {
		return nil, 0, err
	}

	results := make([]FounderWithScore, 0, len(founders))
	for _, f := range founders {
		score := latest[f.ID]
		if filter.MinComposite != nil && (score == nil || score.Composite < *filter.MinComposite) {
			continue
		}
		results = append(results, FounderWithScore{Founder: f, Score: score})
	}

	// Unscored founders sink to the bottom, ties break on ID for stable paging
	sort.SliceStable(results, func(i, j int) bool {
		ci, cj := -1, -1
		if results[i].Score != nil {
			ci = results[i].Score.Composite
		}
		if results[j].Score != nil {
			cj = results[j].Score.Composite
		}
		if ci != cj {
			return ci > cj
		}
		return results[i].Founder.ID < results[j].Founder.ID
	})

	total := uint64(len(results))
	start := min(max(filter.Offset, 0), len(results))
	end := len(results)
	if filter.Limit > 0 && start+filter.Limit < end {
		end = start + filter.Limit
	}

	return results[start:end], total, nil
}

// latestScores returns the newest score per founder
func (s *sqlStore) latestScores(ctx context.Context) (map[uint64]*schema.Score, error) {
	latestIDs := s.db.Model(&schema.Score{}).Select("MAX(id)").Group("founder_id")

	var scores []schema.Score
	if err := s.db.WithContext(ctx).Where("id IN (?)", latestIDs).Find(&scores).Error; err != nil {
		return nil, fmt.Errorf("failed to get latest scores: %w", err)
	}

	byFounder := make(map[uint64]*schema.Score, len(scores))
	for i := range scores {
		byFounder[scores[i].FounderID] = &scores[i]
	}
	return byFounder, nil
}

func (s *sqlStore) GetFounder(ctx context.Context, id uint64) (*schema.Founder, error) {
	var founder schema.Founder
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&founder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get founder: %w", err)
	}
	return &founder, nil
}

func (s *sqlStore) UpsertFounder(ctx context.Context, input UpsertFounderInput) (*schema.Founder, error) {
	status := input.Status
	if status == "" {
		status = domain.FounderStatusToContact
	}
	if !domain.IsValidFounderStatus(status) {
		return nil, domain.ErrInvalidFounderStatus
	}

	founder := schema.Founder{
		Name:                input.Name,
		Handle:              input.Handle,
		Bio:                 input.Bio,
		Domain:              input.Domain,
		Stage:               input.Stage,
		Company:             input.Company,
		Founded:             input.Founded,
		Status:              status,
		YCAlumniConnections: input.YCAlumniConnections,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Status is owned by the operator once set, so re-ingestion never overwrites it
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "handle"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "bio", "domain", "stage", "company", "founded", "yc_alumni_connections", "updated_at",
			}),
		}).Create(&founder).Error; err != nil {
			return fmt.Errorf("failed to upsert founder: %w", err)
		}

		// The returned ID is not reliable on conflict across dialects, re-read by handle
		var stored schema.Founder
		if err := tx.Where("handle = ?", input.Handle).First(&stored).Error; err != nil {
			return fmt.Errorf("failed to reload founder: %w", err)
		}
		founder = stored

		if err := tx.Where("founder_id = ?", founder.ID).Delete(&schema.FounderTag{}).Error; err != nil {
			return fmt.Errorf("failed to delete founder tags: %w", err)
		}

		if len(input.Tags) == 0 {
			return nil
		}

		seen := make(map[string]bool, len(input.Tags))
		tags := make([]schema.FounderTag, 0, len(input.Tags))
		for _, tag := range input.Tags {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, schema.FounderTag{FounderID: founder.ID, Tag: tag})
		}
		if len(tags) == 0 {
			return nil
		}
		if err := tx.Create(&tags).Error; err != nil {
			return fmt.Errorf("failed to create founder tags: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &founder, nil
}

func (s *sqlStore) UpdateFounderStatus(ctx context.Context, id uint64, status domain.FounderStatus) error {
	if !domain.IsValidFounderStatus(status) {
		return domain.ErrInvalidFounderStatus
	}

	result := s.db.WithContext(ctx).Model(&schema.Founder{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now().UTC(),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update founder status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrFounderNotFound
	}
	return nil
}

func (s *sqlStore) UpdateFounderIncubator(ctx context.Context, id uint64, incubator string) error {
	err := s.db.WithContext(ctx).Model(&schema.Founder{}).Where("id = ?", id).UpdateColumn("incubator", incubator).Error
	if err != nil {
		return fmt.Errorf("failed to update founder incubator: %w", err)
	}
	return nil
}

func (s *sqlStore) ListFounderTags(ctx context.Context, founderIDs []uint64) (map[uint64][]string, error) {
	tagsByFounder := make(map[uint64][]string)
	if len(founderIDs) == 0 {
		return tagsByFounder, nil
	}

	var tags []schema.FounderTag
	err := s.db.WithContext(ctx).Where("founder_id IN ?", founderIDs).Order("founder_id ASC, id ASC").Find(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list founder tags: %w", err)
	}

	for _, t := range tags {
		tagsByFounder[t.FounderID] = append(tagsByFounder[t.FounderID], t.Tag)
	}
	return tagsByFounder, nil
}

// =============================================================================
// Stats and signals
// =============================================================================

func (s *sqlStore) AddStatsSnapshot(ctx context.Context, snapshot *schema.StatsSnapshot) error {
	snapshot.CapturedAt = snapshot.CapturedAt.UTC()
	if err := s.db.WithContext(ctx).Create(snapshot).Error; err != nil {
		return fmt.Errorf("failed to add stats snapshot: %w", err)
	}
	return nil
}

func (s *sqlStore) GetLatestStats(ctx context.Context, founderID uint64) (*schema.StatsSnapshot, error) {
	snapshots, err := s.latestStats(ctx, founderID, 1)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, nil
	}
	return &snapshots[0], nil
}

func (s *sqlStore) GetLatestTwoStats(ctx context.Context, founderID uint64) ([]schema.StatsSnapshot, error) {
	return s.latestStats(ctx, founderID, 2)
}

func (s *sqlStore) latestStats(ctx context.Context, founderID uint64, limit int) ([]schema.StatsSnapshot, error) {
	var snapshots []schema.StatsSnapshot
	err := s.db.WithContext(ctx).
		Where("founder_id = ?", founderID).
		Order("captured_at DESC, id DESC").
		Limit(limit).
		Find(&snapshots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get latest stats: %w", err)
	}
	return snapshots, nil
}

func (s *sqlStore) AddSignal(ctx context.Context, signal *schema.Signal) (bool, error) {
	signal.DetectedAt = signal.DetectedAt.UTC()

	var count int64
	err := s.db.WithContext(ctx).Model(&schema.Signal{}).
		Where("founder_id = ? AND label = ? AND detected_at >= ?",
			signal.FounderID, signal.Label, signal.DetectedAt.Add(-domain.SIGNAL_DEDUP_WINDOW)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check signal dedup: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	if err := s.db.WithContext(ctx).Create(signal).Error; err != nil {
		return false, fmt.Errorf("failed to add signal: %w", err)
	}
	return true, nil
}

func (s *sqlStore) ListRecentSignals(ctx context.Context, founderID uint64, since time.Time) ([]schema.Signal, error) {
	var signals []schema.Signal
	err := s.db.WithContext(ctx).
		Where("founder_id = ? AND detected_at >= ?", founderID, since.UTC()).
		Order("detected_at DESC, id DESC").
		Find(&signals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent signals: %w", err)
	}
	return signals, nil
}

func (s *sqlStore) ListSignalSources(ctx context.Context, founderID uint64) ([]domain.SignalSource, error) {
	var sources []domain.SignalSource
	err := s.db.WithContext(ctx).Model(&schema.Signal{}).
		Where("founder_id = ?", founderID).
		Distinct("source").
		Order("source ASC").
		Pluck("source", &sources).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list signal sources: %w", err)
	}
	return sources, nil
}

func (s *sqlStore) CountSignalsSince(ctx context.Context, founderIDs []uint64, since time.Time) (int64, error) {
	if len(founderIDs) == 0 {
		return 0, nil
	}

	var count int64
	err := s.db.WithContext(ctx).Model(&schema.Signal{}).
		Where("founder_id IN ? AND detected_at >= ?", founderIDs, since.UTC()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count signals: %w", err)
	}
	return count, nil
}

// =============================================================================
// Scores
// =============================================================================

func (s *sqlStore) InsertScore(ctx context.Context, score *schema.Score) error {
	score.ScoredAt = score.ScoredAt.UTC()
	if err := s.db.WithContext(ctx).Create(score).Error; err != nil {
		return fmt.Errorf("failed to insert score: %w", err)
	}
	return nil
}

func (s *sqlStore) GetLatestTwoScores(ctx context.Context, founderID uint64) ([]schema.Score, error) {
	return s.ListScoreHistory(ctx, founderID, 2)
}

func (s *sqlStore) ListScoreHistory(ctx context.Context, founderID uint64, limit int) ([]schema.Score, error) {
	query := s.db.WithContext(ctx).
		Where("founder_id = ?", founderID).
		Order("scored_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var scores []schema.Score
	if err := query.Find(&scores).Error; err != nil {
		return nil, fmt.Errorf("failed to list score history: %w", err)
	}
	return scores, nil
}

// =============================================================================
// Embeddings
// =============================================================================

func (s *sqlStore) UpsertEmbedding(ctx context.Context, embedding *schema.Embedding) error {
	embedding.EmbeddedAt = embedding.EmbeddedAt.UTC()
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "founder_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"vector", "model", "content_hash", "embedded_at"}),
	}).Create(embedding).Error
	if err != nil {
		return fmt.Errorf("failed to upsert embedding: %w", err)
	}
	return nil
}

func (s *sqlStore) GetEmbeddingHashes(ctx context.Context) (map[uint64]string, error) {
	var rows []struct {
		FounderID   uint64
		ContentHash string
	}
	err := s.db.WithContext(ctx).Model(&schema.Embedding{}).Select("founder_id, content_hash").Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get embedding hashes: %w", err)
	}

	hashes := make(map[uint64]string, len(rows))
	for _, r := range rows {
		hashes[r.FounderID] = r.ContentHash
	}
	return hashes, nil
}

func (s *sqlStore) ListEmbeddings(ctx context.Context) ([]schema.Embedding, error) {
	var embeddings []schema.Embedding
	if err := s.db.WithContext(ctx).Order("founder_id ASC").Find(&embeddings).Error; err != nil {
		return nil, fmt.Errorf("failed to list embeddings: %w", err)
	}
	return embeddings, nil
}

// =============================================================================
// Themes
// =============================================================================

func (s *sqlStore) ListThemes(ctx context.Context) ([]schema.Theme, error) {
	var themes []schema.Theme
	err := s.db.WithContext(ctx).Order("emergence_score DESC, id ASC").Find(&themes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}
	return themes, nil
}

func (s *sqlStore) GetTheme(ctx context.Context, id uint64) (*schema.Theme, error) {
	var theme schema.Theme
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&theme).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}
	return &theme, nil
}

func (s *sqlStore) CreateTheme(ctx context.Context, theme *schema.Theme) error {
	theme.FirstDetected = theme.FirstDetected.UTC()
	theme.UpdatedAt = theme.UpdatedAt.UTC()
	if err := s.db.WithContext(ctx).Create(theme).Error; err != nil {
		return fmt.Errorf("failed to create theme: %w", err)
	}
	return nil
}

func (s *sqlStore) UpdateTheme(ctx context.Context, theme *schema.Theme) error {
	result := s.db.WithContext(ctx).Model(&schema.Theme{}).Where("id = ?", theme.ID).Updates(map[string]interface{}{
		"name":            theme.Name,
		"emergence_score": theme.EmergenceScore,
		"builder_count":   theme.BuilderCount,
		"weekly_velocity": theme.WeeklyVelocity,
		"founder_origin":  theme.FounderOrigin,
		"sector":          theme.Sector,
		"keywords":        theme.Keywords,
		"updated_at":      theme.UpdatedAt.UTC(),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update theme: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrThemeNotFound
	}
	return nil
}

func (s *sqlStore) ReplaceThemeMembers(ctx context.Context, themeID uint64, founderIDs []uint64, similarity float64, addedAt time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("theme_id = ?", themeID).Delete(&schema.ThemeMembership{}).Error; err != nil {
			return fmt.Errorf("failed to delete theme members: %w", err)
		}

		if len(founderIDs) == 0 {
			return nil
		}

		members := make([]schema.ThemeMembership, 0, len(founderIDs))
		for _, founderID := range founderIDs {
			members = append(members, schema.ThemeMembership{
				FounderID:  founderID,
				ThemeID:    themeID,
				Similarity: similarity,
				AddedAt:    addedAt.UTC(),
			})
		}

		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&members).Error; err != nil {
			return fmt.Errorf("failed to insert theme members: %w", err)
		}
		return nil
	})
}

func (s *sqlStore) ListThemeMembers(ctx context.Context, themeID uint64) ([]schema.ThemeMembership, error) {
	var members []schema.ThemeMembership
	err := s.db.WithContext(ctx).Where("theme_id = ?", themeID).Order("founder_id ASC").Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list theme members: %w", err)
	}
	return members, nil
}

func (s *sqlStore) ListMembershipsByFounders(ctx context.Context, founderIDs []uint64) ([]schema.ThemeMembership, error) {
	if len(founderIDs) == 0 {
		return nil, nil
	}

	var members []schema.ThemeMembership
	err := s.db.WithContext(ctx).
		Where("founder_id IN ?", founderIDs).
		Order("theme_id ASC, founder_id ASC").
		Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return members, nil
}

func (s *sqlStore) ListFounderThemes(ctx context.Context, founderID uint64) ([]schema.Theme, error) {
	themeIDs := s.db.Model(&schema.ThemeMembership{}).Select("theme_id").Where("founder_id = ?", founderID)

	var themes []schema.Theme
	err := s.db.WithContext(ctx).Where("id IN (?)", themeIDs).Order("emergence_score DESC").Find(&themes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list founder themes: %w", err)
	}
	return themes, nil
}

func (s *sqlStore) AddThemeHistory(ctx context.Context, history *schema.ThemeHistory) error {
	history.CapturedAt = history.CapturedAt.UTC()
	if err := s.db.WithContext(ctx).Create(history).Error; err != nil {
		return fmt.Errorf("failed to add theme history: %w", err)
	}
	return nil
}

func (s *sqlStore) GetLatestThemeHistoryBefore(ctx context.Context, themeID uint64, before time.Time) (*schema.ThemeHistory, error) {
	var history schema.ThemeHistory
	err := s.db.WithContext(ctx).
		Where("theme_id = ? AND captured_at < ?", themeID, before.UTC()).
		Order("captured_at DESC, id DESC").
		First(&history).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get theme history: %w", err)
	}
	return &history, nil
}

func (s *sqlStore) ListThemeHistory(ctx context.Context, themeID uint64, limit int) ([]schema.ThemeHistory, error) {
	query := s.db.WithContext(ctx).Where("theme_id = ?", themeID).Order("captured_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var history []schema.ThemeHistory
	if err := query.Find(&history).Error; err != nil {
		return nil, fmt.Errorf("failed to list theme history: %w", err)
	}
	return history, nil
}

// =============================================================================
// Events and alerts
// =============================================================================

func (s *sqlStore) InsertEmergenceEvent(ctx context.Context, event *schema.EmergenceEvent) error {
	event.DetectedAt = event.DetectedAt.UTC()
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to insert emergence event: %w", err)
	}
	return nil
}

func (s *sqlStore) HasRecentEvent(ctx context.Context, entityID uint64, entityType domain.EntityType, eventType domain.EventType, since time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.EmergenceEvent{}).
		Where("entity_id = ? AND entity_type = ? AND event_type = ? AND detected_at >= ?",
			entityID, entityType, eventType, since.UTC()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check recent event: %w", err)
	}
	return count > 0, nil
}

func (s *sqlStore) ListEmergenceEvents(ctx context.Context, filter EventFilter) ([]schema.EmergenceEvent, error) {
	query := s.db.WithContext(ctx).Order("detected_at DESC, id DESC")
	if filter.EntityType != nil {
		query = query.Where("entity_type = ?", *filter.EntityType)
	}
	if filter.EntityID != nil {
		query = query.Where("entity_id = ?", *filter.EntityID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var events []schema.EmergenceEvent
	if err := query.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list emergence events: %w", err)
	}
	return events, nil
}

func (s *sqlStore) InsertAlertLog(ctx context.Context, entry *schema.AlertLog) error {
	entry.SentAt = entry.SentAt.UTC()
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to insert alert log: %w", err)
	}
	return nil
}

func (s *sqlStore) ListAlertLogs(ctx context.Context, founderID uint64, limit int) ([]schema.AlertLog, error) {
	query := s.db.WithContext(ctx).Where("founder_id = ?", founderID).Order("sent_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var entries []schema.AlertLog
	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list alert logs: %w", err)
	}
	return entries, nil
}

// =============================================================================
// Pipeline runs
// =============================================================================

func (s *sqlStore) CreatePipelineRun(ctx context.Context, run *schema.PipelineRun) error {
	run.StartedAt = run.StartedAt.UTC()
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to create pipeline run: %w", err)
	}
	return nil
}

func (s *sqlStore) FinishPipelineRun(ctx context.Context, run *schema.PipelineRun) error {
	updates := map[string]interface{}{
		"status":            run.Status,
		"founders_embedded": run.FoundersEmbedded,
		"themes_upserted":   run.ThemesUpserted,
		"founders_scored":   run.FoundersScored,
		"alerts_sent":       run.AlertsSent,
		"events_fired":      run.EventsFired,
		"phase_errors":      run.PhaseErrors,
	}
	if run.FinishedAt != nil {
		updates["finished_at"] = run.FinishedAt.UTC()
	}

	err := s.db.WithContext(ctx).Model(&schema.PipelineRun{}).Where("id = ?", run.ID).Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to finish pipeline run: %w", err)
	}
	return nil
}

func (s *sqlStore) ListPipelineRuns(ctx context.Context, limit int) ([]schema.PipelineRun, error) {
	query := s.db.WithContext(ctx).Order("started_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var runs []schema.PipelineRun
	if err := query.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list pipeline runs: %w", err)
	}
	return runs, nil
}
