package executor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/feral-file/founder-scout/internal/api/shared/constants"
	"github.com/feral-file/founder-scout/internal/api/shared/dto"
	apierrors "github.com/feral-file/founder-scout/internal/api/shared/errors"
	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/pipeline"
	"github.com/feral-file/founder-scout/internal/store"
	"github.com/feral-file/founder-scout/internal/store/schema"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// ListFounders retrieves founders ranked by their latest composite score
	ListFounders(ctx context.Context, statuses []domain.FounderStatus, minScore *int, limit int, offset int) (*dto.FounderListResponse, error)

	// GetFounder retrieves the full founder profile, nil if absent
	GetFounder(ctx context.Context, id uint64) (*dto.FounderDetailResponse, error)

	// UpdateFounderStatus changes a founder's outreach status
	UpdateFounderStatus(ctx context.Context, id uint64, status domain.FounderStatus) (*dto.UpdateFounderStatusResponse, error)

	// GetOverview computes the dashboard header aggregates
	GetOverview(ctx context.Context) (*dto.OverviewResponse, error)

	// ListThemes retrieves every theme ordered by emergence score
	ListThemes(ctx context.Context) (*dto.ThemeListResponse, error)

	// GetTheme retrieves a theme with its members and history, nil if absent
	GetTheme(ctx context.Context, id uint64) (*dto.ThemeDetailResponse, error)

	// ListEvents retrieves emergence events newest first
	ListEvents(ctx context.Context, entityType *domain.EntityType, limit int) (*dto.EventListResponse, error)

	// ListPipelineRuns retrieves pipeline runs newest first
	ListPipelineRuns(ctx context.Context, limit int) (*dto.PipelineRunListResponse, error)

	// TriggerPipelineRun starts a pipeline run in the background
	TriggerPipelineRun(ctx context.Context) (*dto.TriggerPipelineRunResponse, error)
}

type executor struct {
	store    store.Store
	pipeline pipeline.Pipeline
}

// NewExecutor creates an executor; p may be nil when the binary cannot run the pipeline
func NewExecutor(st store.Store, p pipeline.Pipeline) Executor {
	return &executor{store: st, pipeline: p}
}

func (e *executor) ListFounders(ctx context.Context, statuses []domain.FounderStatus, minScore *int, limit int, offset int) (*dto.FounderListResponse, error) {
	if limit <= 0 {
		limit = constants.DEFAULT_FOUNDERS_LIMIT
	}

	results, total, err := e.store.ListFounders(ctx, store.FounderFilter{
		Statuses:     statuses,
		MinComposite: minScore,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list founders: %v", err))
	}

	ids := make([]uint64, len(results))
	for i, r := range results {
		ids[i] = r.Founder.ID
	}
	tags, err := e.store.ListFounderTags(ctx, ids)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list founder tags: %v", err))
	}

	founders := make([]dto.FounderResponse, len(results))
	for i, r := range results {
		founders[i] = dto.MapFounderToDTO(r.Founder, r.Score, tags[r.Founder.ID])
	}

	var nextOffset *int
	if uint64(offset+len(results)) < total { //nolint:gosec,G115
		next := offset + len(results)
		nextOffset = &next
	}

	return &dto.FounderListResponse{
		Founders:   founders,
		Total:      total,
		NextOffset: nextOffset,
	}, nil
}

func (e *executor) GetFounder(ctx context.Context, id uint64) (*dto.FounderDetailResponse, error) {
	founder, err := e.store.GetFounder(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get founder: %v", err))
	}
	if founder == nil {
		return nil, nil
	}

	scores, err := e.store.ListScoreHistory(ctx, id, constants.FOUNDER_SCORES_LIMIT)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get score history: %v", err))
	}
	tags, err := e.store.ListFounderTags(ctx, []uint64{id})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get founder tags: %v", err))
	}

	var latest *schema.Score
	if len(scores) > 0 {
		latest = &scores[0]
	}
	resp := &dto.FounderDetailResponse{
		FounderResponse: dto.MapFounderToDTO(*founder, latest, tags[id]),
		ScoreHistory:    make([]dto.ScoreResponse, len(scores)),
	}
	for i, s := range scores {
		resp.ScoreHistory[i] = dto.MapScoreToDTO(s)
	}

	stats, err := e.store.GetLatestStats(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get latest stats: %v", err))
	}
	resp.Stats = dto.MapStatsToDTO(stats)

	// The zero time lists every signal
	signals, err := e.store.ListRecentSignals(ctx, id, time.Time{})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get signals: %v", err))
	}
	if len(signals) > constants.FOUNDER_SIGNALS_LIMIT {
		signals = signals[:constants.FOUNDER_SIGNALS_LIMIT]
	}
	resp.Signals = make([]dto.SignalResponse, len(signals))
	for i, s := range signals {
		resp.Signals[i] = dto.MapSignalToDTO(s)
	}

	sources, err := e.store.ListSignalSources(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get signal sources: %v", err))
	}
	resp.Sources = sources
	if resp.Sources == nil {
		resp.Sources = []domain.SignalSource{}
	}

	themes, err := e.store.ListFounderThemes(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get founder themes: %v", err))
	}
	resp.Themes = make([]dto.ThemeSummary, len(themes))
	for i, t := range themes {
		resp.Themes[i] = dto.ThemeSummary{ID: t.ID, Name: t.Name, EmergenceScore: t.EmergenceScore}
	}

	alerts, err := e.store.ListAlertLogs(ctx, id, constants.FOUNDER_ALERTS_LIMIT)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get alert log: %v", err))
	}
	resp.Alerts = make([]dto.AlertResponse, len(alerts))
	for i, a := range alerts {
		resp.Alerts[i] = dto.MapAlertLogToDTO(a)
	}

	return resp, nil
}

func (e *executor) UpdateFounderStatus(ctx context.Context, id uint64, status domain.FounderStatus) (*dto.UpdateFounderStatusResponse, error) {
	err := e.store.UpdateFounderStatus(ctx, id, status)
	switch {
	case errors.Is(err, domain.ErrFounderNotFound):
		return nil, apierrors.NewNotFoundError("Founder not found")
	case errors.Is(err, domain.ErrInvalidFounderStatus):
		return nil, apierrors.NewValidationError(err.Error())
	case err != nil:
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to update founder status: %v", err))
	}

	return &dto.UpdateFounderStatusResponse{ID: id, Status: status}, nil
}

func (e *executor) GetOverview(ctx context.Context) (*dto.OverviewResponse, error) {
	results, total, err := e.store.ListFounders(ctx, store.FounderFilter{})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list founders: %v", err))
	}

	resp := &dto.OverviewResponse{Total: int(total)} //nolint:gosec,G115
	var sum, scored int
	for _, r := range results {
		if r.Founder.Status == domain.FounderStatusToContact {
			resp.ToContact++
		}
		if r.Score == nil {
			continue
		}
		scored++
		sum += r.Score.Composite
		if r.Score.Composite >= constants.STRONG_FOUNDER_MIN_SCORE {
			resp.Strong++
		}
	}
	if scored > 0 {
		resp.AvgScore = int(math.Round(float64(sum) / float64(scored)))
	}

	return resp, nil
}

func (e *executor) ListThemes(ctx context.Context) (*dto.ThemeListResponse, error) {
	themes, err := e.store.ListThemes(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list themes: %v", err))
	}

	resp := &dto.ThemeListResponse{Themes: make([]dto.ThemeResponse, len(themes))}
	for i, t := range themes {
		resp.Themes[i] = dto.MapThemeToDTO(t)
	}
	return resp, nil
}

func (e *executor) GetTheme(ctx context.Context, id uint64) (*dto.ThemeDetailResponse, error) {
	theme, err := e.store.GetTheme(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get theme: %v", err))
	}
	if theme == nil {
		return nil, nil
	}

	members, err := e.store.ListThemeMembers(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get theme members: %v", err))
	}

	resp := &dto.ThemeDetailResponse{
		ThemeResponse: dto.MapThemeToDTO(*theme),
		Members:       make([]dto.ThemeMemberResponse, 0, len(members)),
	}
	for _, m := range members {
		founder, err := e.store.GetFounder(ctx, m.FounderID)
		if err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get theme member: %v", err))
		}
		if founder == nil {
			continue
		}
		resp.Members = append(resp.Members, dto.ThemeMemberResponse{
			FounderID:  m.FounderID,
			Name:       founder.Name,
			Handle:     founder.Handle,
			Similarity: m.Similarity,
			AddedAt:    m.AddedAt,
		})
	}

	history, err := e.store.ListThemeHistory(ctx, id, constants.THEME_HISTORY_LIMIT)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get theme history: %v", err))
	}
	resp.History = make([]dto.ThemeHistoryResponse, len(history))
	for i, h := range history {
		resp.History[i] = dto.MapThemeHistoryToDTO(h)
	}

	return resp, nil
}

func (e *executor) ListEvents(ctx context.Context, entityType *domain.EntityType, limit int) (*dto.EventListResponse, error) {
	if limit <= 0 {
		limit = constants.DEFAULT_EVENTS_LIMIT
	}

	events, err := e.store.ListEmergenceEvents(ctx, store.EventFilter{EntityType: entityType, Limit: limit})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list events: %v", err))
	}

	resp := &dto.EventListResponse{Events: make([]dto.EventResponse, len(events))}
	for i, ev := range events {
		resp.Events[i] = dto.MapEventToDTO(ev)
	}
	return resp, nil
}

func (e *executor) ListPipelineRuns(ctx context.Context, limit int) (*dto.PipelineRunListResponse, error) {
	if limit <= 0 {
		limit = constants.DEFAULT_RUNS_LIMIT
	}

	runs, err := e.store.ListPipelineRuns(ctx, limit)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list pipeline runs: %v", err))
	}

	resp := &dto.PipelineRunListResponse{Runs: make([]dto.PipelineRunResponse, len(runs))}
	for i, r := range runs {
		resp.Runs[i] = dto.MapPipelineRunToDTO(r)
	}
	return resp, nil
}

func (e *executor) TriggerPipelineRun(ctx context.Context) (*dto.TriggerPipelineRunResponse, error) {
	if e.pipeline == nil {
		return nil, apierrors.NewInternalError("Pipeline is not configured")
	}

	runID, err := e.pipeline.RunAsync(ctx)
	if err != nil {
		if pipeline.IsLocked(err) {
			return nil, apierrors.NewConflictError("Pipeline run already in progress")
		}
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to start pipeline run: %v", err))
	}

	return &dto.TriggerPipelineRunResponse{RunID: runID, Status: domain.RunStatusRunning}, nil
}
