package dto

import (
	"encoding/json"

	"github.com/feral-file/founder-scout/internal/store/schema"
)

// MapScoreToDTO maps a score record
func MapScoreToDTO(s schema.Score) ScoreResponse {
	return ScoreResponse{
		Composite:         s.Composite,
		FounderQuality:    s.FounderQuality,
		ExecutionVelocity: s.ExecutionVelocity,
		MarketConviction:  s.MarketConviction,
		EarlyTraction:     s.EarlyTraction,
		DealAvailability:  s.DealAvailability,
		RunID:             s.RunID,
		ScoredAt:          s.ScoredAt,
	}
}

// MapFounderToDTO maps a founder and its latest score, nil when unscored
func MapFounderToDTO(f schema.Founder, score *schema.Score, tags []string) FounderResponse {
	if tags == nil {
		tags = []string{}
	}

	resp := FounderResponse{
		ID:                  f.ID,
		Name:                f.Name,
		Handle:              f.Handle,
		Bio:                 f.Bio,
		Domain:              f.Domain,
		Stage:               f.Stage,
		Company:             f.Company,
		Founded:             f.Founded,
		Status:              f.Status,
		Incubator:           f.Incubator,
		YCAlumniConnections: f.YCAlumniConnections,
		Tags:                tags,
	}
	if score != nil {
		s := MapScoreToDTO(*score)
		resp.Score = &s
	}
	return resp
}

// MapStatsToDTO maps a stats snapshot, nil when absent
func MapStatsToDTO(s *schema.StatsSnapshot) *StatsResponse {
	if s == nil {
		return nil
	}
	return &StatsResponse{
		GitHubStars:      s.GitHubStars,
		GitHubCommits90d: s.GitHubCommits90d,
		GitHubRepos:      s.GitHubRepos,
		HNKarma:          s.HNKarma,
		HNSubmissions:    s.HNSubmissions,
		HNTopScore:       s.HNTopScore,
		PHUpvotes:        s.PHUpvotes,
		PHLaunches:       s.PHLaunches,
		Followers:        s.Followers,
		CapturedAt:       s.CapturedAt,
	}
}

// MapSignalToDTO maps a signal
func MapSignalToDTO(s schema.Signal) SignalResponse {
	return SignalResponse{
		Source:     s.Source,
		Label:      s.Label,
		URL:        s.URL,
		Strong:     s.Strong,
		DetectedAt: s.DetectedAt,
	}
}

// MapAlertLogToDTO maps an alert log entry
func MapAlertLogToDTO(a schema.AlertLog) AlertResponse {
	return AlertResponse{
		AlertType: a.AlertType,
		Channel:   a.Channel,
		Message:   a.Message,
		SentAt:    a.SentAt,
	}
}

// MapThemeToDTO maps a theme; keywords that fail to decode are dropped
func MapThemeToDTO(t schema.Theme) ThemeResponse {
	keywords := []string{}
	if len(t.Keywords) > 0 {
		_ = json.Unmarshal(t.Keywords, &keywords)
	}

	return ThemeResponse{
		ID:             t.ID,
		Name:           t.Name,
		EmergenceScore: t.EmergenceScore,
		BuilderCount:   t.BuilderCount,
		WeeklyVelocity: t.WeeklyVelocity,
		FounderOrigin:  t.FounderOrigin,
		Sector:         t.Sector,
		PainSummary:    t.PainSummary,
		UnlockSummary:  t.UnlockSummary,
		Keywords:       keywords,
		FirstDetected:  t.FirstDetected,
		UpdatedAt:      t.UpdatedAt,
	}
}

// MapThemeHistoryToDTO maps a theme snapshot
func MapThemeHistoryToDTO(h schema.ThemeHistory) ThemeHistoryResponse {
	return ThemeHistoryResponse{
		EmergenceScore: h.EmergenceScore,
		BuilderCount:   h.BuilderCount,
		CapturedAt:     h.CapturedAt,
	}
}

// MapEventToDTO maps an emergence event
func MapEventToDTO(e schema.EmergenceEvent) EventResponse {
	resp := EventResponse{
		ID:          e.ID,
		EventType:   e.EventType,
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		Signal:      e.Signal,
		DeltaBefore: e.DeltaBefore,
		DeltaAfter:  e.DeltaAfter,
		DetectedAt:  e.DetectedAt,
	}
	if len(e.Metadata) > 0 {
		resp.Metadata = json.RawMessage(e.Metadata)
	}
	return resp
}

// MapPipelineRunToDTO maps a pipeline run record
func MapPipelineRunToDTO(r schema.PipelineRun) PipelineRunResponse {
	resp := PipelineRunResponse{
		ID:               r.ID,
		Status:           r.Status,
		StartedAt:        r.StartedAt,
		FinishedAt:       r.FinishedAt,
		FoundersEmbedded: r.FoundersEmbedded,
		ThemesUpserted:   r.ThemesUpserted,
		FoundersScored:   r.FoundersScored,
		AlertsSent:       r.AlertsSent,
		EventsFired:      r.EventsFired,
	}
	if len(r.PhaseErrors) > 0 {
		_ = json.Unmarshal(r.PhaseErrors, &resp.PhaseErrors)
	}
	return resp
}
