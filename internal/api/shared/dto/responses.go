package dto

import (
	"encoding/json"
	"time"

	"github.com/feral-file/founder-scout/internal/domain"
)

// ScoreResponse represents one score record
type ScoreResponse struct {
	Composite         int       `json:"composite"`
	FounderQuality    float64   `json:"founder_quality"`
	ExecutionVelocity float64   `json:"execution_velocity"`
	MarketConviction  float64   `json:"market_conviction"`
	EarlyTraction     float64   `json:"early_traction"`
	DealAvailability  float64   `json:"deal_availability"`
	RunID             string    `json:"run_id,omitempty"`
	ScoredAt          time.Time `json:"scored_at"`
}

// FounderResponse represents a founder with its latest score
type FounderResponse struct {
	ID                  uint64               `json:"id"`
	Name                string               `json:"name"`
	Handle              string               `json:"handle"`
	Bio                 string               `json:"bio"`
	Domain              string               `json:"domain"`
	Stage               string               `json:"stage"`
	Company             string               `json:"company"`
	Founded             string               `json:"founded"`
	Status              domain.FounderStatus `json:"status"`
	Incubator           string               `json:"incubator,omitempty"`
	YCAlumniConnections int                  `json:"yc_alumni_connections"`
	Tags                []string             `json:"tags"`
	// Score is nil until the founder has been scored
	Score *ScoreResponse `json:"score"`
}

// FounderListResponse represents a page of founders ranked by composite score
type FounderListResponse struct {
	Founders   []FounderResponse `json:"founders"`
	Total      uint64            `json:"total"`
	NextOffset *int              `json:"next_offset,omitempty"`
}

// StatsResponse represents the latest stats snapshot of a founder
type StatsResponse struct {
	GitHubStars      int       `json:"github_stars"`
	GitHubCommits90d int       `json:"github_commits_90d"`
	GitHubRepos      int       `json:"github_repos"`
	HNKarma          int       `json:"hn_karma"`
	HNSubmissions    int       `json:"hn_submissions"`
	HNTopScore       int       `json:"hn_top_score"`
	PHUpvotes        int       `json:"ph_upvotes"`
	PHLaunches       int       `json:"ph_launches"`
	Followers        int       `json:"followers"`
	CapturedAt       time.Time `json:"captured_at"`
}

// SignalResponse represents a dated observation about a founder
type SignalResponse struct {
	Source     domain.SignalSource `json:"source"`
	Label      string              `json:"label"`
	URL        string              `json:"url,omitempty"`
	Strong     bool                `json:"strong"`
	DetectedAt time.Time           `json:"detected_at"`
}

// AlertResponse represents one delivered alert
type AlertResponse struct {
	AlertType domain.AlertType `json:"alert_type"`
	Channel   domain.Channel   `json:"channel"`
	Message   string           `json:"message"`
	SentAt    time.Time        `json:"sent_at"`
}

// ThemeSummary is the short form of a theme embedded in other responses
type ThemeSummary struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	EmergenceScore int    `json:"emergence_score"`
}

// FounderDetailResponse represents the full founder profile
type FounderDetailResponse struct {
	FounderResponse
	Sources      []domain.SignalSource `json:"sources"`
	Stats        *StatsResponse        `json:"stats"`
	ScoreHistory []ScoreResponse       `json:"score_history"`
	Signals      []SignalResponse      `json:"signals"`
	Themes       []ThemeSummary        `json:"themes"`
	Alerts       []AlertResponse       `json:"alerts"`
}

// UpdateFounderStatusResponse represents the response for a status change
type UpdateFounderStatusResponse struct {
	ID     uint64               `json:"id"`
	Status domain.FounderStatus `json:"status"`
}

// ThemeResponse represents a theme
type ThemeResponse struct {
	ID             uint64    `json:"id"`
	Name           string    `json:"name"`
	EmergenceScore int       `json:"emergence_score"`
	BuilderCount   int       `json:"builder_count"`
	WeeklyVelocity float64   `json:"weekly_velocity"`
	FounderOrigin  string    `json:"founder_origin"`
	Sector         string    `json:"sector"`
	PainSummary    *string   `json:"pain_summary"`
	UnlockSummary  *string   `json:"unlock_summary"`
	Keywords       []string  `json:"keywords"`
	FirstDetected  time.Time `json:"first_detected"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ThemeListResponse represents every theme ordered by emergence score
type ThemeListResponse struct {
	Themes []ThemeResponse `json:"themes"`
}

// ThemeMemberResponse represents a founder belonging to a theme
type ThemeMemberResponse struct {
	FounderID  uint64    `json:"founder_id"`
	Name       string    `json:"name"`
	Handle     string    `json:"handle"`
	Similarity float64   `json:"similarity"`
	AddedAt    time.Time `json:"added_at"`
}

// ThemeHistoryResponse represents one theme snapshot
type ThemeHistoryResponse struct {
	EmergenceScore int       `json:"emergence_score"`
	BuilderCount   int       `json:"builder_count"`
	CapturedAt     time.Time `json:"captured_at"`
}

// ThemeDetailResponse represents a theme with its members and history
type ThemeDetailResponse struct {
	ThemeResponse
	Members []ThemeMemberResponse  `json:"members"`
	History []ThemeHistoryResponse `json:"history"`
}

// EventResponse represents an emergence event
type EventResponse struct {
	ID          uint64            `json:"id"`
	EventType   domain.EventType  `json:"event_type"`
	EntityType  domain.EntityType `json:"entity_type"`
	EntityID    uint64            `json:"entity_id"`
	Signal      string            `json:"signal"`
	DeltaBefore *float64          `json:"delta_before"`
	DeltaAfter  *float64          `json:"delta_after"`
	Metadata    json.RawMessage   `json:"metadata,omitempty"`
	DetectedAt  time.Time         `json:"detected_at"`
}

// EventListResponse represents emergence events newest first
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// PipelineRunResponse represents a pipeline run record
type PipelineRunResponse struct {
	ID               string            `json:"id"`
	Status           domain.RunStatus  `json:"status"`
	StartedAt        time.Time         `json:"started_at"`
	FinishedAt       *time.Time        `json:"finished_at"`
	FoundersEmbedded int               `json:"founders_embedded"`
	ThemesUpserted   int               `json:"themes_upserted"`
	FoundersScored   int               `json:"founders_scored"`
	AlertsSent       int               `json:"alerts_sent"`
	EventsFired      int               `json:"events_fired"`
	PhaseErrors      map[string]string `json:"phase_errors,omitempty"`
}

// PipelineRunListResponse represents pipeline runs newest first
type PipelineRunListResponse struct {
	Runs []PipelineRunResponse `json:"runs"`
}

// TriggerPipelineRunResponse represents the response for a manually triggered run
type TriggerPipelineRunResponse struct {
	RunID  string           `json:"run_id"`
	Status domain.RunStatus `json:"status"`
}

// OverviewResponse represents the dashboard header aggregates
type OverviewResponse struct {
	Total     int `json:"total"`
	Strong    int `json:"strong"`
	ToContact int `json:"to_contact"`
	AvgScore  int `json:"avg_score"`
}
