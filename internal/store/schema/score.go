package schema

import "time"

// Score represents the scores table - one immutable row per founder per pipeline run
type Score struct {
	// ID is an auto-incrementing primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// FounderID references founders.id
	FounderID uint64 `gorm:"column:founder_id;not null;index:idx_scores_founder_scored"`
	// FounderQuality is the prior-builder and network sub-score (0-100)
	FounderQuality float64 `gorm:"column:founder_quality;not null"`
	// ExecutionVelocity is the shipping cadence sub-score (0-100)
	ExecutionVelocity float64 `gorm:"column:execution_velocity;not null"`
	// MarketConviction is the domain depth and community presence sub-score (0-100)
	MarketConviction float64 `gorm:"column:market_conviction;not null"`
	// EarlyTraction is the usage and attention sub-score (0-100)
	EarlyTraction float64 `gorm:"column:early_traction;not null"`
	// DealAvailability is the inverse funding-stage sub-score (0-100)
	DealAvailability float64 `gorm:"column:deal_availability;not null"`
	// Composite is the weighted sum, rounded and clipped to 0-100
	Composite int `gorm:"column:composite;not null;index"`
	// RunID is the pipeline run that produced this score
	RunID string `gorm:"column:run_id;type:varchar(26)"`
	// ScoredAt is when the score was computed
	ScoredAt time.Time `gorm:"column:scored_at;not null;index:idx_scores_founder_scored"`
}

// TableName specifies the table name for the Score model
func (Score) TableName() string {
	return "scores"
}
