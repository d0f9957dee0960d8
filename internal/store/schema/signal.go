package schema

import (
	"time"

	"github.com/feral-file/founder-scout/internal/domain"
)

// Signal represents the signals table - discrete, dated observations about a founder
type Signal struct {
	// ID is an auto-incrementing primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// FounderID references founders.id
	FounderID uint64 `gorm:"column:founder_id;not null;index:idx_signals_founder_detected"`
	// Source is the platform the signal came from (github, hn, producthunt)
	Source domain.SignalSource `gorm:"column:source;not null;type:varchar(20)"`
	// Label is the human-readable description, also the dedup key
	Label string `gorm:"column:label;not null;type:text"`
	// URL links to the originating item
	URL string `gorm:"column:url;type:text"`
	// Strong marks signals with outsized weight (launches, front-page posts)
	Strong bool `gorm:"column:strong;not null;default:false"`
	// DetectedAt is when the signal was observed
	DetectedAt time.Time `gorm:"column:detected_at;not null;index:idx_signals_founder_detected"`
}

// TableName specifies the table name for the Signal model
func (Signal) TableName() string {
	return "signals"
}
