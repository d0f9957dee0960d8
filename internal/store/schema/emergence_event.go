package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/founder-scout/internal/domain"
)

// EmergenceEvent represents the emergence_events table - append-only anomaly records
type EmergenceEvent struct {
	// ID is an auto-incrementing primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EventType tags the inflection (commit_spike, new_theme...)
	EventType domain.EventType `gorm:"column:event_type;not null;type:varchar(50);index:idx_events_dedup"`
	// EntityID is the founder or theme ID
	EntityID uint64 `gorm:"column:entity_id;not null;index:idx_events_dedup"`
	// EntityType is "founder" or "theme"
	EntityType domain.EntityType `gorm:"column:entity_type;not null;type:varchar(20);index:idx_events_dedup"`
	// Signal is the human-readable description
	Signal string `gorm:"column:signal;not null;type:text"`
	// DeltaBefore is the value before the inflection, if any
	DeltaBefore *float64 `gorm:"column:delta_before"`
	// DeltaAfter is the value after the inflection, if any
	DeltaAfter *float64 `gorm:"column:delta_after"`
	// Metadata carries check-specific context (ratio, thresholds)
	Metadata datatypes.JSON `gorm:"column:metadata"`
	// DetectedAt is when the event fired
	DetectedAt time.Time `gorm:"column:detected_at;not null;index:idx_events_dedup"`
}

// TableName specifies the table name for the EmergenceEvent model
func (EmergenceEvent) TableName() string {
	return "emergence_events"
}
