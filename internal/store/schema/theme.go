package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Theme represents the themes table - a named cluster of founders building in a related space
type Theme struct {
	// ID is an auto-incrementing primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the human-readable theme name, may change between runs
	Name string `gorm:"column:name;not null;type:varchar(255)"`
	// EmergenceScore summarises size, signal velocity and growth (0-150)
	EmergenceScore int `gorm:"column:emergence_score;not null;default:0;index"`
	// BuilderCount is the current number of member founders
	BuilderCount int `gorm:"column:builder_count;not null;default:0"`
	// WeeklyVelocity is the fractional growth against the snapshot from a week ago
	WeeklyVelocity float64 `gorm:"column:weekly_velocity;not null;default:0"`
	// FounderOrigin is a summary of member backgrounds (e.g., "2/5 ex-FAANG, 1/5 researchers")
	FounderOrigin string `gorm:"column:founder_origin;type:text"`
	// Sector is the dominant sector label
	Sector string `gorm:"column:sector;type:varchar(100)"`
	// PainSummary describes the problem members are attacking, when available
	PainSummary *string `gorm:"column:pain_summary;type:text"`
	// UnlockSummary describes what changed to make the theme possible, when available
	UnlockSummary *string `gorm:"column:unlock_summary;type:text"`
	// Keywords are the top tokens that produced the keyword name
	Keywords datatypes.JSON `gorm:"column:keywords"`
	// FirstDetected is when the theme row was first created
	FirstDetected time.Time `gorm:"column:first_detected;not null"`
	// UpdatedAt is when the theme was last re-scored
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the Theme model
func (Theme) TableName() string {
	return "themes"
}
