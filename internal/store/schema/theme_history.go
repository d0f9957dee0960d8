package schema

import "time"

// ThemeHistory represents the theme_history table - append-only snapshots for week-over-week deltas
type ThemeHistory struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	ThemeID        uint64    `gorm:"column:theme_id;not null;index:idx_theme_history_theme_captured"`
	EmergenceScore int       `gorm:"column:emergence_score;not null"`
	BuilderCount   int       `gorm:"column:builder_count;not null"`
	CapturedAt     time.Time `gorm:"column:captured_at;not null;index:idx_theme_history_theme_captured"`
}

// TableName specifies the table name for the ThemeHistory model
func (ThemeHistory) TableName() string {
	return "theme_history"
}
