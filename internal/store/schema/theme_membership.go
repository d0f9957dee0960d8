package schema

import "time"

// ThemeMembership represents the founder_themes table - founder to theme edges
type ThemeMembership struct {
	FounderID  uint64    `gorm:"column:founder_id;primaryKey"`
	ThemeID    uint64    `gorm:"column:theme_id;primaryKey;index"`
	Similarity float64   `gorm:"column:similarity;not null"`
	AddedAt    time.Time `gorm:"column:added_at;not null"`
}

// TableName specifies the table name for the ThemeMembership model
func (ThemeMembership) TableName() string {
	return "founder_themes"
}
