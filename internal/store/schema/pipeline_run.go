package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/founder-scout/internal/domain"
)

// PipelineRun represents the pipeline_runs table - one row per pipeline invocation
type PipelineRun struct {
	// ID is a ULID, time-sortable
	ID string `gorm:"column:id;primaryKey;type:varchar(26)"`
	// Status is running, succeeded or partial
	Status domain.RunStatus `gorm:"column:status;not null;type:varchar(20)"`
	// StartedAt is when the run began
	StartedAt time.Time `gorm:"column:started_at;not null;index"`
	// FinishedAt is when the run ended, nil while running
	FinishedAt *time.Time `gorm:"column:finished_at"`
	// Aggregate counts surfaced to the caller
	FoundersEmbedded int `gorm:"column:founders_embedded;not null;default:0"`
	ThemesUpserted   int `gorm:"column:themes_upserted;not null;default:0"`
	FoundersScored   int `gorm:"column:founders_scored;not null;default:0"`
	AlertsSent       int `gorm:"column:alerts_sent;not null;default:0"`
	EventsFired      int `gorm:"column:events_fired;not null;default:0"`
	// PhaseErrors maps phase name to the error that emptied it
	PhaseErrors datatypes.JSON `gorm:"column:phase_errors"`
}

// TableName specifies the table name for the PipelineRun model
func (PipelineRun) TableName() string {
	return "pipeline_runs"
}
