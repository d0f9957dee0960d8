package schema

import (
	"time"

	"github.com/feral-file/founder-scout/internal/domain"
)

// AlertLog represents the alert_log table - audit of successful notification deliveries
type AlertLog struct {
	ID        uint64           `gorm:"column:id;primaryKey;autoIncrement"`
	FounderID uint64           `gorm:"column:founder_id;not null;index"`
	AlertType domain.AlertType `gorm:"column:alert_type;not null;type:varchar(100)"`
	Channel   domain.Channel   `gorm:"column:channel;not null;type:varchar(20)"`
	Message   string           `gorm:"column:message;not null;type:text"`
	SentAt    time.Time        `gorm:"column:sent_at;not null"`
}

// TableName specifies the table name for the AlertLog model
func (AlertLog) TableName() string {
	return "alert_log"
}
