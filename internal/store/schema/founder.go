package schema

import (
	"time"

	"github.com/feral-file/founder-scout/internal/domain"
)

// Founder represents the founders table - the primary tracked entity
type Founder struct {
	// ID is an auto-incrementing primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the display name of the founder or company
	Name string `gorm:"column:name;not null;type:varchar(255)"`
	// Handle is the unique platform handle used to dedupe founders across sources
	Handle string `gorm:"column:handle;not null;uniqueIndex;type:varchar(255)"`
	// Bio is the free-text profile used for scoring keywords and embeddings
	Bio string `gorm:"column:bio;type:text"`
	// Domain is the self-declared problem space (e.g., "devtools", "fintech")
	Domain string `gorm:"column:domain;type:varchar(255)"`
	// Stage is the company stage (idea, pre-seed, seed, series-a...)
	Stage string `gorm:"column:stage;type:varchar(50)"`
	// Company is the company name if known
	Company string `gorm:"column:company;type:varchar(255)"`
	// Founded is the founding year or date as reported upstream
	Founded string `gorm:"column:founded;type:varchar(50)"`
	// Status is the outreach status
	Status domain.FounderStatus `gorm:"column:status;not null;default:to_contact;type:varchar(20);index"`
	// YCAlumniConnections is the number of known accelerator alumni connections
	YCAlumniConnections int `gorm:"column:yc_alumni_connections;not null;default:0"`
	// Incubator is derived by scoring from bio and signal text (e.g., "YC W26")
	Incubator string `gorm:"column:incubator;type:varchar(100)"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for the Founder model
func (Founder) TableName() string {
	return "founders"
}

// FounderTag represents the founder_tags table
type FounderTag struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	FounderID uint64 `gorm:"column:founder_id;not null;uniqueIndex:idx_founder_tag"`
	Tag       string `gorm:"column:tag;not null;type:varchar(100);uniqueIndex:idx_founder_tag"`
}

// TableName specifies the table name for the FounderTag model
func (FounderTag) TableName() string {
	return "founder_tags"
}
