package schema

import "time"

// Embedding represents the founder_embeddings table
type Embedding struct {
	// FounderID is the primary key, one embedding per founder
	FounderID uint64 `gorm:"column:founder_id;primaryKey;autoIncrement:false"`
	// Vector is the embedding itself
	Vector Vector `gorm:"column:vector;not null"`
	// Model names the provider model that produced the vector
	Model string `gorm:"column:model;not null;type:varchar(100)"`
	// ContentHash is the truncated sha256 of the embedded text, model and provider fingerprint,
	// used to skip unchanged founders
	ContentHash string `gorm:"column:content_hash;not null;type:varchar(16)"`
	// EmbeddedAt is when the vector was produced
	EmbeddedAt time.Time `gorm:"column:embedded_at;not null"`
}

// TableName specifies the table name for the Embedding model
func (Embedding) TableName() string {
	return "founder_embeddings"
}
