package schema

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	gormschema "gorm.io/gorm/schema"
)

// Vector is an embedding column stored as a pgvector value on PostgreSQL
// and as its text form ("[1,2,3]") on SQLite.
type Vector struct {
	pgvector.Vector
}

// NewVector wraps a float32 slice
func NewVector(v []float32) Vector {
	return Vector{Vector: pgvector.NewVector(v)}
}

// GormDBDataType picks the column type per dialect
func (Vector) GormDBDataType(db *gorm.DB, _ *gormschema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "vector"
	}
	return "text"
}
