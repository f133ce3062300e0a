package models

import (
	"time"

	"github.com/skapefps/unimap-api/internal/importer"
)

// Aula is a scheduled class occurrence persisted from the import pipeline
// or created directly through the API.
type Aula struct {
	ID string `db:"id" json:"id"`
	importer.ClassRecord
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// AulaFilter defines filter criteria for listing scheduled classes.
type AulaFilter struct {
	Turma     string
	Professor string
	Curso     string
	DataAula  string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// BatchOutcome partitions a bulk insert into accepted records and per-row
// failures.
type BatchOutcome struct {
	Sucessos []Aula              `json:"sucessos"`
	Erros    []importer.RowError `json:"erros"`
}
