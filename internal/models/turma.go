package models

import "time"

// Turma represents a class section: one offering of coursework tied to a
// course, curriculum period and year.
type Turma struct {
	ID        string    `db:"id" json:"id"`
	CursoID   string    `db:"curso_id" json:"curso_id"`
	Nome      string    `db:"nome" json:"nome"`
	Periodo   int       `db:"periodo" json:"periodo"`
	Ano       int       `db:"ano" json:"ano"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// TurmaDetail extends Turma with course info for list responses.
type TurmaDetail struct {
	Turma
	CursoNome   string `db:"curso_nome" json:"curso_nome"`
	CursoCodigo string `db:"curso_codigo" json:"curso_codigo"`
}

// TurmaFilter defines filter criteria for listing class sections.
type TurmaFilter struct {
	CursoID   string
	Periodo   *int
	Ano       *int
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
