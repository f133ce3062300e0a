package models

import "time"

// Student represents a learner (aluno) registered in the institution.
type Student struct {
	ID        string    `db:"id" json:"id"`
	Nome      string    `db:"nome" json:"nome"`
	Email     string    `db:"email" json:"email"`
	Matricula string    `db:"matricula" json:"matricula"`
	Ativo     bool      `db:"ativo" json:"ativo"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// StudentFilter encapsulates allowed search parameters for listing students.
type StudentFilter struct {
	Search    string
	TurmaID   string
	Ativo     *bool
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
