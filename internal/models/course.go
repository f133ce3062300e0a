package models

import "time"

// Course represents a degree course (curso) offered by the institution.
type Course struct {
	ID        string    `db:"id" json:"id"`
	Nome      string    `db:"nome" json:"nome"`
	Codigo    string    `db:"codigo" json:"codigo"`
	Ativo     bool      `db:"ativo" json:"ativo"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CourseFilter encapsulates search parameters for listing courses.
type CourseFilter struct {
	Search    string
	Ativo     *bool
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
