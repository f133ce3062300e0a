package models

import "time"

// DashboardStats carries the entity counts shown on the admin dashboard.
type DashboardStats struct {
	Cursos           int       `db:"cursos" json:"cursos"`
	Salas            int       `db:"salas" json:"salas"`
	Turmas           int       `db:"turmas" json:"turmas"`
	Alunos           int       `db:"alunos" json:"alunos"`
	Aulas            int       `db:"aulas" json:"aulas"`
	MatriculasAtivas int       `db:"matriculas_ativas" json:"matriculas_ativas"`
	GeneratedAt      time.Time `json:"generated_at"`
}
