package models

import "time"

// EnrollmentStatus represents the lifecycle of an enrollment.
type EnrollmentStatus string

// Possible enrollment statuses.
const (
	EnrollmentStatusAtiva     EnrollmentStatus = "ATIVA"
	EnrollmentStatusCancelada EnrollmentStatus = "CANCELADA"
)

// Enrollment links a student (aluno) to a class section (turma).
type Enrollment struct {
	ID               string           `db:"id" json:"id"`
	AlunoID          string           `db:"aluno_id" json:"aluno_id"`
	TurmaID          string           `db:"turma_id" json:"turma_id"`
	Status           EnrollmentStatus `db:"status" json:"status"`
	MatriculadoEm    time.Time        `db:"matriculado_em" json:"matriculado_em"`
	DesmatriculadoEm *time.Time       `db:"desmatriculado_em" json:"desmatriculado_em,omitempty"`
}

// EnrollmentDetail enriches Enrollment with student and section info.
type EnrollmentDetail struct {
	Enrollment
	AlunoNome      string `db:"aluno_nome" json:"aluno_nome"`
	AlunoMatricula string `db:"aluno_matricula" json:"aluno_matricula"`
	TurmaNome      string `db:"turma_nome" json:"turma_nome"`
}

// EnrollmentFilter provides filters for listing enrollments.
type EnrollmentFilter struct {
	AlunoID   string
	TurmaID   string
	Status    EnrollmentStatus
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
