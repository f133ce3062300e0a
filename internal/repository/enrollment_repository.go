package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/skapefps/unimap-api/internal/models"
)

// EnrollmentRepository manages the student-to-section link table.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs an EnrollmentRepository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// List returns enrollments with student and section context.
func (r *EnrollmentRepository) List(ctx context.Context, filter models.EnrollmentFilter) ([]models.EnrollmentDetail, int, error) {
	base := `FROM matriculas m
        JOIN alunos a ON a.id = m.aluno_id
        JOIN turmas t ON t.id = m.turma_id`
	args := []interface{}{}
	conditions := []string{"1=1"}

	if filter.AlunoID != "" {
		conditions = append(conditions, fmt.Sprintf("m.aluno_id = $%d", len(args)+1))
		args = append(args, filter.AlunoID)
	}
	if filter.TurmaID != "" {
		conditions = append(conditions, fmt.Sprintf("m.turma_id = $%d", len(args)+1))
		args = append(args, filter.TurmaID)
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("m.status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}

	base = fmt.Sprintf("%s WHERE %s", base, strings.Join(conditions, " AND "))

	allowedSorts := map[string]string{
		"matriculado_em": "m.matriculado_em",
		"aluno":          "a.nome",
		"turma":          "t.nome",
	}
	column, order, limit, offset := listClause(allowedSorts, "m.matriculado_em", filter.SortBy, filter.SortOrder, filter.Page, filter.PageSize)

	query := fmt.Sprintf(`SELECT m.id, m.aluno_id, m.turma_id, m.status, m.matriculado_em, m.desmatriculado_em,
        a.nome AS aluno_nome, a.matricula AS aluno_matricula, t.nome AS turma_nome
        %s ORDER BY %s %s LIMIT %d OFFSET %d`, base, column, order, limit, offset)

	var enrollments []models.EnrollmentDetail
	if err := r.db.SelectContext(ctx, &enrollments, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list enrollments: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count enrollments: %w", err)
	}
	return enrollments, total, nil
}

// FindActive returns the active enrollment linking a student to a section.
func (r *EnrollmentRepository) FindActive(ctx context.Context, alunoID, turmaID string) (*models.Enrollment, error) {
	const query = `SELECT id, aluno_id, turma_id, status, matriculado_em, desmatriculado_em
        FROM matriculas WHERE aluno_id = $1 AND turma_id = $2 AND status = $3`
	var enrollment models.Enrollment
	if err := r.db.GetContext(ctx, &enrollment, query, alunoID, turmaID, models.EnrollmentStatusAtiva); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Create links a student to a class section.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if enrollment.ID == "" {
		enrollment.ID = uuid.NewString()
	}
	enrollment.Status = models.EnrollmentStatusAtiva
	enrollment.MatriculadoEm = time.Now().UTC()

	const query = `INSERT INTO matriculas (id, aluno_id, turma_id, status, matriculado_em)
        VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, query, enrollment.ID, enrollment.AlunoID, enrollment.TurmaID, enrollment.Status, enrollment.MatriculadoEm); err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

// Cancel marks an enrollment as cancelled.
func (r *EnrollmentRepository) Cancel(ctx context.Context, id string) error {
	const query = `UPDATE matriculas SET status = $2, desmatriculado_em = $3 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, models.EnrollmentStatusCancelada, time.Now().UTC()); err != nil {
		return fmt.Errorf("cancel enrollment: %w", err)
	}
	return nil
}

// CountActiveByTurma returns the number of active enrollments in a section.
func (r *EnrollmentRepository) CountActiveByTurma(ctx context.Context, turmaID string) (int, error) {
	const query = `SELECT COUNT(*) FROM matriculas WHERE turma_id = $1 AND status = $2`
	var total int
	if err := r.db.GetContext(ctx, &total, query, turmaID, models.EnrollmentStatusAtiva); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("count enrollments by turma: %w", err)
	}
	return total, nil
}
