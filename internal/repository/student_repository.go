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

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns students matching the provided filters.
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, int, error) {
	base := "FROM alunos a"
	args := []interface{}{}
	conditions := []string{"1=1"}

	if filter.TurmaID != "" {
		base += " JOIN matriculas m ON m.aluno_id = a.id AND m.status = $1"
		args = append(args, models.EnrollmentStatusAtiva)
		conditions = append(conditions, fmt.Sprintf("m.turma_id = $%d", len(args)+1))
		args = append(args, filter.TurmaID)
	}
	if filter.Ativo != nil {
		conditions = append(conditions, fmt.Sprintf("a.ativo = $%d", len(args)+1))
		args = append(args, *filter.Ativo)
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(LOWER(a.nome) LIKE $%d OR LOWER(a.matricula) LIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	base = fmt.Sprintf("%s WHERE %s", base, strings.Join(conditions, " AND "))

	allowedSorts := map[string]string{
		"nome":       "a.nome",
		"matricula":  "a.matricula",
		"created_at": "a.created_at",
	}
	column, order, limit, offset := listClause(allowedSorts, "a.created_at", filter.SortBy, filter.SortOrder, filter.Page, filter.PageSize)

	query := fmt.Sprintf(`SELECT a.id, a.nome, a.email, a.matricula, a.ativo, a.created_at, a.updated_at
        %s ORDER BY %s %s LIMIT %d OFFSET %d`, base, column, order, limit, offset)

	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list students: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(DISTINCT a.id) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count students: %w", err)
	}
	return students, total, nil
}

// FindByID fetches a student by ID.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	const query = `SELECT id, nome, email, matricula, ativo, created_at, updated_at FROM alunos WHERE id = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

// ExistsByMatricula checks if a student with the given registration number
// exists, optionally excluding an ID.
func (r *StudentRepository) ExistsByMatricula(ctx context.Context, matricula string, excludeID string) (bool, error) {
	query := "SELECT 1 FROM alunos WHERE matricula = $1"
	args := []interface{}{matricula}
	if excludeID != "" {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check matricula: %w", err)
	}
	return true, nil
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	student.CreatedAt = now
	student.UpdatedAt = now

	const query = `INSERT INTO alunos (id, nome, email, matricula, ativo, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.db.ExecContext(ctx, query, student.ID, student.Nome, student.Email, student.Matricula, student.Ativo, student.CreatedAt, student.UpdatedAt); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// Update modifies an existing student record.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	student.UpdatedAt = time.Now().UTC()
	const query = `UPDATE alunos SET nome = $2, email = $3, matricula = $4, ativo = $5, updated_at = $6 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, student.ID, student.Nome, student.Email, student.Matricula, student.Ativo, student.UpdatedAt); err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	return nil
}

// Deactivate marks a student as inactive.
func (r *StudentRepository) Deactivate(ctx context.Context, id string) error {
	const query = `UPDATE alunos SET ativo = false, updated_at = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, time.Now().UTC()); err != nil {
		return fmt.Errorf("deactivate student: %w", err)
	}
	return nil
}
