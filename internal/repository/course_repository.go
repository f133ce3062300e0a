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

// CourseRepository manages persistence for course records.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns courses matching the provided filters.
func (r *CourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, int, error) {
	base := "FROM cursos c"
	args := []interface{}{}
	conditions := []string{"1=1"}

	if filter.Ativo != nil {
		conditions = append(conditions, fmt.Sprintf("c.ativo = $%d", len(args)+1))
		args = append(args, *filter.Ativo)
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(LOWER(c.nome) LIKE $%d OR LOWER(c.codigo) LIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	base = fmt.Sprintf("%s WHERE %s", base, strings.Join(conditions, " AND "))

	allowedSorts := map[string]string{
		"nome":       "c.nome",
		"codigo":     "c.codigo",
		"created_at": "c.created_at",
	}
	column, order, limit, offset := listClause(allowedSorts, "c.created_at", filter.SortBy, filter.SortOrder, filter.Page, filter.PageSize)

	query := fmt.Sprintf(`SELECT c.id, c.nome, c.codigo, c.ativo, c.created_at, c.updated_at
        %s ORDER BY %s %s LIMIT %d OFFSET %d`, base, column, order, limit, offset)

	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list courses: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count courses: %w", err)
	}
	return courses, total, nil
}

// FindByID fetches a course by ID.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	const query = `SELECT id, nome, codigo, ativo, created_at, updated_at FROM cursos WHERE id = $1`
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		return nil, err
	}
	return &course, nil
}

// ExistsByCodigo checks if a course with the given code exists, optionally
// excluding an ID.
func (r *CourseRepository) ExistsByCodigo(ctx context.Context, codigo string, excludeID string) (bool, error) {
	query := "SELECT 1 FROM cursos WHERE codigo = $1"
	args := []interface{}{codigo}
	if excludeID != "" {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check course code: %w", err)
	}
	return true, nil
}

// Create inserts a new course.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now

	const query = `INSERT INTO cursos (id, nome, codigo, ativo, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.ExecContext(ctx, query, course.ID, course.Nome, course.Codigo, course.Ativo, course.CreatedAt, course.UpdatedAt); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// Update modifies an existing course.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	course.UpdatedAt = time.Now().UTC()
	const query = `UPDATE cursos SET nome = $2, codigo = $3, ativo = $4, updated_at = $5 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, course.ID, course.Nome, course.Codigo, course.Ativo, course.UpdatedAt); err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}

// Delete removes a course.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cursos WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}
