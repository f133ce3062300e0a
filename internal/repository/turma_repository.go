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

// TurmaRepository manages persistence for class sections.
type TurmaRepository struct {
	db *sqlx.DB
}

// NewTurmaRepository constructs a TurmaRepository.
func NewTurmaRepository(db *sqlx.DB) *TurmaRepository {
	return &TurmaRepository{db: db}
}

// List returns class sections with course context.
func (r *TurmaRepository) List(ctx context.Context, filter models.TurmaFilter) ([]models.TurmaDetail, int, error) {
	base := "FROM turmas t JOIN cursos c ON c.id = t.curso_id"
	args := []interface{}{}
	conditions := []string{"1=1"}

	if filter.CursoID != "" {
		conditions = append(conditions, fmt.Sprintf("t.curso_id = $%d", len(args)+1))
		args = append(args, filter.CursoID)
	}
	if filter.Periodo != nil {
		conditions = append(conditions, fmt.Sprintf("t.periodo = $%d", len(args)+1))
		args = append(args, *filter.Periodo)
	}
	if filter.Ano != nil {
		conditions = append(conditions, fmt.Sprintf("t.ano = $%d", len(args)+1))
		args = append(args, *filter.Ano)
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(LOWER(t.nome) LIKE $%d OR LOWER(c.nome) LIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	base = fmt.Sprintf("%s WHERE %s", base, strings.Join(conditions, " AND "))

	allowedSorts := map[string]string{
		"nome":    "t.nome",
		"periodo": "t.periodo",
		"ano":     "t.ano",
	}
	column, order, limit, offset := listClause(allowedSorts, "t.created_at", filter.SortBy, filter.SortOrder, filter.Page, filter.PageSize)

	query := fmt.Sprintf(`SELECT t.id, t.curso_id, t.nome, t.periodo, t.ano, t.created_at, t.updated_at,
        c.nome AS curso_nome, c.codigo AS curso_codigo
        %s ORDER BY %s %s LIMIT %d OFFSET %d`, base, column, order, limit, offset)

	var turmas []models.TurmaDetail
	if err := r.db.SelectContext(ctx, &turmas, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list turmas: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count turmas: %w", err)
	}
	return turmas, total, nil
}

// FindByID fetches a class section with course context.
func (r *TurmaRepository) FindByID(ctx context.Context, id string) (*models.TurmaDetail, error) {
	const query = `SELECT t.id, t.curso_id, t.nome, t.periodo, t.ano, t.created_at, t.updated_at,
        c.nome AS curso_nome, c.codigo AS curso_codigo
        FROM turmas t JOIN cursos c ON c.id = t.curso_id
        WHERE t.id = $1`
	var detail models.TurmaDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ExistsByNome checks section-name uniqueness within a course and year.
func (r *TurmaRepository) ExistsByNome(ctx context.Context, cursoID, nome string, ano int, excludeID string) (bool, error) {
	query := "SELECT 1 FROM turmas WHERE curso_id = $1 AND nome = $2 AND ano = $3"
	args := []interface{}{cursoID, nome, ano}
	if excludeID != "" {
		query += " AND id <> $4"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check turma: %w", err)
	}
	return true, nil
}

// Create inserts a new class section.
func (r *TurmaRepository) Create(ctx context.Context, turma *models.Turma) error {
	if turma.ID == "" {
		turma.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	turma.CreatedAt = now
	turma.UpdatedAt = now

	const query = `INSERT INTO turmas (id, curso_id, nome, periodo, ano, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.db.ExecContext(ctx, query, turma.ID, turma.CursoID, turma.Nome, turma.Periodo, turma.Ano, turma.CreatedAt, turma.UpdatedAt); err != nil {
		return fmt.Errorf("create turma: %w", err)
	}
	return nil
}

// Update modifies an existing class section.
func (r *TurmaRepository) Update(ctx context.Context, turma *models.Turma) error {
	turma.UpdatedAt = time.Now().UTC()
	const query = `UPDATE turmas SET curso_id = $2, nome = $3, periodo = $4, ano = $5, updated_at = $6 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, turma.ID, turma.CursoID, turma.Nome, turma.Periodo, turma.Ano, turma.UpdatedAt); err != nil {
		return fmt.Errorf("update turma: %w", err)
	}
	return nil
}

// Delete removes a class section.
func (r *TurmaRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM turmas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete turma: %w", err)
	}
	return nil
}
