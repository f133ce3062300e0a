package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/skapefps/unimap-api/internal/importer"
	"github.com/skapefps/unimap-api/internal/models"
)

// AulaRepository manages persistence for scheduled class records.
type AulaRepository struct {
	db *sqlx.DB
}

// NewAulaRepository constructs an AulaRepository.
func NewAulaRepository(db *sqlx.DB) *AulaRepository {
	return &AulaRepository{db: db}
}

const aulaColumns = "id, professor_nome, disciplina, curso, turma, periodo_original, sala_numero, sala_bloco, horario_inicio, horario_fim, data_aula, dia_semana, dia_semana_nome, created_at, updated_at"

// List returns scheduled classes matching the provided filters.
func (r *AulaRepository) List(ctx context.Context, filter models.AulaFilter) ([]models.Aula, int, error) {
	base := "FROM aulas au"
	args := []interface{}{}
	conditions := []string{"1=1"}

	if filter.Turma != "" {
		conditions = append(conditions, fmt.Sprintf("au.turma = $%d", len(args)+1))
		args = append(args, filter.Turma)
	}
	if filter.Professor != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(au.professor_nome) LIKE $%d", len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.Professor)+"%")
	}
	if filter.Curso != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(au.curso) LIKE $%d", len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.Curso)+"%")
	}
	if filter.DataAula != "" {
		conditions = append(conditions, fmt.Sprintf("au.data_aula = $%d", len(args)+1))
		args = append(args, filter.DataAula)
	}

	base = fmt.Sprintf("%s WHERE %s", base, strings.Join(conditions, " AND "))

	allowedSorts := map[string]string{
		"data_aula":      "au.data_aula",
		"horario_inicio": "au.horario_inicio",
		"professor":      "au.professor_nome",
		"turma":          "au.turma",
	}
	column, order, limit, offset := listClause(allowedSorts, "au.data_aula", filter.SortBy, filter.SortOrder, filter.Page, filter.PageSize)

	query := fmt.Sprintf(`SELECT au.%s %s ORDER BY %s %s, au.horario_inicio ASC LIMIT %d OFFSET %d`,
		strings.ReplaceAll(aulaColumns, ", ", ", au."), base, column, order, limit, offset)

	var aulas []models.Aula
	if err := r.db.SelectContext(ctx, &aulas, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list aulas: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count aulas: %w", err)
	}
	return aulas, total, nil
}

// ListByTurma returns every scheduled class for a section name ordered by
// date and start time, for schedule exports.
func (r *AulaRepository) ListByTurma(ctx context.Context, turma string) ([]models.Aula, error) {
	query := fmt.Sprintf(`SELECT %s FROM aulas WHERE turma = $1 ORDER BY data_aula ASC, horario_inicio ASC`, aulaColumns)
	var aulas []models.Aula
	if err := r.db.SelectContext(ctx, &aulas, query, turma); err != nil {
		return nil, fmt.Errorf("list aulas by turma: %w", err)
	}
	return aulas, nil
}

// FindByID fetches a scheduled class by ID.
func (r *AulaRepository) FindByID(ctx context.Context, id string) (*models.Aula, error) {
	query := fmt.Sprintf(`SELECT %s FROM aulas WHERE id = $1`, aulaColumns)
	var aula models.Aula
	if err := r.db.GetContext(ctx, &aula, query, id); err != nil {
		return nil, err
	}
	return &aula, nil
}

// Create inserts one scheduled class.
func (r *AulaRepository) Create(ctx context.Context, aula *models.Aula) error {
	if aula.ID == "" {
		aula.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	aula.CreatedAt = now
	aula.UpdatedAt = now

	const query = `INSERT INTO aulas (id, professor_nome, disciplina, curso, turma, periodo_original,
        sala_numero, sala_bloco, horario_inicio, horario_fim, data_aula, dia_semana, dia_semana_nome,
        created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	if _, err := r.db.ExecContext(ctx, query,
		aula.ID, aula.ProfessorNome, aula.Disciplina, aula.Curso, aula.Turma, aula.PeriodoOriginal,
		aula.SalaNumero, aula.SalaBloco, aula.HorarioInicio, aula.HorarioFim, aula.DataAula,
		aula.DiaSemana, aula.DiaSemanaNome, aula.CreatedAt, aula.UpdatedAt); err != nil {
		return fmt.Errorf("create aula: %w", err)
	}
	return nil
}

// Update modifies an existing scheduled class.
func (r *AulaRepository) Update(ctx context.Context, aula *models.Aula) error {
	aula.UpdatedAt = time.Now().UTC()
	const query = `UPDATE aulas SET professor_nome = $2, disciplina = $3, curso = $4, turma = $5,
        periodo_original = $6, sala_numero = $7, sala_bloco = $8, horario_inicio = $9,
        horario_fim = $10, data_aula = $11, dia_semana = $12, dia_semana_nome = $13, updated_at = $14
        WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query,
		aula.ID, aula.ProfessorNome, aula.Disciplina, aula.Curso, aula.Turma, aula.PeriodoOriginal,
		aula.SalaNumero, aula.SalaBloco, aula.HorarioInicio, aula.HorarioFim, aula.DataAula,
		aula.DiaSemana, aula.DiaSemanaNome, aula.UpdatedAt); err != nil {
		return fmt.Errorf("update aula: %w", err)
	}
	return nil
}

// Delete removes a scheduled class.
func (r *AulaRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM aulas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete aula: %w", err)
	}
	return nil
}

// BatchCreate inserts a set of records collecting a per-row outcome for
// each: a failed insert becomes a RowError (1-based position in the batch)
// without aborting the remaining rows.
func (r *AulaRepository) BatchCreate(ctx context.Context, records []importer.ClassRecord) (*models.BatchOutcome, error) {
	outcome := &models.BatchOutcome{
		Sucessos: make([]models.Aula, 0, len(records)),
		Erros:    make([]importer.RowError, 0),
	}

	for i, rec := range records {
		aula := &models.Aula{ClassRecord: rec}
		if err := r.Create(ctx, aula); err != nil {
			outcome.Erros = append(outcome.Erros, importer.RowError{
				Linha: i + 1,
				Erro:  err.Error(),
				Dados: map[string]string{
					"professor_nome": rec.ProfessorNome,
					"disciplina":     rec.Disciplina,
					"turma":          rec.Turma,
					"data_aula":      rec.DataAula,
				},
			})
			continue
		}
		outcome.Sucessos = append(outcome.Sucessos, *aula)
	}

	return outcome, nil
}
