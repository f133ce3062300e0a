package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/skapefps/unimap-api/internal/models"
)

// DashboardRepository aggregates entity counts for the admin dashboard.
type DashboardRepository struct {
	db *sqlx.DB
}

// NewDashboardRepository constructs a DashboardRepository.
func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Stats collects all entity counts in a single round trip.
func (r *DashboardRepository) Stats(ctx context.Context) (*models.DashboardStats, error) {
	const query = `SELECT
        (SELECT COUNT(*) FROM cursos) AS cursos,
        (SELECT COUNT(*) FROM salas) AS salas,
        (SELECT COUNT(*) FROM turmas) AS turmas,
        (SELECT COUNT(*) FROM alunos WHERE ativo = true) AS alunos,
        (SELECT COUNT(*) FROM aulas) AS aulas,
        (SELECT COUNT(*) FROM matriculas WHERE status = 'ATIVA') AS matriculas_ativas`
	var stats models.DashboardStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &stats, nil
}
