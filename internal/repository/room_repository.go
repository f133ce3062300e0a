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

// RoomRepository manages persistence for classroom records.
type RoomRepository struct {
	db *sqlx.DB
}

// NewRoomRepository constructs a RoomRepository.
func NewRoomRepository(db *sqlx.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// List returns rooms matching the provided filters.
func (r *RoomRepository) List(ctx context.Context, filter models.RoomFilter) ([]models.Room, int, error) {
	base := "FROM salas s"
	args := []interface{}{}
	conditions := []string{"1=1"}

	if filter.Bloco != "" {
		conditions = append(conditions, fmt.Sprintf("s.bloco = $%d", len(args)+1))
		args = append(args, filter.Bloco)
	}
	if filter.Andar != nil {
		conditions = append(conditions, fmt.Sprintf("s.andar = $%d", len(args)+1))
		args = append(args, *filter.Andar)
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(s.numero) LIKE $%d", len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	base = fmt.Sprintf("%s WHERE %s", base, strings.Join(conditions, " AND "))

	allowedSorts := map[string]string{
		"numero":     "s.numero",
		"bloco":      "s.bloco",
		"andar":      "s.andar",
		"capacidade": "s.capacidade",
	}
	column, order, limit, offset := listClause(allowedSorts, "s.bloco", filter.SortBy, filter.SortOrder, filter.Page, filter.PageSize)

	query := fmt.Sprintf(`SELECT s.id, s.numero, s.bloco, s.andar, s.capacidade, s.created_at, s.updated_at
        %s ORDER BY %s %s LIMIT %d OFFSET %d`, base, column, order, limit, offset)

	var rooms []models.Room
	if err := r.db.SelectContext(ctx, &rooms, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list rooms: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count rooms: %w", err)
	}
	return rooms, total, nil
}

// FindByID fetches a room by ID.
func (r *RoomRepository) FindByID(ctx context.Context, id string) (*models.Room, error) {
	const query = `SELECT id, numero, bloco, andar, capacidade, created_at, updated_at FROM salas WHERE id = $1`
	var room models.Room
	if err := r.db.GetContext(ctx, &room, query, id); err != nil {
		return nil, err
	}
	return &room, nil
}

// ExistsByNumeroBloco checks room uniqueness on (numero, bloco).
func (r *RoomRepository) ExistsByNumeroBloco(ctx context.Context, numero, bloco, excludeID string) (bool, error) {
	query := "SELECT 1 FROM salas WHERE numero = $1 AND bloco = $2"
	args := []interface{}{numero, bloco}
	if excludeID != "" {
		query += " AND id <> $3"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check room: %w", err)
	}
	return true, nil
}

// Create inserts a new room.
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	if room.ID == "" {
		room.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	room.CreatedAt = now
	room.UpdatedAt = now

	const query = `INSERT INTO salas (id, numero, bloco, andar, capacidade, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.db.ExecContext(ctx, query, room.ID, room.Numero, room.Bloco, room.Andar, room.Capacidade, room.CreatedAt, room.UpdatedAt); err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

// Update modifies an existing room.
func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	room.UpdatedAt = time.Now().UTC()
	const query = `UPDATE salas SET numero = $2, bloco = $3, andar = $4, capacidade = $5, updated_at = $6 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, room.ID, room.Numero, room.Bloco, room.Andar, room.Capacidade, room.UpdatedAt); err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	return nil
}

// Delete removes a room.
func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM salas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}
