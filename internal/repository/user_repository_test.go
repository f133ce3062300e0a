package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skapefps/unimap-api/internal/models"
)

func TestUserRepositoryFindByEmail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "nome", "role", "ativo", "last_login", "created_at", "updated_at"}).
		AddRow("u-1", "admin@unimap.edu.br", "hash", "Admin", string(models.RoleAdmin), true, now, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, nome, role, ativo, last_login, created_at, updated_at FROM users WHERE email = $1 LIMIT 1")).
		WithArgs("admin@unimap.edu.br").
		WillReturnRows(rows)

	user, err := repo.FindByEmail(context.Background(), "admin@unimap.edu.br")
	require.NoError(t, err)
	assert.Equal(t, "admin@unimap.edu.br", user.Email)
	assert.True(t, user.Ativo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreateRefreshToken(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO refresh_tokens").WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateRefreshToken(context.Background(), &models.RefreshToken{
		UserID:    "u-1",
		Token:     "token",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryRevokeRefreshToken(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	revokedAt := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE refresh_tokens SET revoked = TRUE, revoked_at = $2 WHERE id = $1")).
		WithArgs("rt-1", revokedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RevokeRefreshToken(context.Background(), "rt-1", revokedAt)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
