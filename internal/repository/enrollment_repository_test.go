package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skapefps/unimap-api/internal/models"
)

func TestEnrollmentRepositoryFindActive(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "aluno_id", "turma_id", "status", "matriculado_em", "desmatriculado_em"}).
		AddRow("m-1", "al-1", "tu-1", models.EnrollmentStatusAtiva, time.Now(), nil)
	mock.ExpectQuery("SELECT id, aluno_id, turma_id").
		WithArgs("al-1", "tu-1", models.EnrollmentStatusAtiva).
		WillReturnRows(rows)

	enrollment, err := repo.FindActive(context.Background(), "al-1", "tu-1")
	require.NoError(t, err)
	assert.Equal(t, "m-1", enrollment.ID)
	assert.Equal(t, models.EnrollmentStatusAtiva, enrollment.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryFindActiveNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectQuery("SELECT id, aluno_id, turma_id").
		WithArgs("al-1", "tu-9", models.EnrollmentStatusAtiva).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindActive(context.Background(), "al-1", "tu-9")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectExec("INSERT INTO matriculas").
		WithArgs(sqlmock.AnyArg(), "al-1", "tu-1", models.EnrollmentStatusAtiva, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	enrollment := &models.Enrollment{AlunoID: "al-1", TurmaID: "tu-1"}
	require.NoError(t, repo.Create(context.Background(), enrollment))
	assert.NotEmpty(t, enrollment.ID)
	assert.Equal(t, models.EnrollmentStatusAtiva, enrollment.Status)
	assert.False(t, enrollment.MatriculadoEm.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryCancel(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectExec("UPDATE matriculas SET status").
		WithArgs("m-1", models.EnrollmentStatusCancelada, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Cancel(context.Background(), "m-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryCountActiveByTurma(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM matriculas`).
		WithArgs("tu-1", models.EnrollmentStatusAtiva).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	total, err := repo.CountActiveByTurma(context.Background(), "tu-1")
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
