package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skapefps/unimap-api/internal/models"
)

func TestCourseRepositoryListWithSearch(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	rows := sqlmock.NewRows([]string{"id", "nome", "codigo", "ativo", "created_at", "updated_at"}).
		AddRow("c-1", "Sistemas de Informação", "SI", true, time.Now(), time.Now())
	mock.ExpectQuery("SELECT c.id, c.nome").
		WithArgs("%sistemas%").
		WillReturnRows(rows)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM cursos`).
		WithArgs("%sistemas%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	courses, total, err := repo.List(context.Background(), models.CourseFilter{Search: "Sistemas"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, courses, 1)
	assert.Equal(t, "SI", courses[0].Codigo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryExistsByCodigo(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery("SELECT 1 FROM cursos WHERE codigo").
		WithArgs("SI").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(1))

	exists, err := repo.ExistsByCodigo(context.Background(), "SI", "")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryExistsByCodigoExcludesSelf(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery("SELECT 1 FROM cursos WHERE codigo").
		WithArgs("SI", "c-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}))

	exists, err := repo.ExistsByCodigo(context.Background(), "SI", "c-1")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectExec("INSERT INTO cursos").
		WithArgs(sqlmock.AnyArg(), "Sistemas de Informação", "SI", true, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	course := &models.Course{Nome: "Sistemas de Informação", Codigo: "SI", Ativo: true}
	require.NoError(t, repo.Create(context.Background(), course))
	assert.NotEmpty(t, course.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
