package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skapefps/unimap-api/internal/importer"
	"github.com/skapefps/unimap-api/internal/models"
)

func sampleRecord(professor string) importer.ClassRecord {
	return importer.ClassRecord{
		ProfessorNome:   professor,
		Disciplina:      "Programação",
		Curso:           "Sistemas de Informação",
		Turma:           "SI-2024-1A",
		PeriodoOriginal: "1",
		SalaNumero:      "206",
		SalaBloco:       "D",
		HorarioInicio:   "18:50",
		HorarioFim:      "19:40",
		DataAula:        "2025-11-10",
		DiaSemana:       1,
		DiaSemanaNome:   "Segunda-feira",
	}
}

func TestAulaRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAulaRepository(db)

	mock.ExpectExec("INSERT INTO aulas").
		WithArgs(sqlmock.AnyArg(), "Ada Lovelace", "Programação", "Sistemas de Informação", "SI-2024-1A", "1",
			"206", "D", "18:50", "19:40", "2025-11-10", 1, "Segunda-feira", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	aula := &models.Aula{ClassRecord: sampleRecord("Ada Lovelace")}
	require.NoError(t, repo.Create(context.Background(), aula))
	assert.NotEmpty(t, aula.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAulaRepositoryBatchCreateAllSucceed(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAulaRepository(db)

	mock.ExpectExec("INSERT INTO aulas").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO aulas").WillReturnResult(sqlmock.NewResult(1, 1))

	outcome, err := repo.BatchCreate(context.Background(), []importer.ClassRecord{
		sampleRecord("Ada Lovelace"),
		sampleRecord("Grace Hopper"),
	})
	require.NoError(t, err)
	assert.Len(t, outcome.Sucessos, 2)
	assert.Empty(t, outcome.Erros)
	for _, aula := range outcome.Sucessos {
		assert.NotEmpty(t, aula.ID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAulaRepositoryBatchCreatePartialFailure(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAulaRepository(db)

	mock.ExpectExec("INSERT INTO aulas").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO aulas").WillReturnError(fmt.Errorf("constraint violation"))
	mock.ExpectExec("INSERT INTO aulas").WillReturnResult(sqlmock.NewResult(1, 1))

	outcome, err := repo.BatchCreate(context.Background(), []importer.ClassRecord{
		sampleRecord("Ada Lovelace"),
		sampleRecord("Grace Hopper"),
		sampleRecord("Alan Turing"),
	})
	require.NoError(t, err)
	assert.Len(t, outcome.Sucessos, 2)
	require.Len(t, outcome.Erros, 1)
	assert.Equal(t, 2, outcome.Erros[0].Linha)
	assert.Contains(t, outcome.Erros[0].Erro, "constraint violation")
	assert.Equal(t, "Grace Hopper", outcome.Erros[0].Dados["professor_nome"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAulaRepositoryListByTurma(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAulaRepository(db)

	rows := sqlmock.NewRows([]string{"id", "professor_nome", "disciplina", "curso", "turma", "periodo_original",
		"sala_numero", "sala_bloco", "horario_inicio", "horario_fim", "data_aula", "dia_semana", "dia_semana_nome",
		"created_at", "updated_at"}).
		AddRow("1", "Ada", "Prog", "SI", "SI-2024-1A", "1", "206", "D", "18:50", "19:40", "2025-11-10", 1, "Segunda-feira", time.Now(), time.Now())
	mock.ExpectQuery("SELECT id, professor_nome").
		WithArgs("SI-2024-1A").
		WillReturnRows(rows)

	aulas, err := repo.ListByTurma(context.Background(), "SI-2024-1A")
	require.NoError(t, err)
	require.Len(t, aulas, 1)
	assert.Equal(t, "Segunda-feira", aulas[0].DiaSemanaNome)
	assert.NoError(t, mock.ExpectationsWereMet())
}
