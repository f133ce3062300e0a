package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skapefps/unimap-api/internal/importer"
	"github.com/skapefps/unimap-api/internal/models"
)

type mockExportTurmas struct {
	turmas map[string]models.TurmaDetail
}

func (m *mockExportTurmas) FindByID(ctx context.Context, id string) (*models.TurmaDetail, error) {
	if t, ok := m.turmas[id]; ok {
		return &t, nil
	}
	return nil, sql.ErrNoRows
}

type mockExportAulas struct {
	aulas []models.Aula
}

func (m *mockExportAulas) ListByTurma(ctx context.Context, turma string) ([]models.Aula, error) {
	return m.aulas, nil
}

func newExportFixture() *ExportService {
	turmas := &mockExportTurmas{turmas: map[string]models.TurmaDetail{
		"tu-1": {Turma: models.Turma{ID: "tu-1", Nome: "SI-2024-1A"}},
	}}
	aulas := &mockExportAulas{aulas: []models.Aula{
		{ID: "a-1", ClassRecord: importer.ClassRecord{
			ProfessorNome: "Ada Lovelace",
			Disciplina:    "Programação",
			Curso:         "Sistemas de Informação",
			Turma:         "SI-2024-1A",
			SalaNumero:    "206",
			SalaBloco:     "D",
			HorarioInicio: "18:50",
			HorarioFim:    "19:40",
			DataAula:      "2025-11-10",
			DiaSemana:     1,
			DiaSemanaNome: "Segunda-feira",
		}},
	}}
	return NewExportService(turmas, aulas, nil, nil, zap.NewNop())
}

func TestExportServiceTurmaScheduleCSV(t *testing.T) {
	svc := newExportFixture()

	result, err := svc.TurmaSchedule(context.Background(), "tu-1", ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.True(t, strings.HasPrefix(result.Filename, "horarios_SI-2024-1A_"))
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))

	body := string(result.Payload)
	assert.Contains(t, body, "Ada Lovelace")
	assert.Contains(t, body, "18:50-19:40")
	assert.Contains(t, body, "D206")
	assert.Contains(t, body, "Segunda-feira")
}

func TestExportServiceTurmaSchedulePDF(t *testing.T) {
	svc := newExportFixture()

	result, err := svc.TurmaSchedule(context.Background(), "tu-1", ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Filename, ".pdf"))
	assert.NotEmpty(t, result.Payload)
}

func TestExportServiceTurmaScheduleUnknownTurma(t *testing.T) {
	svc := newExportFixture()

	_, err := svc.TurmaSchedule(context.Background(), "missing", ExportFormatCSV)
	require.Error(t, err)
}

func TestExportServiceTurmaScheduleUnsupportedFormat(t *testing.T) {
	svc := newExportFixture()

	_, err := svc.TurmaSchedule(context.Background(), "tu-1", ExportFormat("xlsx"))
	require.Error(t, err)
}
