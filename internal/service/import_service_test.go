package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skapefps/unimap-api/internal/importer"
	"github.com/skapefps/unimap-api/internal/models"
	"github.com/skapefps/unimap-api/pkg/config"
	appErrors "github.com/skapefps/unimap-api/pkg/errors"
	"github.com/skapefps/unimap-api/pkg/jobs"
)

type mockBatchRepo struct {
	received []importer.ClassRecord
	failAt   map[int]string
}

func (m *mockBatchRepo) BatchCreate(ctx context.Context, records []importer.ClassRecord) (*models.BatchOutcome, error) {
	m.received = records
	outcome := &models.BatchOutcome{Sucessos: []models.Aula{}, Erros: []importer.RowError{}}
	for i, rec := range records {
		if reason, ok := m.failAt[i+1]; ok {
			outcome.Erros = append(outcome.Erros, importer.RowError{Linha: i + 1, Erro: reason})
			continue
		}
		outcome.Sucessos = append(outcome.Sucessos, models.Aula{ID: "generated", ClassRecord: rec})
	}
	return outcome, nil
}

func importTestConfig() config.ImportConfig {
	return config.ImportConfig{
		MaxFileSizeBytes:  1024 * 1024,
		AllowedExtensions: []string{".csv"},
		MaxRows:           1000,
	}
}

func validClassRecord() importer.ClassRecord {
	return importer.ClassRecord{
		ProfessorNome:   "Ada Lovelace",
		Disciplina:      "Programação",
		Curso:           "Sistemas de Informação",
		Turma:           "SI-2024-1A",
		PeriodoOriginal: "1",
		SalaNumero:      "206",
		SalaBloco:       "D",
		HorarioInicio:   "18:50",
		HorarioFim:      "19:40",
		DataAula:        "2025-11-10",
	}
}

const sampleCSV = `Professor,Curso,Período,Turma,Disciplina,Sala,Horário,Data da Aula
Ada Lovelace,Sistemas de Informação,1,SI-2024-1A,Programação,D206,18:50-19:40,2025-11-10
Grace Hopper,Sistemas de Informação,1,SI-2024-1A,Compiladores,D206,19:40-18:50,2025-11-10
`

func TestImportServiceValidate(t *testing.T) {
	svc := NewImportService(&mockBatchRepo{}, jobs.NewGate("import", zap.NewNop()), importTestConfig(), nil, zap.NewNop())

	result, err := svc.Validate(context.Background(), "aulas.csv", int64(len(sampleCSV)), strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.Len(t, result.AulasValidas, 1)
	require.Len(t, result.Erros, 1)
	assert.Equal(t, 3, result.Erros[0].Linha)
	assert.Equal(t, "Ada Lovelace", result.AulasValidas[0].ProfessorNome)
	assert.Equal(t, 1, result.AulasValidas[0].DiaSemana)
	assert.Equal(t, "Segunda-feira", result.AulasValidas[0].DiaSemanaNome)
}

func TestImportServiceValidateRejectsExtension(t *testing.T) {
	svc := NewImportService(&mockBatchRepo{}, jobs.NewGate("import", zap.NewNop()), importTestConfig(), nil, zap.NewNop())

	_, err := svc.Validate(context.Background(), "aulas.xlsx", 10, strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestImportServiceValidateRejectsOversizedFile(t *testing.T) {
	cfg := importTestConfig()
	cfg.MaxFileSizeBytes = 8
	svc := NewImportService(&mockBatchRepo{}, jobs.NewGate("import", zap.NewNop()), cfg, nil, zap.NewNop())

	_, err := svc.Validate(context.Background(), "aulas.csv", 100, strings.NewReader(sampleCSV))
	require.Error(t, err)
}

func TestImportServiceValidateRejectsTooManyRows(t *testing.T) {
	cfg := importTestConfig()
	cfg.MaxRows = 2
	svc := NewImportService(&mockBatchRepo{}, jobs.NewGate("import", zap.NewNop()), cfg, nil, zap.NewNop())

	content := "Professor,Curso,Período,Turma,Disciplina,Sala,Horário,Data da Aula\n"
	content += strings.Repeat("Ada Lovelace,Sistemas de Informação,1,SI-2024-1A,Programação,D206,18:50-19:40,2025-11-10\n", 3)
	_, err := svc.Validate(context.Background(), "aulas.csv", int64(len(content)), strings.NewReader(content))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Contains(t, err.Error(), "linhas")
}

func TestImportServiceValidateMissingHeader(t *testing.T) {
	svc := NewImportService(&mockBatchRepo{}, jobs.NewGate("import", zap.NewNop()), importTestConfig(), nil, zap.NewNop())

	content := "Professor,Curso\nAda,SI\n"
	_, err := svc.Validate(context.Background(), "aulas.csv", int64(len(content)), strings.NewReader(content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cabeçalho")
}

func TestImportServiceValidateReleasesGate(t *testing.T) {
	gate := jobs.NewGate("import", zap.NewNop())
	svc := NewImportService(&mockBatchRepo{}, gate, importTestConfig(), nil, zap.NewNop())

	_, err := svc.Validate(context.Background(), "aulas.csv", int64(len(sampleCSV)), strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.False(t, gate.Held())

	_, err = svc.Validate(context.Background(), "aulas.bad", 10, strings.NewReader("x"))
	require.Error(t, err)
	assert.False(t, gate.Held())
}

func TestImportServiceConcurrentImportConflicts(t *testing.T) {
	gate := jobs.NewGate("import", zap.NewNop())
	svc := NewImportService(&mockBatchRepo{}, gate, importTestConfig(), nil, zap.NewNop())

	require.True(t, gate.TryAcquire())
	defer gate.Release()

	_, err := svc.Import(context.Background(), []importer.ClassRecord{validClassRecord()})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrImportRunning.Code, appErrors.FromError(err).Code)
}

func TestImportServiceImportPersistsValidRows(t *testing.T) {
	repo := &mockBatchRepo{}
	svc := NewImportService(repo, jobs.NewGate("import", zap.NewNop()), importTestConfig(), nil, zap.NewNop())

	outcome, err := svc.Import(context.Background(), []importer.ClassRecord{validClassRecord()})
	require.NoError(t, err)
	assert.Len(t, outcome.Sucessos, 1)
	assert.Empty(t, outcome.Erros)
	require.Len(t, repo.received, 1)
	assert.Equal(t, 1, repo.received[0].DiaSemana)
	assert.Equal(t, "Segunda-feira", repo.received[0].DiaSemanaNome)
}

func TestImportServiceImportRejectsInvalidRowsWithoutAborting(t *testing.T) {
	repo := &mockBatchRepo{}
	svc := NewImportService(repo, jobs.NewGate("import", zap.NewNop()), importTestConfig(), nil, zap.NewNop())

	bad := validClassRecord()
	bad.HorarioInicio = "19:40"
	bad.HorarioFim = "18:50"

	outcome, err := svc.Import(context.Background(), []importer.ClassRecord{bad, validClassRecord()})
	require.NoError(t, err)
	assert.Len(t, outcome.Sucessos, 1)
	require.Len(t, outcome.Erros, 1)
	assert.Equal(t, 1, outcome.Erros[0].Linha)
}

func TestImportServiceImportRemapsBatchErrorPositions(t *testing.T) {
	repo := &mockBatchRepo{failAt: map[int]string{1: "constraint violation"}}
	svc := NewImportService(repo, jobs.NewGate("import", zap.NewNop()), importTestConfig(), nil, zap.NewNop())

	bad := validClassRecord()
	bad.DataAula = "2025-13-10"

	outcome, err := svc.Import(context.Background(), []importer.ClassRecord{bad, validClassRecord()})
	require.NoError(t, err)
	assert.Empty(t, outcome.Sucessos)
	require.Len(t, outcome.Erros, 2)
	// the revalidation error keeps position 1, the persistence error
	// maps back to position 2 in the submitted payload
	assert.Equal(t, 1, outcome.Erros[0].Linha)
	assert.Equal(t, 2, outcome.Erros[1].Linha)
}

func TestImportServiceImportEmptyBatch(t *testing.T) {
	svc := NewImportService(&mockBatchRepo{}, jobs.NewGate("import", zap.NewNop()), importTestConfig(), nil, zap.NewNop())

	_, err := svc.Import(context.Background(), nil)
	require.Error(t, err)
}
