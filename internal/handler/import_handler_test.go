package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skapefps/unimap-api/internal/importer"
	"github.com/skapefps/unimap-api/internal/models"
	"github.com/skapefps/unimap-api/internal/service"
	"github.com/skapefps/unimap-api/pkg/config"
	"github.com/skapefps/unimap-api/pkg/jobs"
)

type fakeBatchRepo struct {
	received []importer.ClassRecord
}

func (f *fakeBatchRepo) BatchCreate(_ context.Context, records []importer.ClassRecord) (*models.BatchOutcome, error) {
	f.received = records
	aulas := make([]models.Aula, len(records))
	for i, rec := range records {
		aulas[i] = models.Aula{ID: "au-" + rec.Turma, ClassRecord: rec}
	}
	return &models.BatchOutcome{Sucessos: aulas, Erros: []importer.RowError{}}, nil
}

func importHandlerConfig() config.ImportConfig {
	return config.ImportConfig{
		MaxFileSizeBytes:  1 << 20,
		AllowedExtensions: []string{".csv"},
		MaxRows:           100,
	}
}

const importHandlerCSV = `Professor,Curso,Período,Turma,Disciplina,Sala,Horário,Data da Aula
Ada Lovelace,Sistemas de Informação,1,SI-2024-1A,Programação,D206,18:50-19:40,2025-11-10
`

func multipartCSV(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func newImportHandler(gate *jobs.Gate, repo *fakeBatchRepo) *ImportHandler {
	svc := service.NewImportService(repo, gate, importHandlerConfig(), nil, nil)
	return NewImportHandler(svc, nil)
}

func TestImportHandlerValidate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newImportHandler(jobs.NewGate("import", nil), &fakeBatchRepo{})

	body, contentType := multipartCSV(t, "aulas.csv", importHandlerCSV)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/import/aulas/validar", body)
	c.Request.Header.Set("Content-Type", contentType)

	handler.Validate(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	validas, ok := envelope.Data["aulas_validas"].([]interface{})
	require.True(t, ok)
	assert.Len(t, validas, 1)
}

func TestImportHandlerValidateMissingFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newImportHandler(jobs.NewGate("import", nil), &fakeBatchRepo{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/import/aulas/validar", nil)

	handler.Validate(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportHandlerImportConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gate := jobs.NewGate("import", nil)
	require.True(t, gate.TryAcquire())
	defer gate.Release()
	handler := newImportHandler(gate, &fakeBatchRepo{})

	payload, err := json.Marshal(ImportPayload{Aulas: []importer.ClassRecord{{Turma: "SI-2024-1A"}}})
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/import/aulas", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Import(c)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestImportHandlerImportSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &fakeBatchRepo{}
	handler := newImportHandler(jobs.NewGate("import", nil), repo)

	record := importer.ClassRecord{
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
	payload, err := json.Marshal(ImportPayload{Aulas: []importer.ClassRecord{record}})
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/import/aulas", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Import(c)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, repo.received, 1)
	assert.Equal(t, "Ada Lovelace", repo.received[0].ProfessorNome)
}
