package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/skapefps/unimap-api/internal/models"
	appErrors "github.com/skapefps/unimap-api/pkg/errors"
	"github.com/skapefps/unimap-api/pkg/export"
)

type exportTurmaLookup interface {
	FindByID(ctx context.Context, id string) (*models.TurmaDetail, error)
}

type exportAulaLookup interface {
	ListByTurma(ctx context.Context, turma string) ([]models.Aula, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportFormat enumerates supported schedule export formats.
type ExportFormat string

// Supported export formats.
const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportResult carries the rendered file and download metadata.
type ExportResult struct {
	Payload     []byte
	Filename    string
	ContentType string
}

// ExportService renders a section's class schedule as CSV or PDF.
type ExportService struct {
	turmas exportTurmaLookup
	aulas  exportAulaLookup
	csv    csvRenderer
	pdf    pdfRenderer
	logger *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(turmas exportTurmaLookup, aulas exportAulaLookup, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{turmas: turmas, aulas: aulas, csv: csv, pdf: pdf, logger: logger}
}

var scheduleHeaders = []string{"Data", "Dia", "Horário", "Disciplina", "Professor", "Sala", "Curso"}

// TurmaSchedule renders the schedule of one class section.
func (s *ExportService) TurmaSchedule(ctx context.Context, turmaID string, format ExportFormat) (*ExportResult, error) {
	turma, err := s.turmas.FindByID(ctx, turmaID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "turma not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load turma")
	}
	aulas, err := s.aulas.ListByTurma(ctx, turma.Nome)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load aulas")
	}

	dataset := export.Dataset{Headers: scheduleHeaders, Rows: make([]map[string]string, 0, len(aulas))}
	for _, aula := range aulas {
		sala := aula.SalaNumero
		if aula.SalaBloco != "" {
			sala = aula.SalaBloco + aula.SalaNumero
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Data":       aula.DataAula,
			"Dia":        aula.DiaSemanaNome,
			"Horário":    fmt.Sprintf("%s-%s", aula.HorarioInicio, aula.HorarioFim),
			"Disciplina": aula.Disciplina,
			"Professor":  aula.ProfessorNome,
			"Sala":       sala,
			"Curso":      aula.Curso,
		})
	}

	var payload []byte
	var contentType string
	switch format {
	case ExportFormatCSV:
		payload, err = s.csv.Render(dataset)
		contentType = "text/csv"
	case ExportFormatPDF:
		title := fmt.Sprintf("Horários %s", turma.Nome)
		payload, err = s.pdf.Render(dataset, title)
		contentType = "application/pdf"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("formato %q não suportado", format))
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	filename := fmt.Sprintf("horarios_%s_%s.%s", sanitizeFilename(turma.Nome), time.Now().UTC().Format("20060102_150405"), format)
	return &ExportResult{Payload: payload, Filename: filename, ContentType: contentType}, nil
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "na"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".", "__", "_")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}
