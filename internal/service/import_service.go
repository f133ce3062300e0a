package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/skapefps/unimap-api/internal/importer"
	"github.com/skapefps/unimap-api/internal/models"
	"github.com/skapefps/unimap-api/pkg/config"
	appErrors "github.com/skapefps/unimap-api/pkg/errors"
	"github.com/skapefps/unimap-api/pkg/jobs"
)

type importBatchRepository interface {
	BatchCreate(ctx context.Context, records []importer.ClassRecord) (*models.BatchOutcome, error)
}

type importMetrics interface {
	ObserveImportRows(parsed, valid, failed int)
}

// ImportService runs the CSV class-import pipeline: upload validation,
// row revalidation and batch persistence. A single-slot gate keeps at
// most one import running at a time.
type ImportService struct {
	repo    importBatchRepository
	gate    *jobs.Gate
	cfg     config.ImportConfig
	metrics importMetrics
	logger  *zap.Logger
}

// NewImportService constructs the import service.
func NewImportService(repo importBatchRepository, gate *jobs.Gate, cfg config.ImportConfig, metrics importMetrics, logger *zap.Logger) *ImportService {
	if gate == nil {
		gate = jobs.NewGate("import", logger)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{repo: repo, gate: gate, cfg: cfg, metrics: metrics, logger: logger}
}

// Validate parses an uploaded CSV and returns the valid rows alongside
// per-row errors. Nothing is persisted.
func (s *ImportService) Validate(ctx context.Context, filename string, size int64, r io.Reader) (*importer.Result, error) {
	if !s.gate.TryAcquire() {
		return nil, appErrors.ErrImportRunning
	}
	defer s.gate.Release()

	if err := s.checkUpload(filename, size); err != nil {
		return nil, err
	}

	result, err := importer.Parse(io.LimitReader(r, s.cfg.MaxFileSizeBytes))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	if s.cfg.MaxRows > 0 && len(result.AulasValidas)+len(result.Erros) > s.cfg.MaxRows {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("arquivo excede o limite de %d linhas", s.cfg.MaxRows))
	}

	if s.metrics != nil {
		s.metrics.ObserveImportRows(len(result.AulasValidas)+len(result.Erros), len(result.AulasValidas), len(result.Erros))
	}
	s.logger.Info("import file validated",
		zap.String("filename", filename),
		zap.Int("aulas_validas", len(result.AulasValidas)),
		zap.Int("erros", len(result.Erros)))
	return result, nil
}

// Import revalidates each submitted record and persists the ones that
// pass. Row failures never abort the batch; positions in the returned
// errors are 1-based over the submitted payload.
func (s *ImportService) Import(ctx context.Context, records []importer.ClassRecord) (*models.BatchOutcome, error) {
	if !s.gate.TryAcquire() {
		return nil, appErrors.ErrImportRunning
	}
	defer s.gate.Release()

	if len(records) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "nenhuma aula para importar")
	}
	if s.cfg.MaxRows > 0 && len(records) > s.cfg.MaxRows {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("lote excede o limite de %d linhas", s.cfg.MaxRows))
	}

	valid := make([]importer.ClassRecord, 0, len(records))
	positions := make([]int, 0, len(records))
	rowErrors := make([]importer.RowError, 0)

	for i, rec := range records {
		clean, fieldErrs := importer.Revalidate(rec)
		if len(fieldErrs) > 0 {
			reasons := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				reasons = append(reasons, fmt.Sprintf("%s: %s", fe.Campo, fe.Mensagem))
			}
			rowErrors = append(rowErrors, importer.RowError{
				Linha: i + 1,
				Erro:  strings.Join(reasons, "; "),
				Dados: map[string]string{
					"professor_nome": rec.ProfessorNome,
					"disciplina":     rec.Disciplina,
					"turma":          rec.Turma,
					"data_aula":      rec.DataAula,
				},
			})
			continue
		}
		valid = append(valid, clean)
		positions = append(positions, i)
	}

	outcome := &models.BatchOutcome{Sucessos: []models.Aula{}, Erros: rowErrors}
	if len(valid) > 0 {
		batch, err := s.repo.BatchCreate(ctx, valid)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist aulas")
		}
		// BatchCreate numbers rows within the slice it received; map
		// them back to positions in the submitted payload.
		for _, re := range batch.Erros {
			if re.Linha >= 1 && re.Linha <= len(positions) {
				re.Linha = positions[re.Linha-1] + 1
			}
			outcome.Erros = append(outcome.Erros, re)
		}
		outcome.Sucessos = batch.Sucessos
	}

	if s.metrics != nil {
		s.metrics.ObserveImportRows(len(records), len(outcome.Sucessos), len(outcome.Erros))
	}
	s.logger.Info("import batch persisted",
		zap.Int("sucessos", len(outcome.Sucessos)),
		zap.Int("erros", len(outcome.Erros)))
	return outcome, nil
}

func (s *ImportService) checkUpload(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	allowed := false
	for _, a := range s.cfg.AllowedExtensions {
		if ext == strings.ToLower(a) {
			allowed = true
			break
		}
	}
	if !allowed {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("extensão %q não suportada", ext))
	}
	if size > s.cfg.MaxFileSizeBytes {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("arquivo excede o limite de %d bytes", s.cfg.MaxFileSizeBytes))
	}
	return nil
}
