package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/skapefps/unimap-api/internal/importer"
	"github.com/skapefps/unimap-api/internal/models"
	appErrors "github.com/skapefps/unimap-api/pkg/errors"
)

type aulaRepository interface {
	List(ctx context.Context, filter models.AulaFilter) ([]models.Aula, int, error)
	FindByID(ctx context.Context, id string) (*models.Aula, error)
	Create(ctx context.Context, aula *models.Aula) error
	Update(ctx context.Context, aula *models.Aula) error
	Delete(ctx context.Context, id string) error
}

// AulaRequest holds payload for creating or updating a scheduled class.
type AulaRequest struct {
	ProfessorNome   string `json:"professor_nome" validate:"required"`
	Disciplina      string `json:"disciplina" validate:"required"`
	Curso           string `json:"curso" validate:"required"`
	Turma           string `json:"turma" validate:"required"`
	PeriodoOriginal string `json:"periodo_original"`
	SalaNumero      string `json:"sala_numero"`
	SalaBloco       string `json:"sala_bloco"`
	HorarioInicio   string `json:"horario_inicio" validate:"required"`
	HorarioFim      string `json:"horario_fim" validate:"required"`
	DataAula        string `json:"data_aula" validate:"required"`
}

// AulaService handles scheduled-class use-cases.
type AulaService struct {
	repo      aulaRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAulaService constructs the aula service.
func NewAulaService(repo aulaRepository, validate *validator.Validate, logger *zap.Logger) *AulaService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AulaService{repo: repo, validator: validate, logger: logger}
}

// List returns scheduled classes and pagination metadata.
func (s *AulaService) List(ctx context.Context, filter models.AulaFilter) ([]models.Aula, *models.Pagination, error) {
	aulas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list aulas")
	}
	return aulas, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Get returns a single scheduled class.
func (s *AulaService) Get(ctx context.Context, id string) (*models.Aula, error) {
	aula, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "aula not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load aula")
	}
	return aula, nil
}

// Create registers one scheduled class. Date, time range and weekday go
// through the same checks the batch import applies.
func (s *AulaService) Create(ctx context.Context, req AulaRequest) (*models.Aula, error) {
	record, err := s.recordFromRequest(req)
	if err != nil {
		return nil, err
	}
	aula := &models.Aula{ClassRecord: *record}
	if err := s.repo.Create(ctx, aula); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create aula")
	}
	s.logger.Info("aula created", zap.String("aula_id", aula.ID), zap.String("turma", aula.Turma), zap.String("data_aula", aula.DataAula))
	return aula, nil
}

// Update modifies an existing scheduled class.
func (s *AulaService) Update(ctx context.Context, id string, req AulaRequest) (*models.Aula, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "aula not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load aula")
	}
	record, err := s.recordFromRequest(req)
	if err != nil {
		return nil, err
	}
	existing.ClassRecord = *record
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update aula")
	}
	return existing, nil
}

// Delete removes a scheduled class.
func (s *AulaService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "aula not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load aula")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete aula")
	}
	return nil
}

func (s *AulaService) recordFromRequest(req AulaRequest) (*importer.ClassRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid aula payload")
	}
	if reason := importer.DateError(req.DataAula); reason != "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "data_aula: "+reason)
	}
	if _, ok := importer.ParseTimeRange(req.HorarioInicio + "-" + req.HorarioFim); !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "horario invalido, ex: 18:50-19:40")
	}
	weekday, name, err := importer.Weekday(req.DataAula)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "data_aula invalida, esperado AAAA-MM-DD")
	}
	return &importer.ClassRecord{
		ProfessorNome:   req.ProfessorNome,
		Disciplina:      req.Disciplina,
		Curso:           req.Curso,
		Turma:           req.Turma,
		PeriodoOriginal: req.PeriodoOriginal,
		SalaNumero:      req.SalaNumero,
		SalaBloco:       req.SalaBloco,
		HorarioInicio:   req.HorarioInicio,
		HorarioFim:      req.HorarioFim,
		DataAula:        req.DataAula,
		DiaSemana:       weekday,
		DiaSemanaNome:   name,
	}, nil
}
