package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/skapefps/unimap-api/internal/models"
	appErrors "github.com/skapefps/unimap-api/pkg/errors"
)

type turmaRepository interface {
	List(ctx context.Context, filter models.TurmaFilter) ([]models.TurmaDetail, int, error)
	FindByID(ctx context.Context, id string) (*models.TurmaDetail, error)
	ExistsByNome(ctx context.Context, cursoID, nome string, ano int, excludeID string) (bool, error)
	Create(ctx context.Context, turma *models.Turma) error
	Update(ctx context.Context, turma *models.Turma) error
	Delete(ctx context.Context, id string) error
}

type turmaCourseLookup interface {
	FindByID(ctx context.Context, id string) (*models.Course, error)
}

// CreateTurmaRequest holds payload for creating class sections.
type CreateTurmaRequest struct {
	CursoID string `json:"curso_id" validate:"required"`
	Nome    string `json:"nome" validate:"required"`
	Periodo int    `json:"periodo" validate:"required,gte=1,lte=12"`
	Ano     int    `json:"ano" validate:"required,gte=2000,lte=2100"`
}

// UpdateTurmaRequest holds payload for updating class sections.
type UpdateTurmaRequest struct {
	CursoID string `json:"curso_id" validate:"required"`
	Nome    string `json:"nome" validate:"required"`
	Periodo int    `json:"periodo" validate:"required,gte=1,lte=12"`
	Ano     int    `json:"ano" validate:"required,gte=2000,lte=2100"`
}

// TurmaService handles class-section use-cases.
type TurmaService struct {
	repo      turmaRepository
	courses   turmaCourseLookup
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTurmaService constructs the turma service.
func NewTurmaService(repo turmaRepository, courses turmaCourseLookup, validate *validator.Validate, logger *zap.Logger) *TurmaService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TurmaService{repo: repo, courses: courses, validator: validate, logger: logger}
}

// List returns class sections and pagination metadata.
func (s *TurmaService) List(ctx context.Context, filter models.TurmaFilter) ([]models.TurmaDetail, *models.Pagination, error) {
	turmas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list turmas")
	}
	return turmas, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Get returns a single class section with course context.
func (s *TurmaService) Get(ctx context.Context, id string) (*models.TurmaDetail, error) {
	turma, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "turma not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load turma")
	}
	return turma, nil
}

// Create registers a new class section after checking the parent course.
func (s *TurmaService) Create(ctx context.Context, req CreateTurmaRequest) (*models.Turma, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid turma payload")
	}
	if _, err := s.courses.FindByID(ctx, req.CursoID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "curso not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	exists, err := s.repo.ExistsByNome(ctx, req.CursoID, req.Nome, req.Ano, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate turma name")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "turma already exists for this curso and ano")
	}
	turma := &models.Turma{CursoID: req.CursoID, Nome: req.Nome, Periodo: req.Periodo, Ano: req.Ano}
	if err := s.repo.Create(ctx, turma); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create turma")
	}
	s.logger.Info("turma created", zap.String("turma_id", turma.ID), zap.String("nome", turma.Nome))
	return turma, nil
}

// Update modifies an existing class section.
func (s *TurmaService) Update(ctx context.Context, id string, req UpdateTurmaRequest) (*models.Turma, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid turma payload")
	}
	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "turma not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load turma")
	}
	if _, err := s.courses.FindByID(ctx, req.CursoID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "curso not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	exists, err := s.repo.ExistsByNome(ctx, req.CursoID, req.Nome, req.Ano, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate turma name")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "turma already exists for this curso and ano")
	}
	turma := detail.Turma
	turma.CursoID = req.CursoID
	turma.Nome = req.Nome
	turma.Periodo = req.Periodo
	turma.Ano = req.Ano
	if err := s.repo.Update(ctx, &turma); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update turma")
	}
	return &turma, nil
}

// Delete removes a class section.
func (s *TurmaService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "turma not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load turma")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete turma")
	}
	return nil
}
