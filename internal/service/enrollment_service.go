package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/skapefps/unimap-api/internal/models"
	appErrors "github.com/skapefps/unimap-api/pkg/errors"
)

type enrollmentRepository interface {
	List(ctx context.Context, filter models.EnrollmentFilter) ([]models.EnrollmentDetail, int, error)
	FindActive(ctx context.Context, alunoID, turmaID string) (*models.Enrollment, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
	Cancel(ctx context.Context, id string) error
	CountActiveByTurma(ctx context.Context, turmaID string) (int, error)
}

type enrollmentStudentLookup interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

type enrollmentTurmaLookup interface {
	FindByID(ctx context.Context, id string) (*models.TurmaDetail, error)
}

// MatricularRequest links a student to a section.
type MatricularRequest struct {
	AlunoID string `json:"aluno_id" validate:"required"`
	TurmaID string `json:"turma_id" validate:"required"`
}

// DesmatricularRequest undoes an active enrollment.
type DesmatricularRequest struct {
	AlunoID string `json:"aluno_id" validate:"required"`
	TurmaID string `json:"turma_id" validate:"required"`
}

// EnrollmentService handles matricula use-cases.
type EnrollmentService struct {
	repo      enrollmentRepository
	students  enrollmentStudentLookup
	turmas    enrollmentTurmaLookup
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEnrollmentService constructs the enrollment service.
func NewEnrollmentService(repo enrollmentRepository, students enrollmentStudentLookup, turmas enrollmentTurmaLookup, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, students: students, turmas: turmas, validator: validate, logger: logger}
}

// List returns enrollments and pagination metadata.
func (s *EnrollmentService) List(ctx context.Context, filter models.EnrollmentFilter) ([]models.EnrollmentDetail, *models.Pagination, error) {
	enrollments, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list enrollments")
	}
	return enrollments, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Matricular enrolls a student into a class section. Students can hold at
// most one active enrollment per section.
func (s *EnrollmentService) Matricular(ctx context.Context, req MatricularRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}
	student, err := s.students.FindByID(ctx, req.AlunoID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "aluno not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	if !student.Ativo {
		return nil, appErrors.Clone(appErrors.ErrValidation, "aluno is inactive")
	}
	if _, err := s.turmas.FindByID(ctx, req.TurmaID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "turma not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load turma")
	}
	if _, err := s.repo.FindActive(ctx, req.AlunoID, req.TurmaID); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "aluno already enrolled in this turma")
	} else if err != sql.ErrNoRows {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check enrollment")
	}

	enrollment := &models.Enrollment{AlunoID: req.AlunoID, TurmaID: req.TurmaID}
	if err := s.repo.Create(ctx, enrollment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create enrollment")
	}
	s.logger.Info("student enrolled",
		zap.String("aluno_id", req.AlunoID),
		zap.String("turma_id", req.TurmaID),
		zap.String("matricula_id", enrollment.ID))
	return enrollment, nil
}

// Desmatricular cancels the active enrollment linking a student to a
// section. Cancelled enrollments are kept for history.
func (s *EnrollmentService) Desmatricular(ctx context.Context, req DesmatricularRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}
	enrollment, err := s.repo.FindActive(ctx, req.AlunoID, req.TurmaID)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "matricula ativa not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check enrollment")
	}
	if err := s.repo.Cancel(ctx, enrollment.ID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to cancel enrollment")
	}
	s.logger.Info("student unenrolled",
		zap.String("aluno_id", req.AlunoID),
		zap.String("turma_id", req.TurmaID),
		zap.String("matricula_id", enrollment.ID))
	return nil
}

// CountActive returns the number of active enrollments in a section.
func (s *EnrollmentService) CountActive(ctx context.Context, turmaID string) (int, error) {
	total, err := s.repo.CountActiveByTurma(ctx, turmaID)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count enrollments")
	}
	return total, nil
}
