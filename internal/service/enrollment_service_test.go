package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skapefps/unimap-api/internal/models"
)

type mockEnrollmentRepo struct {
	active    map[string]models.Enrollment
	cancelled []string
	created   []models.Enrollment
}

func enrollKey(alunoID, turmaID string) string { return alunoID + ":" + turmaID }

func (m *mockEnrollmentRepo) List(ctx context.Context, filter models.EnrollmentFilter) ([]models.EnrollmentDetail, int, error) {
	details := make([]models.EnrollmentDetail, 0, len(m.active))
	for _, e := range m.active {
		details = append(details, models.EnrollmentDetail{Enrollment: e})
	}
	return details, len(details), nil
}

func (m *mockEnrollmentRepo) FindActive(ctx context.Context, alunoID, turmaID string) (*models.Enrollment, error) {
	if e, ok := m.active[enrollKey(alunoID, turmaID)]; ok {
		return &e, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockEnrollmentRepo) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if m.active == nil {
		m.active = make(map[string]models.Enrollment)
	}
	if enrollment.ID == "" {
		enrollment.ID = "generated"
	}
	enrollment.Status = models.EnrollmentStatusAtiva
	enrollment.MatriculadoEm = time.Now().UTC()
	m.active[enrollKey(enrollment.AlunoID, enrollment.TurmaID)] = *enrollment
	m.created = append(m.created, *enrollment)
	return nil
}

func (m *mockEnrollmentRepo) Cancel(ctx context.Context, id string) error {
	m.cancelled = append(m.cancelled, id)
	for key, e := range m.active {
		if e.ID == id {
			delete(m.active, key)
		}
	}
	return nil
}

func (m *mockEnrollmentRepo) CountActiveByTurma(ctx context.Context, turmaID string) (int, error) {
	count := 0
	for _, e := range m.active {
		if e.TurmaID == turmaID {
			count++
		}
	}
	return count, nil
}

type mockStudentLookup struct {
	students map[string]models.Student
}

func (m *mockStudentLookup) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if s, ok := m.students[id]; ok {
		return &s, nil
	}
	return nil, sql.ErrNoRows
}

type mockTurmaLookup struct {
	turmas map[string]models.TurmaDetail
}

func (m *mockTurmaLookup) FindByID(ctx context.Context, id string) (*models.TurmaDetail, error) {
	if t, ok := m.turmas[id]; ok {
		return &t, nil
	}
	return nil, sql.ErrNoRows
}

func newEnrollmentFixture() (*mockEnrollmentRepo, *EnrollmentService) {
	repo := &mockEnrollmentRepo{}
	students := &mockStudentLookup{students: map[string]models.Student{
		"al-1": {ID: "al-1", Nome: "Ada", Matricula: "2024001", Ativo: true},
		"al-2": {ID: "al-2", Nome: "Inativo", Matricula: "2024002", Ativo: false},
	}}
	turmas := &mockTurmaLookup{turmas: map[string]models.TurmaDetail{
		"tu-1": {Turma: models.Turma{ID: "tu-1", Nome: "SI-2024-1A"}},
	}}
	svc := NewEnrollmentService(repo, students, turmas, validator.New(), zap.NewNop())
	return repo, svc
}

func TestEnrollmentServiceMatricular(t *testing.T) {
	repo, svc := newEnrollmentFixture()

	enrollment, err := svc.Matricular(context.Background(), MatricularRequest{AlunoID: "al-1", TurmaID: "tu-1"})
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusAtiva, enrollment.Status)
	assert.Len(t, repo.created, 1)
}

func TestEnrollmentServiceMatricularDuplicate(t *testing.T) {
	_, svc := newEnrollmentFixture()

	_, err := svc.Matricular(context.Background(), MatricularRequest{AlunoID: "al-1", TurmaID: "tu-1"})
	require.NoError(t, err)

	_, err = svc.Matricular(context.Background(), MatricularRequest{AlunoID: "al-1", TurmaID: "tu-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already enrolled")
}

func TestEnrollmentServiceMatricularInactiveStudent(t *testing.T) {
	_, svc := newEnrollmentFixture()

	_, err := svc.Matricular(context.Background(), MatricularRequest{AlunoID: "al-2", TurmaID: "tu-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inactive")
}

func TestEnrollmentServiceMatricularUnknownTurma(t *testing.T) {
	_, svc := newEnrollmentFixture()

	_, err := svc.Matricular(context.Background(), MatricularRequest{AlunoID: "al-1", TurmaID: "missing"})
	require.Error(t, err)
}

func TestEnrollmentServiceDesmatricular(t *testing.T) {
	repo, svc := newEnrollmentFixture()

	_, err := svc.Matricular(context.Background(), MatricularRequest{AlunoID: "al-1", TurmaID: "tu-1"})
	require.NoError(t, err)

	err = svc.Desmatricular(context.Background(), DesmatricularRequest{AlunoID: "al-1", TurmaID: "tu-1"})
	require.NoError(t, err)
	assert.Len(t, repo.cancelled, 1)

	err = svc.Desmatricular(context.Background(), DesmatricularRequest{AlunoID: "al-1", TurmaID: "tu-1"})
	require.Error(t, err)
}
