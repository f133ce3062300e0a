package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skapefps/unimap-api/internal/models"
	"github.com/skapefps/unimap-api/internal/service"
	appErrors "github.com/skapefps/unimap-api/pkg/errors"
	"github.com/skapefps/unimap-api/pkg/response"
)

// EnrollmentHandler exposes matricula endpoints.
type EnrollmentHandler struct {
	enrollments *service.EnrollmentService
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

// List godoc
// @Summary List matriculas
// @Tags Matriculas
// @Produce json
// @Param alunoId query string false "Filter by aluno"
// @Param turmaId query string false "Filter by turma"
// @Param status query string false "Filter by status" Enums(ativa, cancelada)
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /matriculas [get]
func (h *EnrollmentHandler) List(c *gin.Context) {
	var filter models.EnrollmentFilter
	filter.AlunoID = c.Query("alunoId")
	filter.TurmaID = c.Query("turmaId")
	filter.Status = models.EnrollmentStatus(c.Query("status"))
	filter.Page, filter.PageSize = parsePageQuery(c)
	filter.SortBy = c.Query("sort")
	filter.SortOrder = c.Query("order")

	enrollments, pagination, err := h.enrollments.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enrollments, pagination)
}

// Matricular godoc
// @Summary Enroll aluno in turma
// @Tags Matriculas
// @Accept json
// @Produce json
// @Param payload body service.MatricularRequest true "Matricula payload"
// @Success 201 {object} response.Envelope
// @Router /matriculas [post]
func (h *EnrollmentHandler) Matricular(c *gin.Context) {
	var req service.MatricularRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	enrollment, err := h.enrollments.Matricular(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, enrollment)
}

// Desmatricular godoc
// @Summary Cancel an active matricula
// @Tags Matriculas
// @Accept json
// @Produce json
// @Param payload body service.DesmatricularRequest true "Desmatricula payload"
// @Success 204
// @Router /matriculas [delete]
func (h *EnrollmentHandler) Desmatricular(c *gin.Context) {
	var req service.DesmatricularRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.enrollments.Desmatricular(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CountActive godoc
// @Summary Count active matriculas of a turma
// @Tags Matriculas
// @Produce json
// @Param id path string true "Turma ID"
// @Success 200 {object} response.Envelope
// @Router /turmas/{id}/matriculas/count [get]
func (h *EnrollmentHandler) CountActive(c *gin.Context) {
	count, err := h.enrollments.CountActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"total": count}, nil)
}
