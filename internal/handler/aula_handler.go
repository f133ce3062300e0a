package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skapefps/unimap-api/internal/models"
	"github.com/skapefps/unimap-api/internal/service"
	appErrors "github.com/skapefps/unimap-api/pkg/errors"
	"github.com/skapefps/unimap-api/pkg/response"
)

// AulaHandler exposes scheduled-class endpoints.
type AulaHandler struct {
	aulas *service.AulaService
}

// NewAulaHandler constructs AulaHandler.
func NewAulaHandler(aulas *service.AulaService) *AulaHandler {
	return &AulaHandler{aulas: aulas}
}

// List godoc
// @Summary List aulas
// @Tags Aulas
// @Produce json
// @Param turma query string false "Filter by turma name"
// @Param professor query string false "Filter by professor name"
// @Param curso query string false "Filter by curso name"
// @Param data query string false "Filter by date (YYYY-MM-DD)"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /aulas [get]
func (h *AulaHandler) List(c *gin.Context) {
	var filter models.AulaFilter
	filter.Turma = strings.TrimSpace(c.Query("turma"))
	filter.Professor = strings.TrimSpace(c.Query("professor"))
	filter.Curso = strings.TrimSpace(c.Query("curso"))
	filter.DataAula = c.Query("data")
	filter.Page, filter.PageSize = parsePageQuery(c)
	filter.SortBy = c.Query("sort")
	filter.SortOrder = c.Query("order")

	aulas, pagination, err := h.aulas.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, aulas, pagination)
}

// Get godoc
// @Summary Get aula detail
// @Tags Aulas
// @Produce json
// @Param id path string true "Aula ID"
// @Success 200 {object} response.Envelope
// @Router /aulas/{id} [get]
func (h *AulaHandler) Get(c *gin.Context) {
	aula, err := h.aulas.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, aula, nil)
}

// Create godoc
// @Summary Create aula
// @Tags Aulas
// @Accept json
// @Produce json
// @Param payload body service.AulaRequest true "Aula payload"
// @Success 201 {object} response.Envelope
// @Router /aulas [post]
func (h *AulaHandler) Create(c *gin.Context) {
	var req service.AulaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	aula, err := h.aulas.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, aula)
}

// Update godoc
// @Summary Update aula
// @Tags Aulas
// @Accept json
// @Produce json
// @Param id path string true "Aula ID"
// @Param payload body service.AulaRequest true "Aula payload"
// @Success 200 {object} response.Envelope
// @Router /aulas/{id} [put]
func (h *AulaHandler) Update(c *gin.Context) {
	var req service.AulaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	aula, err := h.aulas.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, aula, nil)
}

// Delete godoc
// @Summary Delete aula
// @Tags Aulas
// @Produce json
// @Param id path string true "Aula ID"
// @Success 204
// @Router /aulas/{id} [delete]
func (h *AulaHandler) Delete(c *gin.Context) {
	if err := h.aulas.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
