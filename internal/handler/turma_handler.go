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

// TurmaHandler exposes turma endpoints.
type TurmaHandler struct {
	turmas *service.TurmaService
}

// NewTurmaHandler constructs TurmaHandler.
func NewTurmaHandler(turmas *service.TurmaService) *TurmaHandler {
	return &TurmaHandler{turmas: turmas}
}

// List godoc
// @Summary List turmas
// @Tags Turmas
// @Produce json
// @Param cursoId query string false "Filter by curso"
// @Param periodo query int false "Filter by periodo"
// @Param ano query int false "Filter by ano"
// @Param search query string false "Search by nome"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /turmas [get]
func (h *TurmaHandler) List(c *gin.Context) {
	var filter models.TurmaFilter
	filter.CursoID = c.Query("cursoId")
	filter.Periodo = parseIntQuery(c.Query("periodo"))
	filter.Ano = parseIntQuery(c.Query("ano"))
	filter.Search = strings.TrimSpace(c.Query("search"))
	filter.Page, filter.PageSize = parsePageQuery(c)
	filter.SortBy = c.Query("sort")
	filter.SortOrder = c.Query("order")

	turmas, pagination, err := h.turmas.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, turmas, pagination)
}

// Get godoc
// @Summary Get turma detail
// @Tags Turmas
// @Produce json
// @Param id path string true "Turma ID"
// @Success 200 {object} response.Envelope
// @Router /turmas/{id} [get]
func (h *TurmaHandler) Get(c *gin.Context) {
	turma, err := h.turmas.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, turma, nil)
}

// Create godoc
// @Summary Create turma
// @Tags Turmas
// @Accept json
// @Produce json
// @Param payload body service.CreateTurmaRequest true "Turma payload"
// @Success 201 {object} response.Envelope
// @Router /turmas [post]
func (h *TurmaHandler) Create(c *gin.Context) {
	var req service.CreateTurmaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	turma, err := h.turmas.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, turma)
}

// Update godoc
// @Summary Update turma
// @Tags Turmas
// @Accept json
// @Produce json
// @Param id path string true "Turma ID"
// @Param payload body service.UpdateTurmaRequest true "Turma payload"
// @Success 200 {object} response.Envelope
// @Router /turmas/{id} [put]
func (h *TurmaHandler) Update(c *gin.Context) {
	var req service.UpdateTurmaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	turma, err := h.turmas.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, turma, nil)
}

// Delete godoc
// @Summary Delete turma
// @Tags Turmas
// @Produce json
// @Param id path string true "Turma ID"
// @Success 204
// @Router /turmas/{id} [delete]
func (h *TurmaHandler) Delete(c *gin.Context) {
	if err := h.turmas.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
