package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skapefps/unimap-api/internal/service"
	"github.com/skapefps/unimap-api/pkg/response"
)

// ExportHandler exposes schedule downloads.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// TurmaSchedule godoc
// @Summary Download the schedule of a turma
// @Tags Export
// @Produce text/csv
// @Produce application/pdf
// @Param id path string true "Turma ID"
// @Param format query string false "Output format" Enums(csv, pdf) default(csv)
// @Success 200 {file} file
// @Router /turmas/{id}/export [get]
func (h *ExportHandler) TurmaSchedule(c *gin.Context) {
	format := service.ExportFormat(strings.ToLower(c.DefaultQuery("format", "csv")))
	result, err := h.exports.TurmaSchedule(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Payload)
}
