package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skapefps/unimap-api/internal/importer"
	"github.com/skapefps/unimap-api/internal/service"
	appErrors "github.com/skapefps/unimap-api/pkg/errors"
	"github.com/skapefps/unimap-api/pkg/response"
)

type dashboardInvalidator interface {
	Invalidate(ctx context.Context)
}

// ImportHandler exposes the CSV class-import pipeline.
type ImportHandler struct {
	imports   *service.ImportService
	dashboard dashboardInvalidator
}

// NewImportHandler constructs ImportHandler. dashboard may be nil when
// dashboard caching is disabled.
func NewImportHandler(imports *service.ImportService, dashboard dashboardInvalidator) *ImportHandler {
	return &ImportHandler{imports: imports, dashboard: dashboard}
}

// ImportPayload carries the revalidated rows to persist.
type ImportPayload struct {
	Aulas []importer.ClassRecord `json:"aulas"`
}

// Validate godoc
// @Summary Validate an uploaded CSV of aulas
// @Tags Import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /import/aulas/validar [post]
func (h *ImportHandler) Validate(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "arquivo é obrigatório"))
		return
	}
	src, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open file"))
		return
	}
	defer src.Close()

	result, err := h.imports.Validate(c.Request.Context(), fileHeader.Filename, fileHeader.Size, src)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Import godoc
// @Summary Persist validated aulas
// @Tags Import
// @Accept json
// @Produce json
// @Param payload body ImportPayload true "Aulas to persist"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /import/aulas [post]
func (h *ImportHandler) Import(c *gin.Context) {
	var payload ImportPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	outcome, err := h.imports.Import(c.Request.Context(), payload.Aulas)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.dashboard != nil && len(outcome.Sucessos) > 0 {
		// Stats change after a successful batch; drop the cached copy.
		h.dashboard.Invalidate(c.Request.Context())
	}
	response.JSON(c, http.StatusOK, outcome, nil)
}
