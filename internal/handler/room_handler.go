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

// RoomHandler exposes sala endpoints.
type RoomHandler struct {
	rooms *service.RoomService
}

// NewRoomHandler constructs RoomHandler.
func NewRoomHandler(rooms *service.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

// List godoc
// @Summary List salas
// @Tags Salas
// @Produce json
// @Param bloco query string false "Filter by bloco"
// @Param andar query int false "Filter by andar"
// @Param search query string false "Search by numero"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /salas [get]
func (h *RoomHandler) List(c *gin.Context) {
	var filter models.RoomFilter
	filter.Bloco = strings.TrimSpace(c.Query("bloco"))
	filter.Andar = parseIntQuery(c.Query("andar"))
	filter.Search = strings.TrimSpace(c.Query("search"))
	filter.Page, filter.PageSize = parsePageQuery(c)
	filter.SortBy = c.Query("sort")
	filter.SortOrder = c.Query("order")

	rooms, pagination, err := h.rooms.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rooms, pagination)
}

// Get godoc
// @Summary Get sala detail
// @Tags Salas
// @Produce json
// @Param id path string true "Sala ID"
// @Success 200 {object} response.Envelope
// @Router /salas/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	room, err := h.rooms.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, room, nil)
}

// Create godoc
// @Summary Create sala
// @Tags Salas
// @Accept json
// @Produce json
// @Param payload body service.CreateRoomRequest true "Sala payload"
// @Success 201 {object} response.Envelope
// @Router /salas [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req service.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	room, err := h.rooms.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, room)
}

// Update godoc
// @Summary Update sala
// @Tags Salas
// @Accept json
// @Produce json
// @Param id path string true "Sala ID"
// @Param payload body service.UpdateRoomRequest true "Sala payload"
// @Success 200 {object} response.Envelope
// @Router /salas/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	var req service.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	room, err := h.rooms.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, room, nil)
}

// Delete godoc
// @Summary Delete sala
// @Tags Salas
// @Produce json
// @Param id path string true "Sala ID"
// @Success 204
// @Router /salas/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	if err := h.rooms.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
