package handlers

import (
	"errors"
	"net/http"

	apperrors "oncall-portal-backend/internal/errors"
	"oncall-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler handles HTTP requests for schedules
type ScheduleHandler struct {
	service *service.ScheduleService
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(service *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// CreateSchedule handles POST /api/v1/schedules
// @Summary Create a new schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Param schedule body service.CreateScheduleRequest true "Schedule data"
// @Success 201 {object} models.Schedule
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /schedules [post]
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req service.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	sc, err := h.service.Create(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, sc)
}

// ListSchedules handles GET /api/v1/schedules
// @Summary List all schedules
// @Tags schedules
// @Produce json
// @Success 200 {array} models.Schedule
// @Security BearerAuth
// @Router /schedules [get]
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetAll())
}

// GetSchedule handles GET /api/v1/schedules/:id
// @Summary Get schedule by ID
// @Tags schedules
// @Produce json
// @Param id path int true "Schedule ID"
// @Success 200 {object} models.Schedule
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Security BearerAuth
// @Router /schedules/{id} [get]
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sc, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get schedule"})
		return
	}

	c.JSON(http.StatusOK, sc)
}

// UpdateSchedule handles PATCH /api/v1/schedules/:id
// @Summary Partially update a schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path int true "Schedule ID"
// @Param schedule body service.UpdateScheduleRequest true "Fields to update"
// @Success 200 {object} models.Schedule
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Security BearerAuth
// @Router /schedules/{id} [patch]
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	sc, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sc)
}

// DeleteSchedule handles DELETE /api/v1/schedules/:id
// @Summary Delete a schedule
// @Tags schedules
// @Param id path int true "Schedule ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Security BearerAuth
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete schedule"})
		return
	}

	c.Status(http.StatusNoContent)
}
