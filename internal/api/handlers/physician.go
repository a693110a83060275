package handlers

import (
	"errors"
	"net/http"

	apperrors "oncall-portal-backend/internal/errors"
	"oncall-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PhysicianHandler handles HTTP requests for physicians
type PhysicianHandler struct {
	service *service.PhysicianService
}

// NewPhysicianHandler creates a new physician handler
func NewPhysicianHandler(service *service.PhysicianService) *PhysicianHandler {
	return &PhysicianHandler{service: service}
}

// CreatePhysician handles POST /api/v1/physicians
// @Summary Create a new physician
// @Tags physicians
// @Accept json
// @Produce json
// @Param physician body service.CreatePhysicianRequest true "Physician data"
// @Success 201 {object} models.Physician
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /physicians [post]
func (h *PhysicianHandler) CreatePhysician(c *gin.Context) {
	var req service.CreatePhysicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.Create(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// ListPhysicians handles GET /api/v1/physicians
// @Summary List all physicians
// @Tags physicians
// @Produce json
// @Success 200 {array} models.Physician
// @Security BearerAuth
// @Router /physicians [get]
func (h *PhysicianHandler) ListPhysicians(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetAll())
}

// GetPhysician handles GET /api/v1/physicians/:id
// @Summary Get physician by ID
// @Tags physicians
// @Produce json
// @Param id path int true "Physician ID"
// @Success 200 {object} models.Physician
// @Failure 404 {object} map[string]interface{} "Physician not found"
// @Security BearerAuth
// @Router /physicians/{id} [get]
func (h *PhysicianHandler) GetPhysician(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPhysicianNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get physician"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdatePhysician handles PATCH /api/v1/physicians/:id
// @Summary Partially update a physician
// @Tags physicians
// @Accept json
// @Produce json
// @Param id path int true "Physician ID"
// @Param physician body service.UpdatePhysicianRequest true "Fields to update"
// @Success 200 {object} models.Physician
// @Failure 404 {object} map[string]interface{} "Physician not found"
// @Security BearerAuth
// @Router /physicians/{id} [patch]
func (h *PhysicianHandler) UpdatePhysician(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdatePhysicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPhysicianNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, p)
}

// DeletePhysician handles DELETE /api/v1/physicians/:id
// @Summary Delete a physician
// @Tags physicians
// @Param id path int true "Physician ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]interface{} "Physician not found"
// @Security BearerAuth
// @Router /physicians/{id} [delete]
func (h *PhysicianHandler) DeletePhysician(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrPhysicianNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete physician"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetPhysicianOrganizations handles GET /api/v1/physicians/:id/organizations
// @Summary List organizations a physician is assigned to
// @Tags physicians
// @Produce json
// @Param id path int true "Physician ID"
// @Success 200 {array} models.Organization
// @Security BearerAuth
// @Router /physicians/{id}/organizations [get]
func (h *PhysicianHandler) GetPhysicianOrganizations(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.GetOrganizations(id))
}

// GetPhysicianSchedules handles GET /api/v1/physicians/:id/schedules
// @Summary List schedules for a physician
// @Tags physicians
// @Produce json
// @Param id path int true "Physician ID"
// @Success 200 {array} models.Schedule
// @Security BearerAuth
// @Router /physicians/{id}/schedules [get]
func (h *PhysicianHandler) GetPhysicianSchedules(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.GetSchedules(id))
}

// GetPhysicianRequests handles GET /api/v1/physicians/:id/requests
// @Summary List consult requests assigned to a physician
// @Tags physicians
// @Produce json
// @Param id path int true "Physician ID"
// @Success 200 {array} models.Request
// @Security BearerAuth
// @Router /physicians/{id}/requests [get]
func (h *PhysicianHandler) GetPhysicianRequests(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.GetRequests(id))
}
