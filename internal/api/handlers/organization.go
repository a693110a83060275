package handlers

import (
	"errors"
	"net/http"
	"time"

	apperrors "oncall-portal-backend/internal/errors"
	"oncall-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service *service.OrganizationService
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service *service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// CreateOrganization handles POST /api/v1/organizations
// @Summary Create a new organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} models.Organization
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Create(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, org)
}

// ListOrganizations handles GET /api/v1/organizations
// @Summary List all organizations
// @Tags organizations
// @Produce json
// @Success 200 {array} models.Organization
// @Security BearerAuth
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetAll())
}

// GetOrganization handles GET /api/v1/organizations/:id
// @Summary Get organization by ID
// @Tags organizations
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {object} models.Organization
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	org, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get organization"})
		return
	}

	c.JSON(http.StatusOK, org)
}

// UpdateOrganization handles PATCH /api/v1/organizations/:id
// @Summary Partially update an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Param organization body service.UpdateOrganizationRequest true "Fields to update"
// @Success 200 {object} models.Organization
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [patch]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, org)
}

// DeleteOrganization handles DELETE /api/v1/organizations/:id
// @Summary Delete an organization
// @Tags organizations
// @Param id path int true "Organization ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete organization"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetOrganizationPhysicians handles GET /api/v1/organizations/:id/physicians
// @Summary List physicians assigned to an organization
// @Tags organizations
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {array} models.Physician
// @Security BearerAuth
// @Router /organizations/{id}/physicians [get]
func (h *OrganizationHandler) GetOrganizationPhysicians(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.GetPhysicians(id))
}

// AssignPhysicianRequest represents a physician assignment payload
type AssignPhysicianRequest struct {
	PhysicianID int64 `json:"physician_id" binding:"required,gt=0"`
}

// AssignPhysician handles POST /api/v1/organizations/:id/physicians
// @Summary Assign a physician to an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Param assignment body AssignPhysicianRequest true "Physician to assign"
// @Success 201 {object} models.OrganizationPhysicianAssignment
// @Security BearerAuth
// @Router /organizations/{id}/physicians [post]
func (h *OrganizationHandler) AssignPhysician(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AssignPhysicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, h.service.AssignPhysician(id, req.PhysicianID))
}

// RemovePhysician handles DELETE /api/v1/organizations/:id/physicians/:physicianId
// @Summary Remove a physician assignment from an organization
// @Tags organizations
// @Param id path int true "Organization ID"
// @Param physicianId path int true "Physician ID"
// @Success 204 "Removed"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Security BearerAuth
// @Router /organizations/{id}/physicians/{physicianId} [delete]
func (h *OrganizationHandler) RemovePhysician(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	physicianID, ok := parseIDParam(c, "physicianId")
	if !ok {
		return
	}

	if err := h.service.RemovePhysician(id, physicianID); err != nil {
		if errors.Is(err, apperrors.ErrAssignmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove physician"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetOrganizationSchedules handles GET /api/v1/organizations/:id/schedules
// @Summary List schedules for an organization
// @Tags organizations
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {array} models.Schedule
// @Security BearerAuth
// @Router /organizations/{id}/schedules [get]
func (h *OrganizationHandler) GetOrganizationSchedules(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.GetSchedules(id))
}

// GetActiveSchedules handles GET /api/v1/organizations/:id/schedules/active
// @Summary List active schedules for an organization
// @Description Optional from/to query parameters (RFC3339) restrict results to
// @Description schedules overlapping the window; both must be present for the
// @Description time filter to apply.
// @Tags organizations
// @Produce json
// @Param id path int true "Organization ID"
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Success 200 {array} models.Schedule
// @Security BearerAuth
// @Router /organizations/{id}/schedules/active [get]
func (h *OrganizationHandler) GetActiveSchedules(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from parameter, expected RFC3339"})
			return
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to parameter, expected RFC3339"})
			return
		}
		to = &t
	}

	c.JSON(http.StatusOK, h.service.GetActiveSchedules(id, from, to))
}

// GetOrganizationRequests handles GET /api/v1/organizations/:id/requests
// @Summary List consult requests for an organization
// @Tags organizations
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {array} models.Request
// @Security BearerAuth
// @Router /organizations/{id}/requests [get]
func (h *OrganizationHandler) GetOrganizationRequests(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.GetRequests(id))
}
