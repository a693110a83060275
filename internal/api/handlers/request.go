package handlers

import (
	"errors"
	"net/http"

	"oncall-portal-backend/internal/auth"
	apperrors "oncall-portal-backend/internal/errors"
	"oncall-portal-backend/internal/models"
	"oncall-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RequestHandler handles HTTP requests for consult requests
type RequestHandler struct {
	service *service.RequestService
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(service *service.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// CreateRequest handles POST /api/v1/requests
// @Summary Create a new consult request
// @Tags requests
// @Accept json
// @Produce json
// @Param request body service.CreateRequestRequest true "Request data"
// @Success 201 {object} models.Request
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req service.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	r, err := h.service.Create(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, r)
}

// ListRequests handles GET /api/v1/requests
// @Summary List consult requests
// @Tags requests
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {array} models.Request
// @Failure 400 {object} map[string]interface{} "Invalid status filter"
// @Security BearerAuth
// @Router /requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	var statusFilter *models.RequestStatus
	if v := c.Query("status"); v != "" {
		status := models.RequestStatus(v)
		statusFilter = &status
	}

	reqs, err := h.service.GetAll(statusFilter)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reqs)
}

// GetRequest handles GET /api/v1/requests/:id
// @Summary Get consult request by ID
// @Tags requests
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} models.Request
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Security BearerAuth
// @Router /requests/{id} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	r, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get request"})
		return
	}

	c.JSON(http.StatusOK, r)
}

// UpdateRequest handles PATCH /api/v1/requests/:id
// @Summary Partially update a consult request
// @Description A status change through this endpoint records a bare history
// @Description entry; use the status endpoint to attach a note and author.
// @Tags requests
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body service.UpdateRequestRequest true "Fields to update"
// @Success 200 {object} models.Request
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Security BearerAuth
// @Router /requests/{id} [patch]
func (h *RequestHandler) UpdateRequest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	r, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, r)
}

// UpdateRequestStatus handles POST /api/v1/requests/:id/status
// @Summary Record a status transition on a consult request
// @Description Appends a history entry carrying the status, an optional note
// @Description and the authenticated user as the author.
// @Tags requests
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param transition body service.UpdateRequestStatusRequest true "New status"
// @Success 200 {object} models.Request
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Security BearerAuth
// @Router /requests/{id}/status [post]
func (h *RequestHandler) UpdateRequestStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	r, err := h.service.UpdateStatus(id, &req, auth.UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, r)
}

// DeleteRequest handles DELETE /api/v1/requests/:id
// @Summary Delete a consult request
// @Tags requests
// @Param id path int true "Request ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Security BearerAuth
// @Router /requests/{id} [delete]
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete request"})
		return
	}

	c.Status(http.StatusNoContent)
}
