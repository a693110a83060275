package service

import (
	"fmt"

	apperrors "oncall-portal-backend/internal/errors"
	"oncall-portal-backend/internal/logger"
	"oncall-portal-backend/internal/models"
	"oncall-portal-backend/internal/store"

	"github.com/go-playground/validator/v10"
)

// RequestService handles business logic for consult requests. The closed
// status and priority enumerations are enforced here on inbound payloads;
// transition legality between statuses remains a caller convention, matching
// the permissive store underneath.
type RequestService struct {
	store     *store.Store
	validator *validator.Validate
}

// NewRequestService creates a new request service
func NewRequestService(s *store.Store, validator *validator.Validate) *RequestService {
	return &RequestService{store: s, validator: validator}
}

// CreateRequestRequest represents the request to create a consult request
type CreateRequestRequest struct {
	OrganizationID int64                  `json:"organization_id" validate:"required,gt=0"`
	PhysicianID    int64                  `json:"physician_id" validate:"required,gt=0"`
	PatientName    string                 `json:"patient_name" validate:"required,max=200"`
	PatientMRN     string                 `json:"patient_mrn" validate:"required,max=50"`
	Diagnosis      string                 `json:"diagnosis" validate:"required,max=500"`
	Location       string                 `json:"location" validate:"required,max=200"`
	Notes          string                 `json:"notes,omitempty" validate:"max=1000"`
	Status         models.RequestStatus   `json:"status,omitempty"`
	Priority       models.RequestPriority `json:"priority,omitempty"`
}

// UpdateRequestRequest represents a partial consult request update. A status
// supplied here records a bare history entry with no note or author; the
// dedicated status endpoint is the full-featured transition path.
type UpdateRequestRequest struct {
	OrganizationID *int64                  `json:"organization_id,omitempty" validate:"omitempty,gt=0"`
	PhysicianID    *int64                  `json:"physician_id,omitempty" validate:"omitempty,gt=0"`
	PatientName    *string                 `json:"patient_name,omitempty" validate:"omitempty,max=200"`
	PatientMRN     *string                 `json:"patient_mrn,omitempty" validate:"omitempty,max=50"`
	Diagnosis      *string                 `json:"diagnosis,omitempty" validate:"omitempty,max=500"`
	Location       *string                 `json:"location,omitempty" validate:"omitempty,max=200"`
	Notes          *string                 `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Status         *models.RequestStatus   `json:"status,omitempty"`
	Priority       *models.RequestPriority `json:"priority,omitempty"`
}

// UpdateRequestStatusRequest represents a dedicated status transition
type UpdateRequestStatusRequest struct {
	Status models.RequestStatus `json:"status" validate:"required"`
	Note   *string              `json:"note,omitempty" validate:"omitempty,max=1000"`
}

// Create creates a new consult request. Status defaults to pending; priority
// defaults to normal.
func (s *RequestService) Create(req *CreateRequestRequest) (*models.Request, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Status != "" && !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if req.Priority == "" {
		req.Priority = models.RequestPriorityNormal
	}
	if !req.Priority.IsValid() {
		return nil, apperrors.ErrInvalidPriority
	}

	r := s.store.CreateRequest(models.Request{
		OrganizationID: req.OrganizationID,
		PhysicianID:    req.PhysicianID,
		PatientName:    req.PatientName,
		PatientMRN:     req.PatientMRN,
		Diagnosis:      req.Diagnosis,
		Location:       req.Location,
		Notes:          req.Notes,
		Status:         req.Status,
		Priority:       req.Priority,
	})
	return r, nil
}

// GetByID retrieves a consult request by ID
func (s *RequestService) GetByID(id int64) (*models.Request, error) {
	return s.store.GetRequestByID(id)
}

// GetAll retrieves all consult requests, optionally filtered by status
func (s *RequestService) GetAll(status *models.RequestStatus) ([]models.Request, error) {
	if status != nil {
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		return s.store.GetRequestsByStatus(*status), nil
	}
	return s.store.ListRequests(), nil
}

// Update applies a partial update to a consult request
func (s *RequestService) Update(id int64, req *UpdateRequestRequest) (*models.Request, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if req.Priority != nil && !req.Priority.IsValid() {
		return nil, apperrors.ErrInvalidPriority
	}

	return s.store.UpdateRequest(id, store.RequestPatch{
		OrganizationID: req.OrganizationID,
		PhysicianID:    req.PhysicianID,
		PatientName:    req.PatientName,
		PatientMRN:     req.PatientMRN,
		Diagnosis:      req.Diagnosis,
		Location:       req.Location,
		Notes:          req.Notes,
		Status:         req.Status,
		Priority:       req.Priority,
	})
}

// UpdateStatus appends a status transition with its note and acting user to
// the request's history
func (s *RequestService) UpdateStatus(id int64, req *UpdateRequestStatusRequest, userID *int64) (*models.Request, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	r, err := s.store.UpdateRequestStatus(id, req.Status, req.Note, userID)
	if err != nil {
		return nil, err
	}

	logger.New().WithFields(map[string]interface{}{
		"request_id": r.ID,
		"status":     r.Status,
	}).Info("Request status updated")
	return r, nil
}

// Delete removes a consult request
func (s *RequestService) Delete(id int64) error {
	return s.store.DeleteRequest(id)
}
