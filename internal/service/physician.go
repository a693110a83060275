package service

import (
	"fmt"

	"oncall-portal-backend/internal/models"
	"oncall-portal-backend/internal/store"

	"github.com/go-playground/validator/v10"
)

// PhysicianService handles business logic for physicians
type PhysicianService struct {
	store     *store.Store
	validator *validator.Validate
}

// NewPhysicianService creates a new physician service
func NewPhysicianService(s *store.Store, validator *validator.Validate) *PhysicianService {
	return &PhysicianService{store: s, validator: validator}
}

// CreatePhysicianRequest represents the request to create a physician
type CreatePhysicianRequest struct {
	FirstName   string   `json:"first_name" validate:"required,max=100"`
	LastName    string   `json:"last_name" validate:"required,max=100"`
	Specialty   string   `json:"specialty" validate:"required,max=100"`
	Phone       string   `json:"phone" validate:"required,max=30"`
	Email       string   `json:"email" validate:"required,email,max=255"`
	Credentials []string `json:"credentials,omitempty"`
}

// UpdatePhysicianRequest represents a partial physician update
type UpdatePhysicianRequest struct {
	FirstName   *string   `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName    *string   `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Specialty   *string   `json:"specialty,omitempty" validate:"omitempty,max=100"`
	Phone       *string   `json:"phone,omitempty" validate:"omitempty,max=30"`
	Email       *string   `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Credentials *[]string `json:"credentials,omitempty"`
}

// Create creates a new physician
func (s *PhysicianService) Create(req *CreatePhysicianRequest) (*models.Physician, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	p := s.store.CreatePhysician(models.Physician{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Specialty:   req.Specialty,
		Phone:       req.Phone,
		Email:       req.Email,
		Credentials: req.Credentials,
	})
	return p, nil
}

// GetByID retrieves a physician by ID
func (s *PhysicianService) GetByID(id int64) (*models.Physician, error) {
	return s.store.GetPhysicianByID(id)
}

// GetAll retrieves all physicians
func (s *PhysicianService) GetAll() []models.Physician {
	return s.store.ListPhysicians()
}

// Update applies a partial update to a physician
func (s *PhysicianService) Update(id int64, req *UpdatePhysicianRequest) (*models.Physician, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return s.store.UpdatePhysician(id, store.PhysicianPatch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Specialty:   req.Specialty,
		Phone:       req.Phone,
		Email:       req.Email,
		Credentials: req.Credentials,
	})
}

// Delete removes a physician
func (s *PhysicianService) Delete(id int64) error {
	return s.store.DeletePhysician(id)
}

// GetOrganizations lists the organizations a physician is assigned to
func (s *PhysicianService) GetOrganizations(physicianID int64) []models.Organization {
	return s.store.GetOrganizationsByPhysician(physicianID)
}

// GetSchedules lists all schedules for a physician
func (s *PhysicianService) GetSchedules(physicianID int64) []models.Schedule {
	return s.store.GetSchedulesByPhysician(physicianID)
}

// GetRequests lists all consult requests assigned to a physician
func (s *PhysicianService) GetRequests(physicianID int64) []models.Request {
	return s.store.GetRequestsByPhysician(physicianID)
}
