package service

import (
	"fmt"
	"time"

	"oncall-portal-backend/internal/models"
	"oncall-portal-backend/internal/store"

	"github.com/go-playground/validator/v10"
)

// OrganizationService handles business logic for organizations and their
// physician assignments
type OrganizationService struct {
	store     *store.Store
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(s *store.Store, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{store: s, validator: validator}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name         string   `json:"name" validate:"required,min=1,max=200"`
	Address      string   `json:"address" validate:"required,max=200"`
	City         string   `json:"city" validate:"required,max=100"`
	State        string   `json:"state" validate:"required,max=50"`
	Zip          string   `json:"zip" validate:"required,max=20"`
	Phone        string   `json:"phone" validate:"required,max=30"`
	Email        string   `json:"email" validate:"required,email,max=255"`
	BillingCodes []string `json:"billing_codes,omitempty"`
}

// UpdateOrganizationRequest represents a partial organization update; only
// provided fields are applied
type UpdateOrganizationRequest struct {
	Name         *string   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Address      *string   `json:"address,omitempty" validate:"omitempty,max=200"`
	City         *string   `json:"city,omitempty" validate:"omitempty,max=100"`
	State        *string   `json:"state,omitempty" validate:"omitempty,max=50"`
	Zip          *string   `json:"zip,omitempty" validate:"omitempty,max=20"`
	Phone        *string   `json:"phone,omitempty" validate:"omitempty,max=30"`
	Email        *string   `json:"email,omitempty" validate:"omitempty,email,max=255"`
	BillingCodes *[]string `json:"billing_codes,omitempty"`
}

// Create creates a new organization
func (s *OrganizationService) Create(req *CreateOrganizationRequest) (*models.Organization, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org := s.store.CreateOrganization(models.Organization{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Zip:          req.Zip,
		Phone:        req.Phone,
		Email:        req.Email,
		BillingCodes: req.BillingCodes,
	})
	return org, nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(id int64) (*models.Organization, error) {
	return s.store.GetOrganizationByID(id)
}

// GetAll retrieves all organizations
func (s *OrganizationService) GetAll() []models.Organization {
	return s.store.ListOrganizations()
}

// Update applies a partial update to an organization
func (s *OrganizationService) Update(id int64, req *UpdateOrganizationRequest) (*models.Organization, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return s.store.UpdateOrganization(id, store.OrganizationPatch{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Zip:          req.Zip,
		Phone:        req.Phone,
		Email:        req.Email,
		BillingCodes: req.BillingCodes,
	})
}

// Delete removes an organization
func (s *OrganizationService) Delete(id int64) error {
	return s.store.DeleteOrganization(id)
}

// GetPhysicians lists the physicians assigned to an organization
func (s *OrganizationService) GetPhysicians(orgID int64) []models.Physician {
	return s.store.GetPhysiciansByOrganization(orgID)
}

// AssignPhysician links a physician to an organization. The assignment table
// allows duplicate rows for the same pair.
func (s *OrganizationService) AssignPhysician(orgID, physicianID int64) *models.OrganizationPhysicianAssignment {
	return s.store.AssignPhysicianToOrganization(orgID, physicianID)
}

// RemovePhysician removes one assignment row linking the physician to the
// organization
func (s *OrganizationService) RemovePhysician(orgID, physicianID int64) error {
	return s.store.RemovePhysicianFromOrganization(orgID, physicianID)
}

// GetSchedules lists all schedules for an organization
func (s *OrganizationService) GetSchedules(orgID int64) []models.Schedule {
	return s.store.GetSchedulesByOrganization(orgID)
}

// GetActiveSchedules lists active schedules for an organization, optionally
// restricted to an inclusive date window when both bounds are given
func (s *OrganizationService) GetActiveSchedules(orgID int64, from, to *time.Time) []models.Schedule {
	return s.store.GetActiveSchedules(orgID, from, to)
}

// GetRequests lists all consult requests for an organization
func (s *OrganizationService) GetRequests(orgID int64) []models.Request {
	return s.store.GetRequestsByOrganization(orgID)
}
