package service

import (
	"fmt"
	"time"

	apperrors "oncall-portal-backend/internal/errors"
	"oncall-portal-backend/internal/models"
	"oncall-portal-backend/internal/store"

	"github.com/go-playground/validator/v10"
)

// ScheduleService handles business logic for on-call schedules
type ScheduleService struct {
	store     *store.Store
	validator *validator.Validate
}

// NewScheduleService creates a new schedule service
func NewScheduleService(s *store.Store, validator *validator.Validate) *ScheduleService {
	return &ScheduleService{store: s, validator: validator}
}

// CreateScheduleRequest represents the request to create a schedule
type CreateScheduleRequest struct {
	OrganizationID int64     `json:"organization_id" validate:"required,gt=0"`
	PhysicianID    int64     `json:"physician_id" validate:"required,gt=0"`
	StartTime      time.Time `json:"start_time" validate:"required"`
	EndTime        time.Time `json:"end_time" validate:"required"`
	Title          string    `json:"title" validate:"required,max=200"`
	Description    string    `json:"description,omitempty" validate:"max=500"`
	IsActive       *bool     `json:"is_active,omitempty"`
}

// UpdateScheduleRequest represents a partial schedule update
type UpdateScheduleRequest struct {
	OrganizationID *int64     `json:"organization_id,omitempty" validate:"omitempty,gt=0"`
	PhysicianID    *int64     `json:"physician_id,omitempty" validate:"omitempty,gt=0"`
	StartTime      *time.Time `json:"start_time,omitempty"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	Title          *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description    *string    `json:"description,omitempty" validate:"omitempty,max=500"`
	IsActive       *bool      `json:"is_active,omitempty"`
}

// Create creates a new schedule. New schedules default to active.
func (s *ScheduleService) Create(req *CreateScheduleRequest) (*models.Schedule, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.EndTime.Before(req.StartTime) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	sc := s.store.CreateSchedule(models.Schedule{
		OrganizationID: req.OrganizationID,
		PhysicianID:    req.PhysicianID,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Title:          req.Title,
		Description:    req.Description,
		IsActive:       isActive,
	})
	return sc, nil
}

// GetByID retrieves a schedule by ID
func (s *ScheduleService) GetByID(id int64) (*models.Schedule, error) {
	return s.store.GetScheduleByID(id)
}

// GetAll retrieves all schedules
func (s *ScheduleService) GetAll() []models.Schedule {
	return s.store.ListSchedules()
}

// Update applies a partial update to a schedule
func (s *ScheduleService) Update(id int64, req *UpdateScheduleRequest) (*models.Schedule, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.StartTime != nil && req.EndTime != nil && req.EndTime.Before(*req.StartTime) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	return s.store.UpdateSchedule(id, store.SchedulePatch{
		OrganizationID: req.OrganizationID,
		PhysicianID:    req.PhysicianID,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Title:          req.Title,
		Description:    req.Description,
		IsActive:       req.IsActive,
	})
}

// Delete removes a schedule
func (s *ScheduleService) Delete(id int64) error {
	return s.store.DeleteSchedule(id)
}
