package service

import (
	"errors"
	"fmt"

	apperrors "oncall-portal-backend/internal/errors"
	"oncall-portal-backend/internal/models"
	"oncall-portal-backend/internal/store"

	"github.com/go-playground/validator/v10"
)

// UserService handles business logic for portal users. Username uniqueness is
// enforced here; the store itself performs no uniqueness check.
type UserService struct {
	store     *store.Store
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(s *store.Store, validator *validator.Validate) *UserService {
	return &UserService{store: s, validator: validator}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Username       string          `json:"username" validate:"required,min=3,max=100"`
	Password       string          `json:"password" validate:"required,min=6,max=100"`
	FirstName      string          `json:"first_name" validate:"required,max=100"`
	LastName       string          `json:"last_name" validate:"required,max=100"`
	Email          string          `json:"email" validate:"required,email,max=255"`
	Role           models.UserRole `json:"role" validate:"required"`
	OrganizationID *int64          `json:"organization_id,omitempty" validate:"omitempty,gt=0"`
	PhysicianID    *int64          `json:"physician_id,omitempty" validate:"omitempty,gt=0"`
}

// UpdateUserRequest represents a partial user update
type UpdateUserRequest struct {
	Username       *string          `json:"username,omitempty" validate:"omitempty,min=3,max=100"`
	Password       *string          `json:"password,omitempty" validate:"omitempty,min=6,max=100"`
	FirstName      *string          `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName       *string          `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Email          *string          `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Role           *models.UserRole `json:"role,omitempty"`
	OrganizationID **int64          `json:"-"`
	PhysicianID    **int64          `json:"-"`
}

// Create creates a new user after checking username uniqueness
func (s *UserService) Create(req *CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	existing, err := s.store.GetUserByUsername(req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewValidationError("username", "already taken")
	}

	u := s.store.CreateUser(models.User{
		Username:       req.Username,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Role:           req.Role,
		OrganizationID: req.OrganizationID,
		PhysicianID:    req.PhysicianID,
	})
	return u, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id int64) (*models.User, error) {
	return s.store.GetUserByID(id)
}

// GetByUsername retrieves a user by username
func (s *UserService) GetByUsername(username string) (*models.User, error) {
	return s.store.GetUserByUsername(username)
}

// GetAll retrieves all users
func (s *UserService) GetAll() []models.User {
	return s.store.ListUsers()
}

// Update applies a partial update to a user
func (s *UserService) Update(id int64, req *UpdateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Role != nil && !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	return s.store.UpdateUser(id, store.UserPatch{
		Username:       req.Username,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Role:           req.Role,
		OrganizationID: req.OrganizationID,
		PhysicianID:    req.PhysicianID,
	})
}

// Delete removes a user
func (s *UserService) Delete(id int64) error {
	return s.store.DeleteUser(id)
}

// VerifyCredentials returns the user when both username and password match.
// Any mismatch yields the same authentication error.
func (s *UserService) VerifyCredentials(username, password string) (*models.User, error) {
	u, err := s.store.VerifyUserCredentials(username, password)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return u, nil
}
