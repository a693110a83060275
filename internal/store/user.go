package store

import (
	apperrors "oncall-portal-backend/internal/errors"
	"oncall-portal-backend/internal/models"
)

// UserPatch carries the fields of a partial user update.
type UserPatch struct {
	Username       *string
	Password       *string
	FirstName      *string
	LastName       *string
	Email          *string
	Role           *models.UserRole
	OrganizationID **int64
	PhysicianID    **int64
}

// ListUsers returns all users ordered by id.
func (s *Store) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, id := range sortedIDs(s.users) {
		out = append(out, *cloneUser(s.users[id]))
	}
	return out
}

// GetUserByID retrieves a user by id.
func (s *Store) GetUserByID(id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return cloneUser(u), nil
}

// GetUserByUsername returns the first user with a matching username. Username
// uniqueness is expected from callers but not enforced here.
func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedIDs(s.users) {
		if s.users[id].Username == username {
			return cloneUser(s.users[id]), nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// VerifyUserCredentials returns the user only when both username and password
// match exactly. A wrong username and a wrong password are indistinguishable.
func (s *Store) VerifyUserCredentials(username, password string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedIDs(s.users) {
		u := s.users[id]
		if u.Username == username {
			if u.Password == password {
				return cloneUser(u), nil
			}
			return nil, apperrors.ErrUserNotFound
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// CreateUser stores a new user, stamping its id and creation time. No
// username-uniqueness check is performed; that belongs to the caller.
func (s *Store) CreateUser(input models.User) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextUserID++
	u := cloneUser(&input)
	u.ID = s.nextUserID
	u.CreatedAt = s.now()
	s.users[u.ID] = u
	return cloneUser(u)
}

// UpdateUser merges the patch onto the stored record.
func (s *Store) UpdateUser(id int64, patch UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Password != nil {
		u.Password = *patch.Password
	}
	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = *patch.LastName
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.OrganizationID != nil {
		u.OrganizationID = clonePtr(*patch.OrganizationID)
	}
	if patch.PhysicianID != nil {
		u.PhysicianID = clonePtr(*patch.PhysicianID)
	}
	return cloneUser(u), nil
}

func clonePtr(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// DeleteUser removes a user.
func (s *Store) DeleteUser(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}
