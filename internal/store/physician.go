package store

import (
	apperrors "oncall-portal-backend/internal/errors"
	"oncall-portal-backend/internal/models"
)

// PhysicianPatch carries the fields of a partial physician update.
type PhysicianPatch struct {
	FirstName   *string
	LastName    *string
	Specialty   *string
	Phone       *string
	Email       *string
	Credentials *[]string
}

// ListPhysicians returns all physicians ordered by id.
func (s *Store) ListPhysicians() []models.Physician {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Physician, 0, len(s.physicians))
	for _, id := range sortedIDs(s.physicians) {
		out = append(out, *clonePhysician(s.physicians[id]))
	}
	return out
}

// GetPhysicianByID retrieves a physician by id.
func (s *Store) GetPhysicianByID(id int64) (*models.Physician, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.physicians[id]
	if !ok {
		return nil, apperrors.ErrPhysicianNotFound
	}
	return clonePhysician(p), nil
}

// CreatePhysician stores a new physician, stamping its id and creation time.
func (s *Store) CreatePhysician(input models.Physician) *models.Physician {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPhysicianID++
	p := clonePhysician(&input)
	p.ID = s.nextPhysicianID
	p.CreatedAt = s.now()
	s.physicians[p.ID] = p
	return clonePhysician(p)
}

// UpdatePhysician merges the patch onto the stored record.
func (s *Store) UpdatePhysician(id int64, patch PhysicianPatch) (*models.Physician, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.physicians[id]
	if !ok {
		return nil, apperrors.ErrPhysicianNotFound
	}
	if patch.FirstName != nil {
		p.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		p.LastName = *patch.LastName
	}
	if patch.Specialty != nil {
		p.Specialty = *patch.Specialty
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Credentials != nil {
		p.Credentials = cloneStrings(*patch.Credentials)
	}
	return clonePhysician(p), nil
}

// DeletePhysician removes a physician. Assignment rows, schedules, requests
// and users referencing it are left untouched.
func (s *Store) DeletePhysician(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.physicians[id]; !ok {
		return apperrors.ErrPhysicianNotFound
	}
	delete(s.physicians, id)
	return nil
}
