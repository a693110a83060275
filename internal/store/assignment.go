package store

import (
	apperrors "oncall-portal-backend/internal/errors"
	"oncall-portal-backend/internal/models"
)

// ListAssignments returns all organization-physician assignment rows ordered by id.
func (s *Store) ListAssignments() []models.OrganizationPhysicianAssignment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.OrganizationPhysicianAssignment, 0, len(s.assignments))
	for _, id := range sortedIDs(s.assignments) {
		out = append(out, *cloneAssignment(s.assignments[id]))
	}
	return out
}

// AssignPhysicianToOrganization creates a new assignment row unconditionally.
// Assigning the same pair twice yields two rows.
func (s *Store) AssignPhysicianToOrganization(organizationID, physicianID int64) *models.OrganizationPhysicianAssignment {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAssignmentID++
	a := &models.OrganizationPhysicianAssignment{
		ID:             s.nextAssignmentID,
		OrganizationID: organizationID,
		PhysicianID:    physicianID,
		CreatedAt:      s.now(),
	}
	s.assignments[a.ID] = a
	return cloneAssignment(a)
}

// RemovePhysicianFromOrganization removes the oldest assignment row matching
// both ids. When duplicate rows exist, only one is removed per call.
func (s *Store) RemovePhysicianFromOrganization(organizationID, physicianID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range sortedIDs(s.assignments) {
		a := s.assignments[id]
		if a.OrganizationID == organizationID && a.PhysicianID == physicianID {
			delete(s.assignments, id)
			return nil
		}
	}
	return apperrors.ErrAssignmentNotFound
}

// GetPhysiciansByOrganization resolves physicians through the assignment rows
// for the organization. Rows whose physician no longer exists are skipped.
// Duplicate assignment rows yield duplicate physicians.
func (s *Store) GetPhysiciansByOrganization(organizationID int64) []models.Physician {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Physician{}
	for _, id := range sortedIDs(s.assignments) {
		a := s.assignments[id]
		if a.OrganizationID != organizationID {
			continue
		}
		p, ok := s.physicians[a.PhysicianID]
		if !ok {
			continue
		}
		out = append(out, *clonePhysician(p))
	}
	return out
}

// GetOrganizationsByPhysician is the symmetric lookup, with the same
// dangling-reference tolerance.
func (s *Store) GetOrganizationsByPhysician(physicianID int64) []models.Organization {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Organization{}
	for _, id := range sortedIDs(s.assignments) {
		a := s.assignments[id]
		if a.PhysicianID != physicianID {
			continue
		}
		org, ok := s.organizations[a.OrganizationID]
		if !ok {
			continue
		}
		out = append(out, *cloneOrganization(org))
	}
	return out
}
