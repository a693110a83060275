package store

import (
	apperrors "oncall-portal-backend/internal/errors"
	"oncall-portal-backend/internal/models"
)

// OrganizationPatch carries the fields of a partial organization update.
// Only non-nil fields overwrite the stored value.
type OrganizationPatch struct {
	Name         *string
	Address      *string
	City         *string
	State        *string
	Zip          *string
	Phone        *string
	Email        *string
	BillingCodes *[]string
}

// ListOrganizations returns all organizations ordered by id.
func (s *Store) ListOrganizations() []models.Organization {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Organization, 0, len(s.organizations))
	for _, id := range sortedIDs(s.organizations) {
		out = append(out, *cloneOrganization(s.organizations[id]))
	}
	return out
}

// GetOrganizationByID retrieves an organization by id.
func (s *Store) GetOrganizationByID(id int64) (*models.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	org, ok := s.organizations[id]
	if !ok {
		return nil, apperrors.ErrOrganizationNotFound
	}
	return cloneOrganization(org), nil
}

// CreateOrganization stores a new organization, stamping its id and creation time.
func (s *Store) CreateOrganization(input models.Organization) *models.Organization {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextOrganizationID++
	org := cloneOrganization(&input)
	org.ID = s.nextOrganizationID
	org.CreatedAt = s.now()
	s.organizations[org.ID] = org
	return cloneOrganization(org)
}

// UpdateOrganization merges the patch onto the stored record.
func (s *Store) UpdateOrganization(id int64, patch OrganizationPatch) (*models.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	org, ok := s.organizations[id]
	if !ok {
		return nil, apperrors.ErrOrganizationNotFound
	}
	if patch.Name != nil {
		org.Name = *patch.Name
	}
	if patch.Address != nil {
		org.Address = *patch.Address
	}
	if patch.City != nil {
		org.City = *patch.City
	}
	if patch.State != nil {
		org.State = *patch.State
	}
	if patch.Zip != nil {
		org.Zip = *patch.Zip
	}
	if patch.Phone != nil {
		org.Phone = *patch.Phone
	}
	if patch.Email != nil {
		org.Email = *patch.Email
	}
	if patch.BillingCodes != nil {
		org.BillingCodes = cloneStrings(*patch.BillingCodes)
	}
	return cloneOrganization(org), nil
}

// DeleteOrganization removes an organization. Schedules, requests, users and
// assignment rows referencing it are left untouched.
func (s *Store) DeleteOrganization(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.organizations[id]; !ok {
		return apperrors.ErrOrganizationNotFound
	}
	delete(s.organizations, id)
	return nil
}
