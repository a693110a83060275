package store

import (
	apperrors "oncall-portal-backend/internal/errors"
	"oncall-portal-backend/internal/models"
)

// RequestPatch carries the fields of a partial request update. A status change
// through the patch appends a bare history entry; note and author are only
// recorded by UpdateRequestStatus.
type RequestPatch struct {
	OrganizationID *int64
	PhysicianID    *int64
	PatientName    *string
	PatientMRN     *string
	Diagnosis      *string
	Location       *string
	Notes          *string
	Status         *models.RequestStatus
	Priority       *models.RequestPriority
}

// ListRequests returns all requests ordered by id.
func (s *Store) ListRequests() []models.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Request, 0, len(s.requests))
	for _, id := range sortedIDs(s.requests) {
		out = append(out, *cloneRequest(s.requests[id]))
	}
	return out
}

// GetRequestByID retrieves a request by id.
func (s *Store) GetRequestByID(id int64) (*models.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.requests[id]
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	return cloneRequest(r), nil
}

// CreateRequest stores a new request. The status defaults to pending when
// empty, created/updated timestamps are set to now, and the status history is
// seeded with exactly one entry carrying the creation status and timestamp.
func (s *Store) CreateRequest(input models.Request) *models.Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.nextRequestID++
	r := cloneRequest(&input)
	r.ID = s.nextRequestID
	if r.Status == "" {
		r.Status = models.RequestStatusPending
	}
	r.CreatedAt = now
	r.UpdatedAt = now
	r.StatusHistory = []models.StatusHistoryEntry{
		{Status: r.Status, Timestamp: now},
	}
	s.requests[r.ID] = r
	return cloneRequest(r)
}

// UpdateRequest merges the patch onto the stored record. If the patch changes
// the status, a history entry with only the new status and timestamp is
// appended before the merge; UpdatedAt always moves to now.
func (s *Store) UpdateRequest(id int64, patch RequestPatch) (*models.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[id]
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}

	now := s.now()
	if patch.Status != nil && *patch.Status != r.Status {
		r.StatusHistory = append(r.StatusHistory, models.StatusHistoryEntry{
			Status:    *patch.Status,
			Timestamp: now,
		})
	}
	if patch.OrganizationID != nil {
		r.OrganizationID = *patch.OrganizationID
	}
	if patch.PhysicianID != nil {
		r.PhysicianID = *patch.PhysicianID
	}
	if patch.PatientName != nil {
		r.PatientName = *patch.PatientName
	}
	if patch.PatientMRN != nil {
		r.PatientMRN = *patch.PatientMRN
	}
	if patch.Diagnosis != nil {
		r.Diagnosis = *patch.Diagnosis
	}
	if patch.Location != nil {
		r.Location = *patch.Location
	}
	if patch.Notes != nil {
		r.Notes = *patch.Notes
	}
	if patch.Status != nil {
		r.Status = *patch.Status
	}
	if patch.Priority != nil {
		r.Priority = *patch.Priority
	}
	r.UpdatedAt = now
	return cloneRequest(r), nil
}

// UpdateRequestStatus appends a full history entry carrying status, timestamp
// and the optional note and author, then sets the record's status and
// UpdatedAt to match. This is the preferred transition path for callers.
// No transition table is enforced; any status value is accepted.
func (s *Store) UpdateRequestStatus(id int64, status models.RequestStatus, note *string, userID *int64) (*models.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[id]
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}

	now := s.now()
	entry := models.StatusHistoryEntry{Status: status, Timestamp: now, Note: note, UserID: userID}
	r.StatusHistory = append(r.StatusHistory, cloneHistoryEntry(entry))
	r.Status = status
	r.UpdatedAt = now
	return cloneRequest(r), nil
}

// DeleteRequest removes a request.
func (s *Store) DeleteRequest(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.requests[id]; !ok {
		return apperrors.ErrRequestNotFound
	}
	delete(s.requests, id)
	return nil
}

// GetRequestsByOrganization returns all requests for the organization.
func (s *Store) GetRequestsByOrganization(organizationID int64) []models.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Request{}
	for _, id := range sortedIDs(s.requests) {
		r := s.requests[id]
		if r.OrganizationID == organizationID {
			out = append(out, *cloneRequest(r))
		}
	}
	return out
}

// GetRequestsByPhysician returns all requests for the physician.
func (s *Store) GetRequestsByPhysician(physicianID int64) []models.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Request{}
	for _, id := range sortedIDs(s.requests) {
		r := s.requests[id]
		if r.PhysicianID == physicianID {
			out = append(out, *cloneRequest(r))
		}
	}
	return out
}

// GetRequestsByStatus returns all requests currently in the given status.
func (s *Store) GetRequestsByStatus(status models.RequestStatus) []models.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Request{}
	for _, id := range sortedIDs(s.requests) {
		r := s.requests[id]
		if r.Status == status {
			out = append(out, *cloneRequest(r))
		}
	}
	return out
}
