package store

import (
	"time"

	apperrors "oncall-portal-backend/internal/errors"
	"oncall-portal-backend/internal/models"
)

// SchedulePatch carries the fields of a partial schedule update.
type SchedulePatch struct {
	OrganizationID *int64
	PhysicianID    *int64
	StartTime      *time.Time
	EndTime        *time.Time
	Title          *string
	Description    *string
	IsActive       *bool
}

// ListSchedules returns all schedules ordered by id.
func (s *Store) ListSchedules() []models.Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Schedule, 0, len(s.schedules))
	for _, id := range sortedIDs(s.schedules) {
		out = append(out, *cloneSchedule(s.schedules[id]))
	}
	return out
}

// GetScheduleByID retrieves a schedule by id.
func (s *Store) GetScheduleByID(id int64) (*models.Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sc, ok := s.schedules[id]
	if !ok {
		return nil, apperrors.ErrScheduleNotFound
	}
	return cloneSchedule(sc), nil
}

// CreateSchedule stores a new schedule, stamping its id and creation time.
func (s *Store) CreateSchedule(input models.Schedule) *models.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextScheduleID++
	sc := cloneSchedule(&input)
	sc.ID = s.nextScheduleID
	sc.CreatedAt = s.now()
	s.schedules[sc.ID] = sc
	return cloneSchedule(sc)
}

// UpdateSchedule merges the patch onto the stored record.
func (s *Store) UpdateSchedule(id int64, patch SchedulePatch) (*models.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc, ok := s.schedules[id]
	if !ok {
		return nil, apperrors.ErrScheduleNotFound
	}
	if patch.OrganizationID != nil {
		sc.OrganizationID = *patch.OrganizationID
	}
	if patch.PhysicianID != nil {
		sc.PhysicianID = *patch.PhysicianID
	}
	if patch.StartTime != nil {
		sc.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		sc.EndTime = *patch.EndTime
	}
	if patch.Title != nil {
		sc.Title = *patch.Title
	}
	if patch.Description != nil {
		sc.Description = *patch.Description
	}
	if patch.IsActive != nil {
		sc.IsActive = *patch.IsActive
	}
	return cloneSchedule(sc), nil
}

// DeleteSchedule removes a schedule.
func (s *Store) DeleteSchedule(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.schedules[id]; !ok {
		return apperrors.ErrScheduleNotFound
	}
	delete(s.schedules, id)
	return nil
}

// GetSchedulesByOrganization returns all schedules for the organization.
func (s *Store) GetSchedulesByOrganization(organizationID int64) []models.Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Schedule{}
	for _, id := range sortedIDs(s.schedules) {
		sc := s.schedules[id]
		if sc.OrganizationID == organizationID {
			out = append(out, *cloneSchedule(sc))
		}
	}
	return out
}

// GetSchedulesByPhysician returns all schedules for the physician.
func (s *Store) GetSchedulesByPhysician(physicianID int64) []models.Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Schedule{}
	for _, id := range sortedIDs(s.schedules) {
		sc := s.schedules[id]
		if sc.PhysicianID == physicianID {
			out = append(out, *cloneSchedule(sc))
		}
	}
	return out
}

// GetActiveSchedules returns the active schedules for the organization. When
// both bounds are supplied, only schedules whose interval overlaps [from, to]
// inclusively are returned; with one or zero bounds no time filter is applied.
func (s *Store) GetActiveSchedules(organizationID int64, from, to *time.Time) []models.Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Schedule{}
	for _, id := range sortedIDs(s.schedules) {
		sc := s.schedules[id]
		if sc.OrganizationID != organizationID || !sc.IsActive {
			continue
		}
		if from != nil && to != nil && !sc.Overlaps(*from, *to) {
			continue
		}
		out = append(out, *cloneSchedule(sc))
	}
	return out
}
