package models

import "time"

// Schedule represents one on-call coverage interval for one physician at one organization
type Schedule struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	PhysicianID    int64     `json:"physician_id"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// Overlaps reports whether the schedule interval [StartTime, EndTime]
// overlaps the window [from, to] inclusively.
func (s *Schedule) Overlaps(from, to time.Time) bool {
	return !s.StartTime.After(to) && !s.EndTime.Before(from)
}
