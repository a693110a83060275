package models

import "time"

// Physician represents a physician available for on-call coverage
type Physician struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Specialty   string    `json:"specialty"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Credentials []string  `json:"credentials"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrganizationPhysicianAssignment links one physician to one organization.
// The same pair may appear in multiple rows; no uniqueness is enforced.
type OrganizationPhysicianAssignment struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	PhysicianID    int64     `json:"physician_id"`
	CreatedAt      time.Time `json:"created_at"`
}
