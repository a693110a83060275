package models

import "time"

// User represents a portal login. Password is stored as-is on the record but
// excluded from JSON so it never reaches the wire.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Password       string    `json:"-"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Role           UserRole  `json:"role"`
	OrganizationID *int64    `json:"organization_id,omitempty"`
	PhysicianID    *int64    `json:"physician_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
