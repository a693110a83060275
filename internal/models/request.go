package models

import "time"

// StatusHistoryEntry is one row of a request's append-only status log.
// Note and UserID are only captured on the dedicated status-update path.
type StatusHistoryEntry struct {
	Status    RequestStatus `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Note      *string       `json:"note,omitempty"`
	UserID    *int64        `json:"user_id,omitempty"`
}

// Request represents a patient-care consult request tracked through a status lifecycle
type Request struct {
	ID             int64                `json:"id"`
	OrganizationID int64                `json:"organization_id"`
	PhysicianID    int64                `json:"physician_id"`
	PatientName    string               `json:"patient_name"`
	PatientMRN     string               `json:"patient_mrn"`
	Diagnosis      string               `json:"diagnosis"`
	Location       string               `json:"location"`
	Notes          string               `json:"notes,omitempty"`
	Status         RequestStatus        `json:"status"`
	Priority       RequestPriority      `json:"priority"`
	StatusHistory  []StatusHistoryEntry `json:"status_history"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}
