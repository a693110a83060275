package models

// RequestStatus represents the lifecycle status of a consult request
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusAccepted   RequestStatus = "accepted"
	RequestStatusDeclined   RequestStatus = "declined"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

// RequestPriority represents the urgency of a consult request
type RequestPriority string

const (
	RequestPriorityNormal    RequestPriority = "normal"
	RequestPriorityUrgent    RequestPriority = "urgent"
	RequestPriorityEmergency RequestPriority = "emergency"
)

// UserRole represents the role of a portal user
type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRolePhysician UserRole = "physician"
)

// IsValid checks if the RequestStatus is valid
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusDeclined,
		RequestStatusInProgress, RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the UI offers no further transition from this status
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestStatusCompleted, RequestStatusDeclined, RequestStatusCancelled:
		return true
	}
	return false
}

// IsValid checks if the RequestPriority is valid
func (p RequestPriority) IsValid() bool {
	switch p {
	case RequestPriorityNormal, RequestPriorityUrgent, RequestPriorityEmergency:
		return true
	}
	return false
}

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRolePhysician:
		return true
	}
	return false
}
