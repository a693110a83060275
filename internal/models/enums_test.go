package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatusIsValid(t *testing.T) {
	valid := []RequestStatus{
		RequestStatusPending, RequestStatusAccepted, RequestStatusDeclined,
		RequestStatusInProgress, RequestStatusCompleted, RequestStatusCancelled,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), string(s))
	}

	assert.False(t, RequestStatus("").IsValid())
	assert.False(t, RequestStatus("escalated").IsValid())
	assert.False(t, RequestStatus("Pending").IsValid())
}

func TestRequestStatusIsTerminal(t *testing.T) {
	assert.True(t, RequestStatusCompleted.IsTerminal())
	assert.True(t, RequestStatusDeclined.IsTerminal())
	assert.True(t, RequestStatusCancelled.IsTerminal())

	assert.False(t, RequestStatusPending.IsTerminal())
	assert.False(t, RequestStatusAccepted.IsTerminal())
	assert.False(t, RequestStatusInProgress.IsTerminal())
}

func TestRequestPriorityIsValid(t *testing.T) {
	assert.True(t, RequestPriorityNormal.IsValid())
	assert.True(t, RequestPriorityUrgent.IsValid())
	assert.True(t, RequestPriorityEmergency.IsValid())
	assert.False(t, RequestPriority("whenever").IsValid())
}

func TestUserRoleIsValid(t *testing.T) {
	assert.True(t, UserRoleAdmin.IsValid())
	assert.True(t, UserRolePhysician.IsValid())
	assert.False(t, UserRole("superuser").IsValid())
}
