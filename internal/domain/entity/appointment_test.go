package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{AppointmentStatusPending, AppointmentStatusConfirmed, true},
		{AppointmentStatusPending, AppointmentStatusCancelled, true},
		{AppointmentStatusPending, AppointmentStatusCompleted, false},
		{AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{AppointmentStatusConfirmed, AppointmentStatusPending, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{AppointmentStatusCancelled, AppointmentStatusPending, false},
		{AppointmentStatusCancelled, AppointmentStatusCancelled, true},
		{AppointmentStatusCompleted, AppointmentStatusCompleted, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointmentStatus_IsValid(t *testing.T) {
	assert.True(t, AppointmentStatusPending.IsValid())
	assert.True(t, AppointmentStatusCancelled.IsValid())
	assert.False(t, AppointmentStatus("rescheduled").IsValid())
	assert.False(t, AppointmentStatus("").IsValid())
}

func TestAppointmentStatus_IsTerminal(t *testing.T) {
	assert.True(t, AppointmentStatusCompleted.IsTerminal())
	assert.True(t, AppointmentStatusCancelled.IsTerminal())
	assert.False(t, AppointmentStatusPending.IsTerminal())
	assert.False(t, AppointmentStatusConfirmed.IsTerminal())
}

func TestQueueStatus_IsValid(t *testing.T) {
	for _, s := range []QueueStatus{QueueStatusWaiting, QueueStatusCalled, QueueStatusDone, QueueStatusSkipped} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, QueueStatus("serving").IsValid())
}

func TestUser_IsActive(t *testing.T) {
	assert.True(t, (&User{Status: UserStatusActive}).IsActive())
	assert.True(t, (&User{}).IsActive())
	assert.False(t, (&User{Status: UserStatusInactive}).IsActive())
}

func TestUserProfile_FullName(t *testing.T) {
	var nilProfile *UserProfile
	assert.Equal(t, "", nilProfile.FullName())
	assert.Equal(t, "Ana", (&UserProfile{FirstName: "Ana"}).FullName())
	assert.Equal(t, "Ana Cruz", (&UserProfile{FirstName: "Ana", LastName: "Cruz"}).FullName())
}
