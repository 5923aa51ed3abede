package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{AppointmentStatusScheduled, AppointmentStatusConfirmed, true},
		{AppointmentStatusScheduled, AppointmentStatusCancelled, true},
		{AppointmentStatusScheduled, AppointmentStatusInProgress, false},
		{AppointmentStatusScheduled, AppointmentStatusCompleted, false},
		{AppointmentStatusConfirmed, AppointmentStatusInProgress, true},
		{AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{AppointmentStatusConfirmed, AppointmentStatusScheduled, false},
		{AppointmentStatusInProgress, AppointmentStatusCompleted, true},
		{AppointmentStatusInProgress, AppointmentStatusCancelled, true},
		{AppointmentStatusInProgress, AppointmentStatusConfirmed, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{AppointmentStatusCompleted, AppointmentStatusScheduled, false},
		{AppointmentStatusCancelled, AppointmentStatusScheduled, false},
		{AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointmentStatus_Classification(t *testing.T) {
	assert.True(t, AppointmentStatusCompleted.IsTerminal())
	assert.True(t, AppointmentStatusCancelled.IsTerminal())
	assert.False(t, AppointmentStatusInProgress.IsTerminal())

	assert.True(t, AppointmentStatusScheduled.IsPending())
	assert.True(t, AppointmentStatusConfirmed.IsPending())
	assert.False(t, AppointmentStatusInProgress.IsPending())

	assert.False(t, AppointmentStatus("RESCHEDULED").IsValid())
	assert.False(t, AppointmentStatus("RESCHEDULED").IsTerminal())
}

func TestAppointment_TransitionTo(t *testing.T) {
	appointment := &Appointment{Status: AppointmentStatusScheduled}

	require.NoError(t, appointment.TransitionTo(AppointmentStatusConfirmed))
	require.NoError(t, appointment.TransitionTo(AppointmentStatusInProgress))
	require.NoError(t, appointment.TransitionTo(AppointmentStatusCancelled))
	assert.Equal(t, AppointmentStatusCancelled, appointment.Status)

	err := appointment.TransitionTo(AppointmentStatusScheduled)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, "invalid status transition from CANCELLED to SCHEDULED", err.Error())
	assert.Equal(t, AppointmentStatusCancelled, appointment.Status)
}

func TestAppointmentAction_Target(t *testing.T) {
	tests := []struct {
		action AppointmentAction
		want   AppointmentStatus
		ok     bool
	}{
		{AppointmentActionConfirm, AppointmentStatusConfirmed, true},
		{AppointmentActionStart, AppointmentStatusInProgress, true},
		{AppointmentActionComplete, AppointmentStatusCompleted, true},
		{AppointmentActionCancel, AppointmentStatusCancelled, true},
		{AppointmentAction("reopen"), "", false},
	}

	for _, tt := range tests {
		got, ok := tt.action.Target()
		assert.Equal(t, tt.ok, ok, string(tt.action))
		assert.Equal(t, tt.want, got, string(tt.action))
	}
}

func TestParseAppointmentType(t *testing.T) {
	got, ok := ParseAppointmentType("")
	assert.True(t, ok)
	assert.Equal(t, AppointmentTypeConsultation, got)

	got, ok = ParseAppointmentType("follow_up")
	assert.True(t, ok)
	assert.Equal(t, AppointmentTypeFollowUp, got)

	_, ok = ParseAppointmentType("surgery")
	assert.False(t, ok)
}

func TestAppointment_CloneDetachesPointers(t *testing.T) {
	symptoms := "cough"
	age := 40
	original := Appointment{Symptoms: &symptoms, Patient: AppointmentPatient{Age: &age}}

	clone := original.Clone()
	*clone.Symptoms = "fever"
	*clone.Patient.Age = 41

	assert.Equal(t, "cough", *original.Symptoms)
	assert.Equal(t, 40, *original.Patient.Age)
}
