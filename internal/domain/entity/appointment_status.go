package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition matches every TransitionError via errors.Is.
var ErrInvalidTransition = errors.New("invalid status transition")

// TransitionError reports a status change the lifecycle does not allow.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// AppointmentStatus is the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "SCHEDULED"
	AppointmentStatusConfirmed  AppointmentStatus = "CONFIRMED"
	AppointmentStatusInProgress AppointmentStatus = "IN_PROGRESS"
	AppointmentStatusCompleted  AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled  AppointmentStatus = "CANCELLED"
)

var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusScheduled:  {AppointmentStatusConfirmed, AppointmentStatusCancelled},
	AppointmentStatusConfirmed:  {AppointmentStatusInProgress, AppointmentStatusCancelled},
	AppointmentStatusInProgress: {AppointmentStatusCompleted, AppointmentStatusCancelled},
	AppointmentStatusCompleted:  {},
	AppointmentStatusCancelled:  {},
}

func (s AppointmentStatus) IsValid() bool {
	_, ok := appointmentTransitions[s]
	return ok
}

// IsTerminal reports whether no further transition is possible.
func (s AppointmentStatus) IsTerminal() bool {
	next, ok := appointmentTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether moving from s to next is a legal step.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range appointmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsPending reports whether the appointment still awaits the visit.
func (s AppointmentStatus) IsPending() bool {
	return s == AppointmentStatusScheduled || s == AppointmentStatusConfirmed
}

// AppointmentAction names a lifecycle command exposed as an endpoint.
type AppointmentAction string

const (
	AppointmentActionConfirm  AppointmentAction = "confirm"
	AppointmentActionStart    AppointmentAction = "start"
	AppointmentActionComplete AppointmentAction = "complete"
	AppointmentActionCancel   AppointmentAction = "cancel"
)

var appointmentActionTargets = map[AppointmentAction]AppointmentStatus{
	AppointmentActionConfirm:  AppointmentStatusConfirmed,
	AppointmentActionStart:    AppointmentStatusInProgress,
	AppointmentActionComplete: AppointmentStatusCompleted,
	AppointmentActionCancel:   AppointmentStatusCancelled,
}

// Target returns the status an action moves an appointment to.
func (a AppointmentAction) Target() (AppointmentStatus, bool) {
	status, ok := appointmentActionTargets[a]
	return status, ok
}
