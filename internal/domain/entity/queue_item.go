package entity

import "time"

type QueuePriority string

const (
	QueuePriorityHigh   QueuePriority = "high"
	QueuePriorityMedium QueuePriority = "medium"
	QueuePriorityLow    QueuePriority = "low"
)

func (p QueuePriority) IsValid() bool {
	return p == QueuePriorityHigh || p == QueuePriorityMedium || p == QueuePriorityLow
}

type QueueStatus string

const (
	QueueStatusWaiting    QueueStatus = "waiting"
	QueueStatusConsulting QueueStatus = "consulting"
	QueueStatusCompleted  QueueStatus = "completed"
	QueueStatusCancelled  QueueStatus = "cancelled"
)

var queueTransitions = map[QueueStatus][]QueueStatus{
	QueueStatusWaiting:    {QueueStatusConsulting, QueueStatusCancelled},
	QueueStatusConsulting: {QueueStatusCompleted, QueueStatusCancelled},
	QueueStatusCompleted:  {},
	QueueStatusCancelled:  {},
}

func (s QueueStatus) IsValid() bool {
	_, ok := queueTransitions[s]
	return ok
}

func (s QueueStatus) CanTransitionTo(next QueueStatus) bool {
	for _, allowed := range queueTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type QueueAction string

const (
	QueueActionStart    QueueAction = "start"
	QueueActionComplete QueueAction = "complete"
	QueueActionCancel   QueueAction = "cancel"
)

var queueActionTargets = map[QueueAction]QueueStatus{
	QueueActionStart:    QueueStatusConsulting,
	QueueActionComplete: QueueStatusCompleted,
	QueueActionCancel:   QueueStatusCancelled,
}

func (a QueueAction) Target() (QueueStatus, bool) {
	status, ok := queueActionTargets[a]
	return status, ok
}

// QueueItem is a walk-in or checked-in patient waiting for a doctor
type QueueItem struct {
	ID              string        `json:"id"`
	PatientName     string        `json:"patientName"`
	DoctorName      string        `json:"doctorName"`
	Priority        QueuePriority `json:"priority"`
	Status          QueueStatus   `json:"status"`
	WaitTime        int           `json:"waitTime"`
	AppointmentTime string        `json:"appointmentTime,omitempty"`
	Symptoms        string        `json:"symptoms,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// TransitionTo applies a status change; completing an item clears its wait time.
func (q *QueueItem) TransitionTo(next QueueStatus) error {
	if !q.Status.CanTransitionTo(next) {
		return &TransitionError{From: string(q.Status), To: string(next)}
	}
	q.Status = next
	if next == QueueStatusCompleted {
		q.WaitTime = 0
	}
	return nil
}

func (q QueueItem) Clone() QueueItem {
	return q
}
