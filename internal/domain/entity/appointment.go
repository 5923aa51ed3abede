package entity

import (
	"strings"
	"time"
)

// AppointmentType classifies the reason for a visit
type AppointmentType string

const (
	AppointmentTypeConsultation AppointmentType = "CONSULTATION"
	AppointmentTypeFollowUp     AppointmentType = "FOLLOW_UP"
	AppointmentTypeEmergency    AppointmentType = "EMERGENCY"
	AppointmentTypeRoutine      AppointmentType = "ROUTINE"
)

// ParseAppointmentType upper-cases raw input and falls back to CONSULTATION when empty.
func ParseAppointmentType(raw string) (AppointmentType, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return AppointmentTypeConsultation, true
	}
	t := AppointmentType(strings.ToUpper(raw))
	return t, t.IsValid()
}

func (t AppointmentType) IsValid() bool {
	switch t {
	case AppointmentTypeConsultation, AppointmentTypeFollowUp, AppointmentTypeEmergency, AppointmentTypeRoutine:
		return true
	}
	return false
}

// AppointmentDoctor is the doctor as seen when the appointment was booked.
type AppointmentDoctor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

// AppointmentPatient is the patient as seen when the appointment was booked.
type AppointmentPatient struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Age    *int    `json:"age"`
	Gender *string `json:"gender"`
}

// Appointment is a scheduled visit between a patient and a doctor
type Appointment struct {
	ID        string             `gorm:"type:varchar(36);primaryKey" json:"id"`
	Date      time.Time          `gorm:"not null;index" json:"date"`
	Duration  int                `gorm:"not null;default:30" json:"duration"`
	Status    AppointmentStatus  `gorm:"type:varchar(20);not null;index" json:"status"`
	Type      AppointmentType    `gorm:"type:varchar(20);not null" json:"type"`
	Symptoms  *string            `gorm:"type:text" json:"symptoms"`
	Notes     *string            `gorm:"type:text" json:"notes"`
	DoctorID  string             `gorm:"type:varchar(36);not null;index" json:"doctorId"`
	PatientID string             `gorm:"type:varchar(36);not null;index" json:"patientId"`
	Doctor    AppointmentDoctor  `gorm:"serializer:json;type:text" json:"doctor"`
	Patient   AppointmentPatient `gorm:"serializer:json;type:text" json:"patient"`
	CreatedAt time.Time          `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt time.Time          `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// TransitionTo moves the appointment to next or returns a *TransitionError.
func (a *Appointment) TransitionTo(next AppointmentStatus) error {
	if !a.Status.CanTransitionTo(next) {
		return &TransitionError{From: string(a.Status), To: string(next)}
	}
	a.Status = next
	return nil
}

func (a Appointment) Clone() Appointment {
	c := a
	c.Symptoms = cloneString(a.Symptoms)
	c.Notes = cloneString(a.Notes)
	c.Patient.Age = cloneInt(a.Patient.Age)
	c.Patient.Gender = cloneString(a.Patient.Gender)
	return c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
