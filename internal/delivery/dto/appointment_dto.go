package dto

import (
	"time"

	"go-medical-frontdesk/internal/domain/entity"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID   string `json:"patientId" validate:"required"`
	DoctorID    string `json:"doctorId" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Duration    int    `json:"duration" validate:"omitempty,gt=0"`
	Type        string `json:"type" validate:"omitempty"`
	Symptoms    string `json:"symptoms" validate:"omitempty"`
	Notes       string `json:"notes" validate:"omitempty"`
	DoctorName  string `json:"doctorName" validate:"omitempty"`
	PatientName string `json:"patientName" validate:"omitempty"`
}

// UpdateAppointmentRequest is a partial update; nil fields are left unchanged.
type UpdateAppointmentRequest struct {
	ID        string  `json:"id"`
	Date      *string `json:"date" validate:"omitempty"`
	Time      *string `json:"time" validate:"omitempty"`
	Duration  *int    `json:"duration" validate:"omitempty,gt=0"`
	Status    *string `json:"status" validate:"omitempty"`
	Type      *string `json:"type" validate:"omitempty"`
	Symptoms  *string `json:"symptoms" validate:"omitempty"`
	Notes     *string `json:"notes" validate:"omitempty"`
	DoctorID  *string `json:"doctorId" validate:"omitempty"`
	PatientID *string `json:"patientId" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        string                    `json:"id"`
	Date      time.Time                 `json:"date"`
	Duration  int                       `json:"duration"`
	Status    string                    `json:"status"`
	Type      string                    `json:"type"`
	Symptoms  *string                   `json:"symptoms"`
	Notes     *string                   `json:"notes"`
	DoctorID  string                    `json:"doctorId"`
	PatientID string                    `json:"patientId"`
	Doctor    entity.AppointmentDoctor  `json:"doctor"`
	Patient   entity.AppointmentPatient `json:"patient"`
	CreatedAt time.Time                 `json:"createdAt"`
	UpdatedAt time.Time                 `json:"updatedAt"`
}

type DeleteAppointmentResponse struct {
	Message     string              `json:"message"`
	Appointment AppointmentResponse `json:"appointment"`
}
