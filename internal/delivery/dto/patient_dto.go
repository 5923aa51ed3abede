package dto

import (
	"time"
)

// Request DTOs

type EmergencyContactRequest struct {
	Name         string `json:"name" validate:"omitempty"`
	Relationship string `json:"relationship" validate:"omitempty"`
	Phone        string `json:"phone" validate:"omitempty"`
}

type CreatePatientRequest struct {
	Name             string                   `json:"name" validate:"required"`
	Age              *int                     `json:"age" validate:"required,gte=0,lte=150"`
	Gender           string                   `json:"gender" validate:"required"`
	Phone            string                   `json:"phone" validate:"omitempty"`
	Email            string                   `json:"email" validate:"omitempty"`
	Address          string                   `json:"address" validate:"omitempty"`
	BloodType        string                   `json:"bloodType" validate:"omitempty"`
	EmergencyContact *EmergencyContactRequest `json:"emergencyContact" validate:"omitempty"`
	MedicalHistory   []string                 `json:"medicalHistory" validate:"omitempty"`
	Allergies        []string                 `json:"allergies" validate:"omitempty"`
	Insurance        string                   `json:"insurance" validate:"omitempty"`
}

// UpdatePatientRequest is a partial update; nil fields are left unchanged.
type UpdatePatientRequest struct {
	ID               string                   `json:"id"`
	Name             *string                  `json:"name" validate:"omitempty,min=1"`
	Age              *int                     `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender           *string                  `json:"gender" validate:"omitempty"`
	Phone            *string                  `json:"phone" validate:"omitempty"`
	Email            *string                  `json:"email" validate:"omitempty"`
	Address          *string                  `json:"address" validate:"omitempty"`
	BloodType        *string                  `json:"bloodType" validate:"omitempty"`
	Status           *string                  `json:"status" validate:"omitempty"`
	EmergencyContact *EmergencyContactRequest `json:"emergencyContact" validate:"omitempty"`
	MedicalHistory   []string                 `json:"medicalHistory" validate:"omitempty"`
	Allergies        []string                 `json:"allergies" validate:"omitempty"`
	Insurance        *string                  `json:"insurance" validate:"omitempty"`
	LastVisit        *time.Time               `json:"lastVisit" validate:"omitempty"`
	NextAppointment  *time.Time               `json:"nextAppointment" validate:"omitempty"`
}

// Response DTOs

type EmergencyContactResponse struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

type PatientResponse struct {
	ID               string                   `json:"id"`
	Name             string                   `json:"name"`
	Age              int                      `json:"age"`
	Gender           string                   `json:"gender"`
	Phone            string                   `json:"phone"`
	Email            *string                  `json:"email"`
	Address          string                   `json:"address"`
	BloodType        string                   `json:"bloodType"`
	Status           string                   `json:"status"`
	EmergencyContact EmergencyContactResponse `json:"emergencyContact"`
	MedicalHistory   []string                 `json:"medicalHistory"`
	Allergies        []string                 `json:"allergies"`
	Insurance        string                   `json:"insurance"`
	LastVisit        *time.Time               `json:"lastVisit"`
	NextAppointment  *time.Time               `json:"nextAppointment"`
	CreatedAt        time.Time                `json:"createdAt"`
	UpdatedAt        time.Time                `json:"updatedAt"`
}

type DeletePatientResponse struct {
	Message string          `json:"message"`
	Patient PatientResponse `json:"patient"`
}
