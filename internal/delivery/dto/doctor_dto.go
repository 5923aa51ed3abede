package dto

import (
	"time"

	"go-medical-frontdesk/internal/domain/entity"
)

// Request DTOs

type WorkingHoursRequest struct {
	Start string `json:"start" validate:"required,clock"`
	End   string `json:"end" validate:"required,clock"`
}

type CreateDoctorRequest struct {
	Name           string                         `json:"name" validate:"required"`
	Email          string                         `json:"email" validate:"required"`
	Specialization string                         `json:"specialization" validate:"required"`
	Phone          string                         `json:"phone" validate:"omitempty"`
	Experience     int                            `json:"experience" validate:"omitempty,gte=0"`
	Education      string                         `json:"education" validate:"omitempty"`
	Avatar         string                         `json:"avatar" validate:"omitempty"`
	Schedule       map[string]WorkingHoursRequest `json:"schedule" validate:"omitempty,dive,keys,oneof=monday tuesday wednesday thursday friday saturday sunday,endkeys"`
}

// UpdateDoctorRequest is a partial update; nil fields are left unchanged.
type UpdateDoctorRequest struct {
	ID             string                         `json:"id"`
	Name           *string                        `json:"name" validate:"omitempty,min=1"`
	Email          *string                        `json:"email" validate:"omitempty,min=1"`
	Phone          *string                        `json:"phone" validate:"omitempty"`
	Specialization *string                        `json:"specialization" validate:"omitempty,min=1"`
	Experience     *int                           `json:"experience" validate:"omitempty,gte=0"`
	Education      *string                        `json:"education" validate:"omitempty"`
	Status         *string                        `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	Avatar         *string                        `json:"avatar" validate:"omitempty"`
	Schedule       map[string]WorkingHoursRequest `json:"schedule" validate:"omitempty,dive,keys,oneof=monday tuesday wednesday thursday friday saturday sunday,endkeys"`
	Rating         *float64                       `json:"rating" validate:"omitempty,gte=0,lte=5"`
	PatientsCount  *int                           `json:"patientsCount" validate:"omitempty,gte=0"`
}

// Response DTOs

type DoctorResponse struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Email          string                `json:"email"`
	Phone          string                `json:"phone"`
	Specialization string                `json:"specialization"`
	Experience     int                   `json:"experience"`
	Education      string                `json:"education"`
	Status         string                `json:"status"`
	Avatar         string                `json:"avatar"`
	Schedule       entity.WeeklySchedule `json:"schedule"`
	Rating         float64               `json:"rating"`
	PatientsCount  int                   `json:"patientsCount"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

type DeleteDoctorResponse struct {
	Message string         `json:"message"`
	Doctor  DoctorResponse `json:"doctor"`
}
