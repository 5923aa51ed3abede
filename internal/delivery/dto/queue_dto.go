package dto

import "time"

// Request DTOs

type CheckInRequest struct {
	PatientName     string `json:"patientName" validate:"required"`
	DoctorName      string `json:"doctorName" validate:"required"`
	Priority        string `json:"priority" validate:"omitempty,oneof=high medium low"`
	WaitTime        int    `json:"waitTime" validate:"omitempty,gte=0"`
	AppointmentTime string `json:"appointmentTime" validate:"omitempty"`
	Symptoms        string `json:"symptoms" validate:"omitempty"`
}

type MoveQueueItemRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

// QueueFilter narrows a queue listing; empty fields match everything.
type QueueFilter struct {
	Status string
	Search string
	Doctor string
}

// Response DTOs

type QueueItemResponse struct {
	ID              string    `json:"id"`
	PatientName     string    `json:"patientName"`
	DoctorName      string    `json:"doctorName"`
	Priority        string    `json:"priority"`
	Status          string    `json:"status"`
	WaitTime        int       `json:"waitTime"`
	AppointmentTime string    `json:"appointmentTime,omitempty"`
	Symptoms        string    `json:"symptoms,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type QueueStatsResponse struct {
	Total           int `json:"total"`
	Waiting         int `json:"waiting"`
	Consulting      int `json:"consulting"`
	Completed       int `json:"completed"`
	Cancelled       int `json:"cancelled"`
	AverageWaitTime int `json:"averageWaitTime"`
}

type DeleteQueueItemResponse struct {
	Message string            `json:"message"`
	Item    QueueItemResponse `json:"item"`
}
