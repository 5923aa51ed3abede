package converter

import (
	"go-medical-frontdesk/internal/delivery/dto"
	"go-medical-frontdesk/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:        appointment.ID,
		Date:      appointment.Date,
		Duration:  appointment.Duration,
		Status:    string(appointment.Status),
		Type:      string(appointment.Type),
		Symptoms:  appointment.Symptoms,
		Notes:     appointment.Notes,
		DoctorID:  appointment.DoctorID,
		PatientID: appointment.PatientID,
		Doctor:    appointment.Doctor,
		Patient:   appointment.Patient,
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
