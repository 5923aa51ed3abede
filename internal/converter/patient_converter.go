package converter

import (
	"go-medical-frontdesk/internal/delivery/dto"
	"go-medical-frontdesk/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        patient.ID,
		Name:      patient.Name,
		Age:       patient.Age,
		Gender:    patient.Gender,
		Phone:     patient.Phone,
		Email:     patient.Email,
		Address:   patient.Address,
		BloodType: patient.BloodType,
		Status:    patient.Status,
		EmergencyContact: dto.EmergencyContactResponse{
			Name:         patient.EmergencyContact.Name,
			Relationship: patient.EmergencyContact.Relationship,
			Phone:        patient.EmergencyContact.Phone,
		},
		MedicalHistory:  nonNil(patient.MedicalHistory),
		Allergies:       nonNil(patient.Allergies),
		Insurance:       patient.Insurance,
		LastVisit:       patient.LastVisit,
		NextAppointment: patient.NextAppointment,
		CreatedAt:       patient.CreatedAt,
		UpdatedAt:       patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// nonNil keeps empty lists rendering as [] rather than null
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
