package converter

import (
	"go-medical-frontdesk/internal/delivery/dto"
	"go-medical-frontdesk/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Email:          doctor.Email,
		Phone:          doctor.Phone,
		Specialization: doctor.Specialization,
		Experience:     doctor.Experience,
		Education:      doctor.Education,
		Status:         string(doctor.Status),
		Avatar:         doctor.Avatar,
		Schedule:       doctor.Schedule,
		Rating:         doctor.Rating.InexactFloat64(),
		PatientsCount:  doctor.PatientsCount,
		CreatedAt:      doctor.CreatedAt,
		UpdatedAt:      doctor.UpdatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// WeeklyScheduleFromRequest converts request working hours to the entity schedule
func WeeklyScheduleFromRequest(schedule map[string]dto.WorkingHoursRequest) entity.WeeklySchedule {
	if schedule == nil {
		return nil
	}
	out := make(entity.WeeklySchedule, len(schedule))
	for day, hours := range schedule {
		out[day] = entity.WorkingHours{Start: hours.Start, End: hours.End}
	}
	return out
}
