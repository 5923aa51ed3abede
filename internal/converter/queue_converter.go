package converter

import (
	"go-medical-frontdesk/internal/delivery/dto"
	"go-medical-frontdesk/internal/domain/entity"
)

// QueueItemToResponse converts a QueueItem entity to QueueItemResponse DTO
func QueueItemToResponse(item *entity.QueueItem) *dto.QueueItemResponse {
	if item == nil {
		return nil
	}

	return &dto.QueueItemResponse{
		ID:              item.ID,
		PatientName:     item.PatientName,
		DoctorName:      item.DoctorName,
		Priority:        string(item.Priority),
		Status:          string(item.Status),
		WaitTime:        item.WaitTime,
		AppointmentTime: item.AppointmentTime,
		Symptoms:        item.Symptoms,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

// QueueItemsToResponses converts a slice of QueueItem entities to slice of QueueItemResponse DTOs
func QueueItemsToResponses(items []entity.QueueItem) []dto.QueueItemResponse {
	responses := make([]dto.QueueItemResponse, len(items))
	for i := range items {
		responses[i] = *QueueItemToResponse(&items[i])
	}
	return responses
}
