package converter

import (
	"strings"

	"go-medical-frontdesk/internal/delivery/dto"
	"go-medical-frontdesk/internal/domain/entity"
)

// AuditLogToResponse converts a AuditLog entity to AuditLogResponse DTO
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	return &dto.AuditLogResponse{
		ID:        log.ID,
		Action:    log.Action,
		Entity:    log.Entity,
		EntityID:  log.EntityID,
		ActorRole: log.ActorRole,
		ActorName: log.ActorName,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
}

// AuditLogsToResponses converts a slice of AuditLog entities to slice of AuditLogResponse DTOs
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToResponse(&logs[i])
	}
	return responses
}

// AuditLogToActivity condenses an AuditLog into a feed entry
func AuditLogToActivity(log *entity.AuditLog) dto.ActivityEntry {
	user := log.ActorName
	if user == "" {
		user = log.ActorRole
	}

	return dto.ActivityEntry{
		ID:          log.ID,
		Type:        log.Entity,
		Action:      log.Action,
		Description: describeActivity(log),
		Timestamp:   log.CreatedAt,
		User:        user,
	}
}

var activityVerbs = map[string]string{
	"create":        "created",
	"update":        "updated",
	"delete":        "deleted",
	"transition":    "changed status",
	"checkin":       "checked in",
	"move":          "moved",
	"remove":        "removed from queue",
	"check":         "health checked",
	"metric_update": "metrics updated",
	"start":         "started",
}

func describeActivity(log *entity.AuditLog) string {
	verb := log.Action
	if idx := strings.LastIndex(log.Action, "."); idx >= 0 {
		verb = log.Action[idx+1:]
	}
	if past, ok := activityVerbs[verb]; ok {
		verb = past
	}

	subject := strings.ReplaceAll(log.Entity, "_", " ")
	if subject != "" {
		subject = strings.ToUpper(subject[:1]) + subject[1:]
	}
	if log.EntityID != "" {
		subject += " " + log.EntityID
	}
	return strings.TrimSpace(subject + " " + verb)
}
