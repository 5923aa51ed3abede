package service

import (
	"context"
	"time"

	"go-medical-frontdesk/internal/delivery/http/middleware"
	"go-medical-frontdesk/internal/domain/entity"
	"go-medical-frontdesk/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// AuditService records front-desk mutations for the activity feed.
type AuditService interface {
	LogCreate(ctx context.Context, action string, entityName string, entityID string, newValue interface{}) error
	LogUpdate(ctx context.Context, action string, entityName string, entityID string, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, action string, entityName string, entityID string, oldValue interface{}) error
	LogEvent(ctx context.Context, action string, entityName string, entityID string, metadata entity.JSON) error
	Recent(ctx context.Context, limit int) ([]entity.AuditLog, error)
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
	now       func() time.Time
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
		now:       time.Now,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, action string, entityName string, entityID string, newValue interface{}) error {
	return s.LogEvent(ctx, action, entityName, entityID, entity.JSON{
		"old_value": nil,
		"new_value": newValue,
	})
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return s.LogEvent(ctx, action, entityName, entityID, entity.JSON{
		"old_value": oldValue,
		"new_value": newValue,
	})
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, action string, entityName string, entityID string, oldValue interface{}) error {
	return s.LogEvent(ctx, action, entityName, entityID, entity.JSON{
		"old_value": oldValue,
		"new_value": nil,
	})
}

// LogEvent stores an entry attributed to the session on ctx, if any
func (s *auditService) LogEvent(ctx context.Context, action string, entityName string, entityID string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		Action:    action,
		Entity:    entityName,
		EntityID:  entityID,
		Metadata:  metadata,
		CreatedAt: s.now(),
	}
	if role, ok := middleware.GetSessionRoleFromContext(ctx); ok {
		auditLog.ActorRole = string(role)
	}
	if name, ok := middleware.GetSessionNameFromContext(ctx); ok {
		auditLog.ActorName = name
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

func (s *auditService) Recent(ctx context.Context, limit int) ([]entity.AuditLog, error) {
	logs, err := s.auditRepo.FindRecent(ctx, limit)
	if err != nil {
		s.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}
	return logs, nil
}
