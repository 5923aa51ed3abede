package repository

import (
	"context"
	"sync"

	"go-medical-frontdesk/internal/domain/entity"
	domainRepo "go-medical-frontdesk/internal/domain/repository"
)

const defaultAuditCapacity = 500

// AuditLogMemoryRepository keeps the most recent entries, dropping the oldest past capacity.
type AuditLogMemoryRepository struct {
	mu       sync.RWMutex
	logs     []entity.AuditLog
	nextID   int64
	capacity int
}

func NewAuditLogMemoryRepository(capacity int) *AuditLogMemoryRepository {
	if capacity <= 0 {
		capacity = defaultAuditCapacity
	}
	return &AuditLogMemoryRepository{capacity: capacity}
}

func (r *AuditLogMemoryRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	log.ID = r.nextID
	r.logs = append(r.logs, *log)
	if over := len(r.logs) - r.capacity; over > 0 {
		r.logs = append([]entity.AuditLog(nil), r.logs[over:]...)
	}
	return nil
}

func (r *AuditLogMemoryRepository) FindRecent(ctx context.Context, limit int) ([]entity.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.logs) {
		limit = len(r.logs)
	}
	logs := make([]entity.AuditLog, 0, limit)
	for i := len(r.logs) - 1; i >= 0 && len(logs) < limit; i-- {
		logs = append(logs, r.logs[i])
	}
	return logs, nil
}

var _ domainRepo.AuditLogRepository = (*AuditLogMemoryRepository)(nil)
