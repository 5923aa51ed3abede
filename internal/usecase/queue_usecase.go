package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"time"

	"go-medical-frontdesk/internal/converter"
	"go-medical-frontdesk/internal/delivery/dto"
	"go-medical-frontdesk/internal/domain/entity"
	"go-medical-frontdesk/internal/domain/repository"
	"go-medical-frontdesk/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrQueueItemNotFound    = errors.New("queue item not found")
	ErrQueueItemIDRequired  = errors.New("queue item id is required")
	ErrInvalidQueueAction   = errors.New("invalid queue action")
	ErrInvalidQueueStatus   = errors.New("invalid queue status")
	ErrInvalidQueuePriority = errors.New("invalid queue priority")
	ErrInvalidMoveDirection = errors.New("direction must be up or down")
)

const queueStatusAll = "all"

var moveOffsets = map[string]int{
	"up":   -1,
	"down": 1,
}

type QueueUsecase interface {
	ListQueue(ctx context.Context, filter dto.QueueFilter) ([]dto.QueueItemResponse, error)
	GetStats(ctx context.Context, filter dto.QueueFilter) (*dto.QueueStatsResponse, error)
	CheckIn(ctx context.Context, req *dto.CheckInRequest) (*dto.QueueItemResponse, error)
	TransitionItem(ctx context.Context, id string, action entity.QueueAction) (*dto.QueueItemResponse, error)
	MoveItem(ctx context.Context, id string, direction string) ([]dto.QueueItemResponse, error)
	RemoveItem(ctx context.Context, id string) (*dto.QueueItemResponse, error)
}

type queueUsecase struct {
	mu           sync.Mutex
	log          *logrus.Logger
	queueRepo    repository.QueueRepository
	auditService service.AuditService
	now          func() time.Time
}

func NewQueueUsecase(
	log *logrus.Logger,
	queueRepo repository.QueueRepository,
	auditService service.AuditService,
) QueueUsecase {
	return &queueUsecase{
		log:          log,
		queueRepo:    queueRepo,
		auditService: auditService,
		now:          time.Now,
	}
}

func (u *queueUsecase) ListQueue(ctx context.Context, filter dto.QueueFilter) ([]dto.QueueItemResponse, error) {
	status, err := parseQueueStatusFilter(filter.Status)
	if err != nil {
		return nil, err
	}

	items, err := u.queueRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find queue items: %+v", err)
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	matched := make([]entity.QueueItem, 0, len(items))
	for _, item := range items {
		if filter.Doctor != "" && item.DoctorName != filter.Doctor {
			continue
		}
		if status != "" && item.Status != status {
			continue
		}
		if search != "" && !matchesSearch(item, search) {
			continue
		}
		matched = append(matched, item)
	}

	return converter.QueueItemsToResponses(matched), nil
}

// GetStats summarizes the queue, optionally for one doctor. Status and search filters do not apply.
func (u *queueUsecase) GetStats(ctx context.Context, filter dto.QueueFilter) (*dto.QueueStatsResponse, error) {
	items, err := u.queueRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find queue items: %+v", err)
		return nil, err
	}

	stats := &dto.QueueStatsResponse{}
	totalWait := 0
	for _, item := range items {
		if filter.Doctor != "" && item.DoctorName != filter.Doctor {
			continue
		}
		stats.Total++
		totalWait += item.WaitTime
		switch item.Status {
		case entity.QueueStatusWaiting:
			stats.Waiting++
		case entity.QueueStatusConsulting:
			stats.Consulting++
		case entity.QueueStatusCompleted:
			stats.Completed++
		case entity.QueueStatusCancelled:
			stats.Cancelled++
		}
	}
	if stats.Total > 0 {
		stats.AverageWaitTime = int(math.Round(float64(totalWait) / float64(stats.Total)))
	}

	return stats, nil
}

func (u *queueUsecase) CheckIn(ctx context.Context, req *dto.CheckInRequest) (*dto.QueueItemResponse, error) {
	priority := entity.QueuePriorityMedium
	if req.Priority != "" {
		priority = entity.QueuePriority(strings.ToLower(req.Priority))
		if !priority.IsValid() {
			return nil, ErrInvalidQueuePriority
		}
	}

	now := u.now()
	item := &entity.QueueItem{
		PatientName:     req.PatientName,
		DoctorName:      req.DoctorName,
		Priority:        priority,
		Status:          entity.QueueStatusWaiting,
		WaitTime:        req.WaitTime,
		AppointmentTime: req.AppointmentTime,
		Symptoms:        req.Symptoms,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.queueRepo.Create(ctx, item); err != nil {
		u.log.Warnf("Failed to create queue item: %+v", err)
		return nil, err
	}

	response := converter.QueueItemToResponse(item)
	if err := u.auditService.LogCreate(ctx, entity.AuditActionQueueCheckIn, "queue_item", item.ID, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *queueUsecase) TransitionItem(ctx context.Context, id string, action entity.QueueAction) (*dto.QueueItemResponse, error) {
	target, ok := action.Target()
	if !ok {
		return nil, ErrInvalidQueueAction
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	item, err := u.queueRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find queue item: %+v", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrQueueItemNotFound
	}

	oldValue := converter.QueueItemToResponse(item)
	if err := item.TransitionTo(target); err != nil {
		return nil, err
	}
	item.UpdatedAt = u.now()

	if err := u.queueRepo.Update(ctx, item); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrQueueItemNotFound
		}
		u.log.Warnf("Failed to update queue item: %+v", err)
		return nil, err
	}

	newValue := converter.QueueItemToResponse(item)
	if err := u.auditService.LogUpdate(ctx, entity.AuditActionQueueTransition, "queue_item", item.ID, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

// MoveItem swaps an item with its neighbour and returns the reordered queue.
func (u *queueUsecase) MoveItem(ctx context.Context, id string, direction string) ([]dto.QueueItemResponse, error) {
	offset, ok := moveOffsets[strings.ToLower(direction)]
	if !ok {
		return nil, ErrInvalidMoveDirection
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.queueRepo.Move(ctx, id, offset); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrQueueItemNotFound
		}
		u.log.Warnf("Failed to move queue item: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogEvent(ctx, entity.AuditActionQueueMove, "queue_item", id, entity.JSON{"direction": direction}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	items, err := u.queueRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find queue items: %+v", err)
		return nil, err
	}

	return converter.QueueItemsToResponses(items), nil
}

func (u *queueUsecase) RemoveItem(ctx context.Context, id string) (*dto.QueueItemResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrQueueItemIDRequired
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	item, err := u.queueRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrQueueItemNotFound
		}
		u.log.Warnf("Failed to delete queue item: %+v", err)
		return nil, err
	}

	oldValue := converter.QueueItemToResponse(item)
	if err := u.auditService.LogDelete(ctx, entity.AuditActionQueueRemove, "queue_item", id, oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return oldValue, nil
}

func parseQueueStatusFilter(raw string) (entity.QueueStatus, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" || raw == queueStatusAll {
		return "", nil
	}
	status := entity.QueueStatus(raw)
	if !status.IsValid() {
		return "", ErrInvalidQueueStatus
	}
	return status, nil
}

func matchesSearch(item entity.QueueItem, search string) bool {
	return strings.Contains(strings.ToLower(item.PatientName), search) ||
		strings.Contains(strings.ToLower(item.DoctorName), search) ||
		strings.Contains(strings.ToLower(item.ID), search)
}
