package repository

import (
	"context"

	"go-medical-frontdesk/internal/domain/entity"
)

// QueueRepository keeps queue items in display order.
type QueueRepository interface {
	Create(ctx context.Context, item *entity.QueueItem) error
	FindAll(ctx context.Context) ([]entity.QueueItem, error)
	FindByID(ctx context.Context, id string) (*entity.QueueItem, error)
	Update(ctx context.Context, item *entity.QueueItem) error
	Delete(ctx context.Context, id string) (*entity.QueueItem, error)
	// Move shifts an item by offset positions; moving past either end is a no-op.
	Move(ctx context.Context, id string, offset int) error
}
