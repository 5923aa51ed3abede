package repository

import (
	"context"
	"fmt"

	"go-medical-frontdesk/internal/domain/entity"
	domainRepo "go-medical-frontdesk/internal/domain/repository"
)

// FormatQueueID renders a queue sequence number as Q001, Q002, ...
func FormatQueueID(seq int) string {
	return fmt.Sprintf("Q%03d", seq)
}

type QueueMemoryRepository struct {
	store *MemoryStore[entity.QueueItem]
}

func NewQueueMemoryRepository() *QueueMemoryRepository {
	return &QueueMemoryRepository{
		store: NewMemoryStore(func(q *entity.QueueItem) *string { return &q.ID }, WithIDFormat(FormatQueueID)),
	}
}

func (r *QueueMemoryRepository) Seed(items ...entity.QueueItem) {
	r.store.Seed(items...)
}

func (r *QueueMemoryRepository) Create(ctx context.Context, item *entity.QueueItem) error {
	stored := r.store.Insert(*item)
	item.ID = stored.ID
	return nil
}

func (r *QueueMemoryRepository) FindAll(ctx context.Context) ([]entity.QueueItem, error) {
	return r.store.List(), nil
}

func (r *QueueMemoryRepository) FindByID(ctx context.Context, id string) (*entity.QueueItem, error) {
	item, ok := r.store.Get(id)
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *QueueMemoryRepository) Update(ctx context.Context, item *entity.QueueItem) error {
	return r.store.Replace(*item)
}

func (r *QueueMemoryRepository) Delete(ctx context.Context, id string) (*entity.QueueItem, error) {
	item, err := r.store.Remove(id)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *QueueMemoryRepository) Move(ctx context.Context, id string, offset int) error {
	return r.store.Move(id, offset)
}

var _ domainRepo.QueueRepository = (*QueueMemoryRepository)(nil)
