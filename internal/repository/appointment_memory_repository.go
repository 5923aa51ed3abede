package repository

import (
	"context"

	"go-medical-frontdesk/internal/domain/entity"
	domainRepo "go-medical-frontdesk/internal/domain/repository"
)

type AppointmentMemoryRepository struct {
	store *MemoryStore[entity.Appointment]
}

func NewAppointmentMemoryRepository(opts ...StoreOption) *AppointmentMemoryRepository {
	return &AppointmentMemoryRepository{
		store: NewMemoryStore(func(a *entity.Appointment) *string { return &a.ID }, opts...),
	}
}

// Seed loads fixture appointments keeping their ids.
func (r *AppointmentMemoryRepository) Seed(appointments ...entity.Appointment) {
	r.store.Seed(appointments...)
}

func (r *AppointmentMemoryRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	stored := r.store.Insert(*appointment)
	appointment.ID = stored.ID
	return nil
}

func (r *AppointmentMemoryRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	return r.store.List(), nil
}

func (r *AppointmentMemoryRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	appointment, ok := r.store.Get(id)
	if !ok {
		return nil, nil
	}
	return &appointment, nil
}

func (r *AppointmentMemoryRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return r.store.Replace(*appointment)
}

func (r *AppointmentMemoryRepository) Delete(ctx context.Context, id string) (*entity.Appointment, error) {
	appointment, err := r.store.Remove(id)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentMemoryRepository) Count(ctx context.Context) (int64, error) {
	return int64(r.store.Len()), nil
}

var _ domainRepo.AppointmentRepository = (*AppointmentMemoryRepository)(nil)
