package repository

import (
	"context"

	"go-medical-frontdesk/internal/domain/entity"
	domainRepo "go-medical-frontdesk/internal/domain/repository"
)

type DoctorMemoryRepository struct {
	store *MemoryStore[entity.Doctor]
}

func NewDoctorMemoryRepository(opts ...StoreOption) *DoctorMemoryRepository {
	return &DoctorMemoryRepository{
		store: NewMemoryStore(func(d *entity.Doctor) *string { return &d.ID }, opts...),
	}
}

func (r *DoctorMemoryRepository) Seed(doctors ...entity.Doctor) {
	r.store.Seed(doctors...)
}

func (r *DoctorMemoryRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	stored := r.store.Insert(*doctor)
	doctor.ID = stored.ID
	return nil
}

func (r *DoctorMemoryRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	return r.store.List(), nil
}

func (r *DoctorMemoryRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	doctor, ok := r.store.Get(id)
	if !ok {
		return nil, nil
	}
	return &doctor, nil
}

func (r *DoctorMemoryRepository) FindByEmail(ctx context.Context, email string) (*entity.Doctor, error) {
	doctor, ok := r.store.Find(func(d *entity.Doctor) bool { return d.Email == email })
	if !ok {
		return nil, nil
	}
	return &doctor, nil
}

func (r *DoctorMemoryRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	return r.store.Replace(*doctor)
}

func (r *DoctorMemoryRepository) Delete(ctx context.Context, id string) (*entity.Doctor, error) {
	doctor, err := r.store.Remove(id)
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *DoctorMemoryRepository) Count(ctx context.Context) (int64, error) {
	return int64(r.store.Len()), nil
}

var _ domainRepo.DoctorRepository = (*DoctorMemoryRepository)(nil)
