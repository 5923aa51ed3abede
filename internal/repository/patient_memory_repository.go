package repository

import (
	"context"

	"go-medical-frontdesk/internal/domain/entity"
	domainRepo "go-medical-frontdesk/internal/domain/repository"
)

type PatientMemoryRepository struct {
	store *MemoryStore[entity.Patient]
}

func NewPatientMemoryRepository(opts ...StoreOption) *PatientMemoryRepository {
	return &PatientMemoryRepository{
		store: NewMemoryStore(func(p *entity.Patient) *string { return &p.ID }, opts...),
	}
}

func (r *PatientMemoryRepository) Seed(patients ...entity.Patient) {
	r.store.Seed(patients...)
}

func (r *PatientMemoryRepository) Create(ctx context.Context, patient *entity.Patient) error {
	stored := r.store.Insert(*patient)
	patient.ID = stored.ID
	return nil
}

func (r *PatientMemoryRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	return r.store.List(), nil
}

func (r *PatientMemoryRepository) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	patient, ok := r.store.Get(id)
	if !ok {
		return nil, nil
	}
	return &patient, nil
}

func (r *PatientMemoryRepository) FindByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	patient, ok := r.store.Find(func(p *entity.Patient) bool {
		return p.Email != nil && *p.Email == email
	})
	if !ok {
		return nil, nil
	}
	return &patient, nil
}

func (r *PatientMemoryRepository) Update(ctx context.Context, patient *entity.Patient) error {
	return r.store.Replace(*patient)
}

func (r *PatientMemoryRepository) Delete(ctx context.Context, id string) (*entity.Patient, error) {
	patient, err := r.store.Remove(id)
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *PatientMemoryRepository) Count(ctx context.Context) (int64, error) {
	return int64(r.store.Len()), nil
}

var _ domainRepo.PatientRepository = (*PatientMemoryRepository)(nil)
