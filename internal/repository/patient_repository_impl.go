package repository

import (
	"context"

	"go-medical-frontdesk/internal/domain/entity"
	domainRepo "go-medical-frontdesk/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	if patient.ID == "" {
		patient.ID = uuid.NewString()
	}
	return translateError(r.db.WithContext(ctx).Create(patient).Error)
}

func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	var patients []entity.Patient
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	return findFirst[entity.Patient](r.db.WithContext(ctx), "id = ?", id)
}

func (r *patientRepository) FindByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	return findFirst[entity.Patient](r.db.WithContext(ctx), "email = ?", email)
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	return updateAll(r.db.WithContext(ctx), patient)
}

func (r *patientRepository) Delete(ctx context.Context, id string) (*entity.Patient, error) {
	return deleteByID[entity.Patient](r.db.WithContext(ctx), id)
}

func (r *patientRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Patient{}).Count(&total).Error
	return total, err
}
