package repository

import (
	"context"

	"go-medical-frontdesk/internal/domain/entity"
	domainRepo "go-medical-frontdesk/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	if doctor.ID == "" {
		doctor.ID = uuid.NewString()
	}
	return translateError(r.db.WithContext(ctx).Create(doctor).Error)
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	return findFirst[entity.Doctor](r.db.WithContext(ctx), "id = ?", id)
}

func (r *doctorRepository) FindByEmail(ctx context.Context, email string) (*entity.Doctor, error) {
	return findFirst[entity.Doctor](r.db.WithContext(ctx), "email = ?", email)
}

func (r *doctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	return updateAll(r.db.WithContext(ctx), doctor)
}

func (r *doctorRepository) Delete(ctx context.Context, id string) (*entity.Doctor, error) {
	return deleteByID[entity.Doctor](r.db.WithContext(ctx), id)
}

func (r *doctorRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Doctor{}).Count(&total).Error
	return total, err
}
