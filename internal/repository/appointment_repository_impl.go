package repository

import (
	"context"

	"go-medical-frontdesk/internal/domain/entity"
	domainRepo "go-medical-frontdesk/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	if appointment.ID == "" {
		appointment.ID = uuid.NewString()
	}
	return translateError(r.db.WithContext(ctx).Create(appointment).Error)
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	return findFirst[entity.Appointment](r.db.WithContext(ctx), "id = ?", id)
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return updateAll(r.db.WithContext(ctx), appointment)
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) (*entity.Appointment, error) {
	return deleteByID[entity.Appointment](r.db.WithContext(ctx), id)
}

func (r *appointmentRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).Count(&total).Error
	return total, err
}
