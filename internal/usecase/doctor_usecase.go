package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go-medical-frontdesk/internal/converter"
	"go-medical-frontdesk/internal/delivery/dto"
	"go-medical-frontdesk/internal/domain/entity"
	"go-medical-frontdesk/internal/domain/repository"
	"go-medical-frontdesk/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDoctorIDRequired    = errors.New("doctor id is required")
	ErrDoctorEmailExists   = errors.New("doctor email already exists")
	ErrInvalidDoctorStatus = errors.New("invalid doctor status")
	ErrInvalidDoctorRating = errors.New("rating must be between 0 and 5")
)

const (
	defaultPhone           = "+1 (555) 000-0000"
	defaultDoctorEducation = "MD - Medical School"
	defaultDoctorAvatar    = "/api/avatars/default-doctor.jpg"
)

var maxDoctorRating = decimal.NewFromInt(5)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context) ([]dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error)
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	mu           sync.Mutex
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
	now          func() time.Time
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		log:          log,
		doctorRepo:   doctorRepo,
		auditService: auditService,
		now:          time.Now,
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	sortByName(doctors, func(d *entity.Doctor) string { return d.Name })

	return converter.DoctorsToResponses(doctors), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	schedule := converter.WeeklyScheduleFromRequest(req.Schedule)
	if len(schedule) == 0 {
		schedule = entity.DefaultWeeklySchedule()
	}

	now := u.now()
	doctor := &entity.Doctor{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          fallback(req.Phone, defaultPhone),
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Education:      fallback(req.Education, defaultDoctorEducation),
		Status:         entity.DoctorStatusActive,
		Avatar:         fallback(req.Avatar, defaultDoctorAvatar),
		Schedule:       schedule,
		Rating:         decimal.Zero,
		PatientsCount:  0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	existing, err := u.doctorRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find doctor by email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrDoctorEmailExists
	}

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDoctorEmailExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	response := converter.DoctorToResponse(doctor)
	if err := u.auditService.LogCreate(ctx, entity.AuditActionDoctorCreate, "doctor", doctor.ID, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	if strings.TrimSpace(req.ID) == "" {
		return nil, ErrDoctorIDRequired
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	doctor, err := u.doctorRepo.FindByID(ctx, req.ID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// Capture old value for audit
	oldValue := converter.DoctorToResponse(doctor)

	if req.Email != nil && *req.Email != doctor.Email {
		existing, err := u.doctorRepo.FindByEmail(ctx, *req.Email)
		if err != nil {
			u.log.Warnf("Failed to find doctor by email: %+v", err)
			return nil, err
		}
		if existing != nil && existing.ID != doctor.ID {
			return nil, ErrDoctorEmailExists
		}
		doctor.Email = *req.Email
	}
	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Phone != nil {
		doctor.Phone = *req.Phone
	}
	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
	}
	if req.Experience != nil {
		doctor.Experience = *req.Experience
	}
	if req.Education != nil {
		doctor.Education = *req.Education
	}
	if req.Avatar != nil {
		doctor.Avatar = *req.Avatar
	}
	if req.Status != nil {
		status := entity.DoctorStatus(strings.ToUpper(strings.TrimSpace(*req.Status)))
		if !status.IsValid() {
			return nil, ErrInvalidDoctorStatus
		}
		doctor.Status = status
	}
	if len(req.Schedule) > 0 {
		doctor.Schedule = converter.WeeklyScheduleFromRequest(req.Schedule)
	}
	if req.Rating != nil {
		rating := decimal.NewFromFloat(*req.Rating).Round(1)
		if rating.IsNegative() || rating.GreaterThan(maxDoctorRating) {
			return nil, ErrInvalidDoctorRating
		}
		doctor.Rating = rating
	}
	if req.PatientsCount != nil {
		doctor.PatientsCount = *req.PatientsCount
	}
	doctor.UpdatedAt = u.now()

	if err := u.doctorRepo.Update(ctx, doctor); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrDoctorNotFound
		}
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDoctorEmailExists
		}
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	newValue := converter.DoctorToResponse(doctor)
	if err := u.auditService.LogUpdate(ctx, entity.AuditActionDoctorUpdate, "doctor", doctor.ID, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrDoctorIDRequired
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	doctor, err := u.doctorRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return nil, err
	}

	oldValue := converter.DoctorToResponse(doctor)
	if err := u.auditService.LogDelete(ctx, entity.AuditActionDoctorDelete, "doctor", id, oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return oldValue, nil
}
