package usecase

import (
	"context"
	"errors"
	"sort"
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
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrAppointmentIDRequired    = errors.New("appointment id is required")
	ErrInvalidAppointmentDate   = errors.New("invalid date or time")
	ErrInvalidAppointmentStatus = errors.New("invalid appointment status")
	ErrInvalidAppointmentType   = errors.New("invalid appointment type")
	ErrInvalidAppointmentAction = errors.New("invalid appointment action")
)

const (
	defaultAppointmentDuration = 30
	unknownDoctorName          = "Unknown Doctor"
	unknownPatientName         = "Unknown Patient"
	defaultSpecialization      = "General Medicine"
)

var appointmentTimeLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05"}

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context) ([]dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	TransitionAppointment(ctx context.Context, id string, action entity.AppointmentAction) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	// mu serializes writes so read-modify-write cycles never interleave
	mu              sync.Mutex
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	auditService    service.AuditService
	location        *time.Location
	now             func() time.Time
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
	location *time.Location,
) AppointmentUsecase {
	if location == nil {
		location = time.UTC
	}
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		auditService:    auditService,
		location:        location,
		now:             time.Now,
	}
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].Date.Before(appointments[j].Date)
	})

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := u.parseAppointmentTime(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	appointmentType, ok := entity.ParseAppointmentType(req.Type)
	if !ok {
		return nil, ErrInvalidAppointmentType
	}

	duration := req.Duration
	if duration == 0 {
		duration = defaultAppointmentDuration
	}

	doctor, err := u.doctorSnapshot(ctx, req.DoctorID, req.DoctorName)
	if err != nil {
		return nil, err
	}
	patient, err := u.patientSnapshot(ctx, req.PatientID, req.PatientName)
	if err != nil {
		return nil, err
	}

	now := u.now()
	appointment := &entity.Appointment{
		Date:      date,
		Duration:  duration,
		Status:    entity.AppointmentStatusScheduled,
		Type:      appointmentType,
		Symptoms:  optionalString(req.Symptoms),
		Notes:     optionalString(req.Notes),
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
		Doctor:    doctor,
		Patient:   patient,
		CreatedAt: now,
		UpdatedAt: now,
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	response := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogCreate(ctx, entity.AuditActionAppointmentCreate, "appointment", appointment.ID, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if strings.TrimSpace(req.ID) == "" {
		return nil, ErrAppointmentIDRequired
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	appointment, err := u.appointmentRepo.FindByID(ctx, req.ID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	// Capture old value for audit
	oldValue := converter.AppointmentToResponse(appointment)

	if req.Date != nil || req.Time != nil {
		local := appointment.Date.In(u.location)
		date, clock := local.Format("2006-01-02"), local.Format("15:04:05")
		if req.Date != nil {
			date = *req.Date
		}
		if req.Time != nil {
			clock = *req.Time
		}
		parsed, err := u.parseAppointmentTime(date, clock)
		if err != nil {
			return nil, err
		}
		appointment.Date = parsed
	}
	if req.Duration != nil {
		appointment.Duration = *req.Duration
	}
	if req.Type != nil {
		appointmentType := entity.AppointmentType(strings.ToUpper(strings.TrimSpace(*req.Type)))
		if !appointmentType.IsValid() {
			return nil, ErrInvalidAppointmentType
		}
		appointment.Type = appointmentType
	}
	if req.Symptoms != nil {
		appointment.Symptoms = optionalString(*req.Symptoms)
	}
	if req.Notes != nil {
		appointment.Notes = optionalString(*req.Notes)
	}
	// Snapshots stay as booked even when references change
	if req.DoctorID != nil {
		appointment.DoctorID = *req.DoctorID
	}
	if req.PatientID != nil {
		appointment.PatientID = *req.PatientID
	}
	if req.Status != nil {
		status := entity.AppointmentStatus(strings.ToUpper(strings.TrimSpace(*req.Status)))
		if !status.IsValid() {
			return nil, ErrInvalidAppointmentStatus
		}
		if status != appointment.Status {
			if err := appointment.TransitionTo(status); err != nil {
				return nil, err
			}
		}
	}
	appointment.UpdatedAt = u.now()

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	newValue := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogUpdate(ctx, entity.AuditActionAppointmentUpdate, "appointment", appointment.ID, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

func (u *appointmentUsecase) TransitionAppointment(ctx context.Context, id string, action entity.AppointmentAction) (*dto.AppointmentResponse, error) {
	target, ok := action.Target()
	if !ok {
		return nil, ErrInvalidAppointmentAction
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	oldValue := converter.AppointmentToResponse(appointment)
	if err := appointment.TransitionTo(target); err != nil {
		return nil, err
	}
	appointment.UpdatedAt = u.now()

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	newValue := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogUpdate(ctx, entity.AuditActionAppointmentTransition, "appointment", appointment.ID, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrAppointmentIDRequired
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	appointment, err := u.appointmentRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return nil, err
	}

	oldValue := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogDelete(ctx, entity.AuditActionAppointmentDelete, "appointment", id, oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return oldValue, nil
}

// parseAppointmentTime combines a YYYY-MM-DD date and an HH:MM[:SS] clock in the clinic timezone.
func (u *appointmentUsecase) parseAppointmentTime(date, clock string) (time.Time, error) {
	value := strings.TrimSpace(date) + "T" + strings.TrimSpace(clock)
	for _, layout := range appointmentTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, u.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidAppointmentDate
}

func (u *appointmentUsecase) doctorSnapshot(ctx context.Context, id, name string) (entity.AppointmentDoctor, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return entity.AppointmentDoctor{}, err
	}
	if doctor == nil {
		return entity.AppointmentDoctor{
			ID:             id,
			Name:           fallback(name, unknownDoctorName),
			Specialization: defaultSpecialization,
		}, nil
	}
	return entity.AppointmentDoctor{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Specialization: doctor.Specialization,
	}, nil
}

func (u *appointmentUsecase) patientSnapshot(ctx context.Context, id, name string) (entity.AppointmentPatient, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return entity.AppointmentPatient{}, err
	}
	if patient == nil {
		return entity.AppointmentPatient{
			ID:   id,
			Name: fallback(name, unknownPatientName),
		}, nil
	}
	age, gender := patient.Age, patient.Gender
	return entity.AppointmentPatient{
		ID:     patient.ID,
		Name:   patient.Name,
		Age:    &age,
		Gender: &gender,
	}, nil
}
