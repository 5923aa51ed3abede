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

	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrPatientIDRequired  = errors.New("patient id is required")
	ErrPatientEmailExists = errors.New("patient email already exists")
)

const (
	defaultPatientAddress   = "Address not provided"
	defaultPatientBloodType = "Unknown"
	defaultPatientStatus    = "active"
	defaultPatientInsurance = "No insurance"
)

func defaultEmergencyContact() entity.EmergencyContact {
	return entity.EmergencyContact{
		Name:         "Emergency Contact",
		Relationship: "Unknown",
		Phone:        defaultPhone,
	}
}

type PatientUsecase interface {
	ListPatients(ctx context.Context) ([]dto.PatientResponse, error)
	GetPatient(ctx context.Context, id string) (*dto.PatientResponse, error)
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id string) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	mu           sync.Mutex
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
	now          func() time.Time
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
		now:          time.Now,
	}
}

func (u *patientUsecase) ListPatients(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	sortByName(patients, func(p *entity.Patient) string { return p.Name })

	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	emergencyContact := defaultEmergencyContact()
	if req.EmergencyContact != nil {
		emergencyContact = entity.EmergencyContact{
			Name:         fallback(req.EmergencyContact.Name, emergencyContact.Name),
			Relationship: fallback(req.EmergencyContact.Relationship, emergencyContact.Relationship),
			Phone:        fallback(req.EmergencyContact.Phone, emergencyContact.Phone),
		}
	}

	var age int
	if req.Age != nil {
		age = *req.Age
	}

	now := u.now()
	patient := &entity.Patient{
		Name:             req.Name,
		Age:              age,
		Gender:           req.Gender,
		Phone:            fallback(req.Phone, defaultPhone),
		Email:            optionalString(req.Email),
		Address:          fallback(req.Address, defaultPatientAddress),
		BloodType:        fallback(req.BloodType, defaultPatientBloodType),
		Status:           defaultPatientStatus,
		EmergencyContact: emergencyContact,
		MedicalHistory:   cleanEntries(req.MedicalHistory, false),
		Allergies:        cleanEntries(req.Allergies, true),
		Insurance:        fallback(req.Insurance, defaultPatientInsurance),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if patient.Email != nil {
		existing, err := u.patientRepo.FindByEmail(ctx, *patient.Email)
		if err != nil {
			u.log.Warnf("Failed to find patient by email: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrPatientEmailExists
		}
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrPatientEmailExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	response := converter.PatientToResponse(patient)
	if err := u.auditService.LogCreate(ctx, entity.AuditActionPatientCreate, "patient", patient.ID, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	if strings.TrimSpace(req.ID) == "" {
		return nil, ErrPatientIDRequired
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	patient, err := u.patientRepo.FindByID(ctx, req.ID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	// Capture old value for audit
	oldValue := converter.PatientToResponse(patient)

	if req.Email != nil {
		email := optionalString(*req.Email)
		if email != nil && (patient.Email == nil || *patient.Email != *email) {
			existing, err := u.patientRepo.FindByEmail(ctx, *email)
			if err != nil {
				u.log.Warnf("Failed to find patient by email: %+v", err)
				return nil, err
			}
			if existing != nil && existing.ID != patient.ID {
				return nil, ErrPatientEmailExists
			}
		}
		patient.Email = email
	}
	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Age != nil {
		patient.Age = *req.Age
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.BloodType != nil {
		patient.BloodType = *req.BloodType
	}
	if req.Status != nil {
		patient.Status = *req.Status
	}
	if req.EmergencyContact != nil {
		patient.EmergencyContact = entity.EmergencyContact{
			Name:         req.EmergencyContact.Name,
			Relationship: req.EmergencyContact.Relationship,
			Phone:        req.EmergencyContact.Phone,
		}
	}
	if req.MedicalHistory != nil {
		patient.MedicalHistory = cleanEntries(req.MedicalHistory, false)
	}
	if req.Allergies != nil {
		patient.Allergies = cleanEntries(req.Allergies, true)
	}
	if req.Insurance != nil {
		patient.Insurance = *req.Insurance
	}
	if req.LastVisit != nil {
		patient.LastVisit = req.LastVisit
	}
	if req.NextAppointment != nil {
		patient.NextAppointment = req.NextAppointment
	}
	patient.UpdatedAt = u.now()

	if err := u.patientRepo.Update(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrPatientEmailExists
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	newValue := converter.PatientToResponse(patient)
	if err := u.auditService.LogUpdate(ctx, entity.AuditActionPatientUpdate, "patient", patient.ID, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, id string) (*dto.PatientResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrPatientIDRequired
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	patient, err := u.patientRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to delete patient: %+v", err)
		return nil, err
	}

	oldValue := converter.PatientToResponse(patient)
	if err := u.auditService.LogDelete(ctx, entity.AuditActionPatientDelete, "patient", id, oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return oldValue, nil
}

// cleanEntries trims entries and drops blanks; unique also drops repeats, keeping first occurrence.
func cleanEntries(entries []string, unique bool) []string {
	out := make([]string, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if unique {
			if _, ok := seen[entry]; ok {
				continue
			}
			seen[entry] = struct{}{}
		}
		out = append(out, entry)
	}
	return out
}
