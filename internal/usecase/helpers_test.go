package usecase

import (
	"context"
	"io"
	"time"

	"go-medical-frontdesk/internal/domain/entity"
	"go-medical-frontdesk/internal/repository"
	"go-medical-frontdesk/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// testClock hands out increasing instants so created/updated stamps are distinguishable.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(time.Minute)
	return t
}

type fixture struct {
	log          *logrus.Logger
	clock        *testClock
	appointments *repository.AppointmentMemoryRepository
	doctors      *repository.DoctorMemoryRepository
	patients     *repository.PatientMemoryRepository
	queue        *repository.QueueMemoryRepository
	auditLogs    *repository.AuditLogMemoryRepository
	audit        service.AuditService
}

func newFixture() *fixture {
	log := newTestLogger()
	auditLogs := repository.NewAuditLogMemoryRepository(100)
	return &fixture{
		log:          log,
		clock:        &testClock{now: fixedNow},
		appointments: repository.NewAppointmentMemoryRepository(),
		doctors:      repository.NewDoctorMemoryRepository(),
		patients:     repository.NewPatientMemoryRepository(),
		queue:        repository.NewQueueMemoryRepository(),
		auditLogs:    auditLogs,
		audit:        service.NewAuditService(log, auditLogs),
	}
}

func (f *fixture) appointmentUsecase() *appointmentUsecase {
	u := NewAppointmentUsecase(f.log, f.appointments, f.doctors, f.patients, f.audit, time.UTC).(*appointmentUsecase)
	u.now = f.clock.Now
	return u
}

func (f *fixture) doctorUsecase() *doctorUsecase {
	u := NewDoctorUsecase(f.log, f.doctors, f.audit).(*doctorUsecase)
	u.now = f.clock.Now
	return u
}

func (f *fixture) patientUsecase() *patientUsecase {
	u := NewPatientUsecase(f.log, f.patients, f.audit).(*patientUsecase)
	u.now = f.clock.Now
	return u
}

func (f *fixture) queueUsecase() *queueUsecase {
	u := NewQueueUsecase(f.log, f.queue, f.audit).(*queueUsecase)
	u.now = f.clock.Now
	return u
}

func (f *fixture) recentActions(limit int) []string {
	logs, _ := f.auditLogs.FindRecent(context.Background(), limit)
	actions := make([]string, len(logs))
	for i, l := range logs {
		actions[i] = l.Action
	}
	return actions
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

// mockAuditService lets tests assert on audit calls and inject failures.
type mockAuditService struct {
	mock.Mock
}

func (m *mockAuditService) LogCreate(ctx context.Context, action, entityName, entityID string, newValue interface{}) error {
	args := m.Called(ctx, action, entityName, entityID, newValue)
	return args.Error(0)
}

func (m *mockAuditService) LogUpdate(ctx context.Context, action, entityName, entityID string, oldValue, newValue interface{}) error {
	args := m.Called(ctx, action, entityName, entityID, oldValue, newValue)
	return args.Error(0)
}

func (m *mockAuditService) LogDelete(ctx context.Context, action, entityName, entityID string, oldValue interface{}) error {
	args := m.Called(ctx, action, entityName, entityID, oldValue)
	return args.Error(0)
}

func (m *mockAuditService) LogEvent(ctx context.Context, action, entityName, entityID string, metadata entity.JSON) error {
	args := m.Called(ctx, action, entityName, entityID, metadata)
	return args.Error(0)
}

func (m *mockAuditService) Recent(ctx context.Context, limit int) ([]entity.AuditLog, error) {
	args := m.Called(ctx, limit)
	logs, _ := args.Get(0).([]entity.AuditLog)
	return logs, args.Error(1)
}

var _ service.AuditService = (*mockAuditService)(nil)
