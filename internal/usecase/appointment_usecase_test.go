package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-medical-frontdesk/internal/delivery/dto"
	"go-medical-frontdesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedReferences(f *fixture) {
	f.doctors.Seed(entity.Doctor{ID: "1", Name: "Dr. Sarah Johnson", Specialization: "Cardiology"})
	f.patients.Seed(entity.Patient{ID: "1", Name: "John Smith", Age: 45, Gender: "Male"})
}

func validAppointmentRequest() *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		PatientID: "1",
		DoctorID:  "1",
		Date:      "2024-01-20",
		Time:      "10:00",
		Type:      "follow_up",
		Symptoms:  "Chest pain",
	}
}

func TestCreateAppointment_DefaultsAndSnapshots(t *testing.T) {
	f := newFixture()
	seedReferences(f)
	u := f.appointmentUsecase()

	req := validAppointmentRequest()
	req.Type = ""
	created, err := u.CreateAppointment(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "1", created.ID)
	assert.Equal(t, string(entity.AppointmentStatusScheduled), created.Status)
	assert.Equal(t, string(entity.AppointmentTypeConsultation), created.Type)
	assert.Equal(t, 30, created.Duration)
	assert.Equal(t, time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC), created.Date)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.Nil(t, created.Notes)
	require.NotNil(t, created.Symptoms)
	assert.Equal(t, "Chest pain", *created.Symptoms)

	assert.Equal(t, "Dr. Sarah Johnson", created.Doctor.Name)
	assert.Equal(t, "Cardiology", created.Doctor.Specialization)
	assert.Equal(t, "John Smith", created.Patient.Name)
	require.NotNil(t, created.Patient.Age)
	assert.Equal(t, 45, *created.Patient.Age)

	assert.Equal(t, []string{entity.AuditActionAppointmentCreate}, f.recentActions(10))
}

func TestCreateAppointment_UppercasesType(t *testing.T) {
	f := newFixture()
	u := f.appointmentUsecase()

	created, err := u.CreateAppointment(context.Background(), validAppointmentRequest())
	require.NoError(t, err)
	assert.Equal(t, "SCHEDULED", created.Status)
	assert.Equal(t, "FOLLOW_UP", created.Type)
}

func TestCreateAppointment_FallbackSnapshots(t *testing.T) {
	f := newFixture()
	u := f.appointmentUsecase()

	req := validAppointmentRequest()
	req.DoctorID, req.PatientID = "77", "88"
	req.DoctorName = "Dr. Walk In"
	created, err := u.CreateAppointment(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Dr. Walk In", created.Doctor.Name)
	assert.Equal(t, "General Medicine", created.Doctor.Specialization)
	assert.Equal(t, "Unknown Patient", created.Patient.Name)
	assert.Nil(t, created.Patient.Age)
}

func TestCreateAppointment_SnapshotNotResynced(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	doctors := f.doctorUsecase()

	doctor, err := doctors.CreateDoctor(ctx, &dto.CreateDoctorRequest{
		Name:           "Dr. Sarah Johnson",
		Email:          "sarah.johnson@hospital.com",
		Specialization: "Cardiology",
	})
	require.NoError(t, err)

	req := validAppointmentRequest()
	req.DoctorID = doctor.ID
	created, err := f.appointmentUsecase().CreateAppointment(ctx, req)
	require.NoError(t, err)
	require.Equal(t, "Dr. Sarah Johnson", created.Doctor.Name)

	_, err = doctors.UpdateDoctor(ctx, &dto.UpdateDoctorRequest{
		ID:             doctor.ID,
		Name:           strPtr("Dr. Sarah Johnson-Reed"),
		Specialization: strPtr("Interventional Cardiology"),
	})
	require.NoError(t, err)

	stored, err := f.appointmentUsecase().GetAppointment(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sarah Johnson", stored.Doctor.Name)
	assert.Equal(t, "Cardiology", stored.Doctor.Specialization)
}

func TestCreateAppointment_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.CreateAppointmentRequest)
		want   error
	}{
		{"malformed date", func(r *dto.CreateAppointmentRequest) { r.Date = "20-01-2024" }, ErrInvalidAppointmentDate},
		{"impossible day", func(r *dto.CreateAppointmentRequest) { r.Date = "2024-02-30" }, ErrInvalidAppointmentDate},
		{"malformed time", func(r *dto.CreateAppointmentRequest) { r.Time = "10am" }, ErrInvalidAppointmentDate},
		{"unknown type", func(r *dto.CreateAppointmentRequest) { r.Type = "SURGERY" }, ErrInvalidAppointmentType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			u := f.appointmentUsecase()
			req := validAppointmentRequest()
			tt.mutate(req)

			_, err := u.CreateAppointment(context.Background(), req)
			assert.ErrorIs(t, err, tt.want)

			count, _ := f.appointments.Count(context.Background())
			assert.Zero(t, count)
		})
	}
}

func TestCreateAppointment_AcceptsSeconds(t *testing.T) {
	f := newFixture()
	u := f.appointmentUsecase()
	req := validAppointmentRequest()
	req.Time = "10:15:30"

	created, err := u.CreateAppointment(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 30, created.Date.Second())
}

func TestListAppointments_SortedByDateStable(t *testing.T) {
	f := newFixture()
	base := time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)
	f.appointments.Seed(
		entity.Appointment{ID: "1", Date: base.Add(2 * time.Hour)},
		entity.Appointment{ID: "2", Date: base},
		entity.Appointment{ID: "3", Date: base.Add(2 * time.Hour)},
		entity.Appointment{ID: "4", Date: base.Add(time.Hour)},
	)
	u := f.appointmentUsecase()

	list, err := u.ListAppointments(context.Background())
	require.NoError(t, err)

	ids := make([]string, len(list))
	for i, a := range list {
		ids[i] = a.ID
	}
	assert.Equal(t, []string{"2", "4", "1", "3"}, ids)
}

func TestUpdateAppointment_EmptyPatchOnlyTouchesUpdatedAt(t *testing.T) {
	f := newFixture()
	seedReferences(f)
	u := f.appointmentUsecase()
	ctx := context.Background()

	created, err := u.CreateAppointment(ctx, validAppointmentRequest())
	require.NoError(t, err)

	updated, err := u.UpdateAppointment(ctx, &dto.UpdateAppointmentRequest{ID: created.ID})
	require.NoError(t, err)

	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	updated.UpdatedAt = created.UpdatedAt
	assert.Equal(t, *created, *updated)
}

func TestUpdateAppointment_MergesFields(t *testing.T) {
	f := newFixture()
	seedReferences(f)
	u := f.appointmentUsecase()
	ctx := context.Background()

	created, err := u.CreateAppointment(ctx, validAppointmentRequest())
	require.NoError(t, err)

	updated, err := u.UpdateAppointment(ctx, &dto.UpdateAppointmentRequest{
		ID:       created.ID,
		Time:     strPtr("14:30"),
		Duration: intPtr(45),
		Notes:    strPtr("Bring ECG"),
		Symptoms: strPtr(""),
		DoctorID: strPtr("9"),
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 20, 14, 30, 0, 0, time.UTC), updated.Date)
	assert.Equal(t, 45, updated.Duration)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "Bring ECG", *updated.Notes)
	assert.Nil(t, updated.Symptoms)
	assert.Equal(t, "9", updated.DoctorID)
	// snapshot is kept as booked
	assert.Equal(t, "Dr. Sarah Johnson", updated.Doctor.Name)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateAppointment_StatusFollowsStateMachine(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.appointments.Seed(
		entity.Appointment{ID: "1", Status: entity.AppointmentStatusInProgress},
		entity.Appointment{ID: "2", Status: entity.AppointmentStatusCompleted},
		entity.Appointment{ID: "3", Status: entity.AppointmentStatusScheduled},
	)
	u := f.appointmentUsecase()

	cancelled, err := u.UpdateAppointment(ctx, &dto.UpdateAppointmentRequest{ID: "1", Status: strPtr("CANCELLED")})
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", cancelled.Status)

	_, err = u.UpdateAppointment(ctx, &dto.UpdateAppointmentRequest{ID: "2", Status: strPtr("SCHEDULED")})
	var transitionErr *entity.TransitionError
	require.True(t, errors.As(err, &transitionErr))
	assert.Equal(t, "invalid status transition from COMPLETED to SCHEDULED", transitionErr.Error())

	same, err := u.UpdateAppointment(ctx, &dto.UpdateAppointmentRequest{ID: "3", Status: strPtr("scheduled")})
	require.NoError(t, err)
	assert.Equal(t, "SCHEDULED", same.Status)

	_, err = u.UpdateAppointment(ctx, &dto.UpdateAppointmentRequest{ID: "3", Status: strPtr("LATE")})
	assert.ErrorIs(t, err, ErrInvalidAppointmentStatus)

	stored, _ := f.appointments.FindByID(ctx, "2")
	assert.Equal(t, entity.AppointmentStatusCompleted, stored.Status)
}

func TestUpdateAppointment_MissingRecord(t *testing.T) {
	f := newFixture()
	f.appointments.Seed(entity.Appointment{ID: "1"})
	u := f.appointmentUsecase()
	ctx := context.Background()

	_, err := u.UpdateAppointment(ctx, &dto.UpdateAppointmentRequest{ID: "42"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = u.UpdateAppointment(ctx, &dto.UpdateAppointmentRequest{})
	assert.ErrorIs(t, err, ErrAppointmentIDRequired)

	count, _ := f.appointments.Count(ctx)
	assert.Equal(t, int64(1), count)
}

func TestTransitionAppointment_Lifecycle(t *testing.T) {
	f := newFixture()
	f.appointments.Seed(entity.Appointment{ID: "1", Status: entity.AppointmentStatusScheduled})
	u := f.appointmentUsecase()
	ctx := context.Background()

	for _, action := range []entity.AppointmentAction{
		entity.AppointmentActionConfirm,
		entity.AppointmentActionStart,
		entity.AppointmentActionComplete,
	} {
		_, err := u.TransitionAppointment(ctx, "1", action)
		require.NoError(t, err, string(action))
	}

	_, err := u.TransitionAppointment(ctx, "1", entity.AppointmentActionCancel)
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)

	_, err = u.TransitionAppointment(ctx, "1", entity.AppointmentAction("archive"))
	assert.ErrorIs(t, err, ErrInvalidAppointmentAction)

	_, err = u.TransitionAppointment(ctx, "404", entity.AppointmentActionConfirm)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	stored, _ := f.appointments.FindByID(ctx, "1")
	assert.Equal(t, entity.AppointmentStatusCompleted, stored.Status)
}

func TestDeleteAppointment(t *testing.T) {
	f := newFixture()
	f.appointments.Seed(entity.Appointment{ID: "1"}, entity.Appointment{ID: "2"})
	u := f.appointmentUsecase()
	ctx := context.Background()

	deleted, err := u.DeleteAppointment(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", deleted.ID)

	list, _ := u.ListAppointments(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "2", list[0].ID)

	_, err = u.DeleteAppointment(ctx, "1")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = u.DeleteAppointment(ctx, " ")
	assert.ErrorIs(t, err, ErrAppointmentIDRequired)
}

func TestCreateAppointment_AuditFailureDoesNotFailRequest(t *testing.T) {
	f := newFixture()
	audit := new(mockAuditService)
	audit.On("LogCreate", mock.Anything, entity.AuditActionAppointmentCreate, "appointment", "1", mock.Anything).
		Return(errors.New("audit store down")).Once()

	u := NewAppointmentUsecase(f.log, f.appointments, f.doctors, f.patients, audit, time.UTC)

	created, err := u.CreateAppointment(context.Background(), validAppointmentRequest())
	require.NoError(t, err)
	assert.Equal(t, "1", created.ID)
	audit.AssertExpectations(t)
}
