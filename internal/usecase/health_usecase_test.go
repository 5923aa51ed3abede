package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"go-medical-frontdesk/internal/delivery/dto"
	"go-medical-frontdesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthUsecase(f *fixture, at time.Time, seed uint64, checks map[string]HealthCheck) HealthUsecase {
	return NewHealthUsecase(f.log, f.appointments, f.doctors, f.patients, f.queue, f.audit, HealthOptions{
		Version: "2.0.0",
		Checks:  checks,
		Now:     func() time.Time { return at },
		Rand:    rand.New(rand.NewPCG(seed, seed)),
	})
}

func seedHealthData(f *fixture, today time.Time) {
	f.doctors.Seed(
		entity.Doctor{ID: "1", Status: entity.DoctorStatusActive},
		entity.Doctor{ID: "2", Status: entity.DoctorStatusInactive},
		entity.Doctor{ID: "3", Status: entity.DoctorStatusActive},
	)
	f.patients.Seed(entity.Patient{ID: "1"}, entity.Patient{ID: "2"})
	f.appointments.Seed(
		entity.Appointment{ID: "1", Status: entity.AppointmentStatusScheduled, Date: today},
		entity.Appointment{ID: "2", Status: entity.AppointmentStatusConfirmed, Date: today},
		entity.Appointment{ID: "3", Status: entity.AppointmentStatusCompleted, Date: today},
		entity.Appointment{ID: "4", Status: entity.AppointmentStatusCompleted, Date: today.AddDate(0, 0, -1)},
		entity.Appointment{ID: "5", Status: entity.AppointmentStatusCancelled, Date: today},
	)
	f.queue.Seed(
		entity.QueueItem{ID: "Q001", Priority: entity.QueuePriorityHigh, Status: entity.QueueStatusWaiting, WaitTime: 12},
		entity.QueueItem{ID: "Q002", Priority: entity.QueuePriorityHigh, Status: entity.QueueStatusCompleted},
		entity.QueueItem{ID: "Q003", Priority: entity.QueuePriorityLow, Status: entity.QueueStatusWaiting, WaitTime: 7},
	)
}

func TestHealthSnapshot_RealCounts(t *testing.T) {
	f := newFixture()
	at := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	seedHealthData(f, at)
	u := newHealthUsecase(f, at, 1, nil)

	snapshot, err := u.Snapshot(context.Background())
	require.NoError(t, err)

	m := snapshot.Metrics
	assert.Equal(t, int64(2), m.TotalPatients)
	assert.Equal(t, int64(3), m.TotalDoctors)
	assert.Equal(t, 2, m.AvailableDoctors)
	assert.Equal(t, int64(5), m.TotalAppointments)
	assert.Equal(t, 2, m.PendingAppointments)
	assert.Equal(t, 1, m.CompletedToday)
	assert.Equal(t, 1, m.EmergencyCases)
	assert.Equal(t, "10 minutes", m.AverageWaitTime)

	assert.Len(t, snapshot.Alerts, 3)
	assert.Equal(t, at.Add(-30*time.Minute), snapshot.Alerts[0].Timestamp)
	assert.Len(t, snapshot.Departments, 5)
	assert.Equal(t, "healthy", snapshot.SystemStatus["api"])
	assert.Equal(t, at.Format(time.RFC3339), snapshot.SystemStatus["lastCheck"])
	assert.Empty(t, snapshot.RecentActivity)
}

func TestHealthSnapshot_DeterministicForSeedAndClock(t *testing.T) {
	at := time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)

	first, err := newHealthUsecase(newFixture(), at, 42, nil).Snapshot(context.Background())
	require.NoError(t, err)
	second, err := newHealthUsecase(newFixture(), at, 42, nil).Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHealthSnapshot_HourBands(t *testing.T) {
	tests := []struct {
		hour                 int
		activeMin, activeMax int
		waitMin, waitMax     int
		effMin, effMax       int
	}{
		{hour: 8, activeMin: 15, activeMax: 34, waitMin: 5, waitMax: 19, effMin: 80, effMax: 94},
		{hour: 15, activeMin: 20, activeMax: 44, waitMin: 10, waitMax: 29, effMin: 75, effMax: 94},
		{hour: 22, activeMin: 5, activeMax: 19, waitMin: 2, waitMax: 11, effMin: 85, effMax: 94},
		{hour: 3, activeMin: 5, activeMax: 19, waitMin: 2, waitMax: 11, effMin: 85, effMax: 94},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("hour %02d", tt.hour), func(t *testing.T) {
			at := time.Date(2024, 1, 15, tt.hour, 0, 0, 0, time.UTC)
			for seed := uint64(0); seed < 25; seed++ {
				snapshot, err := newHealthUsecase(newFixture(), at, seed, nil).Snapshot(context.Background())
				require.NoError(t, err)

				m := snapshot.Metrics
				assert.GreaterOrEqual(t, m.ActivePatients, tt.activeMin)
				assert.LessOrEqual(t, m.ActivePatients, tt.activeMax)

				var wait, efficiency int
				_, err = fmt.Sscanf(m.AverageWaitTime, "%d minutes", &wait)
				require.NoError(t, err)
				_, err = fmt.Sscanf(m.SystemEfficiency, "%d%%", &efficiency)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, wait, tt.waitMin)
				assert.LessOrEqual(t, wait, tt.waitMax)
				assert.GreaterOrEqual(t, efficiency, tt.effMin)
				assert.LessOrEqual(t, efficiency, tt.effMax)
			}
		})
	}
}

func TestHealthSnapshot_RecentActivityFromAudit(t *testing.T) {
	f := newFixture()
	at := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()
	for i := 1; i <= 6; i++ {
		require.NoError(t, f.audit.LogEvent(ctx, entity.AuditActionQueueCheckIn, "queue_item", fmt.Sprintf("Q%03d", i), nil))
	}
	u := newHealthUsecase(f, at, 1, nil)

	snapshot, err := u.Snapshot(ctx)
	require.NoError(t, err)

	require.Len(t, snapshot.RecentActivity, 4)
	assert.Equal(t, "Queue item Q006 checked in", snapshot.RecentActivity[0].Description)
	assert.Equal(t, "queue_item", snapshot.RecentActivity[0].Type)
}

func TestHealthSnapshot_BackendChecks(t *testing.T) {
	f := newFixture()
	at := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	u := newHealthUsecase(f, at, 1, map[string]HealthCheck{
		"database": func(ctx context.Context) error { return nil },
		"redis":    func(ctx context.Context) error { return errors.New("connection refused") },
	})

	snapshot, err := u.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", snapshot.SystemStatus["database"])
	assert.Equal(t, "unhealthy", snapshot.SystemStatus["redis"])

	result, err := u.Process(context.Background(), &dto.HealthRequest{Type: HealthRequestCheck})
	require.NoError(t, err)
	check, ok := result.(*dto.HealthCheckResponse)
	require.True(t, ok)
	assert.Equal(t, "degraded", check.Status)
}

func TestHealthProcess(t *testing.T) {
	f := newFixture()
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	clock := start
	u := NewHealthUsecase(f.log, f.appointments, f.doctors, f.patients, f.queue, f.audit, HealthOptions{
		Now: func() time.Time { return clock },
	})
	ctx := context.Background()

	clock = start.Add(90 * time.Second)
	result, err := u.Process(ctx, &dto.HealthRequest{Type: HealthRequestCheck})
	require.NoError(t, err)
	check := result.(*dto.HealthCheckResponse)
	assert.Equal(t, "healthy", check.Status)
	assert.Equal(t, 90.0, check.Uptime)
	assert.Equal(t, "1.0.0", check.Version)

	result, err = u.Process(ctx, &dto.HealthRequest{Type: HealthRequestMetricUpdate})
	require.NoError(t, err)
	update := result.(*dto.MetricUpdateResponse)
	assert.Equal(t, "Metrics updated successfully", update.Message)
	assert.Equal(t, []string{entity.AuditActionMetricUpdate}, f.recentActions(10))

	_, err = u.Process(ctx, &dto.HealthRequest{Type: "reboot"})
	assert.ErrorIs(t, err, ErrInvalidHealthRequestType)
}
