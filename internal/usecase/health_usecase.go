package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"go-medical-frontdesk/internal/converter"
	"go-medical-frontdesk/internal/delivery/dto"
	"go-medical-frontdesk/internal/domain/entity"
	"go-medical-frontdesk/internal/domain/repository"
	"go-medical-frontdesk/internal/service"

	"github.com/sirupsen/logrus"
)

var ErrInvalidHealthRequestType = errors.New("invalid request type")

const (
	HealthRequestCheck        = "health_check"
	HealthRequestMetricUpdate = "metric_update"

	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDegraded  = "degraded"

	recentActivityLimit = 4
	healthCheckTimeout  = 2 * time.Second
)

// HealthCheck pings one backend. A nil error means the backend is reachable.
type HealthCheck func(ctx context.Context) error

// span draws base + [0, spread).
type span struct {
	base, spread int
}

func (s span) draw(rnd *rand.Rand) int {
	return s.base + rnd.IntN(s.spread)
}

type activityBand struct {
	activePatients span
	waitTime       span
	efficiency     span
}

// bandFor picks the activity profile for the hour of day.
func bandFor(hour int) activityBand {
	switch {
	case hour >= 6 && hour < 12:
		return activityBand{activePatients: span{15, 20}, waitTime: span{5, 15}, efficiency: span{80, 15}}
	case hour >= 12 && hour < 18:
		return activityBand{activePatients: span{20, 25}, waitTime: span{10, 20}, efficiency: span{75, 20}}
	default:
		return activityBand{activePatients: span{5, 15}, waitTime: span{2, 10}, efficiency: span{85, 10}}
	}
}

type departmentProfile struct {
	name     string
	status   string
	patients span
	waitTime string
}

// departments are drawn in this order so a fixed seed yields a fixed snapshot.
var departments = []departmentProfile{
	{name: "emergency", status: "busy", patients: span{5, 8}, waitTime: "15-25 min"},
	{name: "cardiology", status: "moderate", patients: span{3, 6}, waitTime: "10-20 min"},
	{name: "pediatrics", status: "normal", patients: span{2, 4}, waitTime: "5-15 min"},
	{name: "orthopedics", status: "moderate", patients: span{3, 5}, waitTime: "10-20 min"},
	{name: "general", status: "normal", patients: span{4, 6}, waitTime: "5-15 min"},
}

var healthTrends = map[string]string{
	"patientFlow":         "increasing",
	"appointmentBookings": "stable",
	"doctorUtilization":   "optimal",
	"systemLoad":          "normal",
}

type HealthUsecase interface {
	Snapshot(ctx context.Context) (*dto.HealthSnapshotResponse, error)
	Process(ctx context.Context, req *dto.HealthRequest) (interface{}, error)
}

type HealthOptions struct {
	Version  string
	Location *time.Location
	Checks   map[string]HealthCheck
	Now      func() time.Time
	Rand     *rand.Rand
}

type healthUsecase struct {
	// mu guards rnd, which is not safe for concurrent use
	mu              sync.Mutex
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	queueRepo       repository.QueueRepository
	auditService    service.AuditService
	checks          map[string]HealthCheck
	version         string
	location        *time.Location
	now             func() time.Time
	rnd             *rand.Rand
	startedAt       time.Time
}

func NewHealthUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	queueRepo repository.QueueRepository,
	auditService service.AuditService,
	opts HealthOptions,
) HealthUsecase {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rand == nil {
		seed := uint64(opts.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Version == "" {
		opts.Version = "1.0.0"
	}

	return &healthUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		queueRepo:       queueRepo,
		auditService:    auditService,
		checks:          opts.Checks,
		version:         opts.Version,
		location:        opts.Location,
		now:             opts.Now,
		rnd:             opts.Rand,
		startedAt:       opts.Now(),
	}
}

func (u *healthUsecase) Snapshot(ctx context.Context) (*dto.HealthSnapshotResponse, error) {
	now := u.now().In(u.location)

	metrics, err := u.collectMetrics(ctx, now)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	band := bandFor(now.Hour())
	metrics.ActivePatients = band.activePatients.draw(u.rnd)
	if metrics.AverageWaitTime == "" {
		metrics.AverageWaitTime = fmt.Sprintf("%d minutes", band.waitTime.draw(u.rnd))
	}
	metrics.SystemEfficiency = fmt.Sprintf("%d%%", band.efficiency.draw(u.rnd))
	metrics.BedOccupancy = fmt.Sprintf("%d%%", span{65, 25}.draw(u.rnd))
	metrics.CriticalAlerts = u.rnd.IntN(3)

	depts := make(map[string]dto.DepartmentStatus, len(departments))
	for _, d := range departments {
		depts[d.name] = dto.DepartmentStatus{
			Status:   d.status,
			Patients: d.patients.draw(u.rnd),
			WaitTime: d.waitTime,
		}
	}
	u.mu.Unlock()

	activity := []dto.ActivityEntry{}
	logs, err := u.auditService.Recent(ctx, recentActivityLimit)
	if err != nil {
		u.log.Warnf("Failed to find recent activity: %+v", err)
	}
	for i := range logs {
		activity = append(activity, converter.AuditLogToActivity(&logs[i]))
	}

	systemStatus, _ := u.runChecks(ctx)
	systemStatus["lastCheck"] = now.Format(time.RFC3339)

	trends := make(map[string]string, len(healthTrends))
	for k, v := range healthTrends {
		trends[k] = v
	}

	return &dto.HealthSnapshotResponse{
		Timestamp:      now,
		Metrics:        *metrics,
		Trends:         trends,
		Alerts:         fixedAlerts(now),
		Departments:    depts,
		RecentActivity: activity,
		SystemStatus:   systemStatus,
	}, nil
}

// collectMetrics fills the counts backed by real stores.
func (u *healthUsecase) collectMetrics(ctx context.Context, now time.Time) (*dto.HealthMetrics, error) {
	metrics := &dto.HealthMetrics{}

	patients, err := u.patientRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}
	metrics.TotalPatients = patients

	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}
	metrics.TotalDoctors = int64(len(doctors))
	for _, d := range doctors {
		if d.Status == entity.DoctorStatusActive {
			metrics.AvailableDoctors++
		}
	}

	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}
	metrics.TotalAppointments = int64(len(appointments))
	year, month, day := now.Date()
	for _, a := range appointments {
		if a.Status.IsPending() {
			metrics.PendingAppointments++
		}
		if a.Status == entity.AppointmentStatusCompleted {
			y, m, d := a.Date.In(u.location).Date()
			if y == year && m == month && d == day {
				metrics.CompletedToday++
			}
		}
	}

	items, err := u.queueRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find queue items: %+v", err)
		return nil, err
	}
	waiting, totalWait := 0, 0
	for _, item := range items {
		if item.Status != entity.QueueStatusWaiting && item.Status != entity.QueueStatusConsulting {
			continue
		}
		if item.Priority == entity.QueuePriorityHigh {
			metrics.EmergencyCases++
		}
		if item.Status == entity.QueueStatusWaiting {
			waiting++
			totalWait += item.WaitTime
		}
	}
	if waiting > 0 {
		avg := int(math.Round(float64(totalWait) / float64(waiting)))
		metrics.AverageWaitTime = fmt.Sprintf("%d minutes", avg)
	}

	return metrics, nil
}

// runChecks pings every configured backend. ok is false when any of them fails.
func (u *healthUsecase) runChecks(ctx context.Context) (map[string]string, bool) {
	status := map[string]string{"api": statusHealthy}
	ok := true

	names := make([]string, 0, len(u.checks))
	for name := range u.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		checkCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		err := u.checks[name](checkCtx)
		cancel()
		if err != nil {
			u.log.Warnf("Health check %s failed: %+v", name, err)
			status[name] = statusUnhealthy
			ok = false
			continue
		}
		status[name] = statusHealthy
	}

	return status, ok
}

func fixedAlerts(now time.Time) []dto.HealthAlert {
	return []dto.HealthAlert{
		{
			ID:        1,
			Type:      "warning",
			Message:   "High patient volume in Emergency Department",
			Timestamp: now.Add(-30 * time.Minute),
			Priority:  "medium",
		},
		{
			ID:        2,
			Type:      "info",
			Message:   "Scheduled maintenance for MRI machine at 2 PM",
			Timestamp: now.Add(-45 * time.Minute),
			Priority:  "low",
		},
		{
			ID:        3,
			Type:      "success",
			Message:   "All systems operational",
			Timestamp: now.Add(-60 * time.Minute),
			Priority:  "low",
		},
	}
}

func (u *healthUsecase) Process(ctx context.Context, req *dto.HealthRequest) (interface{}, error) {
	now := u.now().In(u.location)

	switch req.Type {
	case HealthRequestCheck:
		checks, ok := u.runChecks(ctx)
		status := statusHealthy
		if !ok {
			status = statusDegraded
		}
		return &dto.HealthCheckResponse{
			Status:    status,
			Timestamp: now,
			Uptime:    now.Sub(u.startedAt).Seconds(),
			Version:   u.version,
			Checks:    checks,
		}, nil

	case HealthRequestMetricUpdate:
		if err := u.auditService.LogEvent(ctx, entity.AuditActionMetricUpdate, "health", "", nil); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		return &dto.MetricUpdateResponse{
			Message:   "Metrics updated successfully",
			Timestamp: now,
		}, nil
	}

	return nil, ErrInvalidHealthRequestType
}
