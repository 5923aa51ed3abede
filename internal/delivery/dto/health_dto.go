package dto

import "time"

type HealthRequest struct {
	Type string `json:"type" validate:"required"`
}

type HealthMetrics struct {
	TotalPatients       int64  `json:"totalPatients"`
	ActivePatients      int    `json:"activePatients"`
	TotalDoctors        int64  `json:"totalDoctors"`
	AvailableDoctors    int    `json:"availableDoctors"`
	TotalAppointments   int64  `json:"totalAppointments"`
	CompletedToday      int    `json:"completedToday"`
	PendingAppointments int    `json:"pendingAppointments"`
	EmergencyCases      int    `json:"emergencyCases"`
	AverageWaitTime     string `json:"averageWaitTime"`
	SystemEfficiency    string `json:"systemEfficiency"`
	BedOccupancy        string `json:"bedOccupancy"`
	CriticalAlerts      int    `json:"criticalAlerts"`
}

type DepartmentStatus struct {
	Status   string `json:"status"`
	Patients int    `json:"patients"`
	WaitTime string `json:"waitTime"`
}

type HealthAlert struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Priority  string    `json:"priority"`
}

type ActivityEntry struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	User        string    `json:"user,omitempty"`
}

type HealthSnapshotResponse struct {
	Timestamp      time.Time                   `json:"timestamp"`
	Metrics        HealthMetrics               `json:"metrics"`
	Trends         map[string]string           `json:"trends"`
	Alerts         []HealthAlert               `json:"alerts"`
	Departments    map[string]DepartmentStatus `json:"departments"`
	RecentActivity []ActivityEntry             `json:"recentActivity"`
	SystemStatus   map[string]string           `json:"systemStatus"`
}

type HealthCheckResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Uptime    float64           `json:"uptime"`
	Version   string            `json:"version"`
	Checks    map[string]string `json:"checks,omitempty"`
}

type MetricUpdateResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
