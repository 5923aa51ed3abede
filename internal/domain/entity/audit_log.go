package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// AuditLog represents a front-desk activity entry
type AuditLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Action    string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Entity    string    `gorm:"type:varchar(50);not null;index" json:"entity"`
	EntityID  string    `gorm:"type:varchar(36);index" json:"entityId"`
	ActorRole string    `gorm:"type:varchar(20)" json:"actorRole,omitempty"`
	ActorName string    `gorm:"type:varchar(255)" json:"actorName,omitempty"`
	Metadata  JSON      `json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON type for GORM json column support
type JSON map[string]interface{}

func (JSON) GormDataType() string {
	return "json"
}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(j)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan scan value into JSON, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSON value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Common audit actions
const (
	AuditActionAppointmentCreate     = "appointment.create"
	AuditActionAppointmentUpdate     = "appointment.update"
	AuditActionAppointmentTransition = "appointment.transition"
	AuditActionAppointmentDelete     = "appointment.delete"
	AuditActionDoctorCreate          = "doctor.create"
	AuditActionDoctorUpdate          = "doctor.update"
	AuditActionDoctorDelete          = "doctor.delete"
	AuditActionPatientCreate         = "patient.create"
	AuditActionPatientUpdate         = "patient.update"
	AuditActionPatientDelete         = "patient.delete"
	AuditActionQueueCheckIn          = "queue.checkin"
	AuditActionQueueTransition       = "queue.transition"
	AuditActionQueueMove             = "queue.move"
	AuditActionQueueRemove           = "queue.remove"
	AuditActionHealthCheck           = "health.check"
	AuditActionMetricUpdate          = "health.metric_update"
	AuditActionSessionStart          = "session.start"
)
