package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type DoctorStatus string

const (
	DoctorStatusActive   DoctorStatus = "ACTIVE"
	DoctorStatusInactive DoctorStatus = "INACTIVE"
)

func (s DoctorStatus) IsValid() bool {
	return s == DoctorStatusActive || s == DoctorStatusInactive
}

// WorkingHours is a daily shift in HH:MM local clock time
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeeklySchedule maps a lower-case weekday name to its working hours
type WeeklySchedule map[string]WorkingHours

var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// DefaultWeeklySchedule is Monday to Friday, 09:00 to 17:00.
func DefaultWeeklySchedule() WeeklySchedule {
	schedule := make(WeeklySchedule, 5)
	for _, day := range Weekdays[:5] {
		schedule[day] = WorkingHours{Start: "09:00", End: "17:00"}
	}
	return schedule
}

// Doctor is a practitioner on staff
type Doctor struct {
	ID             string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name           string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Email          string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone          string          `gorm:"type:varchar(50)" json:"phone"`
	Specialization string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Experience     int             `gorm:"not null;default:0" json:"experience"`
	Education      string          `gorm:"type:varchar(255)" json:"education"`
	Status         DoctorStatus    `gorm:"type:varchar(20);not null;default:ACTIVE" json:"status"`
	Avatar         string          `gorm:"type:varchar(255)" json:"avatar"`
	Schedule       WeeklySchedule  `gorm:"serializer:json;type:text" json:"schedule"`
	Rating         decimal.Decimal `gorm:"type:decimal(2,1);not null;default:0" json:"rating"`
	PatientsCount  int             `gorm:"not null;default:0" json:"patientsCount"`
	CreatedAt      time.Time       `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d Doctor) Clone() Doctor {
	c := d
	if d.Schedule != nil {
		c.Schedule = make(WeeklySchedule, len(d.Schedule))
		for day, hours := range d.Schedule {
			c.Schedule[day] = hours
		}
	}
	return c
}
