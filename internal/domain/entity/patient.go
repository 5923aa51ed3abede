package entity

import "time"

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

// Patient is a person registered with the clinic
type Patient struct {
	ID               string           `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name             string           `gorm:"type:varchar(255);not null;index" json:"name"`
	Age              int              `gorm:"not null" json:"age"`
	Gender           string           `gorm:"type:varchar(20);not null" json:"gender"`
	Phone            string           `gorm:"type:varchar(50)" json:"phone"`
	Email            *string          `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Address          string           `gorm:"type:text" json:"address"`
	BloodType        string           `gorm:"type:varchar(10)" json:"bloodType"`
	Status           string           `gorm:"type:varchar(20);not null;default:active" json:"status"`
	EmergencyContact EmergencyContact `gorm:"serializer:json;type:text" json:"emergencyContact"`
	MedicalHistory   []string         `gorm:"serializer:json;type:text" json:"medicalHistory"`
	Allergies        []string         `gorm:"serializer:json;type:text" json:"allergies"`
	Insurance        string           `gorm:"type:varchar(255)" json:"insurance"`
	LastVisit        *time.Time       `json:"lastVisit"`
	NextAppointment  *time.Time       `json:"nextAppointment"`
	CreatedAt        time.Time        `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt        time.Time        `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p Patient) Clone() Patient {
	c := p
	c.Email = cloneString(p.Email)
	c.MedicalHistory = append([]string(nil), p.MedicalHistory...)
	c.Allergies = append([]string(nil), p.Allergies...)
	c.LastVisit = cloneTime(p.LastVisit)
	c.NextAppointment = cloneTime(p.NextAppointment)
	return c
}
