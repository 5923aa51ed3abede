package entity

// Role is the front-desk persona a session acts as
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleDoctor || r == RolePatient
}
