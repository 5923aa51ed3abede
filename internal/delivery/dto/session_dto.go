package dto

import "time"

type CreateSessionRequest struct {
	Role string `json:"role" validate:"required,oneof=admin doctor patient"`
	Name string `json:"name" validate:"omitempty,max=255"`
}

type SessionResponse struct {
	Token     string    `json:"token,omitempty"`
	Role      string    `json:"role"`
	Name      string    `json:"name,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
	ExpiresIn int64     `json:"expiresIn,omitempty"`
}
