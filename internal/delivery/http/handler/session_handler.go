package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-medical-frontdesk/internal/delivery/dto"
	"go-medical-frontdesk/internal/usecase"
	"go-medical-frontdesk/pkg/response"
	"go-medical-frontdesk/pkg/validator"
)

type SessionHandler struct {
	sessionUsecase usecase.SessionUsecase
	validator      *validator.CustomValidator
}

func NewSessionHandler(sessionUsecase usecase.SessionUsecase, validator *validator.CustomValidator) *SessionHandler {
	return &SessionHandler{
		sessionUsecase: sessionUsecase,
		validator:      validator,
	}
}

func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		message, fields := h.validator.Describe(err)
		response.ValidationError(w, message, fields)
		return
	}

	session, err := h.sessionUsecase.CreateSession(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidRole):
			response.BadRequest(w, "Invalid role")
		case errors.Is(err, usecase.ErrDoctorNameRequired):
			response.BadRequest(w, "Name is required for the doctor role")
		default:
			response.InternalServerError(w, "Failed to create session")
		}
		return
	}

	response.Success(w, http.StatusCreated, session)
}

func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionUsecase.CurrentSession(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			response.Unauthorized(w, "No active session")
			return
		}
		response.InternalServerError(w, "Failed to fetch session")
		return
	}

	response.Success(w, http.StatusOK, session)
}
