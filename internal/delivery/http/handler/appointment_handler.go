package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go-medical-frontdesk/internal/delivery/dto"
	"go-medical-frontdesk/internal/domain/entity"
	"go-medical-frontdesk/internal/usecase"
	"go-medical-frontdesk/pkg/response"
	"go-medical-frontdesk/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.ListAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to fetch appointments")
		return
	}

	response.Success(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to fetch appointment")
		return
	}

	response.Success(w, http.StatusOK, appointment)
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		message, fields := h.validator.Describe(err)
		response.ValidationError(w, message, fields)
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidAppointmentDate):
			response.BadRequest(w, "Invalid date or time")
		case errors.Is(err, usecase.ErrInvalidAppointmentType):
			response.BadRequest(w, "Invalid appointment type")
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, appointment)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		message, fields := h.validator.Describe(err)
		response.ValidationError(w, message, fields)
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), &req)
	if err != nil {
		var transitionErr *entity.TransitionError
		switch {
		case errors.Is(err, usecase.ErrAppointmentIDRequired):
			response.BadRequest(w, "Appointment ID is required")
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrInvalidAppointmentDate):
			response.BadRequest(w, "Invalid date or time")
		case errors.Is(err, usecase.ErrInvalidAppointmentStatus):
			response.BadRequest(w, "Invalid appointment status")
		case errors.Is(err, usecase.ErrInvalidAppointmentType):
			response.BadRequest(w, "Invalid appointment type")
		case errors.As(err, &transitionErr):
			response.Conflict(w, transitionErr.Error())
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, appointment)
}

// TransitionAppointment applies the action named in the path, e.g. /appointments/7/confirm.
func (h *AppointmentHandler) TransitionAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	action := entity.AppointmentAction(strings.ToLower(vars["action"]))

	appointment, err := h.appointmentUsecase.TransitionAppointment(r.Context(), vars["id"], action)
	if err != nil {
		var transitionErr *entity.TransitionError
		switch {
		case errors.Is(err, usecase.ErrInvalidAppointmentAction):
			response.BadRequest(w, "Invalid appointment action")
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.As(err, &transitionErr):
			response.Conflict(w, transitionErr.Error())
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, appointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")

	appointment, err := h.appointmentUsecase.DeleteAppointment(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentIDRequired):
			response.BadRequest(w, "Appointment ID is required")
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to delete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, dto.DeleteAppointmentResponse{
		Message:     "Appointment deleted successfully",
		Appointment: *appointment,
	})
}
