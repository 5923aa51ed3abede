package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-medical-frontdesk/internal/delivery/dto"
	"go-medical-frontdesk/internal/usecase"
	"go-medical-frontdesk/pkg/response"
	"go-medical-frontdesk/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.ListDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to fetch doctors")
		return
	}

	response.Success(w, http.StatusOK, doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to fetch doctor")
		return
	}

	response.Success(w, http.StatusOK, doctor)
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		message, fields := h.validator.Describe(err)
		response.ValidationError(w, message, fields)
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorEmailExists) {
			response.Conflict(w, "Doctor with this email already exists")
			return
		}
		response.InternalServerError(w, "Failed to create doctor")
		return
	}

	response.Success(w, http.StatusCreated, doctor)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		message, fields := h.validator.Describe(err)
		response.ValidationError(w, message, fields)
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorIDRequired):
			response.BadRequest(w, "Doctor ID is required")
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrDoctorEmailExists):
			response.Conflict(w, "Doctor with this email already exists")
		case errors.Is(err, usecase.ErrInvalidDoctorStatus):
			response.BadRequest(w, "Invalid doctor status")
		case errors.Is(err, usecase.ErrInvalidDoctorRating):
			response.BadRequest(w, "Rating must be between 0 and 5")
		default:
			response.InternalServerError(w, "Failed to update doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, doctor)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	doctor, err := h.doctorUsecase.DeleteDoctor(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorIDRequired):
			response.BadRequest(w, "Doctor ID is required")
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to delete doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, dto.DeleteDoctorResponse{
		Message: "Doctor deleted successfully",
		Doctor:  *doctor,
	})
}
