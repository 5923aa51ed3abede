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

type HealthHandler struct {
	healthUsecase usecase.HealthUsecase
	validator     *validator.CustomValidator
}

func NewHealthHandler(healthUsecase usecase.HealthUsecase, validator *validator.CustomValidator) *HealthHandler {
	return &HealthHandler{
		healthUsecase: healthUsecase,
		validator:     validator,
	}
}

func (h *HealthHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.healthUsecase.Snapshot(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to fetch health metrics")
		return
	}

	response.Success(w, http.StatusOK, snapshot)
}

func (h *HealthHandler) PostHealth(w http.ResponseWriter, r *http.Request) {
	var req dto.HealthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, "Invalid request type")
		return
	}

	result, err := h.healthUsecase.Process(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidHealthRequestType) {
			response.BadRequest(w, "Invalid request type")
			return
		}
		response.InternalServerError(w, "Failed to process health request")
		return
	}

	response.Success(w, http.StatusOK, result)
}
