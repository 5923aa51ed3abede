package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go-medical-frontdesk/internal/delivery/dto"
	"go-medical-frontdesk/internal/delivery/http/middleware"
	"go-medical-frontdesk/internal/domain/entity"
	"go-medical-frontdesk/internal/usecase"
	"go-medical-frontdesk/pkg/response"
	"go-medical-frontdesk/pkg/validator"

	"github.com/gorilla/mux"
)

type QueueHandler struct {
	queueUsecase usecase.QueueUsecase
	validator    *validator.CustomValidator
}

func NewQueueHandler(queueUsecase usecase.QueueUsecase, validator *validator.CustomValidator) *QueueHandler {
	return &QueueHandler{
		queueUsecase: queueUsecase,
		validator:    validator,
	}
}

// queueFilter reads the query string. A doctor session only ever sees its own patients.
func queueFilter(r *http.Request) dto.QueueFilter {
	query := r.URL.Query()
	filter := dto.QueueFilter{
		Status: query.Get("status"),
		Search: query.Get("search"),
		Doctor: query.Get("doctor"),
	}

	if role, ok := middleware.GetSessionRoleFromContext(r.Context()); ok && role == entity.RoleDoctor {
		filter.Doctor, _ = middleware.GetSessionNameFromContext(r.Context())
	}

	return filter
}

func (h *QueueHandler) ListQueue(w http.ResponseWriter, r *http.Request) {
	items, err := h.queueUsecase.ListQueue(r.Context(), queueFilter(r))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidQueueStatus) {
			response.BadRequest(w, "Invalid queue status")
			return
		}
		response.InternalServerError(w, "Failed to fetch queue")
		return
	}

	response.Success(w, http.StatusOK, items)
}

func (h *QueueHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.queueUsecase.GetStats(r.Context(), queueFilter(r))
	if err != nil {
		response.InternalServerError(w, "Failed to fetch queue stats")
		return
	}

	response.Success(w, http.StatusOK, stats)
}

func (h *QueueHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		message, fields := h.validator.Describe(err)
		response.ValidationError(w, message, fields)
		return
	}

	item, err := h.queueUsecase.CheckIn(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidQueuePriority) {
			response.BadRequest(w, "Invalid queue priority")
			return
		}
		response.InternalServerError(w, "Failed to check in patient")
		return
	}

	response.Success(w, http.StatusCreated, item)
}

// TransitionItem applies the action named in the path, e.g. /queue/Q001/start.
func (h *QueueHandler) TransitionItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	action := entity.QueueAction(strings.ToLower(vars["action"]))

	item, err := h.queueUsecase.TransitionItem(r.Context(), vars["id"], action)
	if err != nil {
		var transitionErr *entity.TransitionError
		switch {
		case errors.Is(err, usecase.ErrInvalidQueueAction):
			response.BadRequest(w, "Invalid queue action")
		case errors.Is(err, usecase.ErrQueueItemNotFound):
			response.NotFound(w, "Queue item not found")
		case errors.As(err, &transitionErr):
			response.Conflict(w, transitionErr.Error())
		default:
			response.InternalServerError(w, "Failed to update queue item")
		}
		return
	}

	response.Success(w, http.StatusOK, item)
}

func (h *QueueHandler) MoveItem(w http.ResponseWriter, r *http.Request) {
	var req dto.MoveQueueItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		message, fields := h.validator.Describe(err)
		response.ValidationError(w, message, fields)
		return
	}

	items, err := h.queueUsecase.MoveItem(r.Context(), mux.Vars(r)["id"], req.Direction)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidMoveDirection):
			response.BadRequest(w, "Direction must be up or down")
		case errors.Is(err, usecase.ErrQueueItemNotFound):
			response.NotFound(w, "Queue item not found")
		default:
			response.InternalServerError(w, "Failed to move queue item")
		}
		return
	}

	response.Success(w, http.StatusOK, items)
}

func (h *QueueHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.queueUsecase.RemoveItem(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrQueueItemIDRequired):
			response.BadRequest(w, "Queue item ID is required")
		case errors.Is(err, usecase.ErrQueueItemNotFound):
			response.NotFound(w, "Queue item not found")
		default:
			response.InternalServerError(w, "Failed to remove queue item")
		}
		return
	}

	response.Success(w, http.StatusOK, dto.DeleteQueueItemResponse{
		Message: "Patient removed from queue",
		Item:    *item,
	})
}
