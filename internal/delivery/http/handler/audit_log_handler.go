package handler

import (
	"net/http"
	"strconv"

	"go-medical-frontdesk/internal/usecase"
	"go-medical-frontdesk/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(w, "Invalid limit")
			return
		}
		limit = parsed
	}

	activity, err := h.auditLogUsecase.ListActivity(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to fetch activity")
		return
	}

	response.Success(w, http.StatusOK, activity)
}
