package handlers

import (
	"net/http"

	"travel-api/internal/services"
)

type AuditLogHandler struct {
	auditLogService services.AuditLogService
}

func NewAuditLogHandler(auditLogService services.AuditLogService) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogService: auditLogService,
	}
}

func (h *AuditLogHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	p := ParsePaginationParams(r)
	entityType := r.URL.Query().Get("entityType")

	logs, total, err := h.auditLogService.GetAuditLogs(r.Context(), entityType, p.Page, p.PerPage)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithPage(w, logs, p, total)
}
