package handlers

import (
	"net/http"
	"time"

	"travel-api/internal/models"
	"travel-api/internal/services"
)

type RequestLogHandler struct {
	logService services.RequestLogService
}

func NewRequestLogHandler(logService services.RequestLogService) *RequestLogHandler {
	return &RequestLogHandler{
		logService: logService,
	}
}

// ListRequestLogs serves GET /api/admin/request-logs. It accepts from, to
// (RFC 3339), userId and endpoint filters.
func (h *RequestLogHandler) ListRequestLogs(w http.ResponseWriter, r *http.Request) {
	from, to := getTimeRange(r)
	filter := models.RequestLogFilter{
		UserID:   r.URL.Query().Get("userId"),
		Endpoint: r.URL.Query().Get("endpoint"),
		From:     from,
		To:       to,
	}
	p := ParsePaginationParams(r)

	logs, total, err := h.logService.GetRequestLogs(r.Context(), filter, p.Page, p.PerPage)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithPage(w, logs, p, total)
}

func getTimeRange(r *http.Request) (time.Time, time.Time) {
	now := time.Now()
	from := now.AddDate(0, -1, 0) // Default to last 30 days
	to := now

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		if parsedFrom, err := time.Parse(time.RFC3339, fromStr); err == nil {
			from = parsedFrom
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		if parsedTo, err := time.Parse(time.RFC3339, toStr); err == nil {
			to = parsedTo
		}
	}

	return from, to
}
