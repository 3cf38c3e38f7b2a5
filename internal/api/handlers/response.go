package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"travel-api/internal/api/validation"
	"travel-api/internal/logger"
	"travel-api/internal/models"
	apperrors "travel-api/internal/pkg/errors"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.WithError(err).Error("failed to encode response")
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, errorResponse{Error: message})
}

// respondWithAppError maps err onto a status code and writes it. Messages of
// internal errors are not exposed.
func respondWithAppError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	resp := errorResponse{Error: err.Error()}

	var verr *validation.Error
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
	}

	if status == http.StatusInternalServerError {
		logger.Logger.WithFields(logrus.Fields{
			"error":  err.Error(),
			"method": r.Method,
			"url":    r.URL.Path,
		}).Error("request failed")
		resp.Error = "internal server error"
	}
	respondWithJSON(w, status, resp)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput), errors.Is(err, apperrors.ErrUnknownField):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrInsufficientPermission):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Utility to parse pagination params from query
func ParsePaginationParams(r *http.Request) models.Pagination {
	p := models.Pagination{Page: 1, PerPage: models.DefaultPerPage}
	query := r.URL.Query()

	if page, err := strconv.Atoi(query.Get("page")); err == nil && page > 0 {
		p.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 {
		p.PerPage = limit
	}
	if p.PerPage > models.MaxPerPage {
		p.PerPage = models.MaxPerPage
	}
	return p
}

func respondWithPage(w http.ResponseWriter, data interface{}, p models.Pagination, total int64) {
	respondWithJSON(w, http.StatusOK, models.PageResponse{
		Data: data,
		Meta: models.PageMeta{Page: p.Page, PerPage: p.PerPage, Total: total},
	})
}

// parseObjectID reads the {id} URL parameter. A malformed id is invalid input.
func parseObjectID(r *http.Request) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, apperrors.Invalid("invalid id")
	}
	return id, nil
}
