package handlers

import (
	"net/http"

	"travel-api/internal/api/validation"
	"travel-api/internal/middleware"
	"travel-api/internal/models"
	"travel-api/internal/services"
)

type FeedbackHandler struct {
	feedbackService services.FeedbackService
}

func NewFeedbackHandler(feedbackService services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var feedback models.Feedback
	if err := validation.DecodeJSON(r, &feedback); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	feedback.IPAddress = middleware.ClientIP(r)

	if err := h.feedbackService.SubmitFeedback(r.Context(), &feedback); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, feedback)
}

func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	p := ParsePaginationParams(r)

	items, total, err := h.feedbackService.ListFeedback(r.Context(), p)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithPage(w, items, p, total)
}

func (h *FeedbackHandler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	feedback, err := h.feedbackService.GetFeedback(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, feedback)
}

func (h *FeedbackHandler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	if err := h.feedbackService.DeleteFeedback(r.Context(), id); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
