package handlers

import (
	"net/http"

	"travel-api/internal/api/validation"
	apperrors "travel-api/internal/pkg/errors"
	"travel-api/internal/services"
)

type SubscriptionHandler struct {
	subscriptionService services.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"max=100"`
}

func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := validation.DecodeJSON(r, &req); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	subscriber, err := h.subscriptionService.Subscribe(r.Context(), req.Email, req.Name)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, subscriber)
}

func (h *SubscriptionHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	p := ParsePaginationParams(r)

	subscribers, total, err := h.subscriptionService.ListSubscribers(r.Context(), p)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithPage(w, subscribers, p, total)
}

func (h *SubscriptionHandler) DeleteSubscriber(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	if err := h.subscriptionService.Unsubscribe(r.Context(), id); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Unsubscribe serves the public DELETE /api/subscribe?email= link.
func (h *SubscriptionHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondWithAppError(w, r, apperrors.Invalid("email query parameter is required"))
		return
	}

	if err := h.subscriptionService.UnsubscribeByEmail(r.Context(), email); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
