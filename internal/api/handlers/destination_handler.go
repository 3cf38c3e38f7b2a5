package handlers

import (
	"net/http"

	"travel-api/internal/api/validation"
	"travel-api/internal/models"
	"travel-api/internal/services"
)

type DestinationHandler struct {
	destinationService services.DestinationService
}

func NewDestinationHandler(destinationService services.DestinationService) *DestinationHandler {
	return &DestinationHandler{destinationService: destinationService}
}

// ListDestinations serves GET /api/destinations with optional search,
// country, continent and type filters.
func (h *DestinationHandler) ListDestinations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.DestinationFilter{
		Search:    query.Get("search"),
		Country:   query.Get("country"),
		Continent: query.Get("continent"),
		Type:      query.Get("type"),
	}
	p := ParsePaginationParams(r)

	destinations, total, err := h.destinationService.ListDestinations(r.Context(), filter, p)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithPage(w, destinations, p, total)
}

func (h *DestinationHandler) GetDestination(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	destination, err := h.destinationService.GetDestination(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, destination)
}

func (h *DestinationHandler) CreateDestination(w http.ResponseWriter, r *http.Request) {
	var destination models.Destination
	if err := validation.DecodeJSON(r, &destination); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	if err := h.destinationService.CreateDestination(r.Context(), &destination); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, destination)
}

func (h *DestinationHandler) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	var update models.DestinationUpdate
	if err := validation.DecodeUpdate(r, &update); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	destination, err := h.destinationService.UpdateDestination(r.Context(), id, &update)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, destination)
}

func (h *DestinationHandler) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	if err := h.destinationService.DeleteDestination(r.Context(), id); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DestinationHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.destinationService.ListTypes(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string][]string{"types": types})
}

// SuggestionResponse holds destination names matching a partial search.
type SuggestionResponse struct {
	Results []string `json:"results"`
}

func (h *DestinationHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	results, err := h.destinationService.Suggest(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, SuggestionResponse{Results: results})
}
