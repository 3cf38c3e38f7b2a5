package handlers

import (
	"net/http"

	"travel-api/internal/api/validation"
	"travel-api/internal/models"
	"travel-api/internal/services"
)

type CountryHandler struct {
	countryService services.CountryService
}

func NewCountryHandler(countryService services.CountryService) *CountryHandler {
	return &CountryHandler{countryService: countryService}
}

func (h *CountryHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.CountryFilter{
		Search:    query.Get("search"),
		Continent: query.Get("continent"),
	}
	p := ParsePaginationParams(r)

	countries, total, err := h.countryService.ListCountries(r.Context(), filter, p)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithPage(w, countries, p, total)
}

func (h *CountryHandler) GetCountry(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	country, err := h.countryService.GetCountry(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, country)
}

func (h *CountryHandler) CreateCountry(w http.ResponseWriter, r *http.Request) {
	var country models.Country
	if err := validation.DecodeJSON(r, &country); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	if err := h.countryService.CreateCountry(r.Context(), &country); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, country)
}

func (h *CountryHandler) UpdateCountry(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	var update models.CountryUpdate
	if err := validation.DecodeUpdate(r, &update); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	country, err := h.countryService.UpdateCountry(r.Context(), id, &update)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, country)
}

func (h *CountryHandler) DeleteCountry(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	if err := h.countryService.DeleteCountry(r.Context(), id); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CountryHandler) ListDestinations(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	p := ParsePaginationParams(r)

	destinations, total, err := h.countryService.ListDestinations(r.Context(), id, p)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithPage(w, destinations, p, total)
}
