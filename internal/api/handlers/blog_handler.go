package handlers

import (
	"net/http"

	"travel-api/internal/api/validation"
	"travel-api/internal/models"
	"travel-api/internal/services"

	"github.com/go-chi/chi/v5"
)

type BlogHandler struct {
	blogService services.BlogService
}

func NewBlogHandler(blogService services.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

func (h *BlogHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.BlogFilter{
		Search: query.Get("search"),
		Tag:    query.Get("tag"),
	}
	p := ParsePaginationParams(r)

	blogs, total, err := h.blogService.ListBlogs(r.Context(), filter, p)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithPage(w, blogs, p, total)
}

// GetBlog accepts either the blog id or its slug.
func (h *BlogHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	blog, err := h.blogService.GetBlog(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, blog)
}

func (h *BlogHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var blog models.Blog
	if err := validation.DecodeJSON(r, &blog); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	if err := h.blogService.CreateBlog(r.Context(), &blog); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, blog)
}

func (h *BlogHandler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	var update models.BlogUpdate
	if err := validation.DecodeUpdate(r, &update); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	blog, err := h.blogService.UpdateBlog(r.Context(), id, &update)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, blog)
}

func (h *BlogHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	if err := h.blogService.DeleteBlog(r.Context(), id); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
