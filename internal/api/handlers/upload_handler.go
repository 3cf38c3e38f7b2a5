package handlers

import (
	"fmt"
	"io"
	"net/http"

	apperrors "travel-api/internal/pkg/errors"
	"travel-api/internal/services"
)

// UploadHandler stores admin image uploads in object storage.
type UploadHandler struct {
	storage services.StorageService
	maxSize int64
}

func NewUploadHandler(storage services.StorageService, maxSize int64) *UploadHandler {
	return &UploadHandler{storage: storage, maxSize: maxSize}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload reads the multipart "image" field and returns the stored URL.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize+1<<20)
	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		respondWithAppError(w, r, apperrors.Invalid("request must be multipart/form-data within the size limit"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondWithAppError(w, r, apperrors.Invalid("image file is required"))
		return
	}
	defer file.Close()

	if header.Size > h.maxSize {
		respondWithAppError(w, r, apperrors.Invalid(fmt.Sprintf("file exceeds the %d MB limit", h.maxSize>>20)))
		return
	}

	sniff := make([]byte, 512)
	n, err := io.ReadFull(file, sniff)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		respondWithAppError(w, r, apperrors.Invalid("failed to read image"))
		return
	}
	contentType := http.DetectContentType(sniff[:n])
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		respondWithAppError(w, r, apperrors.Wrap(err, "failed to rewind upload"))
		return
	}

	url, err := h.storage.UploadImage(r.Context(), header.Filename, contentType, file)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, uploadResponse{URL: url})
}
