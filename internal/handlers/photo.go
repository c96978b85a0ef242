package handlers

import (
	"net/http"

	"national-connect-backend/internal/models"
	"national-connect-backend/internal/services"
	"national-connect-backend/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// PhotoHandler handles photo-related HTTP requests
type PhotoHandler struct {
	photoService *services.PhotoService
	storage      *storage.Storage
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(photoService *services.PhotoService, storage *storage.Storage) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
		storage:      storage,
	}
}

// PhotoResponse represents a single-photo payload
type PhotoResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Photo   *models.Photo `json:"photo"`
}

// Upload handles POST /api/photos/upload (multipart, field "photo")
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("photo")
	if err != nil {
		respondError(w, "No photo uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	userID := r.FormValue("userId")
	if userID == "" {
		respondError(w, "userId is required", http.StatusBadRequest)
		return
	}

	stored, err := h.storage.Save(file, header)
	if err != nil {
		respondOpError(w, err)
		return
	}

	photo, err := h.photoService.Upload(userID, stored.Filename, stored.Path, r.FormValue("caption"))
	if err != nil {
		respondOpError(w, err)
		return
	}

	log.Info().
		Str("user_id", userID).
		Str("photo_id", photo.ID).
		Str("filename", photo.Filename).
		Msg("Photo uploaded")

	respondJSON(w, http.StatusCreated, PhotoResponse{
		Success: true,
		Message: "Photo uploaded successfully",
		Photo:   photo,
	})
}

// ListPhotosResponse represents the photo feed payload
type ListPhotosResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Photos  []models.Photo `json:"photos"`
}

// ListPhotos handles GET /api/photos
func (h *PhotoHandler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	photos := h.photoService.Feed(r.URL.Query().Get("userId"))

	respondJSON(w, http.StatusOK, ListPhotosResponse{
		Success: true,
		Count:   len(photos),
		Photos:  photos,
	})
}

// Like handles POST /api/photos/{id}/like
func (h *PhotoHandler) Like(w http.ResponseWriter, r *http.Request) {
	photo, err := h.photoService.Like(chi.URLParam(r, "id"))
	if err != nil {
		respondOpError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, PhotoResponse{
		Success: true,
		Message: "Photo liked",
		Photo:   photo,
	})
}
