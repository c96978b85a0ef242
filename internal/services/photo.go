package services

import (
	"time"

	"national-connect-backend/internal/apperrors"
	"national-connect-backend/internal/models"
	"national-connect-backend/internal/repository"
)

// PhotoService handles the photo feed and like counter. File persistence
// belongs to the storage layer; the service only records the descriptor
// it is handed.
type PhotoService struct {
	photoRepo *repository.PhotoRepository
	userRepo  *repository.UserRepository
	ids       IDGenerator
}

// NewPhotoService creates a new photo service
func NewPhotoService(photoRepo *repository.PhotoRepository, userRepo *repository.UserRepository, ids IDGenerator) *PhotoService {
	return &PhotoService{
		photoRepo: photoRepo,
		userRepo:  userRepo,
		ids:       ids,
	}
}

// Upload records an already-persisted file as a photo owned by userID.
// The owner's name is denormalized at this point and never refreshed.
func (s *PhotoService) Upload(userID, filename, path, caption string) (*models.Photo, error) {
	if filename == "" || path == "" {
		return nil, apperrors.Validation("No photo uploaded")
	}
	if userID == "" {
		return nil, apperrors.Validation("userId is required")
	}

	user, ok := s.userRepo.GetByID(userID)
	if !ok {
		return nil, apperrors.NotFound("User not found")
	}

	photo := models.Photo{
		ID:        s.ids.NewID(),
		UserID:    userID,
		UserName:  user.Name,
		Filename:  filename,
		Path:      path,
		Caption:   caption,
		Likes:     0,
		CreatedAt: time.Now(),
	}
	s.photoRepo.Create(photo)
	return &photo, nil
}

// Feed returns photos newest-first, optionally restricted to one user
func (s *PhotoService) Feed(userID string) []models.Photo {
	return s.photoRepo.List(userID)
}

// Like increments a photo's like counter by one and returns the updated
// photo. Repeated calls keep incrementing; taps are not deduplicated.
func (s *PhotoService) Like(id string) (*models.Photo, error) {
	photo, ok := s.photoRepo.Like(id)
	if !ok {
		return nil, apperrors.NotFound("Photo not found")
	}
	return &photo, nil
}
