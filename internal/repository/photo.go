package repository

import (
	"sync"

	"national-connect-backend/internal/models"
)

// PhotoRepository holds the in-memory photos collection. Likes is the
// only mutable field and is only ever incremented, under the write lock.
type PhotoRepository struct {
	mu     sync.RWMutex
	photos []models.Photo
	byID   map[string]int
}

// NewPhotoRepository creates a new photo repository
func NewPhotoRepository() *PhotoRepository {
	return &PhotoRepository{
		byID: make(map[string]int),
	}
}

// Create appends a new photo
func (r *PhotoRepository) Create(photo models.Photo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[photo.ID] = len(r.photos)
	r.photos = append(r.photos, photo)
}

// List returns photos newest-first, optionally restricted to one owner.
// Creation is append-only, so reverse insertion order is reverse
// chronological order.
func (r *PhotoRepository) List(userID string) []models.Photo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Photo{}
	for i := len(r.photos) - 1; i >= 0; i-- {
		p := r.photos[i]
		if userID != "" && p.UserID != userID {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Like increments the like counter and returns the updated photo.
// Calling twice increments twice; there is no idempotency key.
func (r *PhotoRepository) Like(id string) (models.Photo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx, ok := r.byID[id]
	if !ok {
		return models.Photo{}, false
	}
	r.photos[idx].Likes++
	return r.photos[idx], true
}

// Count returns the number of photos
func (r *PhotoRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.photos)
}
