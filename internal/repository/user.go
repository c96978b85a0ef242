package repository

import (
	"sync"

	"national-connect-backend/internal/models"
)

// UserRepository holds the in-memory users collection in insertion order.
// All reads return copies so callers can never mutate the collection.
type UserRepository struct {
	mu    sync.RWMutex
	users []models.User
	byID  map[string]int
}

// NewUserRepository creates a new user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID: make(map[string]int),
	}
}

// Create appends a new user
func (r *UserRepository) Create(user models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[user.ID] = len(r.users)
	r.users = append(r.users, user)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id string) (models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byID[id]
	if !ok {
		return models.User{}, false
	}
	return r.users[idx], true
}

// UserFilter narrows a directory listing. Empty fields are ignored;
// set fields are combined with AND.
type UserFilter struct {
	State  string
	City   string
	Status string
}

// List returns users matching the filter in insertion order.
func (r *UserRepository) List(f UserFilter) []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		if f.State != "" && u.State != f.State {
			continue
		}
		if f.City != "" && u.City != f.City {
			continue
		}
		if f.Status != "" && u.Status != f.Status {
			continue
		}
		out = append(out, u)
	}
	return out
}

// FirstByFrequency returns the earliest-registered user whose frequency
// matches exactly. Frequencies are compared as strings, not numerically.
func (r *UserRepository) FirstByFrequency(frequency string) (models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Frequency == frequency {
			return u, true
		}
	}
	return models.User{}, false
}

// Count returns the number of users
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// CountByStatus returns the number of users with the given status
func (r *UserRepository) CountByStatus(status string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, u := range r.users {
		if u.Status == status {
			n++
		}
	}
	return n
}
