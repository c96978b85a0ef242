package handlers

import (
	"encoding/json"
	"net/http"

	"national-connect-backend/internal/models"
	"national-connect-backend/internal/repository"
	"national-connect-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// RegisterResponse represents the register success payload
type RegisterResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// Register handles POST /api/users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Register(req)
	if err != nil {
		respondOpError(w, err)
		return
	}

	log.Info().
		Str("user_id", user.ID).
		Str("frequency", user.Frequency).
		Msg("User registered")

	respondJSON(w, http.StatusCreated, RegisterResponse{
		Success: true,
		Message: "User registered successfully",
		User:    user,
	})
}

// ListUsersResponse represents the directory listing payload
type ListUsersResponse struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Users   []models.User `json:"users"`
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	users := h.userService.ListUsers(repository.UserFilter{
		State:  q.Get("state"),
		City:   q.Get("city"),
		Status: q.Get("status"),
	})

	respondJSON(w, http.StatusOK, ListUsersResponse{
		Success: true,
		Count:   len(users),
		Users:   users,
	})
}

// UserResponse represents a single-user payload
type UserResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
}

// GetUser handles GET /api/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetUser(chi.URLParam(r, "id"))
	if err != nil {
		respondOpError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, UserResponse{
		Success: true,
		User:    user,
	})
}
