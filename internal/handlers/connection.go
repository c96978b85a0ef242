package handlers

import (
	"encoding/json"
	"net/http"

	"national-connect-backend/internal/models"
	"national-connect-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// ConnectionHandler handles frequency matching and connection listing
type ConnectionHandler struct {
	connService *services.ConnectionService
}

// NewConnectionHandler creates a new connection handler
func NewConnectionHandler(connService *services.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{
		connService: connService,
	}
}

// ConnectRequest represents the request body for a frequency match
type ConnectRequest struct {
	UserID          string `json:"userId"`
	TargetFrequency string `json:"targetFrequency"`
}

// ConnectResponse represents a successful match payload
type ConnectResponse struct {
	Success       bool               `json:"success"`
	Message       string             `json:"message"`
	Connection    *models.Connection `json:"connection"`
	ConnectedUser *models.User       `json:"connectedUser"`
}

// NoMatchResponse represents the nobody-on-this-frequency outcome.
// It is a normal 200 result, not an error.
type NoMatchResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Connect handles POST /api/frequency/connect
func (h *ConnectionHandler) Connect(w http.ResponseWriter, r *http.Request) {
	var req ConnectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.connService.Connect(req.UserID, req.TargetFrequency)
	if err != nil {
		respondOpError(w, err)
		return
	}

	if !result.Matched {
		respondJSON(w, http.StatusOK, NoMatchResponse{
			Success: false,
			Message: "No user found on this frequency",
		})
		return
	}

	log.Info().
		Str("user_id", req.UserID).
		Str("connected_user_id", result.User.ID).
		Str("frequency", req.TargetFrequency).
		Msg("Connection established")

	respondJSON(w, http.StatusOK, ConnectResponse{
		Success:       true,
		Message:       "Connected successfully",
		Connection:    result.Connection,
		ConnectedUser: result.User,
	})
}

// ListConnectionsResponse represents the connection listing payload
type ListConnectionsResponse struct {
	Success     bool                          `json:"success"`
	Count       int                           `json:"count"`
	Connections []services.ConnectionWithUser `json:"connections"`
}

// ListConnections handles GET /api/connections/{userId}
func (h *ConnectionHandler) ListConnections(w http.ResponseWriter, r *http.Request) {
	connections := h.connService.ListForUser(chi.URLParam(r, "userId"))

	respondJSON(w, http.StatusOK, ListConnectionsResponse{
		Success:     true,
		Count:       len(connections),
		Connections: connections,
	})
}
