package handlers

import (
	"net/http"
	"time"
)

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Health handles GET /api/health
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:    "OK",
		Message:   "National Connect API is running",
		Timestamp: time.Now(),
	})
}
