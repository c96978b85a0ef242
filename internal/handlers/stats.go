package handlers

import (
	"net/http"

	"national-connect-backend/internal/models"
	"national-connect-backend/internal/services"
)

// StatsHandler handles the statistics endpoint
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// StatsResponse represents the statistics payload
type StatsResponse struct {
	Success bool         `json:"success"`
	Stats   models.Stats `json:"stats"`
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, StatsResponse{
		Success: true,
		Stats:   h.statsService.Snapshot(),
	})
}
