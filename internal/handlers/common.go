package handlers

import (
	"encoding/json"
	"net/http"

	"national-connect-backend/internal/apperrors"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	respondJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondOpError maps a store operation failure to its HTTP status
func respondOpError(w http.ResponseWriter, err error) {
	respondError(w, err.Error(), apperrors.HTTPStatus(err))
}
