package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse reports liveness
// swagger:model HealthResponse
type HealthResponse struct {
	// default: Backend is running
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHealthHandler returns a liveness probe handler. It touches no dependencies.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Backend is running"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{
			Status:    "Backend is running",
			Timestamp: time.Now().UTC(),
		})
	}
}

// NewNotFoundHandler answers unmatched routes and methods.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Endpoint not found"})
	}
}
