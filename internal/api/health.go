// Package api provides the HTTP handlers for the freerooms API
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// HealthResponse represents the response for health check endpoints
type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ReadinessCheck reports whether a dependency is able to serve traffic
type ReadinessCheck func(ctx context.Context) error

const readinessTimeout = 2 * time.Second

// HealthLiveHandler handles Kubernetes liveness probe requests
func HealthLiveHandler(w http.ResponseWriter, r *http.Request) {
	writeHealth(w, http.StatusOK, HealthResponse{Status: "UP"})
}

// HealthReadyHandler handles Kubernetes readiness probe requests.
// A nil check always reports ready.
func HealthReadyHandler(check ReadinessCheck, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
			defer cancel()

			if err := check(ctx); err != nil {
				if logger != nil {
					logger.Warn("readiness check failed", zap.Error(err))
				}
				writeHealth(w, http.StatusServiceUnavailable, HealthResponse{Status: "DOWN", Error: err.Error()})
				return
			}
		}
		writeHealth(w, http.StatusOK, HealthResponse{Status: "UP"})
	}
}

func writeHealth(w http.ResponseWriter, status int, response HealthResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}
