package api

import (
	"net/http"

	"go.uber.org/zap"
)

// SetupRoutes configures the HTTP routes for the API
func SetupRoutes(finder RoomFinder, ready ReadinessCheck, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoints for Kubernetes
	mux.HandleFunc("/health/live", HealthLiveHandler)
	mux.HandleFunc("/health/ready", HealthReadyHandler(ready, logger))

	mux.Handle("/api/rooms/free", NewRoomHandler(finder, logger))

	return RequestLogger(logger, mux)
}
