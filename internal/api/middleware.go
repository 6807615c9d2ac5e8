package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/navikt/freerooms/internal/logging"
	"github.com/navikt/freerooms/internal/utils"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request ID to and from clients
const RequestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger assigns a request ID to every request and logs it once it has been served.
// An incoming X-Request-ID is kept.
func RequestLogger(logger *zap.Logger, next http.Handler) http.Handler {
	logger = logging.OrNop(logger)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logger.Info("request served",
			zap.String("request_id", utils.SanitizeLogString(requestID)),
			zap.String("method", r.Method),
			zap.String("path", utils.SanitizeLogString(r.URL.Path)),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(started)))
	})
}
