package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/navikt/freerooms/internal/api"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHealthLive(t *testing.T) {
	req, err := http.NewRequest("GET", "/health/live", nil)
	assert.NoError(t, err)

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(api.HealthLiveHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err = json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "UP", response["status"])
}

func TestHealthReady(t *testing.T) {
	t.Run("no check", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/health/ready", nil)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()
		api.HealthReadyHandler(nil, zap.NewNop()).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var response map[string]string
		err = json.Unmarshal(rr.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "UP", response["status"])
	})

	t.Run("failing check", func(t *testing.T) {
		check := func(ctx context.Context) error {
			return errors.New("connection refused")
		}
		req, err := http.NewRequest("GET", "/health/ready", nil)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()
		api.HealthReadyHandler(check, zap.NewNop()).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

		var response map[string]string
		err = json.Unmarshal(rr.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "DOWN", response["status"])
		assert.Equal(t, "connection refused", response["error"])
	})
}
