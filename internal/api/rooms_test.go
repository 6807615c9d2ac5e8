package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/navikt/freerooms/internal/api"
	"github.com/navikt/freerooms/internal/models"
	"github.com/navikt/freerooms/internal/scraper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRoomFinder is a mock implementation of api.RoomFinder
type MockRoomFinder struct {
	mock.Mock
}

func (m *MockRoomFinder) FreeRooms(ctx context.Context, start, end time.Time) ([]*models.Room, error) {
	args := m.Called(ctx, start, end)
	rooms, _ := args.Get(0).([]*models.Room)
	return rooms, args.Error(1)
}

var fixedNow = time.Date(2025, 5, 9, 9, 17, 42, 0, time.Local)

func newHandler(finder api.RoomFinder) *api.RoomHandler {
	h := api.NewRoomHandler(finder, nil)
	h.SetClock(func() time.Time { return fixedNow })
	return h
}

func TestRoomHandlerFreeRooms(t *testing.T) {
	finder := new(MockRoomFinder)
	start := time.Date(2025, 5, 9, 13, 0, 0, 0, time.Local)
	end := time.Date(2025, 5, 9, 14, 30, 0, 0, time.Local)
	finder.On("FreeRooms", mock.Anything, start, end).Return([]*models.Room{
		{Name: "NE2", Floor: 1, Size: 4},
		{Name: "SW1", Floor: 2, Size: 12},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/rooms/free?start=13:00&end=14:30", nil)
	rr := httptest.NewRecorder()
	newHandler(finder).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response api.FreeRoomsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.True(t, start.Equal(response.Start))
	assert.True(t, end.Equal(response.End))
	assert.Equal(t, []api.FreeRoom{
		{Name: "NE2", Floor: 1, Size: 4},
		{Name: "SW1", Floor: 2, Size: 12},
	}, response.Rooms)

	finder.AssertExpectations(t)
}

func TestRoomHandlerDefaults(t *testing.T) {
	finder := new(MockRoomFinder)
	finder.On("FreeRooms", mock.Anything, fixedNow, fixedNow.Add(time.Hour)).Return([]*models.Room{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/rooms/free", nil)
	rr := httptest.NewRecorder()
	newHandler(finder).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, []any{}, response["rooms"])

	finder.AssertExpectations(t)
}

func TestRoomHandlerBadRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"hour out of range", "start=24:00"},
		{"not a number", "start=hello:00"},
		{"missing minutes", "end=10"},
		{"end before start", "start=10:00&end=09:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finder := new(MockRoomFinder)

			req := httptest.NewRequest(http.MethodGet, "/api/rooms/free?"+tt.query, nil)
			rr := httptest.NewRecorder()
			newHandler(finder).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)

			var response api.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
			assert.NotEmpty(t, response.Error)
			finder.AssertNotCalled(t, "FreeRooms", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRoomHandlerScrapeFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "provider unavailable",
			err:    &scraper.FetchError{URL: "http://example.com", StatusCode: http.StatusServiceUnavailable},
			status: http.StatusBadGateway,
		},
		{
			name:   "markup changed",
			err:    fmt.Errorf("failed to extract timeline: %w", &scraper.ExtractionError{Field: "name"}),
			status: http.StatusBadGateway,
		},
		{
			name:   "bad number",
			err:    fmt.Errorf("failed to build rooms: %w", &scraper.NumericParseError{Field: "size", Value: "x"}),
			status: http.StatusBadGateway,
		},
		{
			name:   "unexpected",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finder := new(MockRoomFinder)
			finder.On("FreeRooms", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/api/rooms/free?start=10:00", nil)
			rr := httptest.NewRecorder()
			newHandler(finder).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			var response api.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
			assert.Equal(t, http.StatusText(tt.status), response.Error)
		})
	}
}

func TestRoomHandlerMethodNotAllowed(t *testing.T) {
	finder := new(MockRoomFinder)

	req := httptest.NewRequest(http.MethodPost, "/api/rooms/free", nil)
	rr := httptest.NewRecorder()
	newHandler(finder).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, http.MethodGet, rr.Header().Get("Allow"))
}
