package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/navikt/freerooms/internal/api"
	"github.com/navikt/freerooms/internal/config"
	"github.com/navikt/freerooms/internal/repository/memory"
	"github.com/navikt/freerooms/internal/scraper"
	"github.com/navikt/freerooms/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

func newTestServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	page, err := os.ReadFile("../scraper/testdata/timeline.html")
	require.NoError(t, err)

	var hits atomic.Int32
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/html")
		w.Write(page)
	}))
	t.Cleanup(provider.Close)

	cfg := config.ProviderConfig{
		URL:               provider.URL,
		UserAgent:         "freerooms-test",
		Timeout:           5 * time.Second,
		WidthPrefixOffset: config.DefaultWidthPrefixOffset,
		Selectors:         config.DefaultSelectors(),
	}
	logger := zap.NewNop()
	svc := service.NewRoomService(scraper.New(cfg, logger), memory.NewRepository(0), logger, language.English)

	server := httptest.NewServer(api.SetupRoutes(svc, nil, logger))
	t.Cleanup(server.Close)

	return server, &hits
}

func TestFreeRoomsEndToEnd(t *testing.T) {
	server, hits := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/rooms/free?start=11:00&end=12:00")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(api.RequestIDHeader))

	var body api.FreeRoomsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	// NE1 is booked 10:30-11:30; NE2 is booked 09:00-11:00 and ends exactly at the window start
	assert.Equal(t, []api.FreeRoom{
		{Name: "NE2", Floor: 1, Size: 4},
		{Name: "SW1", Floor: 2, Size: 12},
	}, body.Rooms)

	// Second query is served from the stored snapshot
	resp2, err := http.Get(server.URL + "/api/rooms/free?start=08:00&end=09:00")
	require.NoError(t, err)
	defer resp2.Body.Close()

	var body2 api.FreeRoomsResponse
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&body2))
	assert.Len(t, body2.Rooms, 3)
	assert.Equal(t, int32(1), hits.Load())
}

func TestRequestIDIsKept(t *testing.T) {
	server, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/health/live", nil)
	require.NoError(t, err)
	req.Header.Set(api.RequestIDHeader, "abc-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc-123", resp.Header.Get(api.RequestIDHeader))
}

func TestUnknownRoute(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/meetings")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
