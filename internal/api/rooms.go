package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/navikt/freerooms/internal/logging"
	"github.com/navikt/freerooms/internal/models"
	"github.com/navikt/freerooms/internal/scraper"
	"github.com/navikt/freerooms/internal/timearg"
	"github.com/navikt/freerooms/internal/utils"
	"go.uber.org/zap"
)

// FreeRoom is a room in the free rooms response
type FreeRoom struct {
	Name  string `json:"name"`
	Floor int    `json:"floor"`
	Size  int    `json:"size"`
}

// FreeRoomsResponse is the body of GET /api/rooms/free
type FreeRoomsResponse struct {
	Start time.Time  `json:"start"`
	End   time.Time  `json:"end"`
	Rooms []FreeRoom `json:"rooms"`
}

// ErrorResponse is written for failed requests
type ErrorResponse struct {
	Error string `json:"error"`
}

// RoomHandler handles HTTP requests for free room lookups
type RoomHandler struct {
	finder RoomFinder
	logger *zap.Logger
	now    func() time.Time
}

// NewRoomHandler creates a new room handler backed by the given finder
func NewRoomHandler(finder RoomFinder, logger *zap.Logger) *RoomHandler {
	logger = logging.OrNop(logger)
	return &RoomHandler{
		finder: finder,
		logger: logger,
		now:    time.Now,
	}
}

// SetClock replaces the clock used to resolve omitted or partial times
func (h *RoomHandler) SetClock(now func() time.Time) {
	h.now = now
}

// ServeHTTP handles GET /api/rooms/free?start=HH:MM&end=HH:MM
func (h *RoomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
		return
	}

	query := r.URL.Query()
	start, end, err := timearg.ResolveWindow(query.Get("start"), query.Get("end"), h.now())
	if err != nil {
		h.logger.Info("rejected free rooms query",
			zap.String("start", utils.SanitizeLogString(query.Get("start"))),
			zap.String("end", utils.SanitizeLogString(query.Get("end"))),
			zap.Error(err))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	rooms, err := h.finder.FreeRooms(r.Context(), start, end)
	if err != nil {
		status := statusForError(err)
		h.logger.Error("failed to find free rooms", zap.Int("status", status), zap.Error(err))
		writeJSON(w, status, ErrorResponse{Error: http.StatusText(status)})
		return
	}

	writeJSON(w, http.StatusOK, FreeRoomsResponse{
		Start: start,
		End:   end,
		Rooms: toFreeRooms(rooms),
	})
}

// statusForError maps provider failures to 502 and everything else to 500
func statusForError(err error) int {
	var fetchErr *scraper.FetchError
	var extractErr *scraper.ExtractionError
	var numErr *scraper.NumericParseError

	switch {
	case errors.As(err, &fetchErr), errors.As(err, &extractErr), errors.As(err, &numErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func toFreeRooms(rooms []*models.Room) []FreeRoom {
	result := make([]FreeRoom, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, FreeRoom{Name: room.Name, Floor: room.Floor, Size: room.Size})
	}
	return result
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
