package scraper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/navikt/freerooms/internal/decoder"
	"github.com/navikt/freerooms/internal/models"
	"github.com/navikt/freerooms/internal/utils"
	"go.uber.org/zap"
)

// widthMarker terminates the pixel width inside a reservation's style attribute
const widthMarker = "px;"

// Assembler turns raw page records into the room model
type Assembler struct {
	decoder           decoder.Decoder
	widthPrefixOffset int
	logger            *zap.Logger
}

// NewAssembler creates an assembler using the given duration decoder
func NewAssembler(dec decoder.Decoder, widthPrefixOffset int, logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{
		decoder:           dec,
		widthPrefixOffset: widthPrefixOffset,
		logger:            logger,
	}
}

// Build creates rooms keyed by name and attaches their reservations.
// Reservations for rooms that are not listed are skipped, as are reservations
// whose decoded duration is not positive.
func (a *Assembler) Build(page *RawPage) (map[string]*models.Room, error) {
	rooms := make(map[string]*models.Room, len(page.Rooms))

	for _, raw := range page.Rooms {
		room, err := ParseRoom(raw)
		if err != nil {
			return nil, err
		}
		if _, exists := rooms[room.Name]; exists {
			a.logger.Warn("duplicate room on timeline, keeping the last row",
				zap.String("room", utils.SanitizeLogString(room.Name)))
		}
		rooms[room.Name] = room
	}

	for _, raw := range page.Reservations {
		reservation, err := a.ParseReservation(raw)
		if err != nil {
			return nil, err
		}

		room, ok := rooms[raw.RoomName]
		if !ok {
			a.logger.Debug("skipping reservation for unlisted room",
				zap.String("room", utils.SanitizeLogString(raw.RoomName)))
			continue
		}

		if reservation.End <= reservation.Start {
			a.logger.Warn("skipping reservation with non-positive duration",
				zap.String("room", utils.SanitizeLogString(raw.RoomName)),
				zap.String("style", utils.SanitizeLogString(raw.Style)))
			continue
		}

		room.AddReservation(reservation)
	}

	return rooms, nil
}

// ParseRoom converts a raw room row into a Room without reservations
func ParseRoom(raw RawRoom) (*models.Room, error) {
	floor, err := strconv.ParseInt(raw.Floor, 10, 32)
	if err != nil {
		return nil, &NumericParseError{Field: "floor", Room: raw.Name, Value: raw.Floor, Err: err}
	}

	size, err := strconv.ParseUint(raw.Size, 10, 32)
	if err != nil {
		return nil, &NumericParseError{Field: "size", Room: raw.Name, Value: raw.Size, Err: err}
	}

	return &models.Room{
		Name:         raw.Name,
		Floor:        int(floor),
		Size:         int(size),
		Reservations: []models.Reservation{},
	}, nil
}

// ParseReservation converts a raw reservation into a start/end interval
func (a *Assembler) ParseReservation(raw RawReservation) (models.Reservation, error) {
	start, err := strconv.ParseFloat(raw.Seconds, 64)
	if err != nil {
		return models.Reservation{}, &NumericParseError{Field: "reservation start", Room: raw.RoomName, Value: raw.Seconds, Err: err}
	}
	if start < 0 {
		return models.Reservation{}, &NumericParseError{Field: "reservation start", Room: raw.RoomName, Value: raw.Seconds, Err: fmt.Errorf("must not be negative")}
	}

	width, err := WidthFromStyle(raw.Style, a.widthPrefixOffset)
	if err != nil {
		var extractErr *ExtractionError
		var numErr *NumericParseError
		switch {
		case errors.As(err, &extractErr):
			extractErr.Room = raw.RoomName
		case errors.As(err, &numErr):
			numErr.Room = raw.RoomName
		}
		return models.Reservation{}, err
	}

	duration := a.decoder.DurationSeconds(width)

	return models.Reservation{
		Start: int(start),
		End:   int(start + float64(duration)),
	}, nil
}

// WidthFromStyle reads the pixel width out of a style attribute such as "width: 58px;".
// The number is taken between prefixOffset and the "px;" marker.
func WidthFromStyle(style string, prefixOffset int) (float64, error) {
	end := strings.Index(style, widthMarker)
	if end < 0 {
		return 0, &ExtractionError{Field: "reservation width", Reason: fmt.Sprintf("style %q has no %q marker", style, widthMarker)}
	}
	if prefixOffset < 0 || prefixOffset > end {
		return 0, &ExtractionError{Field: "reservation width", Reason: fmt.Sprintf("style %q is shorter than the %d character prefix", style, prefixOffset)}
	}

	value := strings.TrimSpace(style[prefixOffset:end])
	width, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &NumericParseError{Field: "reservation width", Value: value, Err: err}
	}

	return width, nil
}
