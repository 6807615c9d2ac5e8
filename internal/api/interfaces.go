package api

import (
	"context"
	"time"

	"github.com/navikt/freerooms/internal/models"
)

// RoomFinder defines the room service operations needed by API handlers
type RoomFinder interface {
	FreeRooms(ctx context.Context, start, end time.Time) ([]*models.Room, error)
}
