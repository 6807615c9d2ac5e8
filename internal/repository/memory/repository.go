// Package memory provides an in-memory implementation of the repository interface
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/navikt/freerooms/internal/models"
)

// ErrNotFound is returned when no snapshot is stored or it has expired
var ErrNotFound = errors.New("room snapshot not found")

// Repository keeps the latest room snapshot for the lifetime of the process
type Repository struct {
	rooms   map[string]*models.Room
	savedAt time.Time
	ttl     time.Duration
	now     func() time.Time
	mu      sync.RWMutex
}

// NewRepository creates a new in-memory repository. A ttl of 0 keeps snapshots until replaced.
func NewRepository(ttl time.Duration) *Repository {
	return &Repository{
		ttl: ttl,
		now: time.Now,
	}
}

// SetClock replaces the time source, for tests
func (r *Repository) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

// SaveRooms replaces the stored snapshot with a copy of rooms
func (r *Repository) SaveRooms(ctx context.Context, rooms map[string]*models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rooms = copyRooms(rooms)
	r.savedAt = r.now()

	return nil
}

// ListRooms returns a copy of the stored snapshot
func (r *Repository) ListRooms(ctx context.Context) (map[string]*models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.rooms == nil {
		return nil, ErrNotFound
	}
	if r.ttl > 0 && r.now().Sub(r.savedAt) >= r.ttl {
		return nil, ErrNotFound
	}

	return copyRooms(r.rooms), nil
}

// copyRooms deep copies rooms so callers never share reservation slices with the store
func copyRooms(rooms map[string]*models.Room) map[string]*models.Room {
	out := make(map[string]*models.Room, len(rooms))
	for name, room := range rooms {
		c := *room
		c.Reservations = append([]models.Reservation{}, room.Reservations...)
		out[name] = &c
	}
	return out
}
