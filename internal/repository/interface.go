// Package repository defines the storage for scraped room snapshots
package repository

import (
	"context"

	"github.com/navikt/freerooms/internal/models"
)

// Repository stores the most recent scrape of the provider's timeline
type Repository interface {
	SaveRooms(ctx context.Context, rooms map[string]*models.Room) error
	// ListRooms returns an error matched by IsNotFound when nothing usable is stored
	ListRooms(ctx context.Context) (map[string]*models.Room, error)
}
