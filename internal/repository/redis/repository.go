// Package redis provides a Redis/Valkey implementation of the repository interface
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/navikt/freerooms/internal/config"
	"github.com/navikt/freerooms/internal/models"
	"github.com/redis/go-redis/v9"
)

// Common errors
var (
	ErrNotFound = errors.New("room snapshot not found")
)

// snapshot is the stored form of one scrape
type snapshot struct {
	ScrapedAt time.Time     `json:"scraped_at"`
	Rooms     []models.Room `json:"rooms"`
}

// Repository implements the repository interface with Redis storage
type Repository struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRepository creates a new Redis repository
func NewRepository(cfg config.RedisConfig) (*Repository, error) {
	var client *redis.Client

	// Use URI if provided, otherwise build connection from individual parameters
	if cfg.URI != "" {
		opt, err := redis.ParseURL(cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URI: %w", err)
		}

		if opt.DB == 0 {
			opt.DB = cfg.DB
		}
		if opt.Password == "" && cfg.Password != "" {
			opt.Password = cfg.Password
		}

		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.SnapshotTTL
	if ttl <= 0 {
		ttl = config.DefaultSnapshotTTL
	}

	return &Repository{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		ttl:       ttl,
	}, nil
}

// Close closes the Redis connection
func (r *Repository) Close() error {
	return r.client.Close()
}

// Ping checks that Redis is reachable
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// snapshotKey returns the Redis key holding the latest scrape
func (r *Repository) snapshotKey() string {
	return r.keyPrefix + "rooms"
}

// SaveRooms stores the rooms as one JSON document that expires after the configured TTL
func (r *Repository) SaveRooms(ctx context.Context, rooms map[string]*models.Room) error {
	s := snapshot{
		ScrapedAt: time.Now(),
		Rooms:     make([]models.Room, 0, len(rooms)),
	}
	for _, room := range rooms {
		s.Rooms = append(s.Rooms, *room)
	}

	data, err := json.Marshal(&s)
	if err != nil {
		return fmt.Errorf("failed to marshal rooms: %w", err)
	}

	if err := r.client.Set(ctx, r.snapshotKey(), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save rooms: %w", err)
	}

	return nil
}

// ListRooms returns the stored rooms keyed by name
func (r *Repository) ListRooms(ctx context.Context) (map[string]*models.Room, error) {
	data, err := r.client.Get(ctx, r.snapshotKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rooms: %w", err)
	}

	rooms := make(map[string]*models.Room, len(s.Rooms))
	for i := range s.Rooms {
		room := s.Rooms[i]
		if room.Reservations == nil {
			room.Reservations = []models.Reservation{}
		}
		rooms[room.Name] = &room
	}

	return rooms, nil
}
