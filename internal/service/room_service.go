package service

import (
	"context"
	"time"

	"github.com/navikt/freerooms/internal/availability"
	"github.com/navikt/freerooms/internal/logging"
	"github.com/navikt/freerooms/internal/models"
	"github.com/navikt/freerooms/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// RoomScraper fetches the current rooms and reservations from the provider
type RoomScraper interface {
	ScrapeRooms(ctx context.Context) (map[string]*models.Room, error)
}

// RoomService provides business logic for finding free rooms
type RoomService struct {
	scraper RoomScraper
	repo    repository.Repository
	logger  *zap.Logger
	locale  language.Tag
}

// NewRoomService creates a new RoomService. Rooms in results are ordered using locale.
func NewRoomService(scraper RoomScraper, repo repository.Repository, logger *zap.Logger, locale language.Tag) *RoomService {
	logger = logging.OrNop(logger)
	return &RoomService{
		scraper: scraper,
		repo:    repo,
		logger:  logger,
		locale:  locale,
	}
}

// Rooms returns the stored snapshot if it is still valid, otherwise scrapes and stores a new one.
// Storage failures are logged and never fail the call.
func (s *RoomService) Rooms(ctx context.Context) (map[string]*models.Room, error) {
	rooms, err := s.repo.ListRooms(ctx)
	if err == nil {
		s.logger.Debug("using stored room snapshot", zap.Int("rooms", len(rooms)))
		return rooms, nil
	}
	if !repository.IsNotFound(err) {
		s.logger.Warn("failed to read room snapshot, scraping instead", zap.Error(err))
	}

	rooms, err = s.scraper.ScrapeRooms(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveRooms(ctx, rooms); err != nil {
		s.logger.Warn("failed to store room snapshot", zap.Error(err))
	}

	return rooms, nil
}

// FreeRooms returns the rooms with no reservation overlapping [start, end], ordered by name
func (s *RoomService) FreeRooms(ctx context.Context, start, end time.Time) ([]*models.Room, error) {
	rooms, err := s.Rooms(ctx)
	if err != nil {
		return nil, err
	}

	window := models.NewWindow(start, end)
	free := availability.FreeRooms(rooms, window)
	availability.SortByName(free, s.locale)

	s.logger.Info("resolved free rooms",
		zap.String("start", start.Format("15:04")),
		zap.String("end", end.Format("15:04")),
		zap.Int("free", len(free)),
		zap.Int("total", len(rooms)))

	return free, nil
}
