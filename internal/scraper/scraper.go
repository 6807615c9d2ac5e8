// Package scraper retrieves the provider's timeline page and turns it into rooms with reservations
package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/navikt/freerooms/internal/config"
	"github.com/navikt/freerooms/internal/decoder"
	"github.com/navikt/freerooms/internal/models"
	"go.uber.org/zap"
)

// Scraper fetches, extracts and assembles one provider's rooms
type Scraper struct {
	fetcher   *Fetcher
	extractor *Extractor
	assembler *Assembler
	logger    *zap.Logger
}

// New creates a scraper for the given provider configuration
func New(cfg config.ProviderConfig, logger *zap.Logger) *Scraper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scraper{
		fetcher:   NewFetcher(cfg.URL, cfg.UserAgent, cfg.Timeout),
		extractor: NewExtractor(cfg.Selectors),
		assembler: NewAssembler(decoder.New(cfg.SecondsPerPixel), cfg.WidthPrefixOffset, logger),
		logger:    logger,
	}
}

// ScrapeRooms returns today's rooms keyed by name
func (s *Scraper) ScrapeRooms(ctx context.Context) (map[string]*models.Room, error) {
	started := time.Now()

	html, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	page, err := s.extractor.Extract(html)
	if err != nil {
		return nil, fmt.Errorf("failed to extract timeline: %w", err)
	}

	rooms, err := s.assembler.Build(page)
	if err != nil {
		return nil, fmt.Errorf("failed to build rooms: %w", err)
	}

	s.logger.Info("scraped timeline",
		zap.String("url", s.fetcher.URL()),
		zap.Int("rooms", len(rooms)),
		zap.Int("reservations", len(page.Reservations)),
		zap.Duration("elapsed", time.Since(started)))

	return rooms, nil
}
