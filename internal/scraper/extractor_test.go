package scraper_test

import (
	"errors"
	"os"
	"testing"

	"github.com/navikt/freerooms/internal/config"
	"github.com/navikt/freerooms/internal/scraper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTimeline(t *testing.T) []byte {
	t.Helper()
	html, err := os.ReadFile("testdata/timeline.html")
	require.NoError(t, err)
	return html
}

func TestExtract(t *testing.T) {
	extractor := scraper.NewExtractor(config.DefaultSelectors())

	page, err := extractor.Extract(loadTimeline(t))
	require.NoError(t, err)

	assert.Equal(t, []scraper.RawRoom{
		{Name: "NE1", Floor: "1", Size: "8"},
		{Name: "NE2", Floor: "1", Size: "4"},
		{Name: "SW1", Floor: "2", Size: "12"},
	}, page.Rooms)

	require.Len(t, page.Reservations, 4)
	assert.Equal(t, scraper.RawReservation{RoomName: "NE1", Seconds: "37800.0", Style: "width: 58px;"}, page.Reservations[0])
	assert.Equal(t, "Gone", page.Reservations[3].RoomName)
}

func TestExtractEmptyPage(t *testing.T) {
	extractor := scraper.NewExtractor(config.DefaultSelectors())

	page, err := extractor.Extract([]byte("<html><body><p>Maintenance</p></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, page.Rooms)
	assert.Empty(t, page.Reservations)
}

func TestExtractErrors(t *testing.T) {
	extractor := scraper.NewExtractor(config.DefaultSelectors())

	tests := []struct {
		name  string
		html  string
		field string
		room  string
	}{
		{
			name:  "Missing size cell",
			html:  `<table id="timeline"><tbody><tr><td class="name" data-sort="NE1"></td><td class="floor" data-sort="1"></td></tr></tbody></table>`,
			field: "size",
			room:  "NE1",
		},
		{
			name:  "Missing name attribute",
			html:  `<table id="timeline"><tbody><tr><td class="name">NE1</td></tr></tbody></table>`,
			field: "name",
		},
		{
			name:  "Missing seconds attribute",
			html:  `<div class="reserved" room_name="NE1" style="width: 58px;"></div>`,
			field: "reservation start",
			room:  "NE1",
		},
		{
			name:  "Missing style attribute",
			html:  `<div class="reserved" room_name="NE1" seconds="100.0"></div>`,
			field: "reservation width",
			room:  "NE1",
		},
		{
			name:  "Missing room name attribute",
			html:  `<div class="reserved" seconds="100.0" style="width: 58px;"></div>`,
			field: "room name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractor.Extract([]byte(tt.html))
			require.Error(t, err)

			var extractErr *scraper.ExtractionError
			require.True(t, errors.As(err, &extractErr), "expected ExtractionError, got %v", err)
			assert.Equal(t, tt.field, extractErr.Field)
			assert.Equal(t, tt.room, extractErr.Room)
		})
	}
}
