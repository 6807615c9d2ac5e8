package scraper

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/navikt/freerooms/internal/config"
)

// RawRoom holds the unparsed attribute values of one room row
type RawRoom struct {
	Name  string
	Floor string
	Size  string
}

// RawReservation holds the unparsed attribute values of one reservation element
type RawReservation struct {
	RoomName string
	Seconds  string
	Style    string
}

// RawPage is everything extracted from one timeline page
type RawPage struct {
	Rooms        []RawRoom
	Reservations []RawReservation
}

// Extractor pulls raw room and reservation records out of the timeline markup
type Extractor struct {
	selectors config.Selectors
}

// NewExtractor creates an extractor for the given page layout
func NewExtractor(selectors config.Selectors) *Extractor {
	return &Extractor{selectors: selectors}
}

// Extract parses the page and returns its raw records.
// The first missing element or attribute aborts extraction.
func (e *Extractor) Extract(html []byte) (*RawPage, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	page := &RawPage{}
	var extractErr error

	doc.Find(e.selectors.Row).EachWithBreak(func(i int, row *goquery.Selection) bool {
		room, err := e.extractRoom(row)
		if err != nil {
			extractErr = err
			return false
		}
		page.Rooms = append(page.Rooms, room)
		return true
	})
	if extractErr != nil {
		return nil, extractErr
	}

	doc.Find(e.selectors.Reservation).EachWithBreak(func(i int, s *goquery.Selection) bool {
		reservation, err := e.extractReservation(s)
		if err != nil {
			extractErr = err
			return false
		}
		page.Reservations = append(page.Reservations, reservation)
		return true
	})
	if extractErr != nil {
		return nil, extractErr
	}

	return page, nil
}

func (e *Extractor) extractRoom(row *goquery.Selection) (RawRoom, error) {
	name, err := e.sortValue(row, e.selectors.Name, "name", "")
	if err != nil {
		return RawRoom{}, err
	}
	floor, err := e.sortValue(row, e.selectors.Floor, "floor", name)
	if err != nil {
		return RawRoom{}, err
	}
	size, err := e.sortValue(row, e.selectors.Size, "size", name)
	if err != nil {
		return RawRoom{}, err
	}

	return RawRoom{Name: name, Floor: floor, Size: size}, nil
}

// sortValue reads the sort attribute of the first cell matching selector inside row
func (e *Extractor) sortValue(row *goquery.Selection, selector, field, room string) (string, error) {
	cell := row.Find(selector).First()
	if cell.Length() == 0 {
		return "", &ExtractionError{Field: field, Room: room, Reason: fmt.Sprintf("no element matches %q", selector)}
	}

	value, ok := cell.Attr(e.selectors.SortAttribute)
	if !ok {
		return "", &ExtractionError{Field: field, Room: room, Reason: fmt.Sprintf("missing %s attribute", e.selectors.SortAttribute)}
	}

	return value, nil
}

func (e *Extractor) extractReservation(s *goquery.Selection) (RawReservation, error) {
	roomName, ok := s.Attr(e.selectors.RoomAttribute)
	if !ok {
		return RawReservation{}, &ExtractionError{Field: "room name", Reason: fmt.Sprintf("missing %s attribute", e.selectors.RoomAttribute)}
	}

	seconds, ok := s.Attr(e.selectors.StartAttribute)
	if !ok {
		return RawReservation{}, &ExtractionError{Field: "reservation start", Room: roomName, Reason: fmt.Sprintf("missing %s attribute", e.selectors.StartAttribute)}
	}

	style, ok := s.Attr(e.selectors.StyleAttribute)
	if !ok {
		return RawReservation{}, &ExtractionError{Field: "reservation width", Room: roomName, Reason: fmt.Sprintf("missing %s attribute", e.selectors.StyleAttribute)}
	}

	return RawReservation{RoomName: roomName, Seconds: seconds, Style: style}, nil
}
