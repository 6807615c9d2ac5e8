package scraper

import (
	"fmt"
)

// FetchError is returned when the timeline page could not be retrieved
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ExtractionError is returned when a required element or attribute is missing from the page
type ExtractionError struct {
	Field  string
	Room   string // empty when the room is not known yet
	Reason string
}

func (e *ExtractionError) Error() string {
	if e.Room != "" {
		return fmt.Sprintf("failed to extract %s for room %q: %s", e.Field, e.Room, e.Reason)
	}
	return fmt.Sprintf("failed to extract %s: %s", e.Field, e.Reason)
}

// NumericParseError is returned when a scraped value is not a valid number
type NumericParseError struct {
	Field string
	Room  string // empty when the room is not known yet
	Value string
	Err   error
}

func (e *NumericParseError) Error() string {
	if e.Room != "" {
		return fmt.Sprintf("failed to parse %s %q for room %q: %v", e.Field, e.Value, e.Room, e.Err)
	}
	return fmt.Sprintf("failed to parse %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *NumericParseError) Unwrap() error {
	return e.Err
}
