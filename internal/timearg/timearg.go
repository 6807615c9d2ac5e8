// Package timearg resolves HH:MM command line and query arguments into local times
package timearg

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultWindowLength is used for the end of a query window when none is given
const DefaultWindowLength = time.Hour

// ParseError is returned when a time argument is malformed or out of range
type ParseError struct {
	Value  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid time %q: %s: %v", e.Value, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid time %q: %s", e.Value, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Resolve applies an HH:MM argument to today's date.
// An empty argument returns def unchanged.
func Resolve(raw string, def time.Time) (time.Time, error) {
	return ResolveAt(raw, def, time.Now())
}

// ResolveAt is Resolve with an explicit current time
func ResolveAt(raw string, def time.Time, now time.Time) (time.Time, error) {
	if raw == "" {
		return def, nil
	}

	parts := strings.Split(raw, ":")
	if len(parts) < 2 {
		return time.Time{}, &ParseError{Value: raw, Reason: "expected HH:MM"}
	}

	hour, err := parseField(parts[0])
	if err != nil {
		return time.Time{}, &ParseError{Value: raw, Reason: "could not parse hour", Err: err}
	}
	if hour > 23 {
		return time.Time{}, &ParseError{Value: raw, Reason: "hour must be between 0 and 23"}
	}

	minute, err := parseField(parts[1])
	if err != nil {
		return time.Time{}, &ParseError{Value: raw, Reason: "could not parse minute", Err: err}
	}
	if minute > 59 {
		return time.Time{}, &ParseError{Value: raw, Reason: "minute must be between 0 and 59"}
	}

	year, month, day := now.Date()
	return time.Date(year, month, day, int(hour), int(minute), 0, 0, now.Location()), nil
}

// parseField reads an unsigned hour or minute. A single leading '+' is accepted.
func parseField(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 32)
}

// ResolveWindow resolves a start and end argument pair.
// Start defaults to now and end to one hour after the resolved start.
func ResolveWindow(startRaw, endRaw string, now time.Time) (time.Time, time.Time, error) {
	start, err := ResolveAt(startRaw, now, now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end, err := ResolveAt(endRaw, start.Add(DefaultWindowLength), now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if !end.After(start) {
		return time.Time{}, time.Time{}, &ParseError{
			Value:  endRaw,
			Reason: fmt.Sprintf("end must be after start (%s)", start.Format("15:04")),
		}
	}

	return start, end, nil
}
