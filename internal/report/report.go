// Package report renders free room results for the console
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/navikt/freerooms/internal/models"
)

// Format selects how results are written
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a format name given on the command line
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected text or csv)", s)
	}
}

// Row is one free room in CSV output
type Row struct {
	Name  string `csv:"name"`
	Floor int    `csv:"floor"`
	Seats int    `csv:"seats"`
}

// Write renders rooms in the given format
func Write(w io.Writer, format Format, start, end time.Time, rooms []*models.Room) error {
	if format == FormatCSV {
		return WriteCSV(w, rooms)
	}
	return WriteText(w, start, end, rooms)
}

// WriteText writes a header with the query window followed by one line per room
func WriteText(w io.Writer, start, end time.Time, rooms []*models.Room) error {
	if _, err := fmt.Fprintf(w, "Free rooms available from %s to %s\n", clock(start), clock(end)); err != nil {
		return err
	}
	for _, room := range rooms {
		if _, err := fmt.Fprintf(w, "%s (seats %d)\n", room.Name, room.Size); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes the rooms as CSV with a header row
func WriteCSV(w io.Writer, rooms []*models.Room) error {
	rows := make([]*Row, 0, len(rooms))
	for _, room := range rooms {
		rows = append(rows, &Row{Name: room.Name, Floor: room.Floor, Seats: room.Size})
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// clock formats a time as 12-hour clock with a lower case suffix, e.g. 08:30am
func clock(t time.Time) string {
	return t.Format("03:04pm")
}
