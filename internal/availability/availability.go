// Package availability decides which rooms are free for a query window
package availability

import (
	"sort"

	"github.com/navikt/freerooms/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Conflicts reports whether a reservation overlaps the window.
// Comparisons are strict, so a window that only touches a reservation's start or end is free.
// A window with exactly the reservation's bounds is a conflict.
func Conflicts(r models.Reservation, w models.Window) bool {
	return (w.Start > r.Start && w.Start < r.End) || // starts during the reservation
		(w.End > r.Start && w.End < r.End) || // ends during the reservation
		(w.Start < r.Start && w.End > r.End) || // reservation lies inside the window
		(w.Start == r.Start && w.End == r.End) // same slot
}

// IsFree returns true if none of the room's reservations conflict with the window
func IsFree(room *models.Room, w models.Window) bool {
	for _, r := range room.Reservations {
		if Conflicts(r, w) {
			return false
		}
	}
	return true
}

// FreeRooms returns the rooms that are free for the whole window.
// The result follows map iteration order; use SortByName for stable output.
func FreeRooms(rooms map[string]*models.Room, w models.Window) []*models.Room {
	free := make([]*models.Room, 0, len(rooms))
	for _, room := range rooms {
		if IsFree(room, w) {
			free = append(free, room)
		}
	}
	return free
}

// SortByName orders rooms by name using the collation rules of tag.
// Digits inside names compare numerically and case is ignored.
func SortByName(rooms []*models.Room, tag language.Tag) {
	c := collate.New(tag, collate.Numeric, collate.IgnoreCase)
	sort.SliceStable(rooms, func(i, j int) bool {
		return c.CompareString(rooms[i].Name, rooms[j].Name) < 0
	})
}
