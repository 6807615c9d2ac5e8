package models

import (
	"time"
)

// SecondsPerDay is the upper bound for any time of day expressed in seconds
const SecondsPerDay = 24 * 60 * 60

// Window is the time span a caller wants a room for, in seconds since local midnight
type Window struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// NewWindow builds a window from two local times.
// An end on a later day than start is clamped to the end of the start day.
func NewWindow(start, end time.Time) Window {
	w := Window{
		Start: SecondsSinceMidnight(start),
		End:   SecondsSinceMidnight(end),
	}

	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if end.After(start) && (ey != sy || em != sm || ed != sd) {
		w.End = SecondsPerDay
	}

	return w
}

// SecondsSinceMidnight returns the number of whole seconds elapsed since midnight of t's day
func SecondsSinceMidnight(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
