// Package decoder converts rendered timeline widths into reservation durations.
//
// The provider does not publish an end time or a duration for a reservation. Its timeline
// widget draws every booking as an element whose width is proportional to its length, so
// the duration has to be recovered from the width.
package decoder

import (
	"math"
	"time"
)

// PixelsPerHour is how wide one booked hour renders on the provider's timeline
const PixelsPerHour = 58

// DefaultSecondsPerPixel is the calibration for the default provider layout
const DefaultSecondsPerPixel = 3600.0 / PixelsPerHour

// Decoder turns pixel widths into durations using a fixed linear calibration
type Decoder struct {
	SecondsPerPixel float64
}

// New creates a decoder for the given calibration.
// A non-positive value falls back to DefaultSecondsPerPixel.
func New(secondsPerPixel float64) Decoder {
	if secondsPerPixel <= 0 {
		secondsPerPixel = DefaultSecondsPerPixel
	}
	return Decoder{SecondsPerPixel: secondsPerPixel}
}

// DurationSeconds returns the reservation length in whole seconds for a rendered width.
// Rounding is half away from zero. Zero or negative widths are not rejected here.
func (d Decoder) DurationSeconds(widthPx float64) int {
	return int(math.Round(widthPx * d.SecondsPerPixel))
}

// Duration is DurationSeconds as a time.Duration
func (d Decoder) Duration(widthPx float64) time.Duration {
	return time.Duration(d.DurationSeconds(widthPx)) * time.Second
}
