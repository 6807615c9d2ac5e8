package models

// Room represents a bookable meeting room as listed on the provider's timeline
type Room struct {
	Name         string        `json:"name"`
	Floor        int           `json:"floor"`
	Size         int           `json:"size"` // seat capacity
	Reservations []Reservation `json:"reservations,omitempty"`
}

// AddReservation attaches a reservation to the room
func (r *Room) AddReservation(reservation Reservation) {
	r.Reservations = append(r.Reservations, reservation)
}

// Reservation is a booked interval [Start, End) in seconds since local midnight
type Reservation struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Duration returns the length of the reservation in seconds
func (r Reservation) Duration() int {
	return r.End - r.Start
}
