package model

// Reservation references its room by number, not by ID: rooms may be deleted
// independently, leaving the reservation orphaned rather than cascaded.
type Reservation struct {
	ID         string  `json:"id"`
	ClientName string  `json:"clientName"`
	RoomNumber int     `json:"roomNumber"`
	CheckIn    Date    `json:"checkIn"`
	CheckOut   Date    `json:"checkOut"`
	Total      float64 `json:"total"`
}

// Overlaps reports whether the reservation's stay intersects [checkIn,
// checkOut). Intervals are half-open: a checkout and a check-in on the same
// day do not collide.
func (r Reservation) Overlaps(checkIn, checkOut Date) bool {
	return r.CheckIn.Before(checkOut) && checkIn.Before(r.CheckOut)
}

// ActiveOn reports whether the reservation is still current on the given day.
// A reservation ending today counts as active.
func (r Reservation) ActiveOn(day Date) bool {
	return !r.CheckOut.Before(day)
}

// CoversDay reports whether the stay itself includes the given day,
// half-open: the checkout day is not covered.
func (r Reservation) CoversDay(day Date) bool {
	return !day.Before(r.CheckIn) && day.Before(r.CheckOut)
}

func (r Reservation) Nights() int {
	return NightsBetween(r.CheckIn, r.CheckOut)
}
