package model

// Inputs are the raw shapes the presentation layer submits. Dates arrive as
// strings so the validators can report malformed values as field errors
// instead of decode failures. Allowed room categories are configured, so
// membership is checked by the validator rather than a struct tag.

type RoomInput struct {
	Number int     `json:"number" validate:"required,min=1"`
	Type   string  `json:"type" validate:"required"`
	Price  float64 `json:"price" validate:"required,gt=0"`
	Status string  `json:"status" validate:"omitempty,oneof=Available Occupied"`
}

type ReservationInput struct {
	ClientName string `json:"clientName" validate:"required,min=2"`
	RoomNumber int    `json:"roomNumber" validate:"required,min=1"`
	CheckIn    string `json:"checkIn" validate:"required"`
	CheckOut   string `json:"checkOut" validate:"required"`
}

// QuoteInput asks for a price preview before committing a reservation.
type QuoteInput struct {
	RoomNumber int    `json:"roomNumber" validate:"required,min=1"`
	CheckIn    string `json:"checkIn" validate:"required"`
	CheckOut   string `json:"checkOut" validate:"required"`
}
