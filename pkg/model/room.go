package model

type RoomStatus string

const (
	RoomAvailable RoomStatus = "Available"
	RoomOccupied  RoomStatus = "Occupied"
)

func (s RoomStatus) Valid() bool {
	return s == RoomAvailable || s == RoomOccupied
}

// Room is a bookable unit of inventory. Number is the human-facing identity
// reservations refer to; ID is the immutable record identity.
type Room struct {
	ID     string     `json:"id"`
	Number int        `json:"number"`
	Type   string     `json:"type"`
	Price  float64    `json:"price"`
	Status RoomStatus `json:"status"`
}
