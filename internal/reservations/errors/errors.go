package errors

import (
	"errors"
	"fmt"

	"github.com/elmaatouquii/Gestion-Hotel/pkg/model"
)

var (
	ErrNotFound = errors.New("reservation not found")

	ErrRoomNotFound = errors.New("referenced room not found")
)

// ConflictError reports a double booking and carries the reservation that
// already holds the overlapping date range.
type ConflictError struct {
	Conflicting model.Reservation
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room %d is already booked from %s to %s",
		e.Conflicting.RoomNumber, e.Conflicting.CheckIn, e.Conflicting.CheckOut)
}

func AsConflict(err error) (*ConflictError, bool) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict, true
	}
	return nil, false
}
