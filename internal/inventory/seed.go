package inventory

import (
	"context"

	"github.com/elmaatouquii/Gestion-Hotel/pkg/ids"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/model"
)

// EnsureSeed bootstraps a fixed demo set the first time the tool starts with
// nothing persisted. It is a one-time bootstrap: as soon as either
// collection has records, nothing is seeded.
func (inv *Inventory) EnsureSeed(ctx context.Context) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if len(inv.rooms) > 0 || len(inv.reservations) > 0 {
		return nil
	}

	today := model.DateOf(inv.now())

	inv.rooms = []model.Room{
		{ID: ids.New(), Number: 101, Type: "Simple", Price: 450, Status: model.RoomAvailable},
		{ID: ids.New(), Number: 102, Type: "Double", Price: 700, Status: model.RoomAvailable},
		{ID: ids.New(), Number: 103, Type: "Double", Price: 700, Status: model.RoomAvailable},
		{ID: ids.New(), Number: 201, Type: "Suite", Price: 1200, Status: model.RoomAvailable},
		{ID: ids.New(), Number: 202, Type: "Simple", Price: 450, Status: model.RoomAvailable},
	}

	demoStays := []ReservationDraft{
		{
			ClientName: "Amina El Fassi",
			RoomNumber: 101,
			CheckIn:    today,
			CheckOut:   today.AddDays(3),
		},
		{
			ClientName: "Youssef Benali",
			RoomNumber: 201,
			CheckIn:    today.AddDays(5),
			CheckOut:   today.AddDays(8),
		},
	}

	for _, draft := range demoStays {
		roomIdx := inv.roomIndexByNumber(draft.RoomNumber)
		nights := model.NightsBetween(draft.CheckIn, draft.CheckOut)
		inv.reservations = append(inv.reservations, model.Reservation{
			ID:         ids.New(),
			ClientName: draft.ClientName,
			RoomNumber: draft.RoomNumber,
			CheckIn:    draft.CheckIn,
			CheckOut:   draft.CheckOut,
			Total:      float64(nights) * inv.rooms[roomIdx].Price,
		})
		inv.rooms[roomIdx].Status = model.RoomOccupied
	}

	inv.log.Info("Seeded demo inventory",
		"rooms", len(inv.rooms),
		"reservations", len(inv.reservations),
	)
	return inv.commit(ctx)
}
