// Package dashboard derives the operational summary shown on the tool's
// landing view: occupancy, booking activity, and booked revenue.
package dashboard

import (
	"context"

	"github.com/elmaatouquii/Gestion-Hotel/internal/inventory"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/logger"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/model"
)

// Summary aggregates both collections. Revenue is the sum of the stored
// reservation totals, so it reflects the prices at booking time.
type Summary struct {
	TotalRooms         int     `json:"totalRooms"`
	AvailableRooms     int     `json:"availableRooms"`
	OccupiedRooms      int     `json:"occupiedRooms"`
	OccupancyRate      float64 `json:"occupancyRate"`
	TotalReservations  int     `json:"totalReservations"`
	ActiveReservations int     `json:"activeReservations"`
	TotalBookedRevenue float64 `json:"totalBookedRevenue"`
}

type Service struct {
	inv *inventory.Inventory
	log *logger.Logger
}

func NewService(inv *inventory.Inventory, log *logger.Logger) *Service {
	return &Service{inv: inv, log: log}
}

func (s *Service) Summary(_ context.Context) Summary {
	rooms := s.inv.Rooms()
	reservations := s.inv.Reservations()
	today := s.inv.Today()

	var out Summary
	out.TotalRooms = len(rooms)
	for _, r := range rooms {
		switch r.Status {
		case model.RoomOccupied:
			out.OccupiedRooms++
		default:
			out.AvailableRooms++
		}
	}
	if out.TotalRooms > 0 {
		out.OccupancyRate = float64(out.OccupiedRooms) / float64(out.TotalRooms)
	}

	out.TotalReservations = len(reservations)
	for _, r := range reservations {
		if r.ActiveOn(today) {
			out.ActiveReservations++
		}
		out.TotalBookedRevenue += r.Total
	}
	return out
}
