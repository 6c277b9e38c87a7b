package main

import (
	"context"

	"github.com/elmaatouquii/Gestion-Hotel/internal/dashboard"
	"github.com/elmaatouquii/Gestion-Hotel/internal/inventory"
	reservationshandler "github.com/elmaatouquii/Gestion-Hotel/internal/reservations/handler"
	reservationsservice "github.com/elmaatouquii/Gestion-Hotel/internal/reservations/service"
	reservationsvalidator "github.com/elmaatouquii/Gestion-Hotel/internal/reservations/validator"
	roomshandler "github.com/elmaatouquii/Gestion-Hotel/internal/rooms/handler"
	roomsservice "github.com/elmaatouquii/Gestion-Hotel/internal/rooms/service"
	roomsvalidator "github.com/elmaatouquii/Gestion-Hotel/internal/rooms/validator"
	"github.com/elmaatouquii/Gestion-Hotel/internal/storage"
	"github.com/elmaatouquii/Gestion-Hotel/internal/system"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/app"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/config"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/confirm"
)

const ServiceName = "gestion-hotel"

func main() {
	cfg := config.Load(ServiceName)
	ctx := context.Background()

	cfg.Log.Info("Starting Gestion Hotel server")

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to open storage", "driver", cfg.StoreDriver, "error", err)
	}

	inv := inventory.New(store, cfg.Log)
	if err := inv.Load(ctx); err != nil {
		cfg.Log.Fatal("Failed to load inventory", "error", err)
	}
	if cfg.SeedDemoData {
		if err := inv.EnsureSeed(ctx); err != nil {
			cfg.Log.Error("Failed to seed demo data", "error", err)
		}
	}

	confirms := confirm.NewRegistry()

	roomService := roomsservice.NewRoomService(
		inv,
		roomsvalidator.NewRoomValidator(cfg.RoomTypes, cfg.Log),
		cfg.Log,
	)
	reservationService := reservationsservice.NewReservationService(
		inv,
		reservationsvalidator.NewReservationValidator(cfg.Log),
		cfg.Log,
	)

	serverApp := app.NewApplication(cfg, store)
	serverApp.SetHandlers(
		system.NewHandler(store, confirms, cfg.Log),
		roomshandler.NewRoomHandler(roomService, confirms, cfg.Log),
		reservationshandler.NewReservationHandler(reservationService, confirms, cfg.Log),
		dashboard.NewHandler(dashboard.NewService(inv, cfg.Log)),
	)
	serverApp.Run()
}
