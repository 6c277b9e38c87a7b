package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/elmaatouquii/Gestion-Hotel/internal/inventory"
	"github.com/elmaatouquii/Gestion-Hotel/internal/query"
	reservationserrors "github.com/elmaatouquii/Gestion-Hotel/internal/reservations/errors"
	"github.com/elmaatouquii/Gestion-Hotel/internal/reservations/validator"
	apperrors "github.com/elmaatouquii/Gestion-Hotel/pkg/errors"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/logger"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/model"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/sanitizer"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/validation"
)

const (
	ActivityActive = "active"
	ActivityPast   = "past"
)

// ListQuery narrows and orders the reservation collection. Search matches the
// client name and room number, ignoring case. Activity splits the collection
// relative to today: a reservation stays active through its check-out day.
type ListQuery struct {
	Search   string
	Activity string
	Sort     query.Sort
}

type ReservationService interface {
	List(ctx context.Context, q ListQuery) []model.Reservation
	Get(ctx context.Context, id string) (model.Reservation, error)
	Create(ctx context.Context, input *model.ReservationInput) (model.Reservation, string, error)
	Update(ctx context.Context, id string, input *model.ReservationInput) (model.Reservation, string, error)
	PrepareDelete(ctx context.Context, id string) (model.Reservation, error)
	Delete(ctx context.Context, id string) (model.Reservation, string, error)
	Quote(ctx context.Context, input *model.QuoteInput) (inventory.Quote, error)
}

type reservationService struct {
	inv       *inventory.Inventory
	validator *validator.ReservationValidator
	log       *logger.Logger
}

func NewReservationService(inv *inventory.Inventory, v *validator.ReservationValidator, log *logger.Logger) ReservationService {
	return &reservationService{
		inv:       inv,
		validator: v,
		log:       log,
	}
}

func (s *reservationService) List(_ context.Context, q ListQuery) []model.Reservation {
	reservations := s.inv.Reservations()

	if q.Search != "" || q.Activity != "" {
		today := s.inv.Today()
		filtered := reservations[:0]
		for _, r := range reservations {
			if !matchesActivity(r, q.Activity, today) {
				continue
			}
			if !matchesReservation(r, q.Search) {
				continue
			}
			filtered = append(filtered, r)
		}
		reservations = filtered
	}

	if !q.Sort.IsZero() {
		orderReservations(reservations, q.Sort)
	}
	return reservations
}

func matchesActivity(r model.Reservation, activity string, today model.Date) bool {
	switch activity {
	case ActivityActive:
		return r.ActiveOn(today)
	case ActivityPast:
		return !r.ActiveOn(today)
	default:
		return true
	}
}

func matchesReservation(r model.Reservation, search string) bool {
	return query.ContainsFold(r.ClientName, search) ||
		query.ContainsFold(strconv.Itoa(r.RoomNumber), search)
}

func orderReservations(reservations []model.Reservation, s query.Sort) {
	var less func(a, b model.Reservation) bool
	switch s.Field {
	case "clientName":
		less = func(a, b model.Reservation) bool { return query.LessFold(a.ClientName, b.ClientName) }
	case "roomNumber":
		less = func(a, b model.Reservation) bool { return a.RoomNumber < b.RoomNumber }
	case "checkIn":
		less = func(a, b model.Reservation) bool { return a.CheckIn.Before(b.CheckIn) }
	case "checkOut":
		less = func(a, b model.Reservation) bool { return a.CheckOut.Before(b.CheckOut) }
	case "total":
		less = func(a, b model.Reservation) bool { return a.Total < b.Total }
	default:
		return
	}
	query.Order(reservations, s.Desc, less)
}

func (s *reservationService) Get(_ context.Context, id string) (model.Reservation, error) {
	if id == "" {
		return model.Reservation{}, apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	res, ok := s.inv.ReservationByID(id)
	if !ok {
		return model.Reservation{}, apperrors.ReservationNotFound(id)
	}
	return res, nil
}

func (s *reservationService) Create(ctx context.Context, input *model.ReservationInput) (model.Reservation, string, error) {
	s.sanitize(input)
	checkIn, checkOut, err := s.validate(input)
	if err != nil {
		return model.Reservation{}, "", err
	}

	res, err := s.inv.CreateReservation(ctx, inventory.ReservationDraft{
		ClientName: input.ClientName,
		RoomNumber: input.RoomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	warning, err := s.splitSaveWarning(err)
	if err != nil {
		return model.Reservation{}, "", s.translateWriteError(err, "", input.RoomNumber, "create")
	}

	s.log.Info("Reservation created",
		"id", res.ID,
		"room_number", res.RoomNumber,
		"check_in", res.CheckIn,
		"check_out", res.CheckOut,
	)
	return res, warning, nil
}

func (s *reservationService) Update(ctx context.Context, id string, input *model.ReservationInput) (model.Reservation, string, error) {
	if id == "" {
		return model.Reservation{}, "", apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	s.sanitize(input)
	checkIn, checkOut, err := s.validate(input)
	if err != nil {
		return model.Reservation{}, "", err
	}

	res, err := s.inv.UpdateReservation(ctx, id, inventory.ReservationDraft{
		ClientName: input.ClientName,
		RoomNumber: input.RoomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	warning, err := s.splitSaveWarning(err)
	if err != nil {
		return model.Reservation{}, "", s.translateWriteError(err, id, input.RoomNumber, "update")
	}

	s.log.Info("Reservation updated", "id", id, "room_number", res.RoomNumber)
	return res, warning, nil
}

// PrepareDelete looks up the reservation so the caller can describe the
// deletion before it is confirmed.
func (s *reservationService) PrepareDelete(_ context.Context, id string) (model.Reservation, error) {
	if id == "" {
		return model.Reservation{}, apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	res, ok := s.inv.ReservationByID(id)
	if !ok {
		return model.Reservation{}, apperrors.ReservationNotFound(id)
	}
	return res, nil
}

func (s *reservationService) Delete(ctx context.Context, id string) (model.Reservation, string, error) {
	if id == "" {
		return model.Reservation{}, "", apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	res, err := s.inv.DeleteReservation(ctx, id)
	warning, err := s.splitSaveWarning(err)
	if err != nil {
		if errors.Is(err, reservationserrors.ErrNotFound) {
			return model.Reservation{}, "", apperrors.ReservationNotFound(id)
		}
		s.log.Error("Failed to delete reservation", "id", id, "error", err)
		return model.Reservation{}, "", apperrors.Internal("Failed to delete reservation", err)
	}

	s.log.Info("Reservation deleted", "id", id, "room_number", res.RoomNumber)
	return res, warning, nil
}

// Quote prices a stay without creating anything: nights times the room's
// current nightly rate.
func (s *reservationService) Quote(_ context.Context, input *model.QuoteInput) (inventory.Quote, error) {
	checkIn, checkOut, err := s.validator.ValidateQuote(input)
	if err != nil {
		s.log.Warn("Quote validation failed", "error", err)
		var fields validation.FieldErrors
		if errors.As(err, &fields) {
			return inventory.Quote{}, apperrors.Validation(fields.ByField())
		}
		return inventory.Quote{}, apperrors.InvalidInput(err.Error())
	}

	quote, err := s.inv.Quote(input.RoomNumber, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, reservationserrors.ErrRoomNotFound) {
			return inventory.Quote{}, apperrors.RoomNumberNotFound(input.RoomNumber)
		}
		return inventory.Quote{}, apperrors.Internal("Failed to quote reservation", err)
	}
	return quote, nil
}

// --- Helpers ---

func (s *reservationService) sanitize(in *model.ReservationInput) {
	in.ClientName = sanitizer.NormalizeName(in.ClientName)
}

func (s *reservationService) validate(in *model.ReservationInput) (model.Date, model.Date, error) {
	checkIn, checkOut, err := s.validator.Validate(in)
	if err != nil {
		s.log.Warn("Reservation validation failed", "error", err)
		var fields validation.FieldErrors
		if errors.As(err, &fields) {
			return model.Date{}, model.Date{}, apperrors.Validation(fields.ByField())
		}
		return model.Date{}, model.Date{}, apperrors.InvalidInput(err.Error())
	}
	return checkIn, checkOut, nil
}

func (s *reservationService) translateWriteError(err error, id string, roomNumber int, op string) error {
	var conflict *reservationserrors.ConflictError
	switch {
	case errors.Is(err, reservationserrors.ErrNotFound):
		return apperrors.ReservationNotFound(id)
	case errors.Is(err, reservationserrors.ErrRoomNotFound):
		return apperrors.RoomNumberNotFound(roomNumber)
	case errors.As(err, &conflict):
		s.log.Warn("Booking conflict",
			"room_number", roomNumber,
			"conflicting_id", conflict.Conflicting.ID,
		)
		return apperrors.BookingConflict(conflict.Conflicting)
	}
	s.log.Error("Failed to "+op+" reservation", "id", id, "error", err)
	return apperrors.Internal("Failed to "+op+" reservation", err)
}

// splitSaveWarning turns a degraded-durability result into a success with a
// warning: the mutation already applied in memory, so the entity is returned
// and the caller surfaces the persistence problem without rolling back.
func (s *reservationService) splitSaveWarning(err error) (string, error) {
	if err == nil || !errors.Is(err, inventory.ErrSaveFailed) {
		return "", err
	}
	s.log.Warn("Reservation change applied but not persisted", "error", err)
	return apperrors.PersistenceWrite(err).Message, nil
}
