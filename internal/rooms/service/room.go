package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/elmaatouquii/Gestion-Hotel/internal/inventory"
	"github.com/elmaatouquii/Gestion-Hotel/internal/query"
	roomserrors "github.com/elmaatouquii/Gestion-Hotel/internal/rooms/errors"
	"github.com/elmaatouquii/Gestion-Hotel/internal/rooms/validator"
	apperrors "github.com/elmaatouquii/Gestion-Hotel/pkg/errors"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/logger"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/model"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/sanitizer"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/validation"
)

// ListQuery narrows and orders the room collection. Search matches the room
// number, type, and status, ignoring case; Status filters exactly.
type ListQuery struct {
	Search string
	Status string
	Sort   query.Sort
}

type RoomService interface {
	List(ctx context.Context, q ListQuery) []model.Room
	Get(ctx context.Context, id string) (model.Room, error)
	Create(ctx context.Context, input *model.RoomInput) (model.Room, string, error)
	Update(ctx context.Context, id string, input *model.RoomInput) (model.Room, string, error)
	PrepareDelete(ctx context.Context, id string) (model.Room, int, error)
	Delete(ctx context.Context, id string) (model.Room, string, error)
}

type roomService struct {
	inv       *inventory.Inventory
	validator *validator.RoomValidator
	log       *logger.Logger
}

func NewRoomService(inv *inventory.Inventory, v *validator.RoomValidator, log *logger.Logger) RoomService {
	return &roomService{
		inv:       inv,
		validator: v,
		log:       log,
	}
}

func (s *roomService) List(_ context.Context, q ListQuery) []model.Room {
	rooms := s.inv.Rooms()

	if q.Search != "" || q.Status != "" {
		filtered := rooms[:0]
		for _, r := range rooms {
			if q.Status != "" && string(r.Status) != q.Status {
				continue
			}
			if !matchesRoom(r, q.Search) {
				continue
			}
			filtered = append(filtered, r)
		}
		rooms = filtered
	}

	if !q.Sort.IsZero() {
		orderRooms(rooms, q.Sort)
	}
	return rooms
}

func matchesRoom(r model.Room, search string) bool {
	return query.ContainsFold(strconv.Itoa(r.Number), search) ||
		query.ContainsFold(r.Type, search) ||
		query.ContainsFold(string(r.Status), search)
}

func orderRooms(rooms []model.Room, s query.Sort) {
	var less func(a, b model.Room) bool
	switch s.Field {
	case "number":
		less = func(a, b model.Room) bool { return a.Number < b.Number }
	case "type":
		less = func(a, b model.Room) bool { return query.LessFold(a.Type, b.Type) }
	case "price":
		less = func(a, b model.Room) bool { return a.Price < b.Price }
	case "status":
		less = func(a, b model.Room) bool { return query.LessFold(string(a.Status), string(b.Status)) }
	default:
		return
	}
	query.Order(rooms, s.Desc, less)
}

func (s *roomService) Get(_ context.Context, id string) (model.Room, error) {
	if id == "" {
		return model.Room{}, apperrors.InvalidInput("Room ID cannot be empty")
	}

	room, ok := s.inv.RoomByID(id)
	if !ok {
		return model.Room{}, apperrors.RoomNotFound(id)
	}
	return room, nil
}

func (s *roomService) Create(ctx context.Context, input *model.RoomInput) (model.Room, string, error) {
	s.sanitize(input)
	if err := s.validate(input); err != nil {
		return model.Room{}, "", err
	}

	room, err := s.inv.CreateRoom(ctx, model.Room{
		Number: input.Number,
		Type:   input.Type,
		Price:  input.Price,
		Status: model.RoomStatus(input.Status),
	})
	warning, err := s.splitSaveWarning(err)
	if err != nil {
		if errors.Is(err, roomserrors.ErrDuplicateNumber) {
			return model.Room{}, "", apperrors.DuplicateRoomNumber(input.Number)
		}
		s.log.Error("Failed to create room", "number", input.Number, "error", err)
		return model.Room{}, "", apperrors.Internal("Failed to create room", err)
	}

	s.log.Info("Room created", "id", room.ID, "number", room.Number)
	return room, warning, nil
}

func (s *roomService) Update(ctx context.Context, id string, input *model.RoomInput) (model.Room, string, error) {
	if id == "" {
		return model.Room{}, "", apperrors.InvalidInput("Room ID cannot be empty")
	}

	s.sanitize(input)
	if err := s.validate(input); err != nil {
		return model.Room{}, "", err
	}

	room, err := s.inv.UpdateRoom(ctx, model.Room{
		ID:     id,
		Number: input.Number,
		Type:   input.Type,
		Price:  input.Price,
		Status: model.RoomStatus(input.Status),
	})
	warning, err := s.splitSaveWarning(err)
	if err != nil {
		switch {
		case errors.Is(err, roomserrors.ErrNotFound):
			return model.Room{}, "", apperrors.RoomNotFound(id)
		case errors.Is(err, roomserrors.ErrDuplicateNumber):
			return model.Room{}, "", apperrors.DuplicateRoomNumber(input.Number)
		}
		s.log.Error("Failed to update room", "id", id, "error", err)
		return model.Room{}, "", apperrors.Internal("Failed to update room", err)
	}

	s.log.Info("Room updated", "id", id, "number", room.Number)
	return room, warning, nil
}

// PrepareDelete looks up the room and counts the reservations that would be
// orphaned, so the caller can describe the deletion before it is confirmed.
func (s *roomService) PrepareDelete(_ context.Context, id string) (model.Room, int, error) {
	if id == "" {
		return model.Room{}, 0, apperrors.InvalidInput("Room ID cannot be empty")
	}

	room, ok := s.inv.RoomByID(id)
	if !ok {
		return model.Room{}, 0, apperrors.RoomNotFound(id)
	}
	return room, len(s.inv.ReservationsForRoom(room.Number)), nil
}

func (s *roomService) Delete(ctx context.Context, id string) (model.Room, string, error) {
	if id == "" {
		return model.Room{}, "", apperrors.InvalidInput("Room ID cannot be empty")
	}

	room, err := s.inv.DeleteRoom(ctx, id)
	warning, err := s.splitSaveWarning(err)
	if err != nil {
		if errors.Is(err, roomserrors.ErrNotFound) {
			return model.Room{}, "", apperrors.RoomNotFound(id)
		}
		s.log.Error("Failed to delete room", "id", id, "error", err)
		return model.Room{}, "", apperrors.Internal("Failed to delete room", err)
	}

	s.log.Info("Room deleted", "id", id, "number", room.Number)
	return room, warning, nil
}

// --- Helpers ---

func (s *roomService) sanitize(in *model.RoomInput) {
	in.Type = sanitizer.TrimAndNormalize(in.Type)
	in.Status = sanitizer.TrimAndNormalize(in.Status)
}

func (s *roomService) validate(in *model.RoomInput) error {
	if err := s.validator.Validate(in); err != nil {
		s.log.Warn("Room validation failed", "error", err)
		var fields validation.FieldErrors
		if errors.As(err, &fields) {
			return apperrors.Validation(fields.ByField())
		}
		return apperrors.InvalidInput(err.Error())
	}
	return nil
}

// splitSaveWarning turns a degraded-durability result into a success with a
// warning: the mutation already applied in memory, so the entity is returned
// and the caller surfaces the persistence problem without rolling back.
func (s *roomService) splitSaveWarning(err error) (string, error) {
	if err == nil || !errors.Is(err, inventory.ErrSaveFailed) {
		return "", err
	}
	s.log.Warn("Room change applied but not persisted", "error", err)
	return apperrors.PersistenceWrite(err).Message, nil
}
