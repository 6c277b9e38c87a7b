// Package inventory owns the in-memory domain model: the room and
// reservation collections, the invariants linking them, and snapshot
// persistence. All mutation goes through one Inventory instance; there are
// no package-level collections.
package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	reservationserrors "github.com/elmaatouquii/Gestion-Hotel/internal/reservations/errors"
	roomserrors "github.com/elmaatouquii/Gestion-Hotel/internal/rooms/errors"
	"github.com/elmaatouquii/Gestion-Hotel/internal/storage"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/ids"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/logger"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/model"
)

const (
	SlotRooms        = "rooms"
	SlotReservations = "reservations"

	schemaVersion = 1
)

// ErrSaveFailed marks a mutation that applied in memory but could not be
// written durably. The returned entity is valid; only durability degraded.
var ErrSaveFailed = errors.New("snapshot write failed")

// snapshot is the slot envelope. The original storage format had no version
// field; one is reserved here so future schema changes can be detected.
type snapshot struct {
	SchemaVersion int             `json:"schema_version"`
	Records       json.RawMessage `json:"records"`
}

type Inventory struct {
	mu    sync.RWMutex
	store storage.Store
	log   *logger.Logger
	now   func() time.Time

	rooms        []model.Room
	reservations []model.Reservation
}

type Option func(*Inventory)

// WithClock fixes the notion of "today" for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(inv *Inventory) {
		inv.now = now
	}
}

func New(store storage.Store, log *logger.Logger, opts ...Option) *Inventory {
	inv := &Inventory{
		store: store,
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

func (inv *Inventory) Today() model.Date {
	return model.DateOf(inv.now())
}

// Load reads both slots. Missing or unparsable slots fall back to empty
// collections: a corrupt snapshot must never prevent startup. Backend read
// errors do propagate.
func (inv *Inventory) Load(ctx context.Context) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if err := inv.loadSlot(ctx, SlotRooms, &inv.rooms); err != nil {
		return err
	}
	if err := inv.loadSlot(ctx, SlotReservations, &inv.reservations); err != nil {
		return err
	}

	inv.log.Info("Inventory loaded",
		"rooms", len(inv.rooms),
		"reservations", len(inv.reservations),
	)
	return nil
}

func (inv *Inventory) loadSlot(ctx context.Context, key string, out any) error {
	data, ok, err := inv.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("load slot %s: %w", key, err)
	}
	if !ok {
		return nil
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		inv.log.Warn("Slot is corrupt, starting from empty collection", "slot", key, "error", err)
		return nil
	}
	if err := json.Unmarshal(snap.Records, out); err != nil {
		inv.log.Warn("Slot records are corrupt, starting from empty collection", "slot", key, "error", err)
		return nil
	}
	return nil
}

// saveLocked persists both collections. Callers hold the write lock.
func (inv *Inventory) saveLocked(ctx context.Context) error {
	if err := inv.saveSlot(ctx, SlotRooms, inv.rooms); err != nil {
		return err
	}
	return inv.saveSlot(ctx, SlotReservations, inv.reservations)
}

func (inv *Inventory) saveSlot(ctx context.Context, key string, records any) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal slot %s: %w", key, err)
	}
	data, err := json.Marshal(snapshot{SchemaVersion: schemaVersion, Records: raw})
	if err != nil {
		return fmt.Errorf("marshal slot %s: %w", key, err)
	}
	return inv.store.Put(ctx, key, data)
}

func (inv *Inventory) commit(ctx context.Context) error {
	if err := inv.saveLocked(ctx); err != nil {
		inv.log.Error("Durable write failed, in-memory state remains authoritative", "error", err)
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return nil
}

// ---------------------------------------------------------------- read side

func (inv *Inventory) Rooms() []model.Room {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return append([]model.Room(nil), inv.rooms...)
}

func (inv *Inventory) Reservations() []model.Reservation {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return append([]model.Reservation(nil), inv.reservations...)
}

func (inv *Inventory) RoomByID(id string) (model.Room, bool) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	if i := inv.roomIndexByID(id); i >= 0 {
		return inv.rooms[i], true
	}
	return model.Room{}, false
}

func (inv *Inventory) RoomByNumber(number int) (model.Room, bool) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	if i := inv.roomIndexByNumber(number); i >= 0 {
		return inv.rooms[i], true
	}
	return model.Room{}, false
}

func (inv *Inventory) ReservationByID(id string) (model.Reservation, bool) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	if i := inv.reservationIndexByID(id); i >= 0 {
		return inv.reservations[i], true
	}
	return model.Reservation{}, false
}

// ReservationsForRoom returns the reservations referencing a room number,
// including orphaned ones whose room was deleted.
func (inv *Inventory) ReservationsForRoom(number int) []model.Reservation {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	var out []model.Reservation
	for _, r := range inv.reservations {
		if r.RoomNumber == number {
			out = append(out, r)
		}
	}
	return out
}

func (inv *Inventory) roomIndexByID(id string) int {
	for i, r := range inv.rooms {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (inv *Inventory) roomIndexByNumber(number int) int {
	for i, r := range inv.rooms {
		if r.Number == number {
			return i
		}
	}
	return -1
}

func (inv *Inventory) reservationIndexByID(id string) int {
	for i, r := range inv.reservations {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// ------------------------------------------------------------- room writes

// CreateRoom appends a room with a fresh ID. The room number must be unique
// across the collection.
func (inv *Inventory) CreateRoom(ctx context.Context, room model.Room) (model.Room, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if inv.roomIndexByNumber(room.Number) >= 0 {
		return model.Room{}, roomserrors.ErrDuplicateNumber
	}

	room.ID = ids.New()
	if room.Status == "" {
		room.Status = model.RoomAvailable
	}
	inv.rooms = append(inv.rooms, room)

	return room, inv.commit(ctx)
}

// UpdateRoom replaces every mutable field of the room addressed by room.ID.
func (inv *Inventory) UpdateRoom(ctx context.Context, room model.Room) (model.Room, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	i := inv.roomIndexByID(room.ID)
	if i < 0 {
		return model.Room{}, roomserrors.ErrNotFound
	}

	if j := inv.roomIndexByNumber(room.Number); j >= 0 && j != i {
		return model.Room{}, roomserrors.ErrDuplicateNumber
	}

	if room.Status == "" {
		room.Status = inv.rooms[i].Status
	}
	inv.rooms[i] = room

	return room, inv.commit(ctx)
}

// DeleteRoom removes the room unconditionally. Reservations referencing its
// number are left in place, orphaned by design.
func (inv *Inventory) DeleteRoom(ctx context.Context, id string) (model.Room, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	i := inv.roomIndexByID(id)
	if i < 0 {
		return model.Room{}, roomserrors.ErrNotFound
	}

	removed := inv.rooms[i]
	inv.rooms = append(inv.rooms[:i], inv.rooms[i+1:]...)

	return removed, inv.commit(ctx)
}

// ------------------------------------------------------ reservation writes

// ReservationDraft carries the validated fields of a create/update request.
// Total is always derived, never accepted from the caller.
type ReservationDraft struct {
	ClientName string
	RoomNumber int
	CheckIn    model.Date
	CheckOut   model.Date
}

func (inv *Inventory) findConflictLocked(draft ReservationDraft, excludeID string) *model.Reservation {
	for _, r := range inv.reservations {
		if r.ID == excludeID || r.RoomNumber != draft.RoomNumber {
			continue
		}
		if r.Overlaps(draft.CheckIn, draft.CheckOut) {
			conflicting := r
			return &conflicting
		}
	}
	return nil
}

// CreateReservation books a room: conflict-checked with half-open interval
// semantics, priced from the room's current nightly rate, and marking the
// room Occupied.
func (inv *Inventory) CreateReservation(ctx context.Context, draft ReservationDraft) (model.Reservation, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	roomIdx := inv.roomIndexByNumber(draft.RoomNumber)
	if roomIdx < 0 {
		return model.Reservation{}, reservationserrors.ErrRoomNotFound
	}

	if conflict := inv.findConflictLocked(draft, ""); conflict != nil {
		return model.Reservation{}, &reservationserrors.ConflictError{Conflicting: *conflict}
	}

	nights := model.NightsBetween(draft.CheckIn, draft.CheckOut)
	res := model.Reservation{
		ID:         ids.New(),
		ClientName: draft.ClientName,
		RoomNumber: draft.RoomNumber,
		CheckIn:    draft.CheckIn,
		CheckOut:   draft.CheckOut,
		Total:      float64(nights) * inv.rooms[roomIdx].Price,
	}
	inv.reservations = append(inv.reservations, res)
	inv.rooms[roomIdx].Status = model.RoomOccupied

	return res, inv.commit(ctx)
}

// UpdateReservation re-validates and re-prices the booking. The reservation
// being edited is excluded from the conflict search. When the booking moves
// to a different room, the vacated room is released and the new one marked
// Occupied.
func (inv *Inventory) UpdateReservation(ctx context.Context, id string, draft ReservationDraft) (model.Reservation, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	i := inv.reservationIndexByID(id)
	if i < 0 {
		return model.Reservation{}, reservationserrors.ErrNotFound
	}
	prior := inv.reservations[i]

	roomIdx := inv.roomIndexByNumber(draft.RoomNumber)
	if roomIdx < 0 {
		return model.Reservation{}, reservationserrors.ErrRoomNotFound
	}

	if conflict := inv.findConflictLocked(draft, id); conflict != nil {
		return model.Reservation{}, &reservationserrors.ConflictError{Conflicting: *conflict}
	}

	nights := model.NightsBetween(draft.CheckIn, draft.CheckOut)
	updated := model.Reservation{
		ID:         id,
		ClientName: draft.ClientName,
		RoomNumber: draft.RoomNumber,
		CheckIn:    draft.CheckIn,
		CheckOut:   draft.CheckOut,
		Total:      float64(nights) * inv.rooms[roomIdx].Price,
	}
	inv.reservations[i] = updated

	if prior.RoomNumber != draft.RoomNumber {
		inv.releaseRoomLocked(prior.RoomNumber)
	}
	inv.rooms[roomIdx].Status = model.RoomOccupied

	return updated, inv.commit(ctx)
}

// DeleteReservation removes the booking and releases its room if no other
// reservation still covers today.
func (inv *Inventory) DeleteReservation(ctx context.Context, id string) (model.Reservation, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	i := inv.reservationIndexByID(id)
	if i < 0 {
		return model.Reservation{}, reservationserrors.ErrNotFound
	}

	removed := inv.reservations[i]
	inv.reservations = append(inv.reservations[:i], inv.reservations[i+1:]...)
	inv.releaseRoomLocked(removed.RoomNumber)

	return removed, inv.commit(ctx)
}

// releaseRoomLocked recomputes a vacated room's status from the remaining
// reservations: the room goes back to Available only when no stay covers
// today. This closes the original behavior's gap where deleting one of two
// overlapping bookings freed a room that was still occupied.
func (inv *Inventory) releaseRoomLocked(number int) {
	roomIdx := inv.roomIndexByNumber(number)
	if roomIdx < 0 {
		return
	}

	today := model.DateOf(inv.now())
	for _, r := range inv.reservations {
		if r.RoomNumber == number && r.CoversDay(today) {
			inv.rooms[roomIdx].Status = model.RoomOccupied
			return
		}
	}
	inv.rooms[roomIdx].Status = model.RoomAvailable
}

// ------------------------------------------------------------ derived data

// Quote is the pre-commit price preview for a room and date range.
type Quote struct {
	RoomNumber    int     `json:"roomNumber"`
	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"pricePerNight"`
	Total         float64 `json:"total"`
}

func (inv *Inventory) Quote(roomNumber int, checkIn, checkOut model.Date) (Quote, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	i := inv.roomIndexByNumber(roomNumber)
	if i < 0 {
		return Quote{}, reservationserrors.ErrRoomNotFound
	}

	nights := model.NightsBetween(checkIn, checkOut)
	price := inv.rooms[i].Price
	return Quote{
		RoomNumber:    roomNumber,
		Nights:        nights,
		PricePerNight: price,
		Total:         float64(nights) * price,
	}, nil
}
