package hotel

import (
	"fmt"
	"strings"
	"time"

	"hotel-reservation-core/internal/domain/pricing"
	"hotel-reservation-core/internal/domain/reservation"
	"hotel-reservation-core/internal/pkg/errs"
)

var (
	ErrEmptyHotelName        = errs.New("hotel name cannot be empty")
	ErrInvalidBasePrice      = errs.New("base price must be at least 100.0")
	ErrCapacityExceeded      = errs.New("hotel cannot have more than 50 rooms")
	ErrRoomNotFound          = errs.New("room not found")
	ErrHasActiveReservations = errs.New("operation blocked by active reservations")
	ErrInvalidDateRange      = errs.New("invalid booking date range")
	ErrNoRoomAvailable       = errs.New("no room of the requested category is available")
	ErrDuplicateReservation  = errs.New("guest already has a reservation starting that day")
	ErrReservationNotFound   = errs.New("reservation not found")
)

const (
	MaxRooms     = 50
	MinBasePrice = 100.0
)

// Hotel is the aggregate root for one property: the ordered room catalog and
// the reservation ledger. Room insertion order is significant, it is the
// first-fit search order for bookings. The aggregate supplies no locking;
// hosts embedding it concurrently must serialize access per hotel.
type Hotel struct {
	name         string
	basePrice    float64
	rooms        []*Room
	reservations []*reservation.Reservation
	roomSeq      int
	createdAt    time.Time
}

func NewHotel(name string, basePrice float64, now time.Time) (*Hotel, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyHotelName
	}
	if basePrice < MinBasePrice {
		return nil, ErrInvalidBasePrice
	}
	return &Hotel{
		name:      trimmed,
		basePrice: basePrice,
		createdAt: now,
	}, nil
}

func (h *Hotel) Name() string         { return h.name }
func (h *Hotel) BasePrice() float64   { return h.basePrice }
func (h *Hotel) RoomCount() int       { return len(h.rooms) }
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }

// Rooms returns the catalog in insertion order (a copy).
func (h *Hotel) Rooms() []*Room {
	out := make([]*Room, len(h.rooms))
	copy(out, h.rooms)
	return out
}

// Reservations returns the ledger (a copy).
func (h *Hotel) Reservations() []*reservation.Reservation {
	out := make([]*reservation.Reservation, len(h.reservations))
	copy(out, h.reservations)
	return out
}

func (h *Hotel) HasReservations() bool {
	return len(h.reservations) > 0
}

// Rename changes the hotel name. Existing room names keep the old prefix;
// room names are assigned once and never recomputed, so references held
// elsewhere stay valid.
func (h *Hotel) Rename(newName string) error {
	trimmed := strings.TrimSpace(newName)
	if trimmed == "" {
		return ErrEmptyHotelName
	}
	h.name = trimmed
	return nil
}

// AddRoom appends a room of the given category, naming it from the hotel
// name and a monotonically increasing sequence number. The sequence never
// resets, so a removed room's name is never reused.
func (h *Hotel) AddRoom(category pricing.Category) (*Room, error) {
	if len(h.rooms) >= MaxRooms {
		return nil, ErrCapacityExceeded
	}
	h.roomSeq++
	name := fmt.Sprintf("%s%02d", h.name, h.roomSeq)
	room := newRoom(name, category, h.basePrice)
	h.rooms = append(h.rooms, room)
	return room, nil
}

// RemoveRoom deletes a room that currently has no reservations. The room
// count decrements but the name sequence does not.
func (h *Hotel) RemoveRoom(name string) error {
	for i, room := range h.rooms {
		if room.name != name {
			continue
		}
		if len(room.reservations) > 0 {
			return ErrHasActiveReservations
		}
		h.rooms = append(h.rooms[:i], h.rooms[i+1:]...)
		return nil
	}
	return ErrRoomNotFound
}

// SetBasePrice is only legal while the ledger is empty; on success every
// room's nightly rate is rederived from its category multiplier.
func (h *Hotel) SetBasePrice(price float64) error {
	if price < MinBasePrice {
		return ErrInvalidBasePrice
	}
	if h.HasReservations() {
		return ErrHasActiveReservations
	}
	h.basePrice = price
	for _, room := range h.rooms {
		room.recomputeRate(price)
	}
	return nil
}

// FindRoom looks a room up by name.
func (h *Hotel) FindRoom(name string) (*Room, error) {
	for _, room := range h.rooms {
		if room.name == name {
			return room, nil
		}
	}
	return nil, ErrRoomNotFound
}

// FindReservation looks a reservation up by its (guest, check-in) key.
func (h *Hotel) FindReservation(guestName string, checkIn time.Time) (*reservation.Reservation, error) {
	for _, res := range h.reservations {
		if res.Matches(guestName, checkIn) {
			return res, nil
		}
	}
	return nil, ErrReservationNotFound
}
