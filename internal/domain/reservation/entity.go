package reservation

import (
	"errors"
	"time"

	"hotel-reservation-core/internal/domain/discount"
	"hotel-reservation-core/internal/domain/pricing"

	"github.com/google/uuid"
)

var ErrBreakdownMismatch = errors.New("nightly breakdown length must equal the number of nights")

// Reservation is immutable once created except for removal. Its domain
// identity within a hotel is the (guest name, check-in date) pair; the uuid
// exists for external references only. Reservations are constructed only by
// the hotel booking engine, never ad hoc.
type Reservation struct {
	id           uuid.UUID
	guestName    GuestName
	stay         StayPeriod
	roomName     string
	category     pricing.Category
	discountCode discount.Code
	breakdown    []float64
	totalPrice   float64
	createdAt    time.Time
}

func NewReservation(
	guestName GuestName,
	stay StayPeriod,
	roomName string,
	category pricing.Category,
	discountCode discount.Code,
	breakdown []float64,
	totalPrice float64,
	now time.Time,
) (*Reservation, error) {
	if len(breakdown) != stay.Nights() {
		return nil, ErrBreakdownMismatch
	}

	nights := make([]float64, len(breakdown))
	copy(nights, breakdown)

	return &Reservation{
		id:           uuid.New(),
		guestName:    guestName,
		stay:         stay,
		roomName:     roomName,
		category:     category,
		discountCode: discountCode,
		breakdown:    nights,
		totalPrice:   totalPrice,
		createdAt:    now,
	}, nil
}

// Matches tests the (guest name, check-in date) lookup key used for
// cancellation and reservation info queries.
func (r *Reservation) Matches(guestName string, checkIn time.Time) bool {
	return r.guestName.String() == guestName && r.stay.CheckIn().Equal(NormalizeDate(checkIn))
}

func (r *Reservation) ID() uuid.UUID               { return r.id }
func (r *Reservation) GuestName() GuestName        { return r.guestName }
func (r *Reservation) Stay() StayPeriod            { return r.stay }
func (r *Reservation) RoomName() string            { return r.roomName }
func (r *Reservation) Category() pricing.Category  { return r.category }
func (r *Reservation) DiscountCode() discount.Code { return r.discountCode }
func (r *Reservation) TotalPrice() float64         { return r.totalPrice }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }

// NightlyBreakdown returns a copy; one entry per billed night.
func (r *Reservation) NightlyBreakdown() []float64 {
	nights := make([]float64, len(r.breakdown))
	copy(nights, r.breakdown)
	return nights
}
