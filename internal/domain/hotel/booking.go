package hotel

import (
	"time"

	"hotel-reservation-core/internal/domain/discount"
	"hotel-reservation-core/internal/domain/pricing"
	"hotel-reservation-core/internal/domain/reservation"
	"hotel-reservation-core/internal/pkg/errs"
)

// Book validates the date range, picks the earliest-created available room of
// the requested category, prices every night of [checkIn, checkOut) through
// the calendar table, applies the discount rule, and commits the reservation
// to the ledger and the room cache. On any failure no state changes occur.
//
// Check-in on the 31st and check-out on the 1st are unbookable edge days.
func (h *Hotel) Book(
	guestName reservation.GuestName,
	checkIn, checkOut time.Time,
	category pricing.Category,
	code discount.Code,
	now time.Time,
) (*reservation.Reservation, error) {
	stay, err := reservation.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}
	if stay.CheckIn().Day() == 31 || stay.CheckOut().Day() == 1 {
		return nil, ErrInvalidDateRange
	}

	for _, existing := range h.reservations {
		if existing.Matches(guestName.String(), stay.CheckIn()) {
			return nil, ErrDuplicateReservation
		}
	}

	room := h.firstAvailable(category, stay)
	if room == nil {
		return nil, ErrNoRoomAvailable
	}

	breakdown := pricing.Breakdown(room.NightlyRate(), stay.Dates())
	adjusted, total := discount.Apply(code, breakdown, stay.CheckIn().Day(), stay.CheckOut().Day())

	res, err := reservation.NewReservation(
		guestName,
		stay,
		room.Name(),
		category,
		code,
		adjusted,
		total,
		now,
	)
	if err != nil {
		return nil, err
	}

	h.reservations = append(h.reservations, res)
	room.attach(res)
	return res, nil
}

// firstAvailable scans the catalog in insertion order; selection is
// deterministic, not "any available room".
func (h *Hotel) firstAvailable(category pricing.Category, stay reservation.StayPeriod) *Room {
	for _, room := range h.rooms {
		if room.category == category && room.IsAvailable(stay) {
			return room
		}
	}
	return nil
}

// Cancel removes the reservation identified by the (guest, check-in) key
// from the ledger and the room cache in the same operation.
func (h *Hotel) Cancel(guestName string, checkIn time.Time) error {
	day := reservation.NormalizeDate(checkIn)
	for i, res := range h.reservations {
		if !res.Matches(guestName, day) {
			continue
		}
		h.reservations = append(h.reservations[:i], h.reservations[i+1:]...)
		if room, err := h.FindRoom(res.RoomName()); err == nil {
			room.detach(res)
		}
		return nil
	}
	return ErrReservationNotFound
}
