package hotel

import (
	"time"

	"hotel-reservation-core/internal/domain/pricing"
	"hotel-reservation-core/internal/domain/reservation"
)

// Room belongs to exactly one hotel. Its reservation list is a cached view
// of the hotel ledger filtered by room; the ledger stays the source of truth
// and the cache is updated in the same operation as every ledger mutation.
type Room struct {
	name         string
	category     pricing.Category
	nightlyRate  float64
	reservations []*reservation.Reservation
}

func newRoom(name string, category pricing.Category, basePrice float64) *Room {
	return &Room{
		name:        name,
		category:    category,
		nightlyRate: category.NightlyRate(basePrice),
	}
}

func (r *Room) Name() string               { return r.name }
func (r *Room) Category() pricing.Category { return r.category }
func (r *Room) NightlyRate() float64       { return r.nightlyRate }

// Reservations returns a copy of the cached view.
func (r *Room) Reservations() []*reservation.Reservation {
	out := make([]*reservation.Reservation, len(r.reservations))
	copy(out, r.reservations)
	return out
}

func (r *Room) ReservationCount() int {
	return len(r.reservations)
}

// IsAvailable reports whether no existing reservation interval intersects
// the candidate stay, using the uniform half-open overlap test.
func (r *Room) IsAvailable(stay reservation.StayPeriod) bool {
	for _, res := range r.reservations {
		if res.Stay().Overlaps(stay) {
			return false
		}
	}
	return true
}

// IsAvailableOn is the degenerate single-night query [date, date+1).
func (r *Room) IsAvailableOn(date time.Time) bool {
	day := reservation.NormalizeDate(date)
	night, err := reservation.NewStayPeriod(day, day.AddDate(0, 0, 1))
	if err != nil {
		return false
	}
	return r.IsAvailable(night)
}

func (r *Room) recomputeRate(basePrice float64) {
	r.nightlyRate = r.category.NightlyRate(basePrice)
}

func (r *Room) attach(res *reservation.Reservation) {
	r.reservations = append(r.reservations, res)
}

func (r *Room) detach(res *reservation.Reservation) {
	for i, existing := range r.reservations {
		if existing == res {
			r.reservations = append(r.reservations[:i], r.reservations[i+1:]...)
			return
		}
	}
}
