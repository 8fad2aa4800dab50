package hotel

import "time"

// EarningsForMonth sums the total price of reservations whose check-in date
// falls in the given month. A stay spanning a month boundary is attributed
// entirely to its check-in month.
func (h *Hotel) EarningsForMonth(month time.Month, year int) float64 {
	total := 0.0
	for _, res := range h.reservations {
		checkIn := res.Stay().CheckIn()
		if checkIn.Month() == month && checkIn.Year() == year {
			total += res.TotalPrice()
		}
	}
	return total
}

// AvailabilityOn reports, per room name, whether the room is free on the
// given date.
func (h *Hotel) AvailabilityOn(date time.Time) map[string]bool {
	out := make(map[string]bool, len(h.rooms))
	for _, room := range h.rooms {
		out[room.Name()] = room.IsAvailableOn(date)
	}
	return out
}
