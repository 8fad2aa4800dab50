package pricing

import "time"

// Calendar multipliers are keyed by day-of-month only, producing a repeating
// four-tier demand cycle. The 31st has no tier of its own and falls through
// to the standard rate.
const (
	peakMultiplier       = 1.20
	troughMultiplier     = 0.80
	nearTroughMultiplier = 0.90
	standardMultiplier   = 1.00
)

var dayMultipliers = map[int]float64{
	5: peakMultiplier, 6: peakMultiplier, 7: peakMultiplier,
	12: peakMultiplier, 13: peakMultiplier, 14: peakMultiplier,
	19: peakMultiplier, 20: peakMultiplier, 21: peakMultiplier,
	26: peakMultiplier, 27: peakMultiplier, 28: peakMultiplier,

	1: troughMultiplier, 8: troughMultiplier, 15: troughMultiplier,
	22: troughMultiplier, 29: troughMultiplier,

	2: nearTroughMultiplier, 9: nearTroughMultiplier, 16: nearTroughMultiplier,
	23: nearTroughMultiplier, 30: nearTroughMultiplier,
}

// CalendarMultiplier returns the demand multiplier for a day of month.
func CalendarMultiplier(dayOfMonth int) float64 {
	if m, ok := dayMultipliers[dayOfMonth]; ok {
		return m
	}
	return standardMultiplier
}

// NightlyPrice prices one night of a room whose rate is already
// category-adjusted.
func NightlyPrice(nightlyRate float64, date time.Time) float64 {
	return nightlyRate * CalendarMultiplier(date.Day())
}

// Breakdown prices every billed night of a stay, one entry per date.
func Breakdown(nightlyRate float64, dates []time.Time) []float64 {
	prices := make([]float64, len(dates))
	for i, d := range dates {
		prices[i] = NightlyPrice(nightlyRate, d)
	}
	return prices
}
