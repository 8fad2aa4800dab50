package discount

import "strings"

// Code identifies a discount rule. Unknown codes are deliberately treated as
// CodeNone rather than rejected; callers that want to surface a typo do so at
// their own boundary.
type Code string

const (
	CodeNone      Code = "NONE"
	CodeStay4Get1 Code = "STAY4_GET1"
	CodeIWorkHere Code = "I_WORK_HERE"
	CodePayday    Code = "PAYDAY"
)

// paydayDays are the days of month on which a PAYDAY check-in qualifies.
var paydayDays = map[int]bool{15: true, 30: true}

func Normalize(raw string) Code {
	trimmed := strings.TrimSpace(strings.ToUpper(raw))
	if trimmed == "" {
		return CodeNone
	}
	return Code(trimmed)
}

func (c Code) String() string {
	return string(c)
}

func (c Code) IsKnown() bool {
	switch c {
	case CodeNone, CodeStay4Get1, CodeIWorkHere, CodePayday:
		return true
	default:
		return false
	}
}

// Apply runs the two-phase discount over a nightly breakdown. Phase one may
// rewrite individual nights before summation; phase two scales the summed
// total. The returned breakdown is always a copy.
func Apply(code Code, breakdown []float64, checkInDay, checkOutDay int) ([]float64, float64) {
	adjusted := make([]float64, len(breakdown))
	copy(adjusted, breakdown)

	// Phase 1: per-night adjustments before summation.
	if code == CodeStay4Get1 && len(adjusted) >= 5 {
		adjusted[0] = 0
	}

	total := 0.0
	for _, night := range adjusted {
		total += night
	}

	// Phase 2: scaling of the summed total.
	switch code {
	case CodeIWorkHere:
		total *= 0.90
	case CodePayday:
		if paydayDays[checkInDay] && !paydayDays[checkOutDay] {
			total *= 0.93
		}
	}

	return adjusted, total
}
