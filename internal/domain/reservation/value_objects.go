package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidStayPeriod = errors.New("check-out must be strictly after check-in")
	ErrEmptyGuestName    = errors.New("guest name cannot be empty")
	ErrGuestNameTooLong  = errors.New("guest name is too long (max 100 characters)")
)

const MaxGuestNameLength = 100

const dateLayout = "2006-01-02"

// StayPeriod is the half-open date interval [checkIn, checkOut): the stay
// covers every night from check-in up to but excluding the morning of
// departure. Dates are normalized to midnight UTC.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in := NormalizeDate(checkIn)
	out := NormalizeDate(checkOut)
	if !out.After(in) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{checkIn: in, checkOut: out}, nil
}

// NormalizeDate strips the time-of-day component and pins the date to UTC so
// interval arithmetic never crosses a DST boundary.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s StayPeriod) CheckIn() time.Time {
	return s.checkIn
}

func (s StayPeriod) CheckOut() time.Time {
	return s.checkOut
}

func (s StayPeriod) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Dates returns one entry per billed night, check-in first. The check-out
// date itself is never included.
func (s StayPeriod) Dates() []time.Time {
	dates := make([]time.Time, 0, s.Nights())
	for d := s.checkIn; d.Before(s.checkOut); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// Overlaps applies the half-open intersection test: [a,b) and [c,d) overlap
// iff a < d && c < b. Single-night stays get no special case.
func (s StayPeriod) Overlaps(other StayPeriod) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

// Contains reports whether the given date is a billed night of the stay.
func (s StayPeriod) Contains(date time.Time) bool {
	d := NormalizeDate(date)
	return !d.Before(s.checkIn) && d.Before(s.checkOut)
}

func (s StayPeriod) String() string {
	return fmt.Sprintf("[%s,%s)", s.checkIn.Format(dateLayout), s.checkOut.Format(dateLayout))
}

type GuestName struct {
	value string
}

func NewGuestName(value string) (GuestName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return GuestName{}, ErrEmptyGuestName
	}
	if len(trimmed) > MaxGuestNameLength {
		return GuestName{}, ErrGuestNameTooLong
	}
	return GuestName{value: trimmed}, nil
}

func (g GuestName) String() string {
	return g.value
}

func (g GuestName) Equals(other GuestName) bool {
	return g.value == other.value
}
