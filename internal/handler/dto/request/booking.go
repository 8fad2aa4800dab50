package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDateFormat = errors.New("dates must use the yyyy-mm-dd format")

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	GuestName    string  `json:"guest_name" binding:"required"`
	CheckIn      string  `json:"check_in" binding:"required"`
	CheckOut     string  `json:"check_out" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	DiscountCode *string `json:"discount_code,omitempty"`
}

func (r CreateBookingRequest) GetDiscountCode() string {
	if r.DiscountCode == nil {
		return ""
	}
	return strings.TrimSpace(*r.DiscountCode)
}

func (r CreateBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = ParseDate(r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err = ParseDate(r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

type CancelBookingRequest struct {
	GuestName string `json:"guest_name" binding:"required"`
	CheckIn   string `json:"check_in" binding:"required"`
}

func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}
