package queries

import (
	"time"

	"hotel-reservation-core/internal/domain/hotel"
	"hotel-reservation-core/internal/domain/reservation"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type HotelSummary struct {
	Name      string  `json:"name"`
	RoomCount int     `json:"room_count"`
	BasePrice float64 `json:"base_price"`
}

type HotelView struct {
	Name             string    `json:"name"`
	BasePrice        float64   `json:"base_price"`
	RoomCount        int       `json:"room_count"`
	ReservationCount int       `json:"reservation_count"`
	CreatedAt        time.Time `json:"created_at"`
}

type RoomView struct {
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	NightlyRate      float64 `json:"nightly_rate"`
	ReservationCount int     `json:"reservation_count"`
}

type ReservationView struct {
	ID               uuid.UUID `json:"id"`
	GuestName        string    `json:"guest_name"`
	CheckIn          time.Time `json:"check_in"`
	CheckOut         time.Time `json:"check_out"`
	Nights           int       `json:"nights"`
	RoomName         string    `json:"room_name"`
	Category         string    `json:"category"`
	DiscountCode     string    `json:"discount_code"`
	NightlyBreakdown []float64 `json:"nightly_breakdown"`
	TotalPrice       float64   `json:"total_price"`
	CreatedAt        time.Time `json:"created_at"`
}

type EarningsView struct {
	Month int     `json:"month"`
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

type AvailabilityView struct {
	Date  time.Time       `json:"date"`
	Rooms map[string]bool `json:"rooms"`
}

func NewHotelSummary(h *hotel.Hotel) *HotelSummary {
	return &HotelSummary{
		Name:      h.Name(),
		RoomCount: h.RoomCount(),
		BasePrice: h.BasePrice(),
	}
}

func NewHotelView(h *hotel.Hotel) *HotelView {
	return &HotelView{
		Name:             h.Name(),
		BasePrice:        h.BasePrice(),
		RoomCount:        h.RoomCount(),
		ReservationCount: len(h.Reservations()),
		CreatedAt:        h.CreatedAt(),
	}
}

func NewRoomView(r *hotel.Room) *RoomView {
	return &RoomView{
		Name:             r.Name(),
		Category:         r.Category().String(),
		NightlyRate:      r.NightlyRate(),
		ReservationCount: r.ReservationCount(),
	}
}

func NewReservationView(res *reservation.Reservation) *ReservationView {
	return &ReservationView{
		ID:               res.ID(),
		GuestName:        res.GuestName().String(),
		CheckIn:          res.Stay().CheckIn(),
		CheckOut:         res.Stay().CheckOut(),
		Nights:           res.Stay().Nights(),
		RoomName:         res.RoomName(),
		Category:         res.Category().String(),
		DiscountCode:     res.DiscountCode().String(),
		NightlyBreakdown: res.NightlyBreakdown(),
		TotalPrice:       res.TotalPrice(),
		CreatedAt:        res.CreatedAt(),
	}
}
