package response

import (
	"time"

	"hotel-reservation-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID               uuid.UUID `json:"id"`
	GuestName        string    `json:"guestName"`
	CheckIn          string    `json:"checkIn"`
	CheckOut         string    `json:"checkOut"`
	Nights           int       `json:"nights"`
	RoomName         string    `json:"roomName"`
	Category         string    `json:"category"`
	DiscountCode     string    `json:"discountCode"`
	NightlyBreakdown []float64 `json:"nightlyBreakdown"`
	TotalPrice       float64   `json:"totalPrice"`
	CreatedAt        time.Time `json:"createdAt"`
}

type EarningsResponse struct {
	Month int     `json:"month"`
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

type AvailabilityResponse struct {
	Date  string          `json:"date"`
	Rooms map[string]bool `json:"rooms"`
}

const dateLayout = "2006-01-02"

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:               rm.ID,
		GuestName:        rm.GuestName,
		CheckIn:          rm.CheckIn.Format(dateLayout),
		CheckOut:         rm.CheckOut.Format(dateLayout),
		Nights:           rm.Nights,
		RoomName:         rm.RoomName,
		Category:         rm.Category,
		DiscountCode:     rm.DiscountCode,
		NightlyBreakdown: rm.NightlyBreakdown,
		TotalPrice:       rm.TotalPrice,
		CreatedAt:        rm.CreatedAt,
	}
}

func FromEarningsView(rm *queries.EarningsView) *EarningsResponse {
	return &EarningsResponse{
		Month: rm.Month,
		Year:  rm.Year,
		Total: rm.Total,
	}
}

func FromAvailabilityView(rm *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		Date:  rm.Date.Format(dateLayout),
		Rooms: rm.Rooms,
	}
}
