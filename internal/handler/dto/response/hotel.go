package response

import (
	"time"

	"hotel-reservation-core/internal/usecase/queries"
)

type HotelResponse struct {
	Name             string    `json:"name"`
	BasePrice        float64   `json:"basePrice"`
	RoomCount        int       `json:"roomCount"`
	ReservationCount int       `json:"reservationCount"`
	CreatedAt        time.Time `json:"createdAt"`
}

type HotelListResponse struct {
	Name      string  `json:"name"`
	RoomCount int     `json:"roomCount"`
	BasePrice float64 `json:"basePrice"`
}

type RoomResponse struct {
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	NightlyRate      float64 `json:"nightlyRate"`
	ReservationCount int     `json:"reservationCount"`
}

func FromHotelView(rm *queries.HotelView) *HotelResponse {
	return &HotelResponse{
		Name:             rm.Name,
		BasePrice:        rm.BasePrice,
		RoomCount:        rm.RoomCount,
		ReservationCount: rm.ReservationCount,
		CreatedAt:        rm.CreatedAt,
	}
}

func FromHotelSummary(rm *queries.HotelSummary) *HotelListResponse {
	return &HotelListResponse{
		Name:      rm.Name,
		RoomCount: rm.RoomCount,
		BasePrice: rm.BasePrice,
	}
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		Name:             rm.Name,
		Category:         rm.Category,
		NightlyRate:      rm.NightlyRate,
		ReservationCount: rm.ReservationCount,
	}
}
