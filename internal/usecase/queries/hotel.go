package queries

import (
	"context"
	"time"

	"hotel-reservation-core/internal/domain/hotel"
	"hotel-reservation-core/internal/domain/reservation"
	"hotel-reservation-core/internal/infra/memstore"
)

type HotelQueries interface {
	ListHotels(ctx context.Context) ([]*HotelSummary, error)
	GetHotel(ctx context.Context, name string) (*HotelView, error)
	ListRooms(ctx context.Context, hotelName string) ([]*RoomView, error)
	GetRoom(ctx context.Context, hotelName, roomName string) (*RoomView, error)
	GetReservation(ctx context.Context, hotelName, guestName string, checkIn time.Time) (*ReservationView, error)
	EarningsForMonth(ctx context.Context, hotelName string, month time.Month, year int) (*EarningsView, error)
	AvailabilityOn(ctx context.Context, hotelName string, date time.Time) (*AvailabilityView, error)
}

type hotelQueriesImpl struct {
	registry *memstore.Registry
}

func NewHotelQueries(registry *memstore.Registry) HotelQueries {
	return &hotelQueriesImpl{registry: registry}
}

func (q *hotelQueriesImpl) ListHotels(_ context.Context) ([]*HotelSummary, error) {
	var out []*HotelSummary
	err := q.registry.ViewAll(func(hotels []*hotel.Hotel) error {
		out = make([]*HotelSummary, len(hotels))
		for i, h := range hotels {
			out[i] = NewHotelSummary(h)
		}
		return nil
	})
	return out, err
}

func (q *hotelQueriesImpl) GetHotel(_ context.Context, name string) (*HotelView, error) {
	var view *HotelView
	err := q.registry.View(name, func(h *hotel.Hotel) error {
		view = NewHotelView(h)
		return nil
	})
	return view, err
}

func (q *hotelQueriesImpl) ListRooms(_ context.Context, hotelName string) ([]*RoomView, error) {
	var views []*RoomView
	err := q.registry.View(hotelName, func(h *hotel.Hotel) error {
		rooms := h.Rooms()
		views = make([]*RoomView, len(rooms))
		for i, r := range rooms {
			views[i] = NewRoomView(r)
		}
		return nil
	})
	return views, err
}

func (q *hotelQueriesImpl) GetRoom(_ context.Context, hotelName, roomName string) (*RoomView, error) {
	var view *RoomView
	err := q.registry.View(hotelName, func(h *hotel.Hotel) error {
		room, err := h.FindRoom(roomName)
		if err != nil {
			return err
		}
		view = NewRoomView(room)
		return nil
	})
	return view, err
}

func (q *hotelQueriesImpl) GetReservation(_ context.Context, hotelName, guestName string, checkIn time.Time) (*ReservationView, error) {
	var view *ReservationView
	err := q.registry.View(hotelName, func(h *hotel.Hotel) error {
		res, err := h.FindReservation(guestName, reservation.NormalizeDate(checkIn))
		if err != nil {
			return err
		}
		view = NewReservationView(res)
		return nil
	})
	return view, err
}

func (q *hotelQueriesImpl) EarningsForMonth(_ context.Context, hotelName string, month time.Month, year int) (*EarningsView, error) {
	var view *EarningsView
	err := q.registry.View(hotelName, func(h *hotel.Hotel) error {
		view = &EarningsView{
			Month: int(month),
			Year:  year,
			Total: h.EarningsForMonth(month, year),
		}
		return nil
	})
	return view, err
}

func (q *hotelQueriesImpl) AvailabilityOn(_ context.Context, hotelName string, date time.Time) (*AvailabilityView, error) {
	var view *AvailabilityView
	err := q.registry.View(hotelName, func(h *hotel.Hotel) error {
		view = &AvailabilityView{
			Date:  reservation.NormalizeDate(date),
			Rooms: h.AvailabilityOn(date),
		}
		return nil
	})
	return view, err
}
