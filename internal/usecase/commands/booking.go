package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-reservation-core/internal/domain/discount"
	"hotel-reservation-core/internal/domain/hotel"
	"hotel-reservation-core/internal/domain/pricing"
	"hotel-reservation-core/internal/domain/reservation"
	"hotel-reservation-core/internal/infra/memstore"
	"hotel-reservation-core/internal/pkg/clock"
	"hotel-reservation-core/internal/usecase/queries"
)

type BookParams struct {
	GuestName    string
	CheckIn      time.Time
	CheckOut     time.Time
	Category     string
	DiscountCode string
}

type BookingCommands interface {
	Book(ctx context.Context, hotelName string, params BookParams) (*queries.ReservationView, error)
	Cancel(ctx context.Context, hotelName, guestName string, checkIn time.Time) error
}

type bookingCommandsImpl struct {
	registry *memstore.Registry
	clock    clock.Clock
}

func NewBookingCommands(registry *memstore.Registry, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		registry: registry,
		clock:    clk,
	}
}

func (c *bookingCommandsImpl) Book(_ context.Context, hotelName string, params BookParams) (*queries.ReservationView, error) {
	guest, err := reservation.NewGuestName(params.GuestName)
	if err != nil {
		return nil, err
	}
	category, err := pricing.NewCategory(params.Category)
	if err != nil {
		return nil, err
	}

	code := discount.Normalize(params.DiscountCode)
	if !code.IsKnown() {
		// Unknown codes book at full price rather than failing.
		slog.Warn("ignoring unknown discount code", "code", code.String(), "hotel", hotelName)
	}

	var view *queries.ReservationView
	err = c.registry.Update(hotelName, func(h *hotel.Hotel) error {
		res, err := h.Book(guest, params.CheckIn, params.CheckOut, category, code, c.clock.Now())
		if err != nil {
			return err
		}
		view = queries.NewReservationView(res)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("reservation booked",
		"hotel", hotelName,
		"guest", view.GuestName,
		"room", view.RoomName,
		"nights", view.Nights,
		"total", view.TotalPrice,
	)
	return view, nil
}

func (c *bookingCommandsImpl) Cancel(_ context.Context, hotelName, guestName string, checkIn time.Time) error {
	err := c.registry.Update(hotelName, func(h *hotel.Hotel) error {
		return h.Cancel(guestName, checkIn)
	})
	if err != nil {
		return err
	}

	slog.Info("reservation canceled", "hotel", hotelName, "guest", guestName, "check_in", checkIn.Format("2006-01-02"))
	return nil
}
