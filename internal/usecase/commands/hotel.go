package commands

import (
	"context"

	"hotel-reservation-core/internal/domain/hotel"
	"hotel-reservation-core/internal/domain/pricing"
	"hotel-reservation-core/internal/infra/memstore"
	"hotel-reservation-core/internal/pkg/clock"
	"hotel-reservation-core/internal/pkg/config"
	"hotel-reservation-core/internal/pkg/errs"
	"hotel-reservation-core/internal/usecase/queries"
)

var (
	ErrInvalidRoomCount = errs.New("hotel must open with between 1 and 50 rooms")
	ErrMinimumRooms     = errs.New("hotel must keep at least one room")
)

type CreateHotelParams struct {
	Name           string
	BasePrice      float64 // zero means "use the configured default"
	StandardRooms  int
	DeluxeRooms    int
	ExecutiveRooms int
}

type HotelCommands interface {
	CreateHotel(ctx context.Context, params CreateHotelParams) (*queries.HotelView, error)
	RemoveHotel(ctx context.Context, name string) error
	RenameHotel(ctx context.Context, oldName, newName string) error
	SetBasePrice(ctx context.Context, name string, price float64) error
	UpdateHotel(ctx context.Context, name string, newName *string, basePrice *float64) error
	AddRoom(ctx context.Context, hotelName, category string) (*queries.RoomView, error)
	RemoveRoom(ctx context.Context, hotelName, roomName string) error
}

type hotelCommandsImpl struct {
	registry *memstore.Registry
	cfg      config.BookingConfig
	clock    clock.Clock
}

func NewHotelCommands(registry *memstore.Registry, cfg config.Config, clk clock.Clock) HotelCommands {
	return &hotelCommandsImpl{
		registry: registry,
		cfg:      cfg.Booking,
		clock:    clk,
	}
}

// CreateHotel builds the whole aggregate before inserting it, so a name
// collision or a bad room count leaves the registry untouched. Rooms are
// added standard first, then deluxe, then executive; that order is the
// booking search order.
func (c *hotelCommandsImpl) CreateHotel(_ context.Context, params CreateHotelParams) (*queries.HotelView, error) {
	total := params.StandardRooms + params.DeluxeRooms + params.ExecutiveRooms
	if params.StandardRooms < 0 || params.DeluxeRooms < 0 || params.ExecutiveRooms < 0 ||
		total < 1 || total > hotel.MaxRooms {
		return nil, ErrInvalidRoomCount
	}

	basePrice := params.BasePrice
	if basePrice == 0 {
		basePrice = c.cfg.DefaultBasePrice
	}

	h, err := hotel.NewHotel(params.Name, basePrice, c.clock.Now())
	if err != nil {
		return nil, err
	}

	batches := []struct {
		category pricing.Category
		count    int
	}{
		{pricing.CategoryStandard, params.StandardRooms},
		{pricing.CategoryDeluxe, params.DeluxeRooms},
		{pricing.CategoryExecutive, params.ExecutiveRooms},
	}
	for _, batch := range batches {
		for i := 0; i < batch.count; i++ {
			if _, err := h.AddRoom(batch.category); err != nil {
				return nil, err
			}
		}
	}

	if err := c.registry.Insert(h); err != nil {
		return nil, err
	}
	return queries.NewHotelView(h), nil
}

func (c *hotelCommandsImpl) RemoveHotel(_ context.Context, name string) error {
	return c.registry.Remove(name)
}

func (c *hotelCommandsImpl) RenameHotel(_ context.Context, oldName, newName string) error {
	return c.registry.Rename(oldName, newName)
}

func (c *hotelCommandsImpl) SetBasePrice(_ context.Context, name string, price float64) error {
	return c.registry.Update(name, func(h *hotel.Hotel) error {
		return h.SetBasePrice(price)
	})
}

// UpdateHotel applies a rename and a base-price edit in one step; neither
// half is committed if either fails.
func (c *hotelCommandsImpl) UpdateHotel(_ context.Context, name string, newName *string, basePrice *float64) error {
	return c.registry.Reconfigure(name, newName, basePrice)
}

func (c *hotelCommandsImpl) AddRoom(_ context.Context, hotelName, category string) (*queries.RoomView, error) {
	cat, err := pricing.NewCategory(category)
	if err != nil {
		return nil, err
	}

	var view *queries.RoomView
	err = c.registry.Update(hotelName, func(h *hotel.Hotel) error {
		room, err := h.AddRoom(cat)
		if err != nil {
			return err
		}
		view = queries.NewRoomView(room)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// RemoveRoom keeps the catalog within the [1, 50] bound: the last room of a
// hotel cannot be removed.
func (c *hotelCommandsImpl) RemoveRoom(_ context.Context, hotelName, roomName string) error {
	return c.registry.Update(hotelName, func(h *hotel.Hotel) error {
		if h.RoomCount() <= 1 {
			return ErrMinimumRooms
		}
		return h.RemoveRoom(roomName)
	})
}
