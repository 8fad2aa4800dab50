//go:build unit || e2e

package builder

import (
	"time"

	"hotel-reservation-core/internal/domain/discount"
	domhotel "hotel-reservation-core/internal/domain/hotel"
	"hotel-reservation-core/internal/domain/pricing"
	"hotel-reservation-core/internal/domain/reservation"
	"hotel-reservation-core/internal/usecase/commands"
)

type HotelBuilder struct {
	Name           string
	BasePrice      float64
	StandardRooms  int
	DeluxeRooms    int
	ExecutiveRooms int
	CreatedAt      time.Time
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		Name:           "Grand",
		BasePrice:      1299.0,
		StandardRooms:  2,
		DeluxeRooms:    1,
		ExecutiveRooms: 1,
		CreatedAt:      time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(b)
	return b
}

func (b *HotelBuilder) WithName(name string) *HotelBuilder {
	b.Name = name
	return b
}

func (b *HotelBuilder) WithBasePrice(price float64) *HotelBuilder {
	b.BasePrice = price
	return b
}

func (b *HotelBuilder) WithRooms(standard, deluxe, executive int) *HotelBuilder {
	b.StandardRooms = standard
	b.DeluxeRooms = deluxe
	b.ExecutiveRooms = executive
	return b
}

// BuildDomain assembles the aggregate with rooms added standard first, then
// deluxe, then executive, mirroring hotel creation in the usecase layer.
func (b *HotelBuilder) BuildDomain() (*domhotel.Hotel, error) {
	h, err := domhotel.NewHotel(b.Name, b.BasePrice, b.CreatedAt)
	if err != nil {
		return nil, err
	}
	batches := []struct {
		category pricing.Category
		count    int
	}{
		{pricing.CategoryStandard, b.StandardRooms},
		{pricing.CategoryDeluxe, b.DeluxeRooms},
		{pricing.CategoryExecutive, b.ExecutiveRooms},
	}
	for _, batch := range batches {
		for i := 0; i < batch.count; i++ {
			if _, err := h.AddRoom(batch.category); err != nil {
				return nil, err
			}
		}
	}
	return h, nil
}

func (b *HotelBuilder) BuildCreateParams() commands.CreateHotelParams {
	return commands.CreateHotelParams{
		Name:           b.Name,
		BasePrice:      b.BasePrice,
		StandardRooms:  b.StandardRooms,
		DeluxeRooms:    b.DeluxeRooms,
		ExecutiveRooms: b.ExecutiveRooms,
	}
}

type BookingBuilder struct {
	GuestName    string
	CheckIn      time.Time
	CheckOut     time.Time
	Category     pricing.Category
	DiscountCode discount.Code
	BookedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		GuestName:    "Alice Reyes",
		CheckIn:      time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:     time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		Category:     pricing.CategoryStandard,
		DiscountCode: discount.CodeNone,
		BookedAt:     time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithGuestName(name string) *BookingBuilder {
	b.GuestName = name
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithCategory(category pricing.Category) *BookingBuilder {
	b.Category = category
	return b
}

func (b *BookingBuilder) WithDiscountCode(code discount.Code) *BookingBuilder {
	b.DiscountCode = code
	return b
}

// Book runs the booking engine against the given hotel.
func (b *BookingBuilder) Book(h *domhotel.Hotel) (*reservation.Reservation, error) {
	guest, err := reservation.NewGuestName(b.GuestName)
	if err != nil {
		return nil, err
	}
	return h.Book(guest, b.CheckIn, b.CheckOut, b.Category, b.DiscountCode, b.BookedAt)
}

func (b *BookingBuilder) BuildParams() commands.BookParams {
	return commands.BookParams{
		GuestName:    b.GuestName,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		Category:     b.Category.String(),
		DiscountCode: b.DiscountCode.String(),
	}
}
