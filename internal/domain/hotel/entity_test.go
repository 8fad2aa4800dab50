//go:build unit

package hotel_test

import (
	"fmt"
	"testing"
	"time"

	"hotel-reservation-core/internal/domain/hotel"
	"hotel-reservation-core/internal/domain/pricing"
	"hotel-reservation-core/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNewHotel(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("rejects empty names", func(t *testing.T) {
		_, err := hotel.NewHotel("   ", 1299.0, now)
		require.ErrorIs(t, err, hotel.ErrEmptyHotelName)
	})

	t.Run("rejects base price below the floor", func(t *testing.T) {
		_, err := hotel.NewHotel("Grand", 99.99, now)
		require.ErrorIs(t, err, hotel.ErrInvalidBasePrice)
	})

	t.Run("floor price is allowed", func(t *testing.T) {
		h, err := hotel.NewHotel("Grand", 100.0, now)
		require.NoError(t, err)
		assert.InDelta(t, 100.0, h.BasePrice(), 1e-9)
	})
}

func TestAddRoom(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("names derive from hotel name and a zero-padded sequence", func(t *testing.T) {
		h, err := hotel.NewHotel("Grand", 1299.0, now)
		require.NoError(t, err)

		first, err := h.AddRoom(pricing.CategoryStandard)
		require.NoError(t, err)
		second, err := h.AddRoom(pricing.CategoryDeluxe)
		require.NoError(t, err)

		assert.Equal(t, "Grand01", first.Name())
		assert.Equal(t, "Grand02", second.Name())
	})

	t.Run("nightly rate comes from the category multiplier", func(t *testing.T) {
		h, err := hotel.NewHotel("Grand", 1000.0, now)
		require.NoError(t, err)

		standard, _ := h.AddRoom(pricing.CategoryStandard)
		deluxe, _ := h.AddRoom(pricing.CategoryDeluxe)
		executive, _ := h.AddRoom(pricing.CategoryExecutive)

		assert.InDelta(t, 1000.0, standard.NightlyRate(), 1e-9)
		assert.InDelta(t, 1200.0, deluxe.NightlyRate(), 1e-9)
		assert.InDelta(t, 1350.0, executive.NightlyRate(), 1e-9)
	})

	t.Run("capacity is capped at fifty rooms", func(t *testing.T) {
		h, err := hotel.NewHotel("Grand", 1299.0, now)
		require.NoError(t, err)

		for i := 0; i < hotel.MaxRooms; i++ {
			_, err := h.AddRoom(pricing.CategoryStandard)
			require.NoError(t, err)
		}
		_, err = h.AddRoom(pricing.CategoryStandard)
		require.ErrorIs(t, err, hotel.ErrCapacityExceeded)
		assert.Equal(t, hotel.MaxRooms, h.RoomCount())
	})

	t.Run("sequence numbers are never reused after removal", func(t *testing.T) {
		h, err := hotel.NewHotel("Grand", 1299.0, now)
		require.NoError(t, err)

		_, err = h.AddRoom(pricing.CategoryStandard)
		require.NoError(t, err)
		_, err = h.AddRoom(pricing.CategoryStandard)
		require.NoError(t, err)
		require.NoError(t, h.RemoveRoom("Grand02"))

		third, err := h.AddRoom(pricing.CategoryStandard)
		require.NoError(t, err)
		assert.Equal(t, "Grand03", third.Name())
	})
}

func TestRemoveRoom(t *testing.T) {
	t.Run("unknown room", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, h.RemoveRoom("Grand99"), hotel.ErrRoomNotFound)
	})

	t.Run("room with zero reservations is removed", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)
		before := h.RoomCount()

		require.NoError(t, h.RemoveRoom("Grand01"))
		assert.Equal(t, before-1, h.RoomCount())
		_, err = h.FindRoom("Grand01")
		require.ErrorIs(t, err, hotel.ErrRoomNotFound)
	})

	t.Run("room with an active reservation is kept", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)

		res, err := builder.NewBookingBuilder().Book(h)
		require.NoError(t, err)

		require.ErrorIs(t, h.RemoveRoom(res.RoomName()), hotel.ErrHasActiveReservations)
		_, err = h.FindRoom(res.RoomName())
		require.NoError(t, err)
	})
}

func TestSetBasePrice(t *testing.T) {
	t.Run("rejects prices below the floor", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, h.SetBasePrice(99.0), hotel.ErrInvalidBasePrice)
	})

	t.Run("blocked while reservations exist", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)
		_, err = builder.NewBookingBuilder().Book(h)
		require.NoError(t, err)

		require.ErrorIs(t, h.SetBasePrice(2000.0), hotel.ErrHasActiveReservations)
		assert.InDelta(t, 1299.0, h.BasePrice(), 1e-9)
	})

	t.Run("recomputes every room rate through the category table", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().WithRooms(1, 1, 1).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, h.SetBasePrice(2000.0))

		rooms := h.Rooms()
		require.Len(t, rooms, 3)
		assert.InDelta(t, 2000.0, rooms[0].NightlyRate(), 1e-9)
		assert.InDelta(t, 2400.0, rooms[1].NightlyRate(), 1e-9)
		assert.InDelta(t, 2700.0, rooms[2].NightlyRate(), 1e-9)
	})
}

func TestRename(t *testing.T) {
	h, err := builder.NewHotelBuilder().BuildDomain()
	require.NoError(t, err)

	require.ErrorIs(t, h.Rename("  "), hotel.ErrEmptyHotelName)

	require.NoError(t, h.Rename("Palazzo"))
	assert.Equal(t, "Palazzo", h.Name())
	// Room names keep the prefix they were created with.
	_, err = h.FindRoom("Grand01")
	require.NoError(t, err)
}

func TestRoomsReturnsInsertionOrder(t *testing.T) {
	h, err := builder.NewHotelBuilder().WithRooms(2, 1, 1).BuildDomain()
	require.NoError(t, err)

	var names []string
	for _, r := range h.Rooms() {
		names = append(names, r.Name())
	}
	assert.Equal(t, []string{"Grand01", "Grand02", "Grand03", "Grand04"}, names)
}

func TestFindRoom(t *testing.T) {
	h, err := builder.NewHotelBuilder().BuildDomain()
	require.NoError(t, err)

	room, err := h.FindRoom("Grand02")
	require.NoError(t, err)
	assert.Equal(t, "Grand02", room.Name())

	_, err = h.FindRoom(fmt.Sprintf("Grand%02d", 40))
	require.ErrorIs(t, err, hotel.ErrRoomNotFound)
}
