//go:build unit

package memstore_test

import (
	"sync"
	"testing"

	"hotel-reservation-core/internal/domain/hotel"
	"hotel-reservation-core/internal/domain/pricing"
	"hotel-reservation-core/internal/infra/memstore"
	"hotel-reservation-core/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHotel(t *testing.T, name string) *hotel.Hotel {
	t.Helper()
	h, err := builder.NewHotelBuilder().WithName(name).BuildDomain()
	require.NoError(t, err)
	return h
}

func registeredNames(t *testing.T, reg *memstore.Registry) []string {
	t.Helper()
	var names []string
	require.NoError(t, reg.ViewAll(func(hotels []*hotel.Hotel) error {
		for _, h := range hotels {
			names = append(names, h.Name())
		}
		return nil
	}))
	return names
}

func TestInsert(t *testing.T) {
	reg := memstore.NewRegistry()

	require.NoError(t, reg.Insert(mustHotel(t, "Grand")))

	err := reg.Insert(mustHotel(t, "Grand"))
	require.ErrorIs(t, err, memstore.ErrHotelAlreadyExists)
	assert.Len(t, registeredNames(t, reg), 1)
}

func TestRemove(t *testing.T) {
	t.Run("unknown hotel", func(t *testing.T) {
		reg := memstore.NewRegistry()
		require.ErrorIs(t, reg.Remove("Grand"), memstore.ErrHotelNotFound)
	})

	t.Run("empty ledger", func(t *testing.T) {
		reg := memstore.NewRegistry()
		require.NoError(t, reg.Insert(mustHotel(t, "Grand")))

		require.NoError(t, reg.Remove("Grand"))
		assert.Empty(t, registeredNames(t, reg))
		// The name is free again.
		require.NoError(t, reg.Insert(mustHotel(t, "Grand")))
	})

	t.Run("blocked by reservations", func(t *testing.T) {
		reg := memstore.NewRegistry()
		h := mustHotel(t, "Grand")
		_, err := builder.NewBookingBuilder().Book(h)
		require.NoError(t, err)
		require.NoError(t, reg.Insert(h))

		require.ErrorIs(t, reg.Remove("Grand"), memstore.ErrHotelHasReservations)
		assert.Len(t, registeredNames(t, reg), 1)
	})
}

func TestRename(t *testing.T) {
	t.Run("rekeys the hotel", func(t *testing.T) {
		reg := memstore.NewRegistry()
		require.NoError(t, reg.Insert(mustHotel(t, "Grand")))

		require.NoError(t, reg.Rename("Grand", "Palazzo"))

		require.ErrorIs(t, reg.View("Grand", func(*hotel.Hotel) error { return nil }), memstore.ErrHotelNotFound)
		require.NoError(t, reg.View("Palazzo", func(h *hotel.Hotel) error {
			assert.Equal(t, "Palazzo", h.Name())
			return nil
		}))
	})

	t.Run("target name taken", func(t *testing.T) {
		reg := memstore.NewRegistry()
		require.NoError(t, reg.Insert(mustHotel(t, "Grand")))
		require.NoError(t, reg.Insert(mustHotel(t, "Palazzo")))

		require.ErrorIs(t, reg.Rename("Grand", "Palazzo"), memstore.ErrHotelAlreadyExists)
	})

	t.Run("same name is a no-op", func(t *testing.T) {
		reg := memstore.NewRegistry()
		require.NoError(t, reg.Insert(mustHotel(t, "Grand")))
		require.NoError(t, reg.Rename("Grand", "Grand"))
		assert.Len(t, registeredNames(t, reg), 1)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		reg := memstore.NewRegistry()
		require.ErrorIs(t, reg.Rename("Grand", "Palazzo"), memstore.ErrHotelNotFound)
	})
}

func TestUpdateAndView(t *testing.T) {
	reg := memstore.NewRegistry()
	require.NoError(t, reg.Insert(mustHotel(t, "Grand")))

	t.Run("update mutates under the lock", func(t *testing.T) {
		err := reg.Update("Grand", func(h *hotel.Hotel) error {
			_, err := builder.NewBookingBuilder().Book(h)
			return err
		})
		require.NoError(t, err)

		require.NoError(t, reg.View("Grand", func(h *hotel.Hotel) error {
			assert.Len(t, h.Reservations(), 1)
			return nil
		}))
	})

	t.Run("closure errors pass through", func(t *testing.T) {
		err := reg.Update("Grand", func(h *hotel.Hotel) error {
			return h.RemoveRoom("Grand99")
		})
		require.ErrorIs(t, err, hotel.ErrRoomNotFound)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		require.ErrorIs(t, reg.Update("Ritz", func(*hotel.Hotel) error { return nil }), memstore.ErrHotelNotFound)
		require.ErrorIs(t, reg.View("Ritz", func(*hotel.Hotel) error { return nil }), memstore.ErrHotelNotFound)
	})
}

func TestListOrder(t *testing.T) {
	reg := memstore.NewRegistry()
	for _, name := range []string{"Grand", "Palazzo", "Ritz"} {
		require.NoError(t, reg.Insert(mustHotel(t, name)))
	}
	require.NoError(t, reg.Remove("Palazzo"))
	require.NoError(t, reg.Insert(mustHotel(t, "Savoy")))

	assert.Equal(t, []string{"Grand", "Ritz", "Savoy"}, registeredNames(t, reg))
}

func TestReconfigure(t *testing.T) {
	price := func(v float64) *float64 { return &v }
	name := func(v string) *string { return &v }

	t.Run("applies rename and price together", func(t *testing.T) {
		reg := memstore.NewRegistry()
		require.NoError(t, reg.Insert(mustHotel(t, "Grand")))

		require.NoError(t, reg.Reconfigure("Grand", name("Palazzo"), price(2000.0)))

		require.NoError(t, reg.View("Palazzo", func(h *hotel.Hotel) error {
			assert.Equal(t, "Palazzo", h.Name())
			assert.InDelta(t, 2000.0, h.BasePrice(), 1e-9)
			return nil
		}))
	})

	t.Run("rename collision leaves the price untouched", func(t *testing.T) {
		reg := memstore.NewRegistry()
		require.NoError(t, reg.Insert(mustHotel(t, "Grand")))
		require.NoError(t, reg.Insert(mustHotel(t, "Palazzo")))

		err := reg.Reconfigure("Grand", name("Palazzo"), price(2000.0))
		require.ErrorIs(t, err, memstore.ErrHotelAlreadyExists)

		require.NoError(t, reg.View("Grand", func(h *hotel.Hotel) error {
			assert.InDelta(t, 1299.0, h.BasePrice(), 1e-9)
			return nil
		}))
	})

	t.Run("blocked price edit leaves the name untouched", func(t *testing.T) {
		reg := memstore.NewRegistry()
		h := mustHotel(t, "Grand")
		_, err := builder.NewBookingBuilder().Book(h)
		require.NoError(t, err)
		require.NoError(t, reg.Insert(h))

		err = reg.Reconfigure("Grand", name("Palazzo"), price(2000.0))
		require.ErrorIs(t, err, hotel.ErrHasActiveReservations)

		require.NoError(t, reg.View("Grand", func(h *hotel.Hotel) error {
			assert.Equal(t, "Grand", h.Name())
			return nil
		}))
	})

	t.Run("empty target name", func(t *testing.T) {
		reg := memstore.NewRegistry()
		require.NoError(t, reg.Insert(mustHotel(t, "Grand")))

		err := reg.Reconfigure("Grand", name("  "), nil)
		require.ErrorIs(t, err, hotel.ErrEmptyHotelName)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		reg := memstore.NewRegistry()
		err := reg.Reconfigure("Grand", name("Palazzo"), nil)
		require.ErrorIs(t, err, memstore.ErrHotelNotFound)
	})
}

func TestViewAllDuringConcurrentUpdates(t *testing.T) {
	reg := memstore.NewRegistry()
	h, err := builder.NewHotelBuilder().WithName("Grand").WithRooms(1, 0, 0).BuildDomain()
	require.NoError(t, err)
	require.NoError(t, reg.Insert(h))

	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			err := reg.Update("Grand", func(h *hotel.Hotel) error {
				_, err := h.AddRoom(pricing.CategoryStandard)
				return err
			})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			err := reg.ViewAll(func(hotels []*hotel.Hotel) error {
				for _, h := range hotels {
					_ = h.Name()
					_ = h.RoomCount()
					_ = h.BasePrice()
				}
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	require.NoError(t, reg.View("Grand", func(h *hotel.Hotel) error {
		assert.Equal(t, 1+writers, h.RoomCount())
		return nil
	}))
}

func TestConcurrentBookings(t *testing.T) {
	reg := memstore.NewRegistry()
	h, err := builder.NewHotelBuilder().WithName("Grand").WithRooms(10, 0, 0).BuildDomain()
	require.NoError(t, err)
	require.NoError(t, reg.Insert(h))

	guests := []string{
		"Alice Reyes", "Bruno Okafor", "Chika Mori", "Dmitri Volkov", "Elena Park",
		"Farid Noor", "Greta Lindqvist", "Hiro Tanaka", "Ines Duarte", "Jonas Weber",
	}

	var wg sync.WaitGroup
	for _, guest := range guests {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			err := reg.Update("Grand", func(h *hotel.Hotel) error {
				_, err := builder.NewBookingBuilder().WithGuestName(name).Book(h)
				return err
			})
			assert.NoError(t, err)
		}(guest)
	}
	wg.Wait()

	require.NoError(t, reg.View("Grand", func(h *hotel.Hotel) error {
		reservations := h.Reservations()
		assert.Len(t, reservations, len(guests))
		rooms := make(map[string]bool)
		for _, res := range reservations {
			assert.False(t, rooms[res.RoomName()], "room %s double booked", res.RoomName())
			rooms[res.RoomName()] = true
		}
		return nil
	}))
}
