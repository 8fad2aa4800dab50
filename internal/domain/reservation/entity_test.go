//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-reservation-core/internal/domain/discount"
	"hotel-reservation-core/internal/domain/pricing"
	"hotel-reservation-core/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	guest, err := reservation.NewGuestName("Alice Reyes")
	require.NoError(t, err)
	s := stay(t, date(2024, 7, 1), date(2024, 7, 4))
	now := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

	t.Run("breakdown length must match nights", func(t *testing.T) {
		_, err := reservation.NewReservation(guest, s, "Grand01", pricing.CategoryStandard, discount.CodeNone, []float64{100, 200}, 300, now)
		require.ErrorIs(t, err, reservation.ErrBreakdownMismatch)
	})

	t.Run("successful construction", func(t *testing.T) {
		res, err := reservation.NewReservation(guest, s, "Grand01", pricing.CategoryStandard, discount.CodeNone, []float64{100, 200, 300}, 600, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, "Alice Reyes", res.GuestName().String())
		assert.Equal(t, "Grand01", res.RoomName())
		assert.Equal(t, 3, res.Stay().Nights())
		assert.InDelta(t, 600.0, res.TotalPrice(), 1e-9)
		assert.Equal(t, now, res.CreatedAt())
	})

	t.Run("breakdown is copied on both sides", func(t *testing.T) {
		input := []float64{100, 200, 300}
		res, err := reservation.NewReservation(guest, s, "Grand01", pricing.CategoryStandard, discount.CodeNone, input, 600, now)
		require.NoError(t, err)

		input[0] = 999
		out := res.NightlyBreakdown()
		assert.InDelta(t, 100.0, out[0], 1e-9)

		out[1] = 999
		assert.InDelta(t, 200.0, res.NightlyBreakdown()[1], 1e-9)
	})

	t.Run("matches the guest and check-in key", func(t *testing.T) {
		res, err := reservation.NewReservation(guest, s, "Grand01", pricing.CategoryStandard, discount.CodeNone, []float64{100, 200, 300}, 600, now)
		require.NoError(t, err)

		assert.True(t, res.Matches("Alice Reyes", date(2024, 7, 1)))
		assert.True(t, res.Matches("Alice Reyes", time.Date(2024, 7, 1, 18, 0, 0, 0, time.UTC)))
		assert.False(t, res.Matches("Alice Reyes", date(2024, 7, 2)))
		assert.False(t, res.Matches("Bob Santos", date(2024, 7, 1)))
	})
}
