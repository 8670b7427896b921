//go:build unit

package cancellation_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/domain/cancellation"
	"salon-booking/internal/domain/client"
	"salon-booking/internal/domain/refund"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appointment(t *testing.T) *calendar.Appointment {
	t.Helper()
	key, err := calendar.NewSlotKey("2025-06-10", "14:00")
	require.NoError(t, err)
	name, err := client.NewName("Anna")
	require.NoError(t, err)
	phone, err := client.NewPhone("79161234567")
	require.NoError(t, err)
	a, err := calendar.NewAppointment(calendar.AppointmentParams{
		Key:             key,
		UserID:          "tg:1",
		ClientName:      name,
		ClientPhone:     phone,
		ServiceID:       "manicure",
		DurationMinutes: 60,
		PriceMinorUnits: 1500,
		ReservationID:   "r1",
	})
	require.NoError(t, err)
	return a
}

func TestNewRecord(t *testing.T) {
	appt := appointment(t)
	at := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)

	t.Run("keeps the quote", func(t *testing.T) {
		r, err := cancellation.NewRecord(appt, refund.Quote{RefundMinorUnits: 750, PenaltyMinorUnits: 750, Percent: 50}, cancellation.Actor{ID: "tg:1"}, at)
		require.NoError(t, err)
		assert.Equal(t, int64(750), r.RefundMinorUnits())
		assert.Equal(t, 50, r.Percent())
		assert.Equal(t, "client", r.Actor().Kind())
		assert.Same(t, appt, r.Appointment())
	})

	t.Run("refund must balance", func(t *testing.T) {
		_, err := cancellation.NewRecord(appt, refund.Quote{RefundMinorUnits: 750, PenaltyMinorUnits: 700}, cancellation.Actor{ID: "tg:1"}, at)
		assert.ErrorIs(t, err, cancellation.ErrInconsistentRefund)
	})

	t.Run("actor required", func(t *testing.T) {
		_, err := cancellation.NewRecord(appt, refund.Quote{PenaltyMinorUnits: 1500}, cancellation.Actor{}, at)
		assert.ErrorIs(t, err, client.ErrInvalidUserID)
	})
}

func TestActorCanAccess(t *testing.T) {
	appt := appointment(t)
	assert.True(t, cancellation.Actor{ID: "tg:1"}.CanAccess(appt))
	assert.False(t, cancellation.Actor{ID: "tg:2"}.CanAccess(appt))
	assert.True(t, cancellation.Actor{ID: "operator", Operator: true}.CanAccess(appt))
}
