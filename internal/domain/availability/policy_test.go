//go:build unit

package availability_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/domain/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func times(t *testing.T, ss ...string) []calendar.TimeOfDay {
	t.Helper()
	out := make([]calendar.TimeOfDay, 0, len(ss))
	for _, s := range ss {
		tod, err := calendar.ParseTimeOfDay(s)
		require.NoError(t, err)
		out = append(out, tod)
	}
	return out
}

func book(t *testing.T, cal *calendar.Calendar, date, start string, duration int) {
	t.Helper()
	key, err := calendar.NewSlotKey(date, start)
	require.NoError(t, err)
	name, err := client.NewName("Anna")
	require.NoError(t, err)
	phone, err := client.NewPhone("79161234567")
	require.NoError(t, err)
	a, err := calendar.NewAppointment(calendar.AppointmentParams{
		Key:             key,
		UserID:          "u1",
		ClientName:      name,
		ClientPhone:     phone,
		ServiceID:       "svc",
		DurationMinutes: duration,
		PriceMinorUnits: 1000,
		ReservationID:   "r-" + start,
		ConfirmedAt:     time.Now(),
	})
	require.NoError(t, err)
	require.NoError(t, cal.Insert(a))
}

func TestFreeSlots(t *testing.T) {
	hours := availability.DefaultBusinessHours()
	date, err := calendar.ParseDate("2025-06-10")
	require.NoError(t, err)

	t.Run("empty day offers every hourly start that fits before close", func(t *testing.T) {
		cal := calendar.New(hours.Granularity())

		assert.Equal(t,
			times(t, "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00"),
			availability.FreeSlots(cal, hours, date, 60))
		assert.Equal(t,
			times(t, "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00"),
			availability.FreeSlots(cal, hours, date, 90))
	})

	t.Run("booked manicure removes its start", func(t *testing.T) {
		cal := calendar.New(hours.Granularity())
		book(t, cal, "2025-06-10", "14:00", 60)

		slots := availability.FreeSlots(cal, hours, date, 60)
		assert.NotContains(t, slots, times(t, "14:00")[0])
		assert.Contains(t, slots, times(t, "13:00")[0])
		assert.Contains(t, slots, times(t, "15:00")[0])
	})

	t.Run("ninety minute booking blocks the next hour for any service", func(t *testing.T) {
		cal := calendar.New(hours.Granularity())
		book(t, cal, "2025-06-10", "14:00", 90)

		slots := availability.FreeSlots(cal, hours, date, 30)
		assert.NotContains(t, slots, times(t, "15:00")[0])
		assert.Contains(t, slots, times(t, "16:00")[0])
	})

	t.Run("long service cannot straddle an existing booking", func(t *testing.T) {
		cal := calendar.New(hours.Granularity())
		book(t, cal, "2025-06-10", "12:00", 30)

		slots := availability.FreeSlots(cal, hours, date, 90)
		assert.NotContains(t, slots, times(t, "11:00")[0])
		assert.Contains(t, slots, times(t, "10:00")[0])
	})

	t.Run("other dates unaffected", func(t *testing.T) {
		cal := calendar.New(hours.Granularity())
		book(t, cal, "2025-06-10", "14:00", 60)
		assert.Len(t, availability.FreeSlots(cal, hours, date.AddDays(1), 60), 10)
	})

	t.Run("service longer than the day", func(t *testing.T) {
		cal := calendar.New(hours.Granularity())
		assert.Empty(t, availability.FreeSlots(cal, hours, date, 11*60))
	})
}

func TestAdmits(t *testing.T) {
	hours := availability.DefaultBusinessHours()
	cal := calendar.New(hours.Granularity())
	key, err := calendar.NewSlotKey("2025-06-10", "14:30")
	require.NoError(t, err)

	assert.False(t, hours.Admits(cal, key, 30), "off-cadence start")

	key.Start = times(t, "19:00")[0]
	assert.True(t, hours.Admits(cal, key, 60))
	assert.False(t, hours.Admits(cal, key, 90), "runs past close")

	key.Start = times(t, "09:00")[0]
	assert.False(t, hours.Admits(cal, key, 60), "before open")
}

func TestNewBusinessHours(t *testing.T) {
	_, err := availability.NewBusinessHours(20*60, 10*60, 60, 30)
	assert.ErrorIs(t, err, availability.ErrInvalidBusinessHours)

	_, err = availability.NewBusinessHours(10*60, 20*60, 0, 30)
	assert.ErrorIs(t, err, availability.ErrInvalidBusinessHours)

	h, err := availability.NewBusinessHours(9*60, 18*60, 30, 15)
	require.NoError(t, err)
	assert.Equal(t, "09:00", h.Open().String())
	assert.Equal(t, 30, h.Cadence())
}
