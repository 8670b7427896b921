//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/domain/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustKey(t *testing.T, date, start string) calendar.SlotKey {
	t.Helper()
	k, err := calendar.NewSlotKey(date, start)
	require.NoError(t, err)
	return k
}

func newAppointment(t *testing.T, key calendar.SlotKey, userID string, duration int) *calendar.Appointment {
	t.Helper()
	name, err := client.NewName("Anna")
	require.NoError(t, err)
	phone, err := client.NewPhone("79161234567")
	require.NoError(t, err)

	a, err := calendar.NewAppointment(calendar.AppointmentParams{
		Key:             key,
		UserID:          userID,
		ClientName:      name,
		ClientPhone:     phone,
		ServiceID:       "manicure",
		ServiceName:     "Manicure",
		DurationMinutes: duration,
		PriceMinorUnits: 1500,
		ReservationID:   "r-" + key.String(),
		ConfirmedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return a
}

func TestDateAndTime(t *testing.T) {
	t.Run("parse and format", func(t *testing.T) {
		d, err := calendar.ParseDate("2025-06-10")
		require.NoError(t, err)
		assert.Equal(t, "2025-06-10", d.String())
		assert.Equal(t, "2025-06-11", d.AddDays(1).String())
		assert.Equal(t, "2025-07-01", d.AddDays(21).String())
		assert.Equal(t, 30, d.AddDays(30).DaysSince(d))

		tod, err := calendar.ParseTimeOfDay("14:30")
		require.NoError(t, err)
		assert.Equal(t, 14*60+30, tod.Minutes())
		assert.Equal(t, "14:30", tod.String())
	})

	t.Run("invalid inputs", func(t *testing.T) {
		for _, s := range []string{"2025-02-30", "10.06.2025", "", "2025-6-1"} {
			_, err := calendar.ParseDate(s)
			assert.ErrorIs(t, err, calendar.ErrInvalidDate, s)
		}
		for _, s := range []string{"24:00", "12:60", "noon", ""} {
			_, err := calendar.ParseTimeOfDay(s)
			assert.ErrorIs(t, err, calendar.ErrInvalidTimeOfDay, s)
		}
	})

	t.Run("instant in location", func(t *testing.T) {
		loc := time.FixedZone("MSK", 3*60*60)
		key := mustKey(t, "2025-06-10", "14:00")
		assert.Equal(t, time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC), key.At(loc).UTC())
	})

	t.Run("text round trip", func(t *testing.T) {
		var d calendar.Date
		require.NoError(t, d.UnmarshalText([]byte("2025-06-10")))
		b, err := d.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "2025-06-10", string(b))
	})
}

func TestCalendarNoOverlap(t *testing.T) {
	cal := calendar.New(30)
	require.NoError(t, cal.Insert(newAppointment(t, mustKey(t, "2025-06-10", "14:00"), "u1", 90)))

	cases := []struct {
		name     string
		start    string
		duration int
		fits     bool
	}{
		{name: "same start", start: "14:00", duration: 30, fits: false},
		{name: "inside window", start: "15:00", duration: 60, fits: false},
		{name: "ends exactly at start", start: "13:00", duration: 60, fits: true},
		{name: "starts exactly at end", start: "15:30", duration: 30, fits: true},
		{name: "long service spanning existing", start: "13:00", duration: 120, fits: false},
		{name: "off grid start inside new window", start: "13:45", duration: 30, fits: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.fits, cal.Fits(mustKey(t, "2025-06-10", tc.start), tc.duration))
		})
	}

	t.Run("insert refuses overlap", func(t *testing.T) {
		err := cal.Insert(newAppointment(t, mustKey(t, "2025-06-10", "15:00"), "u2", 60))
		assert.ErrorIs(t, err, calendar.ErrSlotOccupied)
		assert.Equal(t, 1, cal.Len())
	})

	t.Run("other dates are independent", func(t *testing.T) {
		assert.True(t, cal.Fits(mustKey(t, "2025-06-11", "14:00"), 90))
	})
}

func TestCalendarQueries(t *testing.T) {
	cal := calendar.New(30)
	require.NoError(t, cal.Insert(newAppointment(t, mustKey(t, "2025-06-10", "16:00"), "u1", 60)))
	require.NoError(t, cal.Insert(newAppointment(t, mustKey(t, "2025-06-10", "10:00"), "u2", 60)))
	require.NoError(t, cal.Insert(newAppointment(t, mustKey(t, "2025-05-01", "12:00"), "u1", 60)))

	all := cal.All()
	require.Len(t, all, 3)
	assert.Equal(t, "2025-05-01 12:00", all[0].Key().String())
	assert.Equal(t, "2025-06-10 10:00", all[1].Key().String())

	mine := cal.ForUser("u1")
	require.Len(t, mine, 2)
	assert.Equal(t, "2025-06-10 16:00", mine[1].Key().String())

	removed := cal.RemoveBefore(mustKey(t, "2025-06-01", "00:00").Date)
	require.Len(t, removed, 1)
	assert.Equal(t, 2, cal.Len())

	a, ok := cal.Remove(mustKey(t, "2025-06-10", "10:00"))
	require.True(t, ok)
	assert.Equal(t, "u2", a.UserID())
	_, ok = cal.Remove(mustKey(t, "2025-06-10", "10:00"))
	assert.False(t, ok)
	assert.Len(t, cal.Day(a.Key().Date), 1)
}

func TestNewAppointmentValidation(t *testing.T) {
	name, err := client.NewName("Anna")
	require.NoError(t, err)
	phone, err := client.NewPhone("79161234567")
	require.NoError(t, err)

	base := calendar.AppointmentParams{
		Key:             mustKey(t, "2025-06-10", "14:00"),
		UserID:          "u1",
		ClientName:      name,
		ClientPhone:     phone,
		ServiceID:       "manicure",
		DurationMinutes: 60,
		PriceMinorUnits: 1500,
		ReservationID:   "r1",
	}

	a, err := calendar.NewAppointment(base)
	require.NoError(t, err)
	assert.True(t, a.IsPaid())
	assert.Equal(t, "15:00", a.End().String())

	cases := []struct {
		name   string
		mutate func(p *calendar.AppointmentParams)
		errIs  error
	}{
		{name: "negative price", mutate: func(p *calendar.AppointmentParams) { p.PriceMinorUnits = -1 }, errIs: calendar.ErrNegativePrice},
		{name: "zero duration", mutate: func(p *calendar.AppointmentParams) { p.DurationMinutes = 0 }, errIs: calendar.ErrInvalidDuration},
		{name: "missing reservation", mutate: func(p *calendar.AppointmentParams) { p.ReservationID = "" }, errIs: calendar.ErrMissingReservation},
		{name: "missing user", mutate: func(p *calendar.AppointmentParams) { p.UserID = "" }, errIs: client.ErrInvalidUserID},
		{name: "zero date", mutate: func(p *calendar.AppointmentParams) { p.Key = calendar.SlotKey{} }, errIs: calendar.ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := base
			tc.mutate(&p)
			_, err := calendar.NewAppointment(p)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
