//go:build unit

package scheduling_test

import (
	"sync"
	"testing"
	"time"

	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/domain/cancellation"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/scheduling"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC)

func newEngine(t *testing.T) (*scheduling.Engine, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(start)
	e := scheduling.NewEngine(scheduling.Options{
		Clock:    clk,
		Location: time.UTC,
		HoldTTL:  20 * time.Minute,
	})
	return e, clk
}

func holdReq(serviceID, date, at, userID string) scheduling.HoldRequest {
	return scheduling.HoldRequest{
		ServiceID: serviceID,
		Date:      date,
		Start:     at,
		Name:      "Anna",
		Phone:     "+7 (916) 123-45-67",
		UserID:    userID,
	}
}

func key(t *testing.T, date, at string) calendar.SlotKey {
	t.Helper()
	k, err := calendar.NewSlotKey(date, at)
	require.NoError(t, err)
	return k
}

func mustDate(t *testing.T, s string) calendar.Date {
	t.Helper()
	d, err := calendar.ParseDate(s)
	require.NoError(t, err)
	return d
}

func slotStrings(slots []calendar.TimeOfDay) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func TestManicureScenario(t *testing.T) {
	e, _ := newEngine(t)
	date := mustDate(t, "2025-06-10")

	before, err := e.FreeSlots(date, "manicure")
	require.NoError(t, err)
	assert.Contains(t, slotStrings(before), "14:00")

	hold, err := e.Hold(holdReq("manicure", "2025-06-10", "14:00", "U1"))
	require.NoError(t, err)
	appt, err := e.Confirm(hold.ID())
	require.NoError(t, err)

	assert.True(t, appt.IsPaid())
	assert.Equal(t, int64(1500), appt.PriceMinorUnits())
	assert.Equal(t, hold.ID(), appt.ReservationID())
	require.Len(t, e.ListAllAppointments(), 1)
	assert.Equal(t, 0, e.PendingCount())

	after, err := e.FreeSlots(date, "manicure")
	require.NoError(t, err)
	assert.NotContains(t, slotStrings(after), "14:00")
	assert.Len(t, after, len(before)-1)

	apptAt := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	owner := cancellation.Actor{ID: "U1"}

	early, _, err := e.Quote(appt.Key(), owner, apptAt.Add(-25*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1500), early.RefundMinorUnits)
	assert.Equal(t, int64(0), early.PenaltyMinorUnits)
	assert.Equal(t, 100, early.Percent)

	late, _, err := e.Quote(appt.Key(), owner, apptAt.Add(-2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(0), late.RefundMinorUnits)
	assert.Equal(t, int64(1500), late.PenaltyMinorUnits)

	rec, err := e.Cancel(appt.Key(), owner, apptAt.Add(-2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1500), rec.PenaltyMinorUnits())
	assert.Empty(t, e.ListAllAppointments())
	assert.Len(t, e.ListCancellationsForUser("U1"), 1)
	assert.Empty(t, e.ListCancellationsForUser("U2"))
}

func TestHoldValidation(t *testing.T) {
	e, _ := newEngine(t)

	cases := []struct {
		name   string
		mutate func(r *scheduling.HoldRequest)
		errIs  error
	}{
		{name: "unknown service", mutate: func(r *scheduling.HoldRequest) { r.ServiceID = "massage" }, errIs: errs.ErrUnknownService},
		{name: "bad date", mutate: func(r *scheduling.HoldRequest) { r.Date = "2025-13-01" }, errIs: errs.ErrInvalidInput},
		{name: "short name", mutate: func(r *scheduling.HoldRequest) { r.Name = "A" }, errIs: errs.ErrInvalidInput},
		{name: "bad phone", mutate: func(r *scheduling.HoldRequest) { r.Phone = "12345" }, errIs: errs.ErrInvalidInput},
		{name: "no user", mutate: func(r *scheduling.HoldRequest) { r.UserID = "" }, errIs: errs.ErrInvalidInput},
		{name: "off cadence", mutate: func(r *scheduling.HoldRequest) { r.Start = "14:30" }, errIs: errs.ErrSlotUnavailable},
		{name: "runs past closing", mutate: func(r *scheduling.HoldRequest) {
			r.ServiceID = "pedicure"
			r.Start = "19:00"
		}, errIs: errs.ErrSlotUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := holdReq("manicure", "2025-06-10", "14:00", "U1")
			tc.mutate(&req)
			_, err := e.Hold(req)
			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
		})
	}
	assert.Equal(t, 0, e.PendingCount())
}

func TestUnknownServiceIsAlsoInvalidInput(t *testing.T) {
	e, _ := newEngine(t)
	_, err := e.FreeSlots(mustDate(t, "2025-06-10"), "massage")
	assert.True(t, errs.Is(err, errs.ErrUnknownService))
	assert.True(t, errs.Is(err, errs.ErrInvalidInput))
}

func TestAvailabilityConsistency(t *testing.T) {
	e, _ := newEngine(t)
	date := mustDate(t, "2025-06-11")

	h, err := e.Hold(holdReq("pedicure", "2025-06-11", "12:00", "U1"))
	require.NoError(t, err)
	_, err = e.Confirm(h.ID())
	require.NoError(t, err)

	free, err := e.FreeSlots(date, "manicure")
	require.NoError(t, err)
	offered := map[string]bool{}
	for _, s := range slotStrings(free) {
		offered[s] = true
	}

	for hour := 10; hour < 20; hour++ {
		tod, err := calendar.NewTimeOfDay(hour, 0)
		require.NoError(t, err)
		hold, err := e.Hold(holdReq("manicure", "2025-06-11", tod.String(), "U2"))
		if !offered[tod.String()] {
			assert.True(t, errs.Is(err, errs.ErrSlotUnavailable), "%s should be unavailable", tod)
			continue
		}
		require.NoError(t, err, "%s should be holdable", tod)
		_, err = e.Confirm(hold.ID())
		require.NoError(t, err, "%s should confirm", tod)
	}
	assert.NotContains(t, offered, "12:00")
	assert.NotContains(t, offered, "13:00")
}

func TestConfirmRace(t *testing.T) {
	e, _ := newEngine(t)

	const contenders = 16
	ids := make([]string, contenders)
	for i := range ids {
		h, err := e.Hold(holdReq("manicure", "2025-06-10", "15:00", "U"+string(rune('a'+i))))
		require.NoError(t, err)
		ids[i] = h.ID()
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		wins    int
		losses  int
		release = make(chan struct{})
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			<-release
			_, err := e.Confirm(id)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errs.Is(err, errs.ErrSlotNoLongerAvailable):
				losses++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(id)
	}
	close(release)
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, contenders-1, losses)
	assert.Len(t, e.ListAllAppointments(), 1)
	assert.Equal(t, 0, e.PendingCount(), "losing holds are discarded")
}

func TestOverlappingServicesRace(t *testing.T) {
	e, _ := newEngine(t)

	// 90 minute pedicure at 10:00 occupies the 11:00 checkpoint of a manicure.
	long, err := e.Hold(holdReq("pedicure", "2025-06-10", "10:00", "U1"))
	require.NoError(t, err)
	short, err := e.Hold(holdReq("manicure", "2025-06-10", "11:00", "U2"))
	require.NoError(t, err)

	_, err = e.Confirm(long.ID())
	require.NoError(t, err)
	_, err = e.Confirm(short.ID())
	assert.True(t, errs.Is(err, errs.ErrSlotNoLongerAvailable))
}

func TestDiscardIsIdempotent(t *testing.T) {
	e, _ := newEngine(t)

	h, err := e.Hold(holdReq("cover", "2025-06-10", "10:00", "U1"))
	require.NoError(t, err)

	assert.True(t, e.Discard(h.ID()))
	assert.False(t, e.Discard(h.ID()))
	assert.False(t, e.Discard("never-issued"))

	confirmed, err := e.Hold(holdReq("cover", "2025-06-10", "11:00", "U1"))
	require.NoError(t, err)
	_, err = e.Confirm(confirmed.ID())
	require.NoError(t, err)
	assert.False(t, e.Discard(confirmed.ID()))
	assert.Len(t, e.ListAllAppointments(), 1)

	_, err = e.Confirm(h.ID())
	assert.True(t, errs.Is(err, errs.ErrReservationNotFound))
}

func TestHoldExpiry(t *testing.T) {
	e, clk := newEngine(t)

	stale, err := e.Hold(holdReq("manicure", "2025-06-10", "10:00", "U1"))
	require.NoError(t, err)
	clk.Add(10 * time.Minute)
	fresh, err := e.Hold(holdReq("manicure", "2025-06-10", "12:00", "U2"))
	require.NoError(t, err)

	clk.Add(10 * time.Minute)
	_, err = e.Confirm(stale.ID())
	assert.True(t, errs.Is(err, errs.ErrReservationNotFound), "hold expires exactly at ttl")

	expired := e.ExpireHolds(clk.Now().Add(10 * time.Minute))
	require.Len(t, expired, 1)
	assert.Equal(t, fresh.ID(), expired[0].ID())
	assert.Equal(t, 0, e.PendingCount())
}

func TestCancelVisibility(t *testing.T) {
	e, clk := newEngine(t)

	h, err := e.Hold(holdReq("manicure", "2025-06-12", "16:00", "U1"))
	require.NoError(t, err)
	appt, err := e.Confirm(h.ID())
	require.NoError(t, err)

	_, err = e.Cancel(appt.Key(), cancellation.Actor{ID: "U2"}, clk.Now())
	assert.True(t, errs.Is(err, errs.ErrAppointmentNotFound))
	_, _, err = e.Quote(appt.Key(), cancellation.Actor{ID: "U2"}, clk.Now())
	assert.True(t, errs.Is(err, errs.ErrAppointmentNotFound))

	rec, err := e.Cancel(appt.Key(), cancellation.Actor{ID: "operator", Operator: true}, clk.Now())
	require.NoError(t, err)
	assert.Equal(t, "operator", rec.Actor().Kind())

	_, err = e.Cancel(appt.Key(), cancellation.Actor{ID: "operator", Operator: true}, clk.Now())
	assert.True(t, errs.Is(err, errs.ErrAppointmentNotFound))
}

func TestSummary(t *testing.T) {
	e, clk := newEngine(t)

	book := func(date, at, user string) *calendar.Appointment {
		h, err := e.Hold(holdReq("manicure", date, at, user))
		require.NoError(t, err)
		a, err := e.Confirm(h.ID())
		require.NoError(t, err)
		return a
	}
	book("2025-06-09", "15:00", "U1")
	book("2025-06-10", "10:00", "U2")
	cancelled := book("2025-06-12", "10:00", "U1")
	_, err := e.Cancel(cancelled.Key(), cancellation.Actor{ID: "U1"}, clk.Now())
	require.NoError(t, err)
	_, err = e.Hold(holdReq("cover", "2025-06-13", "10:00", "U3"))
	require.NoError(t, err)

	got := e.Summary(clk.Now())
	want := scheduling.Summary{
		ActiveCount:       2,
		PaidCount:         2,
		Revenue:           3000,
		CancelledCount:    1,
		TodayCount:        1,
		TodayPaidCount:    1,
		ClientCount:       2,
		AverageCheck:      1500,
		RefundTotal:       1500,
		NetIncome:         1500,
		PendingCount:      1,
		ConversionPercent: 100,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestPurgeBefore(t *testing.T) {
	e, _ := newEngine(t)

	for _, date := range []string{"2025-06-09", "2025-06-10", "2025-06-11"} {
		h, err := e.Hold(holdReq("cover", date, "10:00", "U1"))
		require.NoError(t, err)
		_, err = e.Confirm(h.ID())
		require.NoError(t, err)
	}
	v := e.Version()

	removed := e.PurgeBefore(mustDate(t, "2025-06-11"))
	require.Len(t, removed, 2)
	assert.Equal(t, "2025-06-09", removed[0].Key().Date.String())
	assert.Len(t, e.ListAllAppointments(), 1)
	assert.Greater(t, e.Version(), v)

	assert.Empty(t, e.PurgeBefore(mustDate(t, "2025-06-11")))
}

func TestSnapshotRestore(t *testing.T) {
	e, clk := newEngine(t)

	h, err := e.Hold(holdReq("manicure", "2025-06-10", "14:00", "U1"))
	require.NoError(t, err)
	appt, err := e.Confirm(h.ID())
	require.NoError(t, err)
	_, err = e.Hold(holdReq("cover", "2025-06-10", "10:00", "U2"))
	require.NoError(t, err)
	other, err := e.Hold(holdReq("cover", "2025-06-11", "10:00", "U2"))
	require.NoError(t, err)
	otherAppt, err := e.Confirm(other.ID())
	require.NoError(t, err)
	_, err = e.Cancel(otherAppt.Key(), cancellation.Actor{ID: "U2"}, clk.Now())
	require.NoError(t, err)

	snap := e.Snapshot()
	restored, _ := newEngine(t)
	report := restored.Restore(snap)

	assert.Equal(t, scheduling.RestoreReport{Appointments: 1, Profiles: 2, Pending: 1, Cancellations: 1}, report)
	got, ok := restored.Profile("U1")
	require.True(t, ok)
	assert.Equal(t, "Anna", got.Name().String())
	all := restored.ListAllAppointments()
	require.Len(t, all, 1)
	assert.Equal(t, appt.ReservationID(), all[0].ReservationID())

	t.Run("overlapping appointments are dropped", func(t *testing.T) {
		dup := snap
		dup.Appointments = append(dup.Appointments, appt)
		report := restored.Restore(dup)
		assert.Equal(t, 1, report.Appointments)
		assert.Equal(t, 1, report.Dropped)
	})

	t.Run("restored calendar still guards its slots", func(t *testing.T) {
		_, err := restored.Hold(holdReq("manicure", "2025-06-10", "14:00", "U3"))
		assert.True(t, errs.Is(err, errs.ErrSlotUnavailable))

		q, _, err := restored.Quote(key(t, "2025-06-10", "14:00"), cancellation.Actor{ID: "U1"}, clk.Now())
		require.NoError(t, err)
		assert.Equal(t, int64(1500), q.RefundMinorUnits)
	})
}
