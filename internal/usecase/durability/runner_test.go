//go:build unit

package durability_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/metrics"
	"salon-booking/internal/usecase/durability"
	"salon-booking/internal/usecase/scheduling"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu      sync.Mutex
	snap    scheduling.Snapshot
	saves   int
	loadErr error
	saveErr error
}

func (s *memoryStore) Load(context.Context) (scheduling.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap, s.loadErr
}

func (s *memoryStore) Save(_ context.Context, snap scheduling.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.snap = snap
	s.saves++
	return nil
}

func (s *memoryStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

type fixture struct {
	engine  *scheduling.Engine
	store   *memoryStore
	clock   *clock.MockClock
	metrics *metrics.Metrics
	runner  *durability.Runner
}

func newFixture(t *testing.T, opts durability.Options) *fixture {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := scheduling.NewEngine(scheduling.Options{
		Clock:    clk,
		Location: time.UTC,
		HoldTTL:  20 * time.Minute,
		Logger:   logger,
	})
	store := &memoryStore{}
	m := metrics.New()
	return &fixture{
		engine:  engine,
		store:   store,
		clock:   clk,
		metrics: m,
		runner:  durability.NewRunner(engine, store, clk, m, logger, opts),
	}
}

func (f *fixture) hold(t *testing.T, at string) string {
	t.Helper()
	h, err := f.engine.Hold(scheduling.HoldRequest{
		ServiceID: "manicure",
		Date:      "2025-06-10",
		Start:     at,
		Name:      "Anna",
		Phone:     "79161234567",
		UserID:    "tg:1",
	})
	require.NoError(t, err)
	return h.ID()
}

func TestRestore(t *testing.T) {
	t.Run("load failure starts empty", func(t *testing.T) {
		f := newFixture(t, durability.Options{})
		f.store.loadErr = errors.New("disk gone")

		f.runner.Restore(context.Background())
		assert.Empty(t, f.engine.ListAllAppointments())

		require.NoError(t, f.runner.Flush(context.Background()))
		assert.Equal(t, 1, f.store.saveCount(), "an unreadable store is overwritten on the first flush")
	})

	t.Run("restored state is not saved again until it changes", func(t *testing.T) {
		src := newFixture(t, durability.Options{})
		id := src.hold(t, "14:00")
		_, err := src.engine.Confirm(id)
		require.NoError(t, err)
		src.hold(t, "16:00")

		f := newFixture(t, durability.Options{})
		f.store.snap = src.engine.Snapshot()
		f.runner.Restore(context.Background())

		assert.Len(t, f.engine.ListAllAppointments(), 1)
		assert.Equal(t, 1, f.engine.PendingCount())
		assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.PendingHolds))

		require.NoError(t, f.runner.Flush(context.Background()))
		assert.Equal(t, 0, f.store.saveCount())
	})
}

func TestFlush(t *testing.T) {
	f := newFixture(t, durability.Options{})
	f.runner.Restore(context.Background())
	ctx := context.Background()

	f.hold(t, "10:00")
	require.NoError(t, f.runner.Flush(ctx))
	require.NoError(t, f.runner.Flush(ctx))
	assert.Equal(t, 1, f.store.saveCount(), "unchanged state is skipped")

	f.store.saveErr = errors.New("read-only file system")
	f.hold(t, "11:00")
	err := f.runner.Flush(ctx)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrPersistenceDegraded))
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.PersistFailures))
	assert.Equal(t, 2, f.engine.PendingCount(), "in-memory state is untouched by a failed save")

	f.store.saveErr = nil
	require.NoError(t, f.runner.Flush(ctx))
	assert.Equal(t, 2, f.store.saveCount())
	assert.Len(t, f.store.snap.Pending, 2)
}

func TestSweep(t *testing.T) {
	f := newFixture(t, durability.Options{})
	f.runner.Restore(context.Background())

	f.hold(t, "10:00")
	f.clock.Add(15 * time.Minute)
	f.hold(t, "12:00")
	f.clock.Add(5 * time.Minute)

	assert.Equal(t, 1, f.runner.Sweep(context.Background()))
	assert.Equal(t, 1, f.engine.PendingCount())
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.ExpiredHolds))
	assert.Equal(t, 0, f.runner.Sweep(context.Background()))
}

func TestStartStop(t *testing.T) {
	f := newFixture(t, durability.Options{FlushInterval: time.Hour, SweepInterval: time.Hour, ShutdownTimeout: time.Second})
	ctx := context.Background()
	f.runner.Restore(ctx)
	f.runner.Start(ctx)

	f.hold(t, "10:00")
	f.runner.RequestFlush()
	f.runner.RequestFlush()
	assert.Eventually(t, func() bool { return f.store.saveCount() == 1 }, time.Second, 5*time.Millisecond)

	f.hold(t, "12:00")
	require.NoError(t, f.runner.Stop(ctx))
	assert.Equal(t, 2, f.store.saveCount())
	assert.Len(t, f.store.snap.Pending, 2)
}

func TestStopReportsFinalSaveFailure(t *testing.T) {
	f := newFixture(t, durability.Options{ShutdownTimeout: time.Second})
	ctx := context.Background()
	f.runner.Restore(ctx)
	f.hold(t, "10:00")
	f.store.saveErr = errors.New("no space left on device")

	err := f.runner.Stop(ctx)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrPersistenceDegraded))
}
