package durability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"salon-booking/internal/domain/reservation"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/metrics"
	"salon-booking/internal/usecase/scheduling"
)

// Store is a Persistence Gateway backend. Load must degrade missing or corrupt
// collections to empty ones and only fail when nothing at all can be read.
type Store interface {
	Load(ctx context.Context) (scheduling.Snapshot, error)
	Save(ctx context.Context, snap scheduling.Snapshot) error
}

// Engine is what the runner needs from the scheduling engine.
type Engine interface {
	Snapshot() scheduling.Snapshot
	Restore(snap scheduling.Snapshot) scheduling.RestoreReport
	ExpireHolds(now time.Time) []*reservation.Hold
	Version() uint64
	PendingCount() int
}

type Options struct {
	FlushInterval   time.Duration
	SweepInterval   time.Duration
	ShutdownTimeout time.Duration
}

// Runner keeps the store in step with the engine: it restores once at start,
// saves whenever a flush is requested or the flush timer fires, expires stale
// holds, and saves a last time on shutdown. Saves never run on a request path.
type Runner struct {
	engine  Engine
	store   Store
	clock   clock.Clock
	metrics *metrics.Metrics
	logger  *slog.Logger
	opts    Options

	flushCh chan struct{}

	saveMu       sync.Mutex
	savedVersion uint64
	saved        bool

	cancel context.CancelFunc
	done   chan struct{}
}

func NewRunner(engine Engine, store Store, clk clock.Clock, m *metrics.Metrics, logger *slog.Logger, opts Options) *Runner {
	return &Runner{
		engine:  engine,
		store:   store,
		clock:   clk,
		metrics: m,
		logger:  logger,
		opts:    opts,
		flushCh: make(chan struct{}, 1),
	}
}

// Restore loads the snapshot into the engine. A failing store leaves the engine
// empty and is logged; startup continues either way.
func (r *Runner) Restore(ctx context.Context) {
	snap, err := r.store.Load(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "snapshot load failed, starting empty", "error", err)
		snap = scheduling.Snapshot{}
	}
	report := r.engine.Restore(snap)
	r.metrics.PendingHolds.Set(float64(r.engine.PendingCount()))

	r.saveMu.Lock()
	r.savedVersion = r.engine.Version()
	r.saved = err == nil
	r.saveMu.Unlock()

	r.logger.InfoContext(ctx, "state restored",
		"appointments", report.Appointments,
		"profiles", report.Profiles,
		"pending", report.Pending,
		"cancellations", report.Cancellations,
		"dropped", report.Dropped)
}

// RequestFlush coalesces: while one request is queued, further ones are dropped.
func (r *Runner) RequestFlush() {
	select {
	case r.flushCh <- struct{}{}:
	default:
	}
}

// Flush saves the current snapshot unless the engine has not changed since the
// last successful save. Failures are marked ErrPersistenceDegraded and retried
// by the next flush.
func (r *Runner) Flush(ctx context.Context) error {
	r.saveMu.Lock()
	defer r.saveMu.Unlock()

	snap := r.engine.Snapshot()
	if r.saved && snap.Version == r.savedVersion {
		return nil
	}

	started := time.Now()
	err := r.store.Save(ctx, snap)
	r.metrics.PersistDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		r.metrics.PersistFailures.Inc()
		err = errs.Mark(err, errs.ErrPersistenceDegraded)
		r.logger.ErrorContext(ctx, "snapshot save failed, durability degraded", "error", err, "version", snap.Version)
		return err
	}
	r.savedVersion = snap.Version
	r.saved = true
	return nil
}

// Sweep expires stale holds and returns how many were released.
func (r *Runner) Sweep(ctx context.Context) int {
	expired := r.engine.ExpireHolds(r.clock.Now())
	if len(expired) == 0 {
		return 0
	}
	r.metrics.ExpiredHolds.Add(float64(len(expired)))
	r.metrics.PendingHolds.Set(float64(r.engine.PendingCount()))
	for _, h := range expired {
		r.logger.InfoContext(ctx, "hold expired",
			"reservation_id", h.ID(),
			"user_id", h.UserID(),
			"slot", h.Key().String())
	}
	r.RequestFlush()
	return len(expired)
}

// Run blocks until ctx is done.
func (r *Runner) Run(ctx context.Context) {
	flush := newTicker(r.opts.FlushInterval)
	defer flush.Stop()
	sweep := newTicker(r.opts.SweepInterval)
	defer sweep.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.flushCh:
			_ = r.Flush(ctx)
		case <-flush.C:
			_ = r.Flush(ctx)
		case <-sweep.C:
			r.Sweep(ctx)
		}
	}
}

// Start launches Run in the background.
func (r *Runner) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r.cancel = cancel
	r.done = make(chan struct{})
	go func() {
		defer close(r.done)
		r.Run(runCtx)
	}()
}

// Stop halts the loop and performs the final save within ShutdownTimeout.
func (r *Runner) Stop(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
		<-r.done
	}
	timeout := r.opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := r.Flush(saveCtx); err != nil {
		return errs.Wrap(err, "final snapshot save")
	}
	r.logger.InfoContext(ctx, "final snapshot saved")
	return nil
}

type ticker struct {
	C    <-chan time.Time
	stop func()
}

func (t ticker) Stop() { t.stop() }

// newTicker returns a ticker that never fires for a non-positive interval.
func newTicker(d time.Duration) ticker {
	if d <= 0 {
		return ticker{C: nil, stop: func() {}}
	}
	t := time.NewTicker(d)
	return ticker{C: t.C, stop: t.Stop}
}
