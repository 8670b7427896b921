package scheduling

import (
	"log/slog"
	"sync"
	"time"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/domain/cancellation"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/client"
	"salon-booking/internal/domain/refund"
	"salon-booking/internal/domain/reservation"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
)

type Options struct {
	Catalog  *catalog.Catalog
	Hours    availability.BusinessHours
	Refunds  refund.Policy
	Clock    clock.Clock
	Location *time.Location
	// HoldTTL <= 0 disables expiry.
	HoldTTL time.Duration
	Logger  *slog.Logger
}

// Engine owns the calendar, the user directory, the pending holds and the
// cancellation history. Every mutation runs under mu; reads take the read lock
// and return values that stay valid after it is released.
type Engine struct {
	catalog  *catalog.Catalog
	hours    availability.BusinessHours
	refunds  refund.Policy
	clock    clock.Clock
	location *time.Location
	holdTTL  time.Duration
	logger   *slog.Logger

	mu        sync.RWMutex
	calendar  *calendar.Calendar
	directory *client.Directory
	pending   map[string]*reservation.Hold
	history   []*cancellation.Record
	// version increases on every committed mutation; the flusher skips unchanged state.
	version uint64
}

func NewEngine(opts Options) *Engine {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Hours == (availability.BusinessHours{}) {
		opts.Hours = availability.DefaultBusinessHours()
	}
	if len(opts.Refunds.Tiers()) == 0 {
		opts.Refunds = refund.DefaultPolicy()
	}
	if opts.Clock == nil {
		opts.Clock = clock.NewRealClock()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Engine{
		catalog:   opts.Catalog,
		hours:     opts.Hours,
		refunds:   opts.Refunds,
		clock:     opts.Clock,
		location:  opts.Location,
		holdTTL:   opts.HoldTTL,
		logger:    opts.Logger,
		calendar:  calendar.New(opts.Hours.Granularity()),
		directory: client.NewDirectory(),
		pending:   make(map[string]*reservation.Hold),
	}
}

func (e *Engine) Location() *time.Location          { return e.location }
func (e *Engine) Hours() availability.BusinessHours { return e.hours }
func (e *Engine) HoldTTL() time.Duration            { return e.holdTTL }

func (e *Engine) Version() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.version
}

func (e *Engine) ListServices() []*catalog.Service {
	return e.catalog.List()
}

func (e *Engine) lookupService(serviceID string) (*catalog.Service, error) {
	svc, ok := e.catalog.Lookup(catalog.ServiceID(serviceID))
	if !ok {
		return nil, errs.Mark(errs.Wrapf(errs.ErrUnknownService, "service %q", serviceID), errs.ErrInvalidInput)
	}
	return svc, nil
}

// FreeSlots is unbounded by date range; horizons are a front-end policy.
func (e *Engine) FreeSlots(date calendar.Date, serviceID string) ([]calendar.TimeOfDay, error) {
	if date.IsZero() {
		return nil, errs.Mark(calendar.ErrInvalidDate, errs.ErrInvalidInput)
	}
	svc, err := e.lookupService(serviceID)
	if err != nil {
		return nil, err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	return availability.FreeSlots(e.calendar, e.hours, date, svc.DurationMinutes()), nil
}

type HoldRequest struct {
	ServiceID string
	Date      string
	Start     string
	Name      string
	Phone     string
	UserID    string
}

// Hold validates the request and parks a pending reservation. It does not touch
// the calendar, so several users may hold the same slot; Confirm decides.
func (e *Engine) Hold(req HoldRequest) (*reservation.Hold, error) {
	svc, err := e.lookupService(req.ServiceID)
	if err != nil {
		return nil, err
	}
	key, err := calendar.NewSlotKey(req.Date, req.Start)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	name, err := client.NewName(req.Name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	phone, err := client.NewPhone(req.Phone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	if err := client.ValidateUserID(req.UserID); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.hours.Admits(e.calendar, key, svc.DurationMinutes()) {
		return nil, errs.Wrapf(errs.ErrSlotUnavailable, "%s for %s", key, svc.ID())
	}

	hold, err := reservation.NewHold(reservation.HoldParams{
		UserID:          req.UserID,
		ServiceID:       svc.ID().String(),
		ServiceName:     svc.Name(),
		DurationMinutes: svc.DurationMinutes(),
		PriceMinorUnits: svc.PriceMinorUnits(),
		Key:             key,
		ClientName:      name,
		ClientPhone:     phone,
		CreatedAt:       e.clock.Now(),
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	e.pending[hold.ID()] = hold
	e.version++
	return hold.Clone(), nil
}

// Confirm is the single serialization point for the no-overlap invariant: the
// availability re-check and the calendar write happen under one write lock.
func (e *Engine) Confirm(reservationID string) (*calendar.Appointment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	hold, ok := e.pending[reservationID]
	if !ok {
		return nil, errs.Wrapf(errs.ErrReservationNotFound, "reservation %q", reservationID)
	}
	now := e.clock.Now()
	if hold.IsExpired(now, e.holdTTL) {
		_ = hold.Expire()
		delete(e.pending, reservationID)
		e.version++
		return nil, errs.Wrapf(errs.ErrReservationNotFound, "reservation %q expired", reservationID)
	}

	if !e.hours.Admits(e.calendar, hold.Key(), hold.DurationMinutes()) {
		_ = hold.Discard()
		delete(e.pending, reservationID)
		e.version++
		return nil, errs.Wrapf(errs.ErrSlotNoLongerAvailable, "%s", hold.Key())
	}

	appt, err := calendar.NewAppointment(calendar.AppointmentParams{
		Key:             hold.Key(),
		UserID:          hold.UserID(),
		ClientName:      hold.ClientName(),
		ClientPhone:     hold.ClientPhone(),
		ServiceID:       hold.ServiceID(),
		ServiceName:     hold.ServiceName(),
		DurationMinutes: hold.DurationMinutes(),
		PriceMinorUnits: hold.PriceMinorUnits(),
		ReservationID:   hold.ID(),
		ConfirmedAt:     now,
	})
	if err != nil {
		return nil, errs.Wrap(err, "build appointment")
	}
	if err := e.calendar.Insert(appt); err != nil {
		return nil, errs.Mark(err, errs.ErrSlotNoLongerAvailable)
	}
	_ = hold.Confirm()
	delete(e.pending, reservationID)

	if profile, err := client.NewProfile(hold.UserID(), hold.ClientName(), hold.ClientPhone()); err == nil {
		e.directory.Upsert(profile)
	}
	e.version++
	return appt, nil
}

// Discard reports whether a held reservation was removed. Unknown or resolved ids are a no-op.
func (e *Engine) Discard(reservationID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	hold, ok := e.pending[reservationID]
	if !ok {
		return false
	}
	_ = hold.Discard()
	delete(e.pending, reservationID)
	e.version++
	return true
}

// ExpireHolds removes every hold whose TTL elapsed by now and returns them.
func (e *Engine) ExpireHolds(now time.Time) []*reservation.Hold {
	e.mu.Lock()
	defer e.mu.Unlock()

	var expired []*reservation.Hold
	for id, hold := range e.pending {
		if !hold.IsExpired(now, e.holdTTL) {
			continue
		}
		_ = hold.Expire()
		delete(e.pending, id)
		expired = append(expired, hold.Clone())
	}
	if len(expired) > 0 {
		e.version++
	}
	return expired
}

func (e *Engine) GetHold(reservationID string) (*reservation.Hold, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	hold, ok := e.pending[reservationID]
	if !ok {
		return nil, false
	}
	return hold.Clone(), true
}

func (e *Engine) PendingCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.pending)
}

func (e *Engine) ListAppointmentsForUser(userID string) []*calendar.Appointment {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.calendar.ForUser(userID)
}

func (e *Engine) ListAllAppointments() []*calendar.Appointment {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.calendar.All()
}

func (e *Engine) ListCancellationsForUser(userID string) []*cancellation.Record {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]*cancellation.Record, 0)
	for _, r := range e.history {
		if r.Appointment().UserID() == userID {
			out = append(out, r)
		}
	}
	return out
}

func (e *Engine) Profile(userID string) (*client.Profile, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.directory.Get(userID)
}

// Quote previews the refund for cancelling the appointment at key. Foreign
// appointments look absent to non-operators.
func (e *Engine) Quote(key calendar.SlotKey, actor cancellation.Actor, now time.Time) (refund.Quote, *calendar.Appointment, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	appt, err := e.visibleAppointment(key, actor)
	if err != nil {
		return refund.Quote{}, nil, err
	}
	return e.refunds.Quote(appt.StartsAt(e.location), appt.PriceMinorUnits(), now), appt, nil
}

// Cancel removes the appointment and appends a history record priced at now. There is no undo.
func (e *Engine) Cancel(key calendar.SlotKey, actor cancellation.Actor, now time.Time) (*cancellation.Record, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	appt, err := e.visibleAppointment(key, actor)
	if err != nil {
		return nil, err
	}
	quote := e.refunds.Quote(appt.StartsAt(e.location), appt.PriceMinorUnits(), now)
	record, err := cancellation.NewRecord(appt, quote, actor, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	e.calendar.Remove(key)
	e.history = append(e.history, record)
	e.version++
	return record, nil
}

func (e *Engine) visibleAppointment(key calendar.SlotKey, actor cancellation.Actor) (*calendar.Appointment, error) {
	appt, ok := e.calendar.Get(key)
	if !ok || !actor.CanAccess(appt) {
		return nil, errs.Wrapf(errs.ErrAppointmentNotFound, "%s", key)
	}
	return appt, nil
}

// PurgeBefore drops appointments dated strictly before cutoff.
func (e *Engine) PurgeBefore(cutoff calendar.Date) []*calendar.Appointment {
	e.mu.Lock()
	defer e.mu.Unlock()

	removed := e.calendar.RemoveBefore(cutoff)
	if len(removed) > 0 {
		e.version++
	}
	return removed
}
