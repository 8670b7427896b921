package scheduling

import (
	"sort"

	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/domain/cancellation"
	"salon-booking/internal/domain/client"
	"salon-booking/internal/domain/reservation"
)

// Snapshot is a point-in-time copy of the four durable collections. Appointments,
// profiles and records are immutable and shared; holds are cloned.
type Snapshot struct {
	Appointments  []*calendar.Appointment
	Profiles      []*client.Profile
	Pending       []*reservation.Hold
	Cancellations []*cancellation.Record
	Version       uint64
}

func (s Snapshot) IsEmpty() bool {
	return len(s.Appointments) == 0 && len(s.Profiles) == 0 && len(s.Pending) == 0 && len(s.Cancellations) == 0
}

type RestoreReport struct {
	Appointments  int
	Profiles      int
	Pending       int
	Cancellations int
	Dropped       int
}

func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	pending := make([]*reservation.Hold, 0, len(e.pending))
	for _, h := range e.pending {
		pending = append(pending, h.Clone())
	}
	sortHolds(pending)

	history := make([]*cancellation.Record, len(e.history))
	copy(history, e.history)

	return Snapshot{
		Appointments:  e.calendar.All(),
		Profiles:      e.directory.All(),
		Pending:       pending,
		Cancellations: history,
		Version:       e.version,
	}
}

// Restore replaces all state with snap. Appointments that would overlap an
// earlier one and holds that are no longer held or repeat an id are dropped and logged.
func (e *Engine) Restore(snap Snapshot) RestoreReport {
	cal := calendar.New(e.hours.Granularity())
	dir := client.NewDirectory()
	pending := make(map[string]*reservation.Hold, len(snap.Pending))
	var report RestoreReport

	for _, a := range snap.Appointments {
		if a == nil {
			report.Dropped++
			continue
		}
		if err := cal.Insert(a); err != nil {
			report.Dropped++
			e.logger.Warn("dropping overlapping appointment on restore",
				"slot", a.Key().String(),
				"user_id", a.UserID(),
				"reservation_id", a.ReservationID())
			continue
		}
		report.Appointments++
	}
	for _, p := range snap.Profiles {
		if p == nil {
			report.Dropped++
			continue
		}
		dir.Upsert(p)
	}
	report.Profiles = dir.Len()
	for _, h := range snap.Pending {
		if h == nil || h.Status() != reservation.StatusHeld {
			report.Dropped++
			continue
		}
		if _, dup := pending[h.ID()]; dup {
			report.Dropped++
			e.logger.Warn("dropping duplicate hold on restore", "reservation_id", h.ID())
			continue
		}
		pending[h.ID()] = h.Clone()
		report.Pending++
	}
	history := make([]*cancellation.Record, 0, len(snap.Cancellations))
	for _, r := range snap.Cancellations {
		if r == nil {
			report.Dropped++
			continue
		}
		history = append(history, r)
	}
	report.Cancellations = len(history)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.calendar = cal
	e.directory = dir
	e.pending = pending
	e.history = history
	e.version++
	return report
}

func sortHolds(hs []*reservation.Hold) {
	sort.Slice(hs, func(i, j int) bool {
		if !hs[i].CreatedAt().Equal(hs[j].CreatedAt()) {
			return hs[i].CreatedAt().Before(hs[j].CreatedAt())
		}
		return hs[i].ID() < hs[j].ID()
	})
}
