package commands

import (
	"time"

	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/domain/cancellation"
	"salon-booking/internal/domain/reservation"
	"salon-booking/internal/usecase/scheduling"
)

// Scheduler is the write side of the scheduling engine.
type Scheduler interface {
	Hold(req scheduling.HoldRequest) (*reservation.Hold, error)
	Confirm(reservationID string) (*calendar.Appointment, error)
	Discard(reservationID string) bool
	Cancel(key calendar.SlotKey, actor cancellation.Actor, now time.Time) (*cancellation.Record, error)
	PurgeBefore(cutoff calendar.Date) []*calendar.Appointment
	PendingCount() int
	HoldTTL() time.Duration
	Location() *time.Location
}

// FlushRequester schedules an asynchronous snapshot save. It must not block.
type FlushRequester interface {
	RequestFlush()
}
