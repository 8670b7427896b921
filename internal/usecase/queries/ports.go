package queries

import (
	"time"

	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/domain/cancellation"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/client"
	"salon-booking/internal/domain/refund"
	"salon-booking/internal/usecase/scheduling"
)

// Reader is the read side of the scheduling engine.
type Reader interface {
	ListServices() []*catalog.Service
	FreeSlots(date calendar.Date, serviceID string) ([]calendar.TimeOfDay, error)
	ListAppointmentsForUser(userID string) []*calendar.Appointment
	ListAllAppointments() []*calendar.Appointment
	ListCancellationsForUser(userID string) []*cancellation.Record
	Quote(key calendar.SlotKey, actor cancellation.Actor, now time.Time) (refund.Quote, *calendar.Appointment, error)
	Profile(userID string) (*client.Profile, bool)
	Summary(now time.Time) scheduling.Summary
	Snapshot() scheduling.Snapshot
	HoldTTL() time.Duration
}
