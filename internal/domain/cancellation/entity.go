package cancellation

import (
	"errors"
	"time"

	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/domain/client"
	"salon-booking/internal/domain/refund"
)

var (
	ErrMissingAppointment = errors.New("cancellation needs the cancelled appointment")
	ErrInconsistentRefund = errors.New("refund and penalty must be non-negative and sum to the paid amount")
)

// Actor is whoever asked for the cancellation. Non-operators may only act on their own appointments.
type Actor struct {
	ID       string
	Operator bool
}

func (a Actor) CanAccess(appt *calendar.Appointment) bool {
	return a.Operator || appt.UserID() == a.ID
}

func (a Actor) Kind() string {
	if a.Operator {
		return "operator"
	}
	return "client"
}

// Record is an append-only history entry; nothing mutates it after creation.
type Record struct {
	appointment *calendar.Appointment
	refund      int64
	penalty     int64
	percent     int
	cancelledAt time.Time
	actor       Actor
}

func NewRecord(appt *calendar.Appointment, quote refund.Quote, actor Actor, cancelledAt time.Time) (*Record, error) {
	if appt == nil {
		return nil, ErrMissingAppointment
	}
	if err := client.ValidateUserID(actor.ID); err != nil {
		return nil, err
	}
	if quote.RefundMinorUnits < 0 || quote.PenaltyMinorUnits < 0 ||
		quote.RefundMinorUnits+quote.PenaltyMinorUnits != appt.PriceMinorUnits() {
		return nil, ErrInconsistentRefund
	}
	return &Record{
		appointment: appt,
		refund:      quote.RefundMinorUnits,
		penalty:     quote.PenaltyMinorUnits,
		percent:     quote.Percent,
		cancelledAt: cancelledAt,
		actor:       actor,
	}, nil
}

func (r *Record) Appointment() *calendar.Appointment { return r.appointment }
func (r *Record) RefundMinorUnits() int64             { return r.refund }
func (r *Record) PenaltyMinorUnits() int64            { return r.penalty }
func (r *Record) Percent() int                        { return r.percent }
func (r *Record) CancelledAt() time.Time              { return r.cancelledAt }
func (r *Record) Actor() Actor                        { return r.actor }
