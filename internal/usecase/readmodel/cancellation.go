package readmodel

import (
	"time"

	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/domain/cancellation"
	"salon-booking/internal/domain/refund"
)

type QuoteRM struct {
	Appointment       AppointmentRM `json:"appointment"`
	RefundMinorUnits  int64         `json:"refund_minor_units"`
	PenaltyMinorUnits int64         `json:"penalty_minor_units"`
	Percent           int           `json:"percent"`
	HoursLeft         float64       `json:"hours_left"`
}

func FromQuote(q refund.Quote, a *calendar.Appointment) QuoteRM {
	return QuoteRM{
		Appointment:       FromAppointment(a),
		RefundMinorUnits:  q.RefundMinorUnits,
		PenaltyMinorUnits: q.PenaltyMinorUnits,
		Percent:           q.Percent,
		HoursLeft:         q.HoursLeft,
	}
}

type CancellationRM struct {
	Appointment       AppointmentRM `json:"appointment"`
	RefundMinorUnits  int64         `json:"refund_minor_units"`
	PenaltyMinorUnits int64         `json:"penalty_minor_units"`
	Percent           int           `json:"percent"`
	CancelledAt       time.Time     `json:"cancelled_at"`
	ActorID           string        `json:"actor_id"`
	ActorKind         string        `json:"actor_kind"`
}

func FromCancellation(r *cancellation.Record) CancellationRM {
	return CancellationRM{
		Appointment:       FromAppointment(r.Appointment()),
		RefundMinorUnits:  r.RefundMinorUnits(),
		PenaltyMinorUnits: r.PenaltyMinorUnits(),
		Percent:           r.Percent(),
		CancelledAt:       r.CancelledAt(),
		ActorID:           r.Actor().ID,
		ActorKind:         r.Actor().Kind(),
	}
}

func FromCancellations(rs []*cancellation.Record) []CancellationRM {
	out := make([]CancellationRM, len(rs))
	for i, r := range rs {
		out[i] = FromCancellation(r)
	}
	return out
}
