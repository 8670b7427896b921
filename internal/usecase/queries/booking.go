package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"

	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/domain/cancellation"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/readmodel"
)

var ErrProfileNotFound = errs.New("profile not found")

type BookingQueries interface {
	ListServices(ctx context.Context) []readmodel.ServiceRM
	FreeSlots(ctx context.Context, serviceID, date string) (*readmodel.FreeSlotsRM, error)
	ListAppointmentsForUser(ctx context.Context, userID string) []readmodel.AppointmentRM
	ListCancellationsForUser(ctx context.Context, userID string) []readmodel.CancellationRM
	// Quote hides appointments the actor may not access behind ErrAppointmentNotFound.
	Quote(ctx context.Context, date, at string, actor cancellation.Actor) (*readmodel.QuoteRM, error)
	Profile(ctx context.Context, userID string) (*readmodel.ClientRM, error)
}

type bookingQueriesImpl struct {
	reader Reader
	clock  clock.Clock
}

func NewBookingQueries(reader Reader, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{reader: reader, clock: clk}
}

func (q *bookingQueriesImpl) ListServices(_ context.Context) []readmodel.ServiceRM {
	return readmodel.FromServices(q.reader.ListServices())
}

func (q *bookingQueriesImpl) FreeSlots(_ context.Context, serviceID, date string) (*readmodel.FreeSlotsRM, error) {
	d, err := calendar.ParseDate(date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	slots, err := q.reader.FreeSlots(d, serviceID)
	if err != nil {
		return nil, err
	}
	rm := readmodel.FromFreeSlots(serviceID, d, slots)
	return &rm, nil
}

func (q *bookingQueriesImpl) ListAppointmentsForUser(_ context.Context, userID string) []readmodel.AppointmentRM {
	return readmodel.FromAppointments(q.reader.ListAppointmentsForUser(userID))
}

func (q *bookingQueriesImpl) ListCancellationsForUser(_ context.Context, userID string) []readmodel.CancellationRM {
	return readmodel.FromCancellations(q.reader.ListCancellationsForUser(userID))
}

func (q *bookingQueriesImpl) Quote(_ context.Context, date, at string, actor cancellation.Actor) (*readmodel.QuoteRM, error) {
	key, err := calendar.NewSlotKey(date, at)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	quote, appt, err := q.reader.Quote(key, actor, q.clock.Now())
	if err != nil {
		return nil, err
	}
	rm := readmodel.FromQuote(quote, appt)
	return &rm, nil
}

func (q *bookingQueriesImpl) Profile(_ context.Context, userID string) (*readmodel.ClientRM, error) {
	p, ok := q.reader.Profile(userID)
	if !ok {
		return nil, ErrProfileNotFound
	}
	rm := readmodel.FromProfile(p)
	return &rm, nil
}
