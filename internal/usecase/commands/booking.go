package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"log/slog"

	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/domain/cancellation"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/metrics"
	"salon-booking/internal/usecase/readmodel"
)

type BookingCommands interface {
	Hold(ctx context.Context, req reqdto.HoldRequest, userID string) (*readmodel.HoldRM, error)
	Confirm(ctx context.Context, reservationID string) (*readmodel.AppointmentRM, error)
	// Discard reports whether a held reservation was released; unknown ids are not an error.
	Discard(ctx context.Context, reservationID string) bool
	Cancel(ctx context.Context, date, at string, actor cancellation.Actor) (*readmodel.CancellationRM, error)
}

type bookingCommandsImpl struct {
	engine  Scheduler
	flusher FlushRequester
	metrics *metrics.Metrics
	clock   clock.Clock
	logger  *slog.Logger
}

func NewBookingCommands(
	engine Scheduler,
	flusher FlushRequester,
	m *metrics.Metrics,
	clk clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		engine:  engine,
		flusher: flusher,
		metrics: m,
		clock:   clk,
		logger:  logger,
	}
}

func (c *bookingCommandsImpl) Hold(ctx context.Context, req reqdto.HoldRequest, userID string) (*readmodel.HoldRM, error) {
	hold, err := c.engine.Hold(req.ToHoldRequest(userID))
	if err != nil {
		c.metrics.Holds.WithLabelValues(resultLabel(err)).Inc()
		return nil, err
	}
	c.metrics.Holds.WithLabelValues("ok").Inc()
	c.afterMutation()

	c.logger.InfoContext(ctx, "reservation held",
		"reservation_id", hold.ID(),
		"user_id", userID,
		"slot", hold.Key().String(),
		"service_id", hold.ServiceID())

	rm := readmodel.FromHold(hold, c.engine.HoldTTL())
	return &rm, nil
}

func (c *bookingCommandsImpl) Confirm(ctx context.Context, reservationID string) (*readmodel.AppointmentRM, error) {
	appt, err := c.engine.Confirm(reservationID)
	if err != nil {
		c.metrics.Confirms.WithLabelValues(resultLabel(err)).Inc()
		if errs.Is(err, errs.ErrSlotNoLongerAvailable) {
			// the losing hold was discarded
			c.afterMutation()
		}
		return nil, err
	}
	c.metrics.Confirms.WithLabelValues("ok").Inc()
	c.afterMutation()

	c.logger.InfoContext(ctx, "appointment confirmed",
		"reservation_id", reservationID,
		"user_id", appt.UserID(),
		"slot", appt.Key().String(),
		"price", appt.PriceMinorUnits())

	rm := readmodel.FromAppointment(appt)
	return &rm, nil
}

func (c *bookingCommandsImpl) Discard(ctx context.Context, reservationID string) bool {
	if !c.engine.Discard(reservationID) {
		return false
	}
	c.afterMutation()
	c.logger.InfoContext(ctx, "reservation discarded", "reservation_id", reservationID)
	return true
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, date, at string, actor cancellation.Actor) (*readmodel.CancellationRM, error) {
	key, err := calendar.NewSlotKey(date, at)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	record, err := c.engine.Cancel(key, actor, c.clock.Now())
	if err != nil {
		return nil, err
	}
	c.metrics.Cancellations.WithLabelValues(actor.Kind()).Inc()
	c.metrics.RefundMinorUnits.Add(float64(record.RefundMinorUnits()))
	c.afterMutation()

	c.logger.InfoContext(ctx, "appointment cancelled",
		"slot", key.String(),
		"actor_id", actor.ID,
		"actor_kind", actor.Kind(),
		"refund", record.RefundMinorUnits(),
		"penalty", record.PenaltyMinorUnits())

	rm := readmodel.FromCancellation(record)
	return &rm, nil
}

func (c *bookingCommandsImpl) afterMutation() {
	c.metrics.PendingHolds.Set(float64(c.engine.PendingCount()))
	c.flusher.RequestFlush()
}

func resultLabel(err error) string {
	switch {
	case errs.Is(err, errs.ErrUnknownService):
		return "unknown_service"
	case errs.Is(err, errs.ErrInvalidInput):
		return "invalid_input"
	case errs.Is(err, errs.ErrSlotUnavailable):
		return "slot_unavailable"
	case errs.Is(err, errs.ErrReservationNotFound):
		return "not_found"
	case errs.Is(err, errs.ErrSlotNoLongerAvailable):
		return "conflict"
	default:
		return "error"
	}
}
