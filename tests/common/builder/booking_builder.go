//go:build unit || e2e

package builder

import (
	"time"

	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/domain/client"
	"salon-booking/internal/domain/reservation"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ReservationID   string
	UserID          string
	ServiceID       string
	ServiceName     string
	DurationMinutes int
	PriceMinorUnits int64
	Date            string
	Time            string
	Name            string
	Phone           string
	CreatedAt       time.Time
	HoldTTL         time.Duration
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ReservationID:   uuid.NewString(),
		UserID:          "tg:100",
		ServiceID:       "manicure",
		ServiceName:     "Manicure",
		DurationMinutes: 60,
		PriceMinorUnits: 1500,
		Date:            "2025-06-10",
		Time:            "14:00",
		Name:            "Anna",
		Phone:           "79161234567",
		CreatedAt:       time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC),
		HoldTTL:         20 * time.Minute,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.HoldRequest {
	return reqdto.HoldRequest{
		ServiceID: b.ServiceID,
		Date:      b.Date,
		Time:      b.Time,
		Name:      b.Name,
		Phone:     b.Phone,
	}
}

func (b *BookingBuilder) BuildDomain() (*reservation.Hold, error) {
	key, err := calendar.NewSlotKey(b.Date, b.Time)
	if err != nil {
		return nil, err
	}
	name, err := client.NewName(b.Name)
	if err != nil {
		return nil, err
	}
	phone, err := client.NewPhone(b.Phone)
	if err != nil {
		return nil, err
	}
	return reservation.NewHold(reservation.HoldParams{
		ID:              b.ReservationID,
		UserID:          b.UserID,
		ServiceID:       b.ServiceID,
		ServiceName:     b.ServiceName,
		DurationMinutes: b.DurationMinutes,
		PriceMinorUnits: b.PriceMinorUnits,
		Key:             key,
		ClientName:      name,
		ClientPhone:     phone,
		CreatedAt:       b.CreatedAt,
	})
}

func (b *BookingBuilder) BuildHoldRM() *readmodel.HoldRM {
	return &readmodel.HoldRM{
		ID:              b.ReservationID,
		UserID:          b.UserID,
		ServiceID:       b.ServiceID,
		ServiceName:     b.ServiceName,
		Date:            b.Date,
		Time:            b.Time,
		DurationMinutes: b.DurationMinutes,
		PriceMinorUnits: b.PriceMinorUnits,
		ClientName:      b.Name,
		ClientPhone:     b.Phone,
		Status:          reservation.StatusHeld.String(),
		CreatedAt:       b.CreatedAt,
		ExpiresAt:       b.CreatedAt.Add(b.HoldTTL),
	}
}

func (b *BookingBuilder) BuildAppointmentRM() *readmodel.AppointmentRM {
	return &readmodel.AppointmentRM{
		Date:            b.Date,
		Time:            b.Time,
		UserID:          b.UserID,
		ClientName:      b.Name,
		ClientPhone:     b.Phone,
		ServiceID:       b.ServiceID,
		ServiceName:     b.ServiceName,
		DurationMinutes: b.DurationMinutes,
		PriceMinorUnits: b.PriceMinorUnits,
		ReservationID:   b.ReservationID,
		ConfirmedAt:     b.CreatedAt.Add(5 * time.Minute),
		Paid:            true,
	}
}

func (b *BookingBuilder) BuildQuoteRM(percent int) *readmodel.QuoteRM {
	refund := b.PriceMinorUnits * int64(percent) / 100
	return &readmodel.QuoteRM{
		Appointment:       *b.BuildAppointmentRM(),
		RefundMinorUnits:  refund,
		PenaltyMinorUnits: b.PriceMinorUnits - refund,
		Percent:           percent,
	}
}

func (b *BookingBuilder) BuildCancellationRM(percent int, actorID, actorKind string) *readmodel.CancellationRM {
	q := b.BuildQuoteRM(percent)
	return &readmodel.CancellationRM{
		Appointment:       q.Appointment,
		RefundMinorUnits:  q.RefundMinorUnits,
		PenaltyMinorUnits: q.PenaltyMinorUnits,
		Percent:           percent,
		CancelledAt:       b.CreatedAt.Add(time.Hour),
		ActorID:           actorID,
		ActorKind:         actorKind,
	}
}
