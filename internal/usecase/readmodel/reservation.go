package readmodel

import (
	"time"

	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/domain/reservation"
)

type HoldRM struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	ServiceID       string    `json:"service_id"`
	ServiceName     string    `json:"service_name"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceMinorUnits int64     `json:"price_minor_units"`
	ClientName      string    `json:"client_name"`
	ClientPhone     string    `json:"client_phone"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	ExpiresAt       time.Time `json:"expires_at"`
}

func FromHold(h *reservation.Hold, ttl time.Duration) HoldRM {
	return HoldRM{
		ID:              h.ID(),
		UserID:          h.UserID(),
		ServiceID:       h.ServiceID(),
		ServiceName:     h.ServiceName(),
		Date:            h.Key().Date.String(),
		Time:            h.Key().Start.String(),
		DurationMinutes: h.DurationMinutes(),
		PriceMinorUnits: h.PriceMinorUnits(),
		ClientName:      h.ClientName().String(),
		ClientPhone:     h.ClientPhone().String(),
		Status:          h.Status().String(),
		CreatedAt:       h.CreatedAt(),
		ExpiresAt:       h.ExpiresAt(ttl),
	}
}

type AppointmentRM struct {
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	UserID          string    `json:"user_id"`
	ClientName      string    `json:"client_name"`
	ClientPhone     string    `json:"client_phone"`
	ServiceID       string    `json:"service_id"`
	ServiceName     string    `json:"service_name"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceMinorUnits int64     `json:"price_minor_units"`
	ReservationID   string    `json:"reservation_id"`
	ConfirmedAt     time.Time `json:"confirmed_at"`
	Paid            bool      `json:"paid"`
}

func FromAppointment(a *calendar.Appointment) AppointmentRM {
	return AppointmentRM{
		Date:            a.Key().Date.String(),
		Time:            a.Key().Start.String(),
		UserID:          a.UserID(),
		ClientName:      a.ClientName().String(),
		ClientPhone:     a.ClientPhone().String(),
		ServiceID:       a.ServiceID(),
		ServiceName:     a.ServiceName(),
		DurationMinutes: a.DurationMinutes(),
		PriceMinorUnits: a.PriceMinorUnits(),
		ReservationID:   a.ReservationID(),
		ConfirmedAt:     a.ConfirmedAt(),
		Paid:            a.IsPaid(),
	}
}

func FromAppointments(as []*calendar.Appointment) []AppointmentRM {
	out := make([]AppointmentRM, len(as))
	for i, a := range as {
		out[i] = FromAppointment(a)
	}
	return out
}
