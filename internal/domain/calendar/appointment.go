package calendar

import (
	"errors"
	"time"

	"salon-booking/internal/domain/client"
)

var (
	ErrInvalidDuration    = errors.New("appointment duration must be positive")
	ErrNegativePrice      = errors.New("appointment price cannot be negative")
	ErrMissingReservation = errors.New("appointment must reference the reservation that produced it")
	ErrMissingService     = errors.New("appointment must reference a service")
	ErrSlotOccupied       = errors.New("slot overlaps an existing appointment")
)

type AppointmentParams struct {
	Key             SlotKey
	UserID          string
	ClientName      client.Name
	ClientPhone     client.Phone
	ServiceID       string
	ServiceName     string
	DurationMinutes int
	PriceMinorUnits int64
	ReservationID   string
	ConfirmedAt     time.Time
}

// Appointment is a confirmed, paid booking. Service name and duration are captured at
// commit so occupancy never depends on later catalog changes.
type Appointment struct {
	key             SlotKey
	userID          string
	clientName      client.Name
	clientPhone     client.Phone
	serviceID       string
	serviceName     string
	durationMinutes int
	priceMinorUnits int64
	reservationID   string
	confirmedAt     time.Time
	paid            bool
}

func NewAppointment(p AppointmentParams) (*Appointment, error) {
	if p.Key.Date.IsZero() || p.Key.Start < 0 || p.Key.Start >= MinutesPerDay {
		return nil, ErrInvalidDate
	}
	if err := client.ValidateUserID(p.UserID); err != nil {
		return nil, err
	}
	if p.ClientName.IsZero() {
		return nil, client.ErrInvalidName
	}
	if p.ClientPhone.IsZero() {
		return nil, client.ErrInvalidPhone
	}
	if p.ServiceID == "" {
		return nil, ErrMissingService
	}
	if p.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if p.PriceMinorUnits < 0 {
		return nil, ErrNegativePrice
	}
	if p.ReservationID == "" {
		return nil, ErrMissingReservation
	}

	return &Appointment{
		key:             p.Key,
		userID:          p.UserID,
		clientName:      p.ClientName,
		clientPhone:     p.ClientPhone,
		serviceID:       p.ServiceID,
		serviceName:     p.ServiceName,
		durationMinutes: p.DurationMinutes,
		priceMinorUnits: p.PriceMinorUnits,
		reservationID:   p.ReservationID,
		confirmedAt:     p.ConfirmedAt,
		paid:            true,
	}, nil
}

func (a *Appointment) Key() SlotKey              { return a.key }
func (a *Appointment) UserID() string            { return a.userID }
func (a *Appointment) ClientName() client.Name   { return a.clientName }
func (a *Appointment) ClientPhone() client.Phone { return a.clientPhone }
func (a *Appointment) ServiceID() string         { return a.serviceID }
func (a *Appointment) ServiceName() string       { return a.serviceName }
func (a *Appointment) DurationMinutes() int      { return a.durationMinutes }
func (a *Appointment) PriceMinorUnits() int64    { return a.priceMinorUnits }
func (a *Appointment) ReservationID() string     { return a.reservationID }
func (a *Appointment) ConfirmedAt() time.Time    { return a.confirmedAt }
func (a *Appointment) IsPaid() bool              { return a.paid }

func (a *Appointment) End() TimeOfDay {
	return a.key.Start.Add(a.durationMinutes)
}

// Occupies reports whether the half-open window [start, end) contains at.
func (a *Appointment) Occupies(at TimeOfDay) bool {
	return a.key.Start <= at && at < a.End()
}

func (a *Appointment) StartsAt(loc *time.Location) time.Time {
	return a.key.At(loc)
}
