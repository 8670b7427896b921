package converter

import (
	"fmt"
	"time"

	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/domain/cancellation"
	"salon-booking/internal/domain/client"
	"salon-booking/internal/domain/refund"
	"salon-booking/internal/domain/reservation"
	"salon-booking/internal/usecase/scheduling"
)

// Collection names shared by every snapshot backend.
const (
	CollectionAppointments = "appointments"
	CollectionUsers        = "users"
	CollectionPending      = "pending"
	CollectionCancelled    = "cancelled"
)

var Collections = []string{CollectionAppointments, CollectionUsers, CollectionPending, CollectionCancelled}

type AppointmentRecord struct {
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

type ProfileRecord struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
}

type HoldRecord struct {
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
	CreatedAt       time.Time `json:"created_at"`
}

type CancellationRecord struct {
	Appointment       AppointmentRecord `json:"appointment"`
	RefundMinorUnits  int64             `json:"refund_minor_units"`
	PenaltyMinorUnits int64             `json:"penalty_minor_units"`
	Percent           int               `json:"percent"`
	CancelledAt       time.Time         `json:"cancelled_at"`
	ActorID           string            `json:"actor_id"`
	ActorOperator     bool              `json:"actor_operator"`
}

// Records is the persisted shape of a scheduling.Snapshot.
type Records struct {
	Appointments  []AppointmentRecord
	Users         []ProfileRecord
	Pending       []HoldRecord
	Cancellations []CancellationRecord
}

func FromSnapshot(snap scheduling.Snapshot) Records {
	r := Records{
		Appointments:  make([]AppointmentRecord, len(snap.Appointments)),
		Users:         make([]ProfileRecord, len(snap.Profiles)),
		Pending:       make([]HoldRecord, len(snap.Pending)),
		Cancellations: make([]CancellationRecord, len(snap.Cancellations)),
	}
	for i, a := range snap.Appointments {
		r.Appointments[i] = appointmentToRecord(a)
	}
	for i, p := range snap.Profiles {
		r.Users[i] = ProfileRecord{UserID: p.UserID(), Name: p.Name().String(), Phone: p.Phone().String()}
	}
	for i, h := range snap.Pending {
		r.Pending[i] = HoldRecord{
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
			CreatedAt:       h.CreatedAt(),
		}
	}
	for i, c := range snap.Cancellations {
		r.Cancellations[i] = CancellationRecord{
			Appointment:       appointmentToRecord(c.Appointment()),
			RefundMinorUnits:  c.RefundMinorUnits(),
			PenaltyMinorUnits: c.PenaltyMinorUnits(),
			Percent:           c.Percent(),
			CancelledAt:       c.CancelledAt(),
			ActorID:           c.Actor().ID,
			ActorOperator:     c.Actor().Operator,
		}
	}
	return r
}

// ToSnapshot rebuilds domain values through their constructors. Records that
// fail validation are skipped and reported, never fatal.
func ToSnapshot(r Records) (scheduling.Snapshot, []error) {
	var (
		snap    scheduling.Snapshot
		skipped []error
	)
	for i, rec := range r.Appointments {
		a, err := recordToAppointment(rec)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("%s[%d]: %w", CollectionAppointments, i, err))
			continue
		}
		snap.Appointments = append(snap.Appointments, a)
	}
	for i, rec := range r.Users {
		p, err := recordToProfile(rec)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("%s[%d]: %w", CollectionUsers, i, err))
			continue
		}
		snap.Profiles = append(snap.Profiles, p)
	}
	for i, rec := range r.Pending {
		h, err := recordToHold(rec)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("%s[%d]: %w", CollectionPending, i, err))
			continue
		}
		snap.Pending = append(snap.Pending, h)
	}
	for i, rec := range r.Cancellations {
		c, err := recordToCancellation(rec)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("%s[%d]: %w", CollectionCancelled, i, err))
			continue
		}
		snap.Cancellations = append(snap.Cancellations, c)
	}
	return snap, skipped
}

func appointmentToRecord(a *calendar.Appointment) AppointmentRecord {
	return AppointmentRecord{
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

func recordToAppointment(rec AppointmentRecord) (*calendar.Appointment, error) {
	key, err := calendar.NewSlotKey(rec.Date, rec.Time)
	if err != nil {
		return nil, err
	}
	name, err := client.NewName(rec.ClientName)
	if err != nil {
		return nil, err
	}
	phone, err := client.NewPhone(rec.ClientPhone)
	if err != nil {
		return nil, err
	}
	return calendar.NewAppointment(calendar.AppointmentParams{
		Key:             key,
		UserID:          rec.UserID,
		ClientName:      name,
		ClientPhone:     phone,
		ServiceID:       rec.ServiceID,
		ServiceName:     rec.ServiceName,
		DurationMinutes: rec.DurationMinutes,
		PriceMinorUnits: rec.PriceMinorUnits,
		ReservationID:   rec.ReservationID,
		ConfirmedAt:     rec.ConfirmedAt,
	})
}

func recordToProfile(rec ProfileRecord) (*client.Profile, error) {
	name, err := client.NewName(rec.Name)
	if err != nil {
		return nil, err
	}
	phone, err := client.NewPhone(rec.Phone)
	if err != nil {
		return nil, err
	}
	return client.NewProfile(rec.UserID, name, phone)
}

func recordToHold(rec HoldRecord) (*reservation.Hold, error) {
	key, err := calendar.NewSlotKey(rec.Date, rec.Time)
	if err != nil {
		return nil, err
	}
	name, err := client.NewName(rec.ClientName)
	if err != nil {
		return nil, err
	}
	phone, err := client.NewPhone(rec.ClientPhone)
	if err != nil {
		return nil, err
	}
	if rec.ID == "" {
		return nil, reservation.ErrInvalidID
	}
	return reservation.NewHold(reservation.HoldParams{
		ID:              rec.ID,
		UserID:          rec.UserID,
		ServiceID:       rec.ServiceID,
		ServiceName:     rec.ServiceName,
		DurationMinutes: rec.DurationMinutes,
		PriceMinorUnits: rec.PriceMinorUnits,
		Key:             key,
		ClientName:      name,
		ClientPhone:     phone,
		CreatedAt:       rec.CreatedAt,
	})
}

func recordToCancellation(rec CancellationRecord) (*cancellation.Record, error) {
	appt, err := recordToAppointment(rec.Appointment)
	if err != nil {
		return nil, err
	}
	quote := refund.Quote{
		RefundMinorUnits:  rec.RefundMinorUnits,
		PenaltyMinorUnits: rec.PenaltyMinorUnits,
		Percent:           rec.Percent,
	}
	actor := cancellation.Actor{ID: rec.ActorID, Operator: rec.ActorOperator}
	return cancellation.NewRecord(appt, quote, actor, rec.CancelledAt)
}
