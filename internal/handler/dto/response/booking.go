package response

import (
	"time"

	"salon-booking/internal/usecase/readmodel"
)

type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PriceMinorUnits int64  `json:"price_minor_units"`
	DurationMinutes int    `json:"duration_minutes"`
}

func FromServices(rms []readmodel.ServiceRM) []ServiceResponse {
	return mapInto[[]ServiceResponse](rms)
}

type FreeSlotsResponse struct {
	ServiceID string   `json:"service_id"`
	Date      string   `json:"date"`
	Slots     []string `json:"slots"`
}

func FromFreeSlots(rm *readmodel.FreeSlotsRM) FreeSlotsResponse {
	out := mapInto[FreeSlotsResponse](rm)
	if out.Slots == nil {
		out.Slots = []string{}
	}
	return out
}

// HoldResponse is what a front end needs to ask for payment.
type HoldResponse struct {
	ID              string    `json:"id"`
	ServiceID       string    `json:"service_id"`
	ServiceName     string    `json:"service_name"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceMinorUnits int64     `json:"price_minor_units"`
	ClientName      string    `json:"client_name"`
	ClientPhone     string    `json:"client_phone"`
	Status          string    `json:"status"`
	ExpiresAt       time.Time `json:"expires_at"`
}

func FromHold(rm *readmodel.HoldRM) *HoldResponse {
	if rm == nil {
		return nil
	}
	out := mapInto[HoldResponse](rm)
	return &out
}

type AppointmentResponse struct {
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

func FromAppointment(rm *readmodel.AppointmentRM) *AppointmentResponse {
	if rm == nil {
		return nil
	}
	out := mapInto[AppointmentResponse](rm)
	return &out
}

func FromAppointments(rms []readmodel.AppointmentRM) []AppointmentResponse {
	if len(rms) == 0 {
		return []AppointmentResponse{}
	}
	return mapInto[[]AppointmentResponse](rms)
}

type QuoteResponse struct {
	Appointment       AppointmentResponse `json:"appointment"`
	RefundMinorUnits  int64               `json:"refund_minor_units"`
	PenaltyMinorUnits int64               `json:"penalty_minor_units"`
	Percent           int                 `json:"percent"`
	HoursLeft         float64             `json:"hours_left"`
}

func FromQuote(rm *readmodel.QuoteRM) QuoteResponse {
	return mapInto[QuoteResponse](rm)
}

type CancellationResponse struct {
	Appointment       AppointmentResponse `json:"appointment"`
	RefundMinorUnits  int64               `json:"refund_minor_units"`
	PenaltyMinorUnits int64               `json:"penalty_minor_units"`
	Percent           int                 `json:"percent"`
	CancelledAt       time.Time           `json:"cancelled_at"`
	ActorKind         string              `json:"cancelled_by"`
}

func FromCancellation(rm *readmodel.CancellationRM) CancellationResponse {
	return mapInto[CancellationResponse](rm)
}

func FromCancellations(rms []readmodel.CancellationRM) []CancellationResponse {
	if len(rms) == 0 {
		return []CancellationResponse{}
	}
	return mapInto[[]CancellationResponse](rms)
}
