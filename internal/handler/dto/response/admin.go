package response

import (
	"time"

	"salon-booking/internal/usecase/readmodel"
)

type SummaryResponse struct {
	ActiveCount       int     `json:"active_count"`
	PaidCount         int     `json:"paid_count"`
	Revenue           int64   `json:"revenue"`
	CancelledCount    int     `json:"cancelled_count"`
	TodayCount        int     `json:"today_count"`
	TodayPaidCount    int     `json:"today_paid_count"`
	ClientCount       int     `json:"client_count"`
	AverageCheck      int64   `json:"average_check"`
	RefundTotal       int64   `json:"refund_total"`
	NetIncome         int64   `json:"net_income"`
	PendingCount      int     `json:"pending_count"`
	ConversionPercent float64 `json:"conversion_percent"`
}

func FromSummary(rm readmodel.SummaryRM) SummaryResponse {
	return mapInto[SummaryResponse](rm)
}

type PurgeResponse struct {
	Cutoff  string   `json:"cutoff"`
	Removed int      `json:"removed"`
	Dates   []string `json:"dates"`
}

func FromPurge(rm *readmodel.PurgeRM) PurgeResponse {
	out := mapInto[PurgeResponse](rm)
	if out.Dates == nil {
		out.Dates = []string{}
	}
	return out
}

type ClientResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
}

type PendingResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	ServiceID       string    `json:"service_id"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	PriceMinorUnits int64     `json:"price_minor_units"`
	CreatedAt       time.Time `json:"created_at"`
	ExpiresAt       time.Time `json:"expires_at"`
}

// ExportResponse carries the four persisted collections.
type ExportResponse struct {
	ExportedAt    time.Time              `json:"exported_at"`
	Appointments  []AppointmentResponse  `json:"appointments"`
	Clients       []ClientResponse       `json:"clients"`
	Pending       []PendingResponse      `json:"pending"`
	Cancellations []CancellationResponse `json:"cancellations"`
}

func FromExport(rm readmodel.ExportRM) ExportResponse {
	out := mapInto[ExportResponse](rm)
	if out.Appointments == nil {
		out.Appointments = []AppointmentResponse{}
	}
	if out.Clients == nil {
		out.Clients = []ClientResponse{}
	}
	if out.Pending == nil {
		out.Pending = []PendingResponse{}
	}
	if out.Cancellations == nil {
		out.Cancellations = []CancellationResponse{}
	}
	return out
}
