package readmodel

import (
	"time"

	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/domain/client"
	"salon-booking/internal/usecase/scheduling"
)

type SummaryRM struct {
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

func FromSummary(s scheduling.Summary) SummaryRM {
	return SummaryRM{
		ActiveCount:       s.ActiveCount,
		PaidCount:         s.PaidCount,
		Revenue:           s.Revenue,
		CancelledCount:    s.CancelledCount,
		TodayCount:        s.TodayCount,
		TodayPaidCount:    s.TodayPaidCount,
		ClientCount:       s.ClientCount,
		AverageCheck:      s.AverageCheck,
		RefundTotal:       s.RefundTotal,
		NetIncome:         s.NetIncome,
		PendingCount:      s.PendingCount,
		ConversionPercent: s.ConversionPercent,
	}
}

type PurgeRM struct {
	Cutoff  string   `json:"cutoff"`
	Removed int      `json:"removed"`
	Dates   []string `json:"dates"`
}

func FromPurge(cutoff calendar.Date, removed []*calendar.Appointment) PurgeRM {
	dates := make([]string, 0)
	seen := make(map[calendar.Date]bool)
	for _, a := range removed {
		d := a.Key().Date
		if seen[d] {
			continue
		}
		seen[d] = true
		dates = append(dates, d.String())
	}
	return PurgeRM{Cutoff: cutoff.String(), Removed: len(removed), Dates: dates}
}

type ClientRM struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
}

func FromProfile(p *client.Profile) ClientRM {
	return ClientRM{UserID: p.UserID(), Name: p.Name().String(), Phone: p.Phone().String()}
}

type ExportRM struct {
	ExportedAt    time.Time        `json:"exported_at"`
	Appointments  []AppointmentRM  `json:"appointments"`
	Clients       []ClientRM       `json:"clients"`
	Pending       []HoldRM         `json:"pending"`
	Cancellations []CancellationRM `json:"cancellations"`
}

func FromSnapshot(snap scheduling.Snapshot, holdTTL time.Duration, exportedAt time.Time) ExportRM {
	clients := make([]ClientRM, len(snap.Profiles))
	for i, p := range snap.Profiles {
		clients[i] = FromProfile(p)
	}
	pending := make([]HoldRM, len(snap.Pending))
	for i, h := range snap.Pending {
		pending[i] = FromHold(h, holdTTL)
	}
	return ExportRM{
		ExportedAt:    exportedAt,
		Appointments:  FromAppointments(snap.Appointments),
		Clients:       clients,
		Pending:       pending,
		Cancellations: FromCancellations(snap.Cancellations),
	}
}
