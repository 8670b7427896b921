package scheduling

import (
	"math"
	"time"

	"salon-booking/internal/domain/calendar"
)

type Summary struct {
	ActiveCount    int
	PaidCount      int
	Revenue        int64
	CancelledCount int

	TodayCount        int
	TodayPaidCount    int
	ClientCount       int
	AverageCheck      int64
	RefundTotal       int64
	NetIncome         int64
	PendingCount      int
	ConversionPercent float64
}

// Summary aggregates counters for the operator. "Today" is the business-zone date of now.
func (e *Engine) Summary(now time.Time) Summary {
	e.mu.RLock()
	defer e.mu.RUnlock()

	today := calendar.DateOf(now.In(e.location))
	var s Summary
	for _, a := range e.calendar.All() {
		s.ActiveCount++
		isToday := a.Key().Date == today
		if isToday {
			s.TodayCount++
		}
		if !a.IsPaid() {
			continue
		}
		s.PaidCount++
		s.Revenue += a.PriceMinorUnits()
		if isToday {
			s.TodayPaidCount++
		}
	}
	for _, r := range e.history {
		s.RefundTotal += r.RefundMinorUnits()
	}
	s.CancelledCount = len(e.history)
	s.ClientCount = e.directory.Len()
	s.PendingCount = len(e.pending)
	s.NetIncome = s.Revenue - s.RefundTotal
	if s.PaidCount > 0 {
		s.AverageCheck = s.Revenue / int64(s.PaidCount)
	}
	if s.ActiveCount > 0 {
		s.ConversionPercent = math.Round(float64(s.PaidCount)/float64(s.ActiveCount)*1000) / 10
	}
	return s
}
