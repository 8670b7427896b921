package availability

import (
	"errors"

	"salon-booking/internal/domain/calendar"
)

var ErrInvalidBusinessHours = errors.New("business hours need open < close and positive cadence and granularity")

// Occupancy is the read side of the Calendar needed to decide availability.
type Occupancy interface {
	Fits(key calendar.SlotKey, durationMinutes int) bool
}

// BusinessHours fixes the daily window and the two independent knobs: candidate
// start times are offered every cadence minutes from open, and occupancy is checked
// every granularity minutes across a candidate's duration.
type BusinessHours struct {
	open        calendar.TimeOfDay
	close       calendar.TimeOfDay
	cadence     int
	granularity int
}

func NewBusinessHours(openAt, closeAt calendar.TimeOfDay, cadenceMinutes, granularityMinutes int) (BusinessHours, error) {
	if openAt >= closeAt || cadenceMinutes <= 0 || granularityMinutes <= 0 {
		return BusinessHours{}, ErrInvalidBusinessHours
	}
	return BusinessHours{
		open:        openAt,
		close:       closeAt,
		cadence:     cadenceMinutes,
		granularity: granularityMinutes,
	}, nil
}

// DefaultBusinessHours is 10:00-20:00, hourly starts, half-hour checks.
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{open: 10 * 60, close: 20 * 60, cadence: 60, granularity: 30}
}

func (h BusinessHours) Open() calendar.TimeOfDay  { return h.open }
func (h BusinessHours) Close() calendar.TimeOfDay { return h.close }
func (h BusinessHours) Cadence() int              { return h.cadence }
func (h BusinessHours) Granularity() int          { return h.granularity }

// IsCandidate reports whether start is on the cadence grid and a service of the given
// duration starting there ends no later than closing.
func (h BusinessHours) IsCandidate(start calendar.TimeOfDay, durationMinutes int) bool {
	if start < h.open || durationMinutes <= 0 {
		return false
	}
	if (start.Minutes()-h.open.Minutes())%h.cadence != 0 {
		return false
	}
	return start.Add(durationMinutes) <= h.close
}

// Admits is the single predicate shared by slot listing and commit-time re-checks.
func (h BusinessHours) Admits(occ Occupancy, key calendar.SlotKey, durationMinutes int) bool {
	return h.IsCandidate(key.Start, durationMinutes) && occ.Fits(key, durationMinutes)
}

// FreeSlots lists, in chronological order, every start time on date at which a service
// of the given duration could be booked right now. It has no side effects.
func FreeSlots(occ Occupancy, h BusinessHours, date calendar.Date, durationMinutes int) []calendar.TimeOfDay {
	slots := make([]calendar.TimeOfDay, 0)
	if durationMinutes <= 0 {
		return slots
	}
	for t := h.open; t.Add(durationMinutes) <= h.close; t = t.Add(h.cadence) {
		if occ.Fits(calendar.SlotKey{Date: date, Start: t}, durationMinutes) {
			slots = append(slots, t)
		}
	}
	return slots
}
