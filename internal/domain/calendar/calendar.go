package calendar

import (
	"sort"
)

// Calendar maps slot keys to confirmed appointments and refuses any insert whose
// occupancy window would overlap an existing one at the configured check granularity.
// It is not safe for concurrent use; the scheduling engine owns the lock.
type Calendar struct {
	days        map[Date]map[TimeOfDay]*Appointment
	granularity int
	size        int
}

func New(granularityMinutes int) *Calendar {
	if granularityMinutes <= 0 {
		granularityMinutes = 30
	}
	return &Calendar{
		days:        make(map[Date]map[TimeOfDay]*Appointment),
		granularity: granularityMinutes,
	}
}

func (c *Calendar) Granularity() int {
	return c.granularity
}

func (c *Calendar) Len() int {
	return c.size
}

func (c *Calendar) Get(key SlotKey) (*Appointment, bool) {
	a, ok := c.days[key.Date][key.Start]
	return a, ok
}

// IsOccupied reports whether any appointment on date covers the instant at.
func (c *Calendar) IsOccupied(date Date, at TimeOfDay) bool {
	for _, a := range c.days[date] {
		if a.Occupies(at) {
			return true
		}
	}
	return false
}

// Fits reports whether an appointment of the given duration could start at key:
// the key itself is empty and every check point key.Start, +granularity, ... before
// the end is unoccupied.
func (c *Calendar) Fits(key SlotKey, durationMinutes int) bool {
	if _, taken := c.Get(key); taken {
		return false
	}
	for offset := 0; offset < durationMinutes; offset += c.granularity {
		if c.IsOccupied(key.Date, key.Start.Add(offset)) {
			return false
		}
	}
	return c.coversNoExistingStart(key, durationMinutes)
}

// coversNoExistingStart catches an existing appointment that starts strictly between
// two check points of the new window.
func (c *Calendar) coversNoExistingStart(key SlotKey, durationMinutes int) bool {
	end := key.Start.Add(durationMinutes)
	for start := range c.days[key.Date] {
		if key.Start <= start && start < end {
			return false
		}
	}
	return true
}

func (c *Calendar) Insert(a *Appointment) error {
	if !c.Fits(a.key, a.durationMinutes) {
		return ErrSlotOccupied
	}
	day, ok := c.days[a.key.Date]
	if !ok {
		day = make(map[TimeOfDay]*Appointment)
		c.days[a.key.Date] = day
	}
	day[a.key.Start] = a
	c.size++
	return nil
}

func (c *Calendar) Remove(key SlotKey) (*Appointment, bool) {
	day, ok := c.days[key.Date]
	if !ok {
		return nil, false
	}
	a, ok := day[key.Start]
	if !ok {
		return nil, false
	}
	delete(day, key.Start)
	if len(day) == 0 {
		delete(c.days, key.Date)
	}
	c.size--
	return a, true
}

// RemoveBefore drops every appointment dated strictly before cutoff and returns them
// in chronological order.
func (c *Calendar) RemoveBefore(cutoff Date) []*Appointment {
	var removed []*Appointment
	for date, day := range c.days {
		if !date.Before(cutoff) {
			continue
		}
		for _, a := range day {
			removed = append(removed, a)
		}
		c.size -= len(day)
		delete(c.days, date)
	}
	sortByKey(removed)
	return removed
}

func (c *Calendar) Day(date Date) []*Appointment {
	out := make([]*Appointment, 0, len(c.days[date]))
	for _, a := range c.days[date] {
		out = append(out, a)
	}
	sortByKey(out)
	return out
}

func (c *Calendar) All() []*Appointment {
	return c.filter(func(*Appointment) bool { return true })
}

func (c *Calendar) ForUser(userID string) []*Appointment {
	return c.filter(func(a *Appointment) bool { return a.userID == userID })
}

func (c *Calendar) filter(keep func(*Appointment) bool) []*Appointment {
	out := make([]*Appointment, 0)
	for _, day := range c.days {
		for _, a := range day {
			if keep(a) {
				out = append(out, a)
			}
		}
	}
	sortByKey(out)
	return out
}

func sortByKey(as []*Appointment) {
	sort.Slice(as, func(i, j int) bool { return as[i].key.Less(as[j].key) })
}
