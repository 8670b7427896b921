package calendar

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDate      = errors.New("date must be YYYY-MM-DD")
	ErrInvalidTimeOfDay = errors.New("time must be HH:MM within a day")
)

const DateLayout = "2006-01-02"

// Date is a civil calendar day with no zone attached. The zero value is not a valid date.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day || year < 1 {
		return Date{}, ErrInvalidDate
	}
	return Date{year: year, month: month, day: day}, nil
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

// DateOf takes the civil day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func (d Date) Year() int          { return d.year }
func (d Date) Month() time.Month  { return d.month }
func (d Date) Day() int           { return d.day }
func (d Date) IsZero() bool       { return d == Date{} }
func (d Date) Before(o Date) bool { return d.midnight().Before(o.midnight()) }
func (d Date) After(o Date) bool  { return d.midnight().After(o.midnight()) }

func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.year, d.month, d.day+n, 0, 0, 0, 0, time.UTC))
}

// DaysSince is negative when o is after d.
func (d Date) DaysSince(o Date) int {
	return int(d.midnight().Sub(o.midnight()).Hours() / 24)
}

// At is the instant the given time of day starts on d in loc.
func (d Date) At(tod TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, tod.Hour(), tod.Minute(), 0, 0, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) midnight() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// TimeOfDay counts minutes since midnight.
type TimeOfDay int

const (
	TimeLayout    = "15:04"
	MinutesPerDay = 24 * 60
)

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(hour*60 + minute), nil
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(t.Hour(), t.Minute())
}

func (t TimeOfDay) Hour() int    { return int(t) / 60 }
func (t TimeOfDay) Minute() int  { return int(t) % 60 }
func (t TimeOfDay) Minutes() int { return int(t) }

// Add does not wrap past midnight; callers compare the result against closing time.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// SlotKey addresses one start time on one day; it is the Calendar's map key.
type SlotKey struct {
	Date  Date
	Start TimeOfDay
}

func NewSlotKey(date, start string) (SlotKey, error) {
	d, err := ParseDate(date)
	if err != nil {
		return SlotKey{}, err
	}
	t, err := ParseTimeOfDay(start)
	if err != nil {
		return SlotKey{}, err
	}
	return SlotKey{Date: d, Start: t}, nil
}

func (k SlotKey) At(loc *time.Location) time.Time {
	return k.Date.At(k.Start, loc)
}

func (k SlotKey) Less(o SlotKey) bool {
	if k.Date != o.Date {
		return k.Date.Before(o.Date)
	}
	return k.Start < o.Start
}

func (k SlotKey) String() string {
	return k.Date.String() + " " + k.Start.String()
}
