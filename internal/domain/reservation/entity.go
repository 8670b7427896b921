package reservation

import (
	"errors"
	"time"

	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/domain/client"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("reservation is no longer held")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrInvalidDuration   = errors.New("duration must be positive")
	ErrMissingService    = errors.New("reservation must reference a service")
	ErrInvalidID         = errors.New("invalid reservation id")
)

type HoldParams struct {
	// ID is generated when empty; restores pass the persisted one.
	ID              string
	UserID          string
	ServiceID       string
	ServiceName     string
	DurationMinutes int
	PriceMinorUnits int64
	Key             calendar.SlotKey
	ClientName      client.Name
	ClientPhone     client.Phone
	CreatedAt       time.Time
}

// Hold is a pending reservation awaiting payment. It never enters the Calendar.
type Hold struct {
	id              string
	userID          string
	serviceID       string
	serviceName     string
	durationMinutes int
	priceMinorUnits int64
	key             calendar.SlotKey
	clientName      client.Name
	clientPhone     client.Phone
	createdAt       time.Time
	status          Status
}

func NewHold(p HoldParams) (*Hold, error) {
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	} else if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	if err := client.ValidateUserID(p.UserID); err != nil {
		return nil, err
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
	if p.Key.Date.IsZero() {
		return nil, calendar.ErrInvalidDate
	}
	if p.ClientName.IsZero() {
		return nil, client.ErrInvalidName
	}
	if p.ClientPhone.IsZero() {
		return nil, client.ErrInvalidPhone
	}

	return &Hold{
		id:              id,
		userID:          p.UserID,
		serviceID:       p.ServiceID,
		serviceName:     p.ServiceName,
		durationMinutes: p.DurationMinutes,
		priceMinorUnits: p.PriceMinorUnits,
		key:             p.Key,
		clientName:      p.ClientName,
		clientPhone:     p.ClientPhone,
		createdAt:       p.CreatedAt,
		status:          StatusHeld,
	}, nil
}

func (h *Hold) ID() string                { return h.id }
func (h *Hold) UserID() string            { return h.userID }
func (h *Hold) ServiceID() string         { return h.serviceID }
func (h *Hold) ServiceName() string       { return h.serviceName }
func (h *Hold) DurationMinutes() int      { return h.durationMinutes }
func (h *Hold) PriceMinorUnits() int64    { return h.priceMinorUnits }
func (h *Hold) Key() calendar.SlotKey     { return h.key }
func (h *Hold) ClientName() client.Name   { return h.clientName }
func (h *Hold) ClientPhone() client.Phone { return h.clientPhone }
func (h *Hold) CreatedAt() time.Time      { return h.createdAt }
func (h *Hold) Status() Status            { return h.status }

func (h *Hold) ExpiresAt(ttl time.Duration) time.Time {
	return h.createdAt.Add(ttl)
}

// IsExpired is false for a non-positive ttl, which disables expiry.
func (h *Hold) IsExpired(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && !now.Before(h.ExpiresAt(ttl))
}

func (h *Hold) Confirm() error { return h.transition(StatusConfirmed) }
func (h *Hold) Discard() error { return h.transition(StatusDiscarded) }
func (h *Hold) Expire() error  { return h.transition(StatusExpired) }

func (h *Hold) transition(to Status) error {
	if h.status != StatusHeld {
		return ErrInvalidTransition
	}
	h.status = to
	return nil
}

// Clone returns a detached copy safe to hand to readers outside the owner's lock.
func (h *Hold) Clone() *Hold {
	c := *h
	return &c
}
