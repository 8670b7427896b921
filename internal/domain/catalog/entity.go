package catalog

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidServiceID = errors.New("service id must be 1-32 lowercase letters, digits, '-' or '_'")
	ErrInvalidName      = errors.New("service name must not be empty")
	ErrInvalidPrice     = errors.New("service price cannot be negative")
	ErrInvalidDuration  = errors.New("service duration must be positive")
	ErrDuplicateService = errors.New("duplicate service id")
	ErrEmptyCatalog     = errors.New("catalog has no services")
	ErrServiceNotFound  = errors.New("service not found")
)

var serviceIDRegex = regexp.MustCompile(`^[a-z0-9_-]{1,32}$`)

type ServiceID string

func (id ServiceID) String() string {
	return string(id)
}

func NewServiceID(s string) (ServiceID, error) {
	s = strings.TrimSpace(s)
	if !serviceIDRegex.MatchString(s) {
		return "", ErrInvalidServiceID
	}
	return ServiceID(s), nil
}

// Service is immutable once built.
type Service struct {
	id              ServiceID
	name            string
	priceMinorUnits int64
	durationMinutes int
}

func NewService(id, name string, priceMinorUnits int64, durationMinutes int) (*Service, error) {
	sid, err := NewServiceID(id)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if priceMinorUnits < 0 {
		return nil, ErrInvalidPrice
	}
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	return &Service{
		id:              sid,
		name:            name,
		priceMinorUnits: priceMinorUnits,
		durationMinutes: durationMinutes,
	}, nil
}

func (s *Service) ID() ServiceID          { return s.id }
func (s *Service) Name() string           { return s.name }
func (s *Service) PriceMinorUnits() int64 { return s.priceMinorUnits }
func (s *Service) DurationMinutes() int   { return s.durationMinutes }

func (s *Service) Duration() time.Duration {
	return time.Duration(s.durationMinutes) * time.Minute
}

// Catalog keeps services in declaration order.
type Catalog struct {
	services []*Service
	byID     map[ServiceID]*Service
}

func NewCatalog(services ...*Service) (*Catalog, error) {
	if len(services) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		services: make([]*Service, 0, len(services)),
		byID:     make(map[ServiceID]*Service, len(services)),
	}
	for _, s := range services {
		if _, dup := c.byID[s.id]; dup {
			return nil, ErrDuplicateService
		}
		c.services = append(c.services, s)
		c.byID[s.id] = s
	}
	return c, nil
}

func (c *Catalog) List() []*Service {
	out := make([]*Service, len(c.services))
	copy(out, c.services)
	return out
}

func (c *Catalog) Lookup(id ServiceID) (*Service, bool) {
	s, ok := c.byID[id]
	return s, ok
}

func (c *Catalog) Len() int {
	return len(c.services)
}
