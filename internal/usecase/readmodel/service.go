package readmodel

import (
	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/domain/catalog"
)

type ServiceRM struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PriceMinorUnits int64  `json:"price_minor_units"`
	DurationMinutes int    `json:"duration_minutes"`
}

func FromService(s *catalog.Service) ServiceRM {
	return ServiceRM{
		ID:              s.ID().String(),
		Name:            s.Name(),
		PriceMinorUnits: s.PriceMinorUnits(),
		DurationMinutes: s.DurationMinutes(),
	}
}

func FromServices(ss []*catalog.Service) []ServiceRM {
	out := make([]ServiceRM, len(ss))
	for i, s := range ss {
		out[i] = FromService(s)
	}
	return out
}

type FreeSlotsRM struct {
	ServiceID string   `json:"service_id"`
	Date      string   `json:"date"`
	Slots     []string `json:"slots"`
}

func FromFreeSlots(serviceID string, date calendar.Date, slots []calendar.TimeOfDay) FreeSlotsRM {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return FreeSlotsRM{ServiceID: serviceID, Date: date.String(), Slots: out}
}
