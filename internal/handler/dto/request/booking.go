package request

import (
	"salon-booking/internal/usecase/scheduling"
)

type HoldRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required,isodate"`
	Time      string `json:"time" binding:"required,hhmm"`
	Name      string `json:"name" binding:"required,min=2,max=64"`
	Phone     string `json:"phone" binding:"required,phone"`
}

func (r HoldRequest) ToHoldRequest(userID string) scheduling.HoldRequest {
	return scheduling.HoldRequest{
		ServiceID: r.ServiceID,
		Date:      r.Date,
		Start:     r.Time,
		Name:      r.Name,
		Phone:     r.Phone,
		UserID:    userID,
	}
}

type FreeSlotsQuery struct {
	Date string `form:"date" binding:"required,isodate"`
}

// AppointmentURI addresses a confirmed appointment by its slot key.
type AppointmentURI struct {
	Date string `uri:"date" binding:"required,isodate"`
	Time string `uri:"time" binding:"required,hhmm"`
}

type ReservationURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}
