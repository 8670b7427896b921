package response

import "salon-booking/internal/usecase/dialog"

type DialogResponse struct {
	State       string               `json:"state"`
	Prompt      string               `json:"prompt"`
	Options     []string             `json:"options"`
	Hold        *HoldResponse        `json:"hold,omitempty"`
	Appointment *AppointmentResponse `json:"appointment,omitempty"`
	Error       string               `json:"error,omitempty"`
}

func FromReply(r dialog.Reply) DialogResponse {
	options := r.Options
	if options == nil {
		options = []string{}
	}
	return DialogResponse{
		State:       string(r.State),
		Prompt:      r.Prompt,
		Options:     options,
		Hold:        FromHold(r.Hold),
		Appointment: FromAppointment(r.Appointment),
		Error:       r.Error,
	}
}
