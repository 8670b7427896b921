package reservation

// Status follows Held -> Confirmed | Discarded | Expired; every target is terminal.
type Status string

const (
	StatusHeld      Status = "held"
	StatusConfirmed Status = "confirmed"
	StatusDiscarded Status = "discarded"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusHeld, StatusConfirmed, StatusDiscarded, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusDiscarded || s == StatusExpired
}
