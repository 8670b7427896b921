package errs

// Sentinel errors shared by the scheduling engine and its callers.
// Callers match them with Is, never by message.
var (
	// Rejected before any state was touched: malformed name, phone, date, or unknown service.
	ErrInvalidInput = New("invalid input")

	// The requested start time is not among the currently free slots.
	ErrSlotUnavailable = New("slot unavailable")

	// Unknown, expired, or already resolved hold.
	ErrReservationNotFound = New("reservation not found")

	// Another hold for an overlapping window was committed first.
	ErrSlotNoLongerAvailable = New("slot no longer available")

	ErrAppointmentNotFound = New("appointment not found")

	// The service id is not in the catalog. Always also marked ErrInvalidInput.
	ErrUnknownService = New("unknown service")

	// Save failed. In-memory state is still authoritative; the next flush retries.
	ErrPersistenceDegraded = New("persistence degraded")
)
