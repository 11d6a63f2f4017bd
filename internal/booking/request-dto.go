package booking

// StartBookingRequest opens a session for one show-typed event date
type StartBookingRequest struct {
	EventID string `json:"event_id" binding:"required"`
	Date    string `json:"date" binding:"required,datetime=2006-01-02"`
	Time    string `json:"time" binding:"required,datetime=15:04"`
	Round   string `json:"round"`
}

// ToggleSeatRequest flips one seat's selection membership
type ToggleSeatRequest struct {
	ZoneID string `json:"zone_id" binding:"required"`
	SeatID string `json:"seat_id" binding:"required"`
}

// CheckoutRequest submits attendee details and a payment method.
// PaymentMethod is deliberately unbound: its absence is a blocking notice
// (422), not a malformed request, so the service checks it.
type CheckoutRequest struct {
	UserInformation UserInformation `json:"user_information" binding:"required"`
	PaymentMethod   string          `json:"payment_method"`
}
