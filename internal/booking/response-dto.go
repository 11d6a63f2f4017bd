package booking

// BookingResponse pairs the session id with its state and derived step
type BookingResponse struct {
	BookingID string          `json:"booking_id"`
	Step      string          `json:"step"`
	Details   *BookingDetails `json:"details"`
}

// TicketResponse is the terminal, read-only rendering of a confirmed booking
type TicketResponse struct {
	BookingID  string          `json:"booking_id"`
	BookingRef string          `json:"booking_ref"`
	Details    *BookingDetails `json:"details"`
	QRCodeURL  string          `json:"qr_code_url"`
}
