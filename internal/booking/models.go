package booking

import (
	"eticket/internal/catalog"
	"eticket/internal/seating"
)

// PaymentMethod is one of the storefront's two simulated payment options
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "Credit Card"
	PaymentPromptPay  PaymentMethod = "Prompt Pay"
)

// IsValid checks if the payment method is a known value
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCreditCard, PaymentPromptPay:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// UserInformation is the attendee contact form, validated at checkout
type UserInformation struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	MobileNumber string `json:"mobile_number" binding:"required,mobile"`
}

// FullName joins first and last name for display and the ticket payload
func (u UserInformation) FullName() string {
	return u.FirstName + " " + u.LastName
}

// BookingDetails is the aggregate root of one booking session. It is created
// when the flow starts and replaced wholesale on every step; seat selection
// membership here is authoritative, the layout's seat statuses are not.
type BookingDetails struct {
	Event             catalog.Event              `json:"event"`
	SelectedEventDate catalog.EventDate          `json:"selected_event_date"`
	SelectedRound     string                     `json:"selected_round,omitempty"`
	SelectedSeats     []seating.SelectedSeatInfo `json:"selected_seats"`
	TotalPrice        float64                    `json:"total_price"`
	UserInformation   *UserInformation           `json:"user_information,omitempty"`
	PaymentMethod     PaymentMethod              `json:"payment_method,omitempty"`
	BookingRef        string                     `json:"booking_ref,omitempty"`
}

// HasEventAndDate reports whether the Detail step completed
func (d *BookingDetails) HasEventAndDate() bool {
	return d.Event.ID != "" && d.SelectedEventDate.Date != ""
}

// HasSeats reports whether at least one seat is selected
func (d *BookingDetails) HasSeats() bool {
	return len(d.SelectedSeats) > 0
}

// IsConfirmed reports whether the simulated payment completed
func (d *BookingDetails) IsConfirmed() bool {
	return d.UserInformation != nil && d.PaymentMethod.IsValid()
}
