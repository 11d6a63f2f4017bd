package booking

import (
	"encoding/json"
	"net/url"
	"strings"
)

// TicketPayload is the JSON object encoded into the ticket's QR code. Field
// order and names are part of the QR contract with the entrance scanners.
type TicketPayload struct {
	EventID   string  `json:"eventId"`
	EventName string  `json:"eventName"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Seats     string  `json:"seats"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Total     float64 `json:"total"`
}

// NewTicketPayload snapshots a confirmed booking. Seats are joined as
// "Zone - SeatNumber, ..." in selection order.
func NewTicketPayload(d *BookingDetails) TicketPayload {
	seats := make([]string, len(d.SelectedSeats))
	for i, s := range d.SelectedSeats {
		seats[i] = s.ZoneName + " - " + s.SeatNumber
	}

	payload := TicketPayload{
		EventID:   d.Event.ID,
		EventName: d.Event.Name,
		Date:      d.SelectedEventDate.Date,
		Time:      d.SelectedEventDate.Time,
		Seats:     strings.Join(seats, ", "),
		Total:     d.TotalPrice,
	}
	if d.UserInformation != nil {
		payload.Name = d.UserInformation.FullName()
		payload.Email = d.UserInformation.Email
	}
	return payload
}

// ImageURL URL-encodes the payload into the third-party QR rendering
// endpoint at the configured image size.
func (p TicketPayload) ImageURL(baseURL, size string) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return baseURL + "?size=" + size + "&data=" + url.QueryEscape(string(data)), nil
}
