package booking

import (
	"context"
	"errors"
	"strings"
	"testing"

	"eticket/internal/catalog"
	"eticket/internal/seating"
	"eticket/internal/shared/config"
)

func newTestBookingService(t *testing.T) (Service, seating.Service) {
	t.Helper()

	catalogService := catalog.NewService(catalog.NewRepository(0, 0), 0)
	seatingService := seating.NewService(seating.NewRepository(20240915, 0, catalog.FixtureEventIDs()))

	svc := NewService(
		NewStore(0),
		catalogService,
		seatingService,
		seating.NewEngine(seating.DefaultMaxSeats),
		NewSimulatedProcessor(0),
		config.QRConfig{BaseURL: "https://api.qrserver.com/v1/create-qr-code/", Size: "200x200"},
	)
	return svc, seatingService
}

// availableSeats collects selectable seats from one zone of the layout
func availableSeats(t *testing.T, seatingService seating.Service, eventID, zoneID string, n int) []seating.Seat {
	t.Helper()

	layout, err := seatingService.GetLayout(context.Background(), eventID)
	if err != nil {
		t.Fatal(err)
	}
	zone, ok := layout.Zone(zoneID)
	if !ok {
		t.Fatalf("zone %s missing", zoneID)
	}

	var seats []seating.Seat
	for _, row := range zone.Seats {
		for _, seat := range row {
			if seat.Aisle || !seat.Status.Selectable() {
				continue
			}
			seats = append(seats, seat)
			if len(seats) == n {
				return seats
			}
		}
	}
	t.Fatalf("zone %s has only %d selectable seats, need %d", zoneID, len(seats), n)
	return nil
}

func TestBookingFlowEndToEnd(t *testing.T) {
	svc, seatingService := newTestBookingService(t)
	ctx := context.Background()

	// Detail: pick the show
	resp, err := svc.Start(ctx, StartBookingRequest{EventID: "concert-123", Date: "2024-11-15", Time: "19:00"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Step != "select_seats" {
		t.Fatalf("step after start = %s", resp.Step)
	}
	bookingID := resp.BookingID

	// Select seats: two from the floor
	seats := availableSeats(t, seatingService, "concert-123", "floor-a", 2)
	var wantTotal float64
	for _, seat := range seats {
		resp, err = svc.ToggleSeat(ctx, bookingID, ToggleSeatRequest{ZoneID: "floor-a", SeatID: seat.ID})
		if err != nil {
			t.Fatal(err)
		}
		wantTotal += seat.Price
	}
	if resp.Step != "summary" {
		t.Fatalf("step after selection = %s", resp.Step)
	}
	if resp.Details.TotalPrice != wantTotal {
		t.Errorf("TotalPrice = %v, want %v", resp.Details.TotalPrice, wantTotal)
	}

	// Checkout without a payment method is a blocking notice
	checkout := CheckoutRequest{
		UserInformation: UserInformation{FirstName: "Ada", LastName: "Member", Email: "ada@example.com", MobileNumber: "0812345678"},
	}
	if _, err := svc.Checkout(ctx, bookingID, checkout); !errors.Is(err, ErrPaymentMethodRequired) {
		t.Fatalf("err = %v, want ErrPaymentMethodRequired", err)
	}

	// Checkout with one succeeds
	checkout.PaymentMethod = "Credit Card"
	resp, err = svc.Checkout(ctx, bookingID, checkout)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Step != "ticket" {
		t.Fatalf("step after checkout = %s", resp.Step)
	}
	if !strings.HasPrefix(resp.Details.BookingRef, "ETK-") {
		t.Errorf("BookingRef = %q", resp.Details.BookingRef)
	}

	// Ticket renders the QR image url over the confirmed state
	ticket, err := svc.Ticket(ctx, bookingID)
	if err != nil {
		t.Fatal(err)
	}
	if ticket.BookingRef != resp.Details.BookingRef {
		t.Errorf("ticket ref %q != booking ref %q", ticket.BookingRef, resp.Details.BookingRef)
	}
	if !strings.HasPrefix(ticket.QRCodeURL, "https://api.qrserver.com/v1/create-qr-code/?size=200x200&data=") {
		t.Errorf("QRCodeURL = %q", ticket.QRCodeURL)
	}

	// Abandon removes the session
	svc.Abandon(ctx, bookingID)
	if _, err := svc.Get(ctx, bookingID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err after abandon = %v, want ErrSessionNotFound", err)
	}
}

func TestStartRejectsBadInput(t *testing.T) {
	svc, _ := newTestBookingService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     StartBookingRequest
		wantErr error
	}{
		{"unknown event", StartBookingRequest{EventID: "missing", Date: "2024-11-15", Time: "19:00"}, catalog.ErrEventNotFound},
		{"sold out event", StartBookingRequest{EventID: "sports-456", Date: "2024-12-05", Time: "18:30"}, ErrEventNotBookable},
		{"coming soon event", StartBookingRequest{EventID: "conference-789", Date: "2025-02-20", Time: "09:00"}, ErrEventNotBookable},
		{"presale date is not a show", StartBookingRequest{EventID: "concert-123", Date: "2024-09-15", Time: "10:00"}, ErrShowDateNotFound},
		{"wrong time", StartBookingRequest{EventID: "concert-123", Date: "2024-11-15", Time: "20:00"}, ErrShowDateNotFound},
		{"round not offered on date", StartBookingRequest{EventID: "concert-123", Date: "2024-11-15", Time: "19:00", Round: "Main Show"}, ErrInvalidRound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Start(ctx, tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStartAcceptsRoundOnRoundedDate(t *testing.T) {
	svc, _ := newTestBookingService(t)

	resp, err := svc.Start(context.Background(), StartBookingRequest{
		EventID: "concert-123", Date: "2024-11-16", Time: "20:00", Round: "Main Show",
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Details.SelectedRound != "Main Show" {
		t.Errorf("SelectedRound = %q", resp.Details.SelectedRound)
	}
}

func TestToggleSeatGuardsAndErrors(t *testing.T) {
	svc, seatingService := newTestBookingService(t)
	ctx := context.Background()

	if _, err := svc.ToggleSeat(ctx, "missing", ToggleSeatRequest{ZoneID: "floor-a", SeatID: "0-0"}); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}

	resp, err := svc.Start(ctx, StartBookingRequest{EventID: "concert-123", Date: "2024-11-15", Time: "19:00"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ToggleSeat(ctx, resp.BookingID, ToggleSeatRequest{ZoneID: "missing", SeatID: "0-0"}); !errors.Is(err, seating.ErrLayoutNotFound) {
		t.Errorf("err = %v, want ErrLayoutNotFound", err)
	}

	// toggling the same seat twice leaves the session seatless again
	seat := availableSeats(t, seatingService, "concert-123", "floor-a", 1)[0]
	req := ToggleSeatRequest{ZoneID: "floor-a", SeatID: seat.ID}
	if _, err := svc.ToggleSeat(ctx, resp.BookingID, req); err != nil {
		t.Fatal(err)
	}
	after, err := svc.ToggleSeat(ctx, resp.BookingID, req)
	if err != nil {
		t.Fatal(err)
	}
	if len(after.Details.SelectedSeats) != 0 || after.Details.TotalPrice != 0 {
		t.Errorf("session not reset: %d seats, total %v", len(after.Details.SelectedSeats), after.Details.TotalPrice)
	}
	if after.Step != "select_seats" {
		t.Errorf("step = %s", after.Step)
	}
}

func TestCheckoutWithoutSeatsRedirectsToDetail(t *testing.T) {
	svc, _ := newTestBookingService(t)
	ctx := context.Background()

	resp, err := svc.Start(ctx, StartBookingRequest{EventID: "concert-123", Date: "2024-11-15", Time: "19:00"})
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.Checkout(ctx, resp.BookingID, CheckoutRequest{
		UserInformation: UserInformation{FirstName: "Ada", LastName: "Member", Email: "ada@example.com", MobileNumber: "0812345678"},
		PaymentMethod:   "Credit Card",
	})

	var redirect *StepRedirectError
	if !errors.As(err, &redirect) {
		t.Fatalf("err = %v, want StepRedirectError", err)
	}
	if redirect.Redirect != StepDetail {
		t.Errorf("redirect = %s, want detail", redirect.Redirect)
	}
}

func TestTicketBeforePaymentRedirectsToSummary(t *testing.T) {
	svc, seatingService := newTestBookingService(t)
	ctx := context.Background()

	resp, err := svc.Start(ctx, StartBookingRequest{EventID: "concert-123", Date: "2024-11-15", Time: "19:00"})
	if err != nil {
		t.Fatal(err)
	}
	seat := availableSeats(t, seatingService, "concert-123", "floor-a", 1)[0]
	if _, err := svc.ToggleSeat(ctx, resp.BookingID, ToggleSeatRequest{ZoneID: "floor-a", SeatID: seat.ID}); err != nil {
		t.Fatal(err)
	}

	_, err = svc.Ticket(ctx, resp.BookingID)
	var redirect *StepRedirectError
	if !errors.As(err, &redirect) {
		t.Fatalf("err = %v, want StepRedirectError", err)
	}
	if redirect.Redirect != StepSummary {
		t.Errorf("redirect = %s, want summary", redirect.Redirect)
	}
}
