package booking

import (
	"context"
	"errors"

	"eticket/internal/catalog"
	"eticket/internal/seating"
	"eticket/internal/shared/config"
	"eticket/pkg/logger"
)

var (
	ErrSessionNotFound       = errors.New("booking session not found")
	ErrEventNotBookable      = errors.New("event is not open for booking")
	ErrShowDateNotFound      = errors.New("no show on the requested date and time")
	ErrInvalidRound          = errors.New("round does not belong to the selected date")
	ErrPaymentMethodRequired = errors.New("payment method is required")
)

// Service drives the booking flow end to end: session lifecycle, step
// guards, seat toggling and the simulated checkout.
type Service interface {
	Start(ctx context.Context, req StartBookingRequest) (*BookingResponse, error)
	Get(ctx context.Context, bookingID string) (*BookingResponse, error)
	ToggleSeat(ctx context.Context, bookingID string, req ToggleSeatRequest) (*BookingResponse, error)
	Checkout(ctx context.Context, bookingID string, req CheckoutRequest) (*BookingResponse, error)
	Ticket(ctx context.Context, bookingID string) (*TicketResponse, error)
	Abandon(ctx context.Context, bookingID string)

	// MaxSeats is the per-booking seat cap enforced by the engine
	MaxSeats() int
}

type service struct {
	store          Store
	catalogService catalog.Service
	seatingService seating.Service
	engine         *seating.Engine
	processor      Processor
	qr             config.QRConfig
}

func NewService(store Store, catalogService catalog.Service, seatingService seating.Service,
	engine *seating.Engine, processor Processor, qr config.QRConfig) Service {
	return &service{
		store:          store,
		catalogService: catalogService,
		seatingService: seatingService,
		engine:         engine,
		processor:      processor,
		qr:             qr,
	}
}

func (s *service) Start(ctx context.Context, req StartBookingRequest) (*BookingResponse, error) {
	event, err := s.catalogService.GetEvent(ctx, req.EventID)
	if err != nil {
		return nil, err
	}

	if !event.IsBookable() {
		return nil, ErrEventNotBookable
	}

	date, ok := event.FindShowDate(req.Date, req.Time)
	if !ok {
		return nil, ErrShowDateNotFound
	}

	if req.Round != "" && !date.HasRound(req.Round) {
		return nil, ErrInvalidRound
	}

	details := BookingDetails{
		Event:             *event,
		SelectedEventDate: date,
		SelectedRound:     req.Round,
		SelectedSeats:     []seating.SelectedSeatInfo{},
		TotalPrice:        0,
	}

	id := s.store.Create(details)
	logger.GetDefault().LogBookingStarted(ctx, id, event.ID)

	return &BookingResponse{
		BookingID: id,
		Step:      CurrentStep(&details).String(),
		Details:   &details,
	}, nil
}

func (s *service) Get(ctx context.Context, bookingID string) (*BookingResponse, error) {
	details, ok := s.store.Read(bookingID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	return &BookingResponse{
		BookingID: bookingID,
		Step:      CurrentStep(details).String(),
		Details:   details,
	}, nil
}

func (s *service) ToggleSeat(ctx context.Context, bookingID string, req ToggleSeatRequest) (*BookingResponse, error) {
	details, ok := s.store.Read(bookingID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if err := guardSelectSeats(details); err != nil {
		return nil, err
	}

	seat, zone, err := s.seatingService.GetSeat(ctx, details.Event.ID, req.ZoneID, req.SeatID)
	if err != nil {
		return nil, err
	}

	newSelection, err := s.engine.Toggle(details.SelectedSeats, seat, zone)
	if err != nil {
		return nil, err
	}

	updated, ok := s.store.Update(bookingID, func(d BookingDetails) BookingDetails {
		d.SelectedSeats = newSelection
		d.TotalPrice = seating.TotalPrice(newSelection)
		return d
	})
	if !ok {
		return nil, ErrSessionNotFound
	}

	return &BookingResponse{
		BookingID: bookingID,
		Step:      CurrentStep(updated).String(),
		Details:   updated,
	}, nil
}

func (s *service) Checkout(ctx context.Context, bookingID string, req CheckoutRequest) (*BookingResponse, error) {
	details, ok := s.store.Read(bookingID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if err := guardSummary(details); err != nil {
		return nil, err
	}

	method := PaymentMethod(req.PaymentMethod)
	if !method.IsValid() {
		return nil, ErrPaymentMethodRequired
	}

	// Simulated gateway round-trip; deterministic success
	if err := s.processor.Process(ctx, details.TotalPrice, method); err != nil {
		return nil, err
	}

	ref, err := generateBookingRef()
	if err != nil {
		return nil, err
	}

	userInfo := req.UserInformation
	updated, ok := s.store.Update(bookingID, func(d BookingDetails) BookingDetails {
		d.UserInformation = &userInfo
		d.PaymentMethod = method
		d.BookingRef = ref
		return d
	})
	if !ok {
		return nil, ErrSessionNotFound
	}

	logger.GetDefault().LogBookingConfirmed(ctx, bookingID, updated.Event.ID, method.String(), updated.TotalPrice)

	return &BookingResponse{
		BookingID: bookingID,
		Step:      CurrentStep(updated).String(),
		Details:   updated,
	}, nil
}

func (s *service) Ticket(ctx context.Context, bookingID string) (*TicketResponse, error) {
	details, ok := s.store.Read(bookingID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if err := guardTicket(details); err != nil {
		return nil, err
	}

	qrURL, err := NewTicketPayload(details).ImageURL(s.qr.BaseURL, s.qr.Size)
	if err != nil {
		return nil, err
	}

	return &TicketResponse{
		BookingID:  bookingID,
		BookingRef: details.BookingRef,
		Details:    details,
		QRCodeURL:  qrURL,
	}, nil
}

func (s *service) Abandon(ctx context.Context, bookingID string) {
	s.store.Delete(bookingID)
}

func (s *service) MaxSeats() int {
	return s.engine.MaxSeats()
}
