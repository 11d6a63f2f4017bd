package seating

import (
	"context"
)

// Service exposes layout reads plus the seat lookup the booking flow needs
type Service interface {
	GetLayout(ctx context.Context, eventID string) (*SeatingLayout, error)
	GetSeat(ctx context.Context, eventID, zoneID, seatID string) (Seat, *Zone, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetLayout(ctx context.Context, eventID string) (*SeatingLayout, error) {
	return s.repo.GetByEventID(ctx, eventID)
}

// GetSeat resolves a (zone, seat) pair against the event's layout. A missing
// zone or seat maps to ErrLayoutNotFound: from the flow's perspective the
// target simply does not exist.
func (s *service) GetSeat(ctx context.Context, eventID, zoneID, seatID string) (Seat, *Zone, error) {
	layout, err := s.repo.GetByEventID(ctx, eventID)
	if err != nil {
		return Seat{}, nil, err
	}

	zone, ok := layout.Zone(zoneID)
	if !ok {
		return Seat{}, nil, ErrLayoutNotFound
	}

	seat, ok := zone.FindSeat(seatID)
	if !ok {
		return Seat{}, nil, ErrLayoutNotFound
	}

	return seat, zone, nil
}
