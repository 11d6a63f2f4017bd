package catalog

import (
	"context"
	"errors"
	"sort"
	"time"

	"eticket/internal/shared/utils/delay"
)

var ErrEventNotFound = errors.New("event not found")

// Repository is the read-only event data source. The implementation is an
// in-memory fixture set behind an artificial latency; there is no write path
// and no persistence by design.
type Repository interface {
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
}

type repository struct {
	events      []Event
	listDelay   time.Duration
	detailDelay time.Duration
}

// NewRepository builds the mock provider. Delays stand in for network
// round-trips and are honoured per call; pass zero for tests.
func NewRepository(listDelay, detailDelay time.Duration) Repository {
	return &repository{
		events:      mockEvents(),
		listDelay:   listDelay,
		detailDelay: detailDelay,
	}
}

func (r *repository) List(ctx context.Context) ([]Event, error) {
	if err := delay.Wait(ctx, r.listDelay); err != nil {
		return nil, err
	}

	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Event, error) {
	if err := delay.Wait(ctx, r.detailDelay); err != nil {
		return nil, err
	}

	for i := range r.events {
		if r.events[i].ID == id {
			event := r.events[i]

			// Detail views want the sales timeline first, then shows in
			// calendar order.
			dates := make([]EventDate, len(event.Dates))
			copy(dates, event.Dates)
			sort.SliceStable(dates, func(a, b int) bool {
				if dates[a].Type.SortRank() != dates[b].Type.SortRank() {
					return dates[a].Type.SortRank() < dates[b].Type.SortRank()
				}
				return dates[a].Date < dates[b].Date
			})
			event.Dates = dates

			return &event, nil
		}
	}

	return nil, ErrEventNotFound
}
