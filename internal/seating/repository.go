package seating

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"eticket/internal/shared/utils/delay"
)

var ErrLayoutNotFound = errors.New("seating layout not found")

// Repository is the read-only seating layout source, one layout per event
type Repository interface {
	GetByEventID(ctx context.Context, eventID string) (*SeatingLayout, error)
}

type repository struct {
	layouts     map[string]SeatingLayout
	layoutDelay time.Duration
}

// NewRepository builds every layout once, up front, from a single seeded
// rng: the handcrafted arena layouts first, then a default two-zone layout
// for any event id that lacks one, matching the provider's backfill rule.
func NewRepository(seed int64, layoutDelay time.Duration, eventIDs []string) Repository {
	rng := rand.New(rand.NewSource(seed))

	layouts := map[string]SeatingLayout{
		"concert-123": {
			EventID:       "concert-123",
			StagePosition: &StagePosition{Top: "5%", Left: "50%", Width: "40%", Height: "10%"},
			Zones: []Zone{
				{ID: "floor-a", Name: "Floor A", Seats: generateSeats(rng, 5, 15, 5000, TierPremium), MapPosition: MapPosition{Top: "20%", Left: "35%", Width: "30%", Height: "20%"}},
				{ID: "sec-101", Name: "Section 101", Seats: generateSeats(rng, 10, 20, 3500, TierStandard), MapPosition: MapPosition{Top: "45%", Left: "10%", Width: "25%", Height: "30%"}},
				{ID: "sec-102", Name: "Section 102", Seats: generateSeats(rng, 10, 20, 3500, TierStandard), MapPosition: MapPosition{Top: "45%", Left: "65%", Width: "25%", Height: "30%"}},
				{ID: "balcony-201", Name: "Balcony 201", Seats: generateSeats(rng, 8, 25, 2000, TierEconomy), MapPosition: MapPosition{Top: "80%", Left: "20%", Width: "60%", Height: "15%"}},
			},
		},
		"sports-456": {
			EventID:       "sports-456",
			StagePosition: &StagePosition{Top: "45%", Left: "50%", Width: "40%", Height: "10%"}, // center court
			Zones: []Zone{
				{ID: "courtside", Name: "Courtside", Seats: generateSeats(rng, 3, 20, 15000, TierPremium), MapPosition: MapPosition{Top: "35%", Left: "20%", Width: "60%", Height: "10%"}},
				{ID: "lower-100s", Name: "Lower 100s", Seats: generateSeats(rng, 15, 25, 6000, TierStandard), MapPosition: MapPosition{Top: "20%", Left: "10%", Width: "80%", Height: "30%"}},
				{ID: "upper-300s", Name: "Upper 300s", Seats: generateSeats(rng, 20, 30, 2500, TierEconomy), MapPosition: MapPosition{Top: "60%", Left: "5%", Width: "90%", Height: "35%"}},
			},
		},
		"conference-789": {
			EventID:       "conference-789",
			StagePosition: &StagePosition{Top: "5%", Left: "50%", Width: "50%", Height: "10%"},
			Zones: []Zone{
				{ID: "vip-front", Name: "VIP Front Rows", Seats: generateSeats(rng, 5, 10, 10000, TierPremium), MapPosition: MapPosition{Top: "20%", Left: "30%", Width: "40%", Height: "15%"}},
				{ID: "general-main", Name: "General Main", Seats: generateSeats(rng, 20, 20, 7000, TierStandard), MapPosition: MapPosition{Top: "40%", Left: "10%", Width: "80%", Height: "40%"}},
				{ID: "side-sections", Name: "Side Sections", Seats: generateSeats(rng, 15, 8, 4000, TierEconomy), MapPosition: MapPosition{Top: "30%", Left: "5%", Width: "15%", Height: "30%"}},
				{ID: "side-sections-2", Name: "Side Sections B", Seats: generateSeats(rng, 15, 8, 4000, TierEconomy), MapPosition: MapPosition{Top: "30%", Left: "80%", Width: "15%", Height: "30%"}},
			},
		},
	}

	for _, eventID := range eventIDs {
		if _, ok := layouts[eventID]; ok {
			continue
		}
		layouts[eventID] = SeatingLayout{
			EventID:       eventID,
			StagePosition: &StagePosition{Top: "5%", Left: "50%", Width: "40%", Height: "10%"},
			Zones: []Zone{
				{ID: eventID + "-zone-a", Name: "Zone A", Seats: generateSeats(rng, 10, 15, 2500, TierStandard), MapPosition: MapPosition{Top: "20%", Left: "15%", Width: "70%", Height: "30%"}},
				{ID: eventID + "-zone-b", Name: "Zone B", Seats: generateSeats(rng, 8, 20, 1500, TierEconomy), MapPosition: MapPosition{Top: "55%", Left: "10%", Width: "80%", Height: "25%"}},
			},
		}
	}

	return &repository{
		layouts:     layouts,
		layoutDelay: layoutDelay,
	}
}

func (r *repository) GetByEventID(ctx context.Context, eventID string) (*SeatingLayout, error) {
	if err := delay.Wait(ctx, r.layoutDelay); err != nil {
		return nil, err
	}

	layout, ok := r.layouts[eventID]
	if !ok {
		return nil, ErrLayoutNotFound
	}
	return &layout, nil
}
