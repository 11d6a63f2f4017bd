package seating

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func TestGenerateSeatsGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rows, perRow := 4, 12
	seats := generateSeats(rng, rows, perRow, 3500, TierStandard)

	if len(seats) != rows {
		t.Fatalf("rows = %d, want %d", len(seats), rows)
	}

	for i, row := range seats {
		var real, aisles int
		for j, seat := range row {
			if seat.Aisle {
				aisles++
				if seat.Price != 0 || seat.Status.Selectable() {
					t.Errorf("row %d col %d: aisle seat must be free and unselectable: %+v", i, j, seat)
				}
				continue
			}
			real++
			if seat.Price < 3500 || seat.Price >= 3600 {
				t.Errorf("row %d col %d: price %v outside [3500,3600)", i, j, seat.Price)
			}
		}
		if real != perRow {
			t.Errorf("row %d: %d seats, want %d", i, real, perRow)
		}
		// 12 columns puts spacers after columns 5 and 10
		if aisles != 2 {
			t.Errorf("row %d: %d aisles, want 2", i, aisles)
		}
	}

	// spacer sits between the 5th and 6th seat
	if !seats[0][5].Aisle {
		t.Errorf("expected aisle at index 5, got %+v", seats[0][5])
	}
	if seats[0][0].SeatNumber != "A1" || seats[1][0].SeatNumber != "B1" {
		t.Errorf("seat numbering wrong: %q, %q", seats[0][0].SeatNumber, seats[1][0].SeatNumber)
	}
}

func TestGenerateSeatsNoTrailingAisle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	// 6 columns: column 5 is the last seat, so no spacer precedes it
	seats := generateSeats(rng, 1, 6, 1000, TierEconomy)
	for _, seat := range seats[0] {
		if seat.Aisle {
			t.Errorf("unexpected aisle in 6-wide row: %+v", seat)
		}
	}
}

func TestGenerateSeatsTierPricing(t *testing.T) {
	tests := []struct {
		tier     PriceTier
		base     float64
		min, max float64
	}{
		{TierPremium, 5000, 5500, 5600},
		{TierStandard, 5000, 5000, 5100},
		{TierEconomy, 5000, 4800, 4900},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			rng := rand.New(rand.NewSource(7))
			seats := generateSeats(rng, 2, 8, tt.base, tt.tier)
			for _, row := range seats {
				for _, seat := range row {
					if seat.Aisle {
						continue
					}
					if seat.Price < tt.min || seat.Price >= tt.max {
						t.Errorf("price %v outside [%v,%v)", seat.Price, tt.min, tt.max)
					}
				}
			}
		})
	}
}

func TestRepositoryDeterministicForSeed(t *testing.T) {
	ids := []string{"concert-123", "extra-1"}
	a := NewRepository(42, 0, ids)
	b := NewRepository(42, 0, ids)

	ctx := context.Background()
	la, err := a.GetByEventID(ctx, "concert-123")
	if err != nil {
		t.Fatal(err)
	}
	lb, err := b.GetByEventID(ctx, "concert-123")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(la, lb) {
		t.Error("same seed produced different layouts")
	}
}

func TestRepositoryBackfillsDefaultLayout(t *testing.T) {
	repo := NewRepository(42, 0, []string{"concert-123", "exhibition-101"})
	ctx := context.Background()

	layout, err := repo.GetByEventID(ctx, "exhibition-101")
	if err != nil {
		t.Fatal(err)
	}
	if len(layout.Zones) != 2 {
		t.Fatalf("default layout has %d zones, want 2", len(layout.Zones))
	}
	if layout.Zones[0].ID != "exhibition-101-zone-a" || layout.Zones[1].ID != "exhibition-101-zone-b" {
		t.Errorf("zone ids = %q, %q", layout.Zones[0].ID, layout.Zones[1].ID)
	}

	// handcrafted layouts are never overwritten by the backfill
	concert, err := repo.GetByEventID(ctx, "concert-123")
	if err != nil {
		t.Fatal(err)
	}
	if len(concert.Zones) != 4 {
		t.Errorf("concert-123 has %d zones, want 4", len(concert.Zones))
	}
}

func TestRepositoryUnknownEvent(t *testing.T) {
	repo := NewRepository(42, 0, nil)
	if _, err := repo.GetByEventID(context.Background(), "nope"); !errors.Is(err, ErrLayoutNotFound) {
		t.Errorf("err = %v, want ErrLayoutNotFound", err)
	}
}

func TestServiceGetSeat(t *testing.T) {
	repo := NewRepository(42, 0, nil)
	svc := NewService(repo)
	ctx := context.Background()

	seat, zone, err := svc.GetSeat(ctx, "concert-123", "floor-a", "0-0")
	if err != nil {
		t.Fatal(err)
	}
	if zone.ID != "floor-a" || zone.Name != "Floor A" {
		t.Errorf("zone = %+v", zone)
	}
	if seat.ID != "0-0" || seat.SeatNumber != "A1" {
		t.Errorf("seat = %+v", seat)
	}

	tests := []struct {
		name    string
		eventID string
		zoneID  string
		seatID  string
	}{
		{"unknown event", "missing", "floor-a", "0-0"},
		{"unknown zone", "concert-123", "missing", "0-0"},
		{"unknown seat", "concert-123", "floor-a", "99-99"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := svc.GetSeat(ctx, tt.eventID, tt.zoneID, tt.seatID); !errors.Is(err, ErrLayoutNotFound) {
				t.Errorf("err = %v, want ErrLayoutNotFound", err)
			}
		})
	}
}
