package seating

import (
	"errors"
	"fmt"
	"testing"
)

func testZone() *Zone {
	return &Zone{
		ID:   "floor-a",
		Name: "Floor A",
		Seats: [][]Seat{
			{
				{ID: "0-0", SeatNumber: "A1", Status: SeatAvailable, Price: 5500, PriceTier: TierPremium},
				{ID: "0-1", SeatNumber: "A2", Status: SeatUnavailable, Price: 5500, PriceTier: TierPremium},
				{ID: "aisle-0-2", SeatNumber: "Aisle", Status: SeatUnavailable, Aisle: true},
				{ID: "0-2", SeatNumber: "A3", Status: SeatLocked, Price: 5500, PriceTier: TierPremium},
			},
		},
	}
}

func TestToggleAddsAndRemoves(t *testing.T) {
	engine := NewEngine(DefaultMaxSeats)
	zone := testZone()
	seat, _ := zone.FindSeat("0-0")

	selection, err := engine.Toggle(nil, seat, zone)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if len(selection) != 1 {
		t.Fatalf("after select: got %d seats, want 1", len(selection))
	}

	got := selection[0]
	if got.ZoneID != "floor-a" || got.SeatID != "0-0" || got.SeatNumber != "A1" || got.Price != 5500 {
		t.Errorf("selection snapshot = %+v", got)
	}
	if !engine.Contains(selection, "floor-a", "0-0") {
		t.Error("Contains should report the selected seat")
	}

	// toggling the same seat again deselects it
	selection, err = engine.Toggle(selection, seat, zone)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if len(selection) != 0 {
		t.Fatalf("after deselect: got %d seats, want 0", len(selection))
	}
}

func TestToggleRejectsNonSelectableSeats(t *testing.T) {
	engine := NewEngine(DefaultMaxSeats)
	zone := testZone()

	tests := []struct {
		name   string
		seatID string
	}{
		{"unavailable seat", "0-1"},
		{"aisle spacer", "aisle-0-2"},
		{"locked seat", "0-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seat, ok := zone.FindSeat(tt.seatID)
			if !ok {
				t.Fatalf("seat %s missing from fixture", tt.seatID)
			}

			selection, err := engine.Toggle(nil, seat, zone)
			if !errors.Is(err, ErrSeatNotSelectable) {
				t.Fatalf("err = %v, want ErrSeatNotSelectable", err)
			}
			if len(selection) != 0 {
				t.Errorf("selection changed on rejected toggle: %+v", selection)
			}
		})
	}
}

func TestToggleEnforcesSeatCap(t *testing.T) {
	engine := NewEngine(3)
	zone := &Zone{ID: "z", Name: "Zone"}

	var selection []SelectedSeatInfo
	var err error
	for i := 0; i < 3; i++ {
		seat := Seat{ID: fmt.Sprintf("0-%d", i), SeatNumber: fmt.Sprintf("A%d", i+1), Status: SeatAvailable, Price: 100}
		selection, err = engine.Toggle(selection, seat, zone)
		if err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
	}

	overflow := Seat{ID: "0-9", SeatNumber: "A10", Status: SeatAvailable, Price: 100}
	got, err := engine.Toggle(selection, overflow, zone)
	if !errors.Is(err, ErrSelectionFull) {
		t.Fatalf("err = %v, want ErrSelectionFull", err)
	}
	if len(got) != 3 {
		t.Errorf("selection size after rejected add = %d, want 3", len(got))
	}

	// a full selection still allows deselection
	got, err = engine.Toggle(selection, Seat{ID: "0-1", Status: SeatAvailable}, zone)
	if err != nil {
		t.Fatalf("deselect at cap: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("selection size after deselect = %d, want 2", len(got))
	}
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	engine := NewEngine(DefaultMaxSeats)
	zone := testZone()
	seat, _ := zone.FindSeat("0-0")

	original := []SelectedSeatInfo{{ZoneID: "other", SeatID: "1-1", Price: 20}}
	selection, err := engine.Toggle(original, seat, zone)
	if err != nil {
		t.Fatal(err)
	}
	if len(selection) != 2 {
		t.Fatalf("got %d seats, want 2", len(selection))
	}
	if len(original) != 1 || original[0].SeatID != "1-1" {
		t.Errorf("input selection mutated: %+v", original)
	}
}

func TestTotalPrice(t *testing.T) {
	selection := []SelectedSeatInfo{
		{Price: 5500},
		{Price: 3520.5},
		{Price: 1800},
	}
	if got, want := TotalPrice(selection), 10820.5; got != want {
		t.Errorf("TotalPrice = %v, want %v", got, want)
	}
	if got := TotalPrice(nil); got != 0 {
		t.Errorf("TotalPrice(nil) = %v, want 0", got)
	}
}

func TestNewEngineDefaultsCap(t *testing.T) {
	if got := NewEngine(0).MaxSeats(); got != DefaultMaxSeats {
		t.Errorf("MaxSeats = %d, want %d", got, DefaultMaxSeats)
	}
	if got := NewEngine(-5).MaxSeats(); got != DefaultMaxSeats {
		t.Errorf("MaxSeats = %d, want %d", got, DefaultMaxSeats)
	}
}
