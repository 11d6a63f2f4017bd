package seating

import "errors"

// DefaultMaxSeats is the hard cap on seats per booking session
const DefaultMaxSeats = 10

var (
	// ErrSeatNotSelectable rejects unavailable, locked and aisle seats.
	// The renderer never offers these as targets; the engine re-checks
	// anyway so a crafted request cannot select them.
	ErrSeatNotSelectable = errors.New("seat is not selectable")

	// ErrSelectionFull rejects an addition beyond the seat cap. Surfaced to
	// the user as a notice; the selection is left unchanged.
	ErrSelectionFull = errors.New("maximum number of seats already selected")
)

// Engine implements the seat selection rules. It is stateless: the
// authoritative selection lives in the booking session, and every operation
// takes the current selection and returns a new one.
type Engine struct {
	maxSeats int
}

// NewEngine builds an engine with the given cap; non-positive means default
func NewEngine(maxSeats int) *Engine {
	if maxSeats <= 0 {
		maxSeats = DefaultMaxSeats
	}
	return &Engine{maxSeats: maxSeats}
}

// Toggle flips seat membership in the selection. Selecting an already-chosen
// seat removes it; selecting a new one appends a snapshot of the seat's
// current price and labels. Membership is decided by the (zoneID, seatID)
// pair, never by object identity, since seat data may be re-fetched.
func (e *Engine) Toggle(selection []SelectedSeatInfo, seat Seat, zone *Zone) ([]SelectedSeatInfo, error) {
	if seat.Aisle || !seat.Status.Selectable() {
		return selection, ErrSeatNotSelectable
	}

	if idx := indexOf(selection, zone.ID, seat.ID); idx >= 0 {
		out := make([]SelectedSeatInfo, 0, len(selection)-1)
		out = append(out, selection[:idx]...)
		out = append(out, selection[idx+1:]...)
		return out, nil
	}

	if len(selection) >= e.maxSeats {
		return selection, ErrSelectionFull
	}

	out := make([]SelectedSeatInfo, 0, len(selection)+1)
	out = append(out, selection...)
	out = append(out, SelectedSeatInfo{
		ZoneID:     zone.ID,
		ZoneName:   zone.Name,
		SeatID:     seat.ID,
		SeatNumber: seat.SeatNumber,
		Price:      seat.Price,
	})
	return out, nil
}

// Contains reports selection membership by (zoneID, seatID)
func (e *Engine) Contains(selection []SelectedSeatInfo, zoneID, seatID string) bool {
	return indexOf(selection, zoneID, seatID) >= 0
}

// MaxSeats returns the configured cap
func (e *Engine) MaxSeats() int {
	return e.maxSeats
}

// TotalPrice sums the snapshot prices of the selection. Recomputed fresh on
// every call; the cap keeps the selection small enough that incremental
// bookkeeping would only invite drift.
func TotalPrice(selection []SelectedSeatInfo) float64 {
	var total float64
	for _, s := range selection {
		total += s.Price
	}
	return total
}

func indexOf(selection []SelectedSeatInfo, zoneID, seatID string) int {
	for i, s := range selection {
		if s.ZoneID == zoneID && s.SeatID == seatID {
			return i
		}
	}
	return -1
}
