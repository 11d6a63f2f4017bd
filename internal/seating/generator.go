package seating

import (
	"fmt"
	"math/rand"
)

// generateSeats builds a zone grid. Roughly a fifth of seats come back
// unavailable and an aisle spacer is inserted after every fifth column
// (except at the row edge), so rendered rows are wider than seatsPerRow.
// The caller's rng makes the layout deterministic for a given seed.
func generateSeats(rng *rand.Rand, rows, seatsPerRow int, basePrice float64, tier PriceTier) [][]Seat {
	seats := make([][]Seat, 0, rows)
	for i := 0; i < rows; i++ {
		row := make([]Seat, 0, seatsPerRow+seatsPerRow/5)
		for j := 0; j < seatsPerRow; j++ {
			status := SeatAvailable
			if rng.Float64() > 0.8 {
				status = SeatUnavailable
			}

			if j > 0 && j%5 == 0 && j < seatsPerRow-1 {
				row = append(row, Seat{
					ID:         fmt.Sprintf("aisle-%d-%d", i, j),
					SeatNumber: "Aisle",
					Status:     SeatUnavailable,
					Price:      0,
					PriceTier:  TierStandard,
					Aisle:      true,
				})
			}

			row = append(row, Seat{
				ID:         fmt.Sprintf("%d-%d", i, j),
				SeatNumber: fmt.Sprintf("%c%d", 'A'+i, j+1),
				Status:     status,
				Price:      basePrice + tier.PriceOffset() + float64(rng.Intn(100)),
				PriceTier:  tier,
			})
		}
		seats = append(seats, row)
	}
	return seats
}
