package seating

// SeatStatus is the provider-reported state of a seat. "selected" exists
// only as a rendering state derived from the booking session's selection;
// the provider never hands it out and nothing here stores it on a Seat.
type SeatStatus string

const (
	SeatAvailable   SeatStatus = "available"
	SeatUnavailable SeatStatus = "unavailable"
	SeatSelected    SeatStatus = "selected"
	SeatLocked      SeatStatus = "locked"
)

// Selectable reports whether a seat in this status can be toggled
func (s SeatStatus) Selectable() bool {
	return s == SeatAvailable
}

// PriceTier is the pricing category driving price and map color-coding
type PriceTier string

const (
	TierPremium  PriceTier = "premium"
	TierStandard PriceTier = "standard"
	TierEconomy  PriceTier = "economy"
)

// PriceOffset is the tier's adjustment over a zone's base price
func (t PriceTier) PriceOffset() float64 {
	switch t {
	case TierPremium:
		return 500
	case TierEconomy:
		return -200
	default:
		return 0
	}
}

// Seat is one cell of a zone grid. Aisle seats are layout spacers: never
// selectable, price zero, excluded from totals.
type Seat struct {
	ID         string     `json:"id"`
	SeatNumber string     `json:"seat_number"`
	Status     SeatStatus `json:"status"`
	Price      float64    `json:"price"`
	PriceTier  PriceTier  `json:"price_tier"`
	Aisle      bool       `json:"aisle,omitempty"`
}

// MapPosition is a percentage-based rectangle on the venue map
type MapPosition struct {
	Top    string `json:"top"`
	Left   string `json:"left"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

// StagePosition anchors the stage on the venue map; sides are optional
type StagePosition struct {
	Top    string `json:"top,omitempty"`
	Bottom string `json:"bottom,omitempty"`
	Left   string `json:"left,omitempty"`
	Right  string `json:"right,omitempty"`
	Width  string `json:"width,omitempty"`
	Height string `json:"height,omitempty"`
}

// Zone is a seating section with a rows-by-seats grid and a map rectangle
type Zone struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Seats       [][]Seat    `json:"seats"`
	MapPosition MapPosition `json:"map_position"`
}

// FindSeat looks a seat up by id within the zone grid
func (z *Zone) FindSeat(seatID string) (Seat, bool) {
	for _, row := range z.Seats {
		for _, seat := range row {
			if seat.ID == seatID {
				return seat, true
			}
		}
	}
	return Seat{}, false
}

// SeatingLayout is the full seat map of one event
type SeatingLayout struct {
	EventID       string         `json:"event_id"`
	Zones         []Zone         `json:"zones"`
	StagePosition *StagePosition `json:"stage_position,omitempty"`
}

// Zone returns the zone with the given id
func (l *SeatingLayout) Zone(zoneID string) (*Zone, bool) {
	for i := range l.Zones {
		if l.Zones[i].ID == zoneID {
			return &l.Zones[i], true
		}
	}
	return nil, false
}

// SelectedSeatInfo is a denormalized snapshot taken at selection time, so a
// later re-fetch of the layout cannot retroactively alter a chosen seat.
type SelectedSeatInfo struct {
	ZoneID     string  `json:"zone_id"`
	ZoneName   string  `json:"zone_name"`
	SeatID     string  `json:"seat_id"`
	SeatNumber string  `json:"seat_number"`
	Price      float64 `json:"price"`
}
