package catalog

// TicketStatus is the authoritative sale state of an event
type TicketStatus string

const (
	StatusOnSale      TicketStatus = "on_sale"
	StatusComingSoon  TicketStatus = "coming_soon"
	StatusUnavailable TicketStatus = "unavailable"
	StatusOffSale     TicketStatus = "off_sale"
	StatusSoldOut     TicketStatus = "sold_out"
)

// IsValid checks if the ticket status is a known value
func (s TicketStatus) IsValid() bool {
	switch s {
	case StatusOnSale, StatusComingSoon, StatusUnavailable, StatusOffSale, StatusSoldOut:
		return true
	}
	return false
}

// String returns the string representation of TicketStatus
func (s TicketStatus) String() string {
	return string(s)
}

// AllowsSale reports whether tickets can currently be bought
func (s TicketStatus) AllowsSale() bool {
	return s == StatusOnSale
}

// SortRank orders listings: on-sale events first, sold-out last,
// unknown statuses after everything else.
func (s TicketStatus) SortRank() int {
	switch s {
	case StatusOnSale:
		return 1
	case StatusComingSoon:
		return 2
	case StatusUnavailable:
		return 3
	case StatusOffSale:
		return 4
	case StatusSoldOut:
		return 5
	default:
		return 6
	}
}

// EventDateType tags what kind of entry an EventDate is
type EventDateType string

const (
	DateTypePresaleNightrain EventDateType = "presale_nightrain"
	DateTypePresaleGeneral   EventDateType = "presale_general"
	DateTypeOnsalePublic     EventDateType = "onsale_public"
	DateTypeShow             EventDateType = "show"
	DateTypeOther            EventDateType = "other"
)

// SortRank orders an event's dates: sales windows first, shows after,
// so detail views render the announcement timeline above performances.
func (t EventDateType) SortRank() int {
	switch t {
	case DateTypePresaleNightrain:
		return 1
	case DateTypePresaleGeneral:
		return 2
	case DateTypeOnsalePublic:
		return 3
	case DateTypeShow:
		return 4
	default:
		return 5
	}
}

// Category is the event classification used by the listing filter
type Category string

const (
	CategoryConcert     Category = "Concert"
	CategorySport       Category = "Sport"
	CategoryConference  Category = "Conference"
	CategoryExhibition  Category = "Exhibition"
	CategoryPerformance Category = "Performance"

	// CategoryAll disables category filtering
	CategoryAll Category = "All"
)
