package catalog

// Location is a venue position with an optional display name
type Location struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name,omitempty"`
}

// EventDate is one dated entry of an event: either an actual performance
// (type "show") or a sales-window announcement (presale/onsale). Dates are
// YYYY-MM-DD strings and times HH:MM 24-hour strings; no timezone is carried.
type EventDate struct {
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	EndDate      string        `json:"end_date,omitempty"`
	EndTime      string        `json:"end_time,omitempty"`
	GateOpenTime string        `json:"gate_open_time,omitempty"`
	Label        string        `json:"label,omitempty"`
	Rounds       []string      `json:"rounds,omitempty"`
	Type         EventDateType `json:"type,omitempty"`
}

// IsShow reports whether this date is an actual bookable performance
func (d EventDate) IsShow() bool {
	return d.Type == DateTypeShow
}

// HasRound reports whether round names one of this date's rounds
func (d EventDate) HasRound(round string) bool {
	for _, r := range d.Rounds {
		if r == round {
			return true
		}
	}
	return false
}

// Event is immutable after the provider loads it. SoldOut overlaps with
// TicketStatus in the source data; TicketStatus is authoritative everywhere
// and SoldOut is carried for display parity only.
type Event struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	Dates             []EventDate  `json:"dates"`
	Location          Location     `json:"location"`
	Category          Category     `json:"event_type"`
	ImageURL          string       `json:"image_url"`
	BannerURL         string       `json:"banner_url,omitempty"`
	Tags              []string     `json:"tags,omitempty"`
	Organizer         string       `json:"organizer,omitempty"`
	SoldOut           bool         `json:"sold_out"`
	PriceRangeDisplay []string     `json:"price_range_display,omitempty"`
	TicketStatus      TicketStatus `json:"ticket_status"`
}

// ShowDates returns the bookable subset of the event's dates
func (e *Event) ShowDates() []EventDate {
	var shows []EventDate
	for _, d := range e.Dates {
		if d.IsShow() {
			shows = append(shows, d)
		}
	}
	return shows
}

// FindShowDate returns the show-typed date matching (date, time) exactly
func (e *Event) FindShowDate(date, timeOfDay string) (EventDate, bool) {
	for _, d := range e.Dates {
		if d.IsShow() && d.Date == date && d.Time == timeOfDay {
			return d, true
		}
	}
	return EventDate{}, false
}

// IsBookable reports whether seat booking may start for this event
func (e *Event) IsBookable() bool {
	return e.TicketStatus.AllowsSale() && len(e.ShowDates()) > 0
}

// EventListQuery carries the optional listing filters
type EventListQuery struct {
	Search   string `form:"search"`
	Date     string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Location string `form:"location"`
	Category string `form:"category"`
}

// IsEmpty reports whether no filter is set (the cacheable hot path)
func (q EventListQuery) IsEmpty() bool {
	return q.Search == "" && q.Date == "" && q.Location == "" && q.Category == ""
}
