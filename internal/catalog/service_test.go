package catalog

import (
	"context"
	"errors"
	"testing"
)

func newTestService() Service {
	return NewService(NewRepository(0, 0), 0)
}

func TestListEventsOrdersByStatus(t *testing.T) {
	events, err := newTestService().ListEvents(context.Background(), EventListQuery{})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 7 {
		t.Fatalf("got %d events, want 7", len(events))
	}

	prev := 0
	for _, e := range events {
		rank := e.TicketStatus.SortRank()
		if rank < prev {
			t.Errorf("event %s (rank %d) listed after rank %d", e.ID, rank, prev)
		}
		prev = rank
	}

	// stable sort keeps fixture order within equal ranks
	wantFirst := []string{"concert-123", "concert-124", "exhibition-101"}
	for i, id := range wantFirst {
		if events[i].ID != id {
			t.Errorf("events[%d].ID = %s, want %s", i, events[i].ID, id)
		}
	}
	if events[len(events)-1].TicketStatus != StatusSoldOut {
		t.Errorf("last event status = %s, want sold_out", events[len(events)-1].TicketStatus)
	}
}

func TestListEventsFilters(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name    string
		query   EventListQuery
		wantIDs []string
	}{
		{
			name:    "search is case-insensitive substring",
			query:   EventListQuery{Search: "rock"},
			wantIDs: []string{"concert-123"},
		},
		{
			name:    "search without match",
			query:   EventListQuery{Search: "opera"},
			wantIDs: []string{},
		},
		{
			name:    "date matches show dates only",
			query:   EventListQuery{Date: "2024-11-15"},
			wantIDs: []string{"concert-123"},
		},
		{
			name:  "date matching a presale announcement is not a hit",
			query: EventListQuery{Date: "2025-01-15"},
			// conference-789's only 2025-01-15 entry is its presale window
			wantIDs: []string{},
		},
		{
			name:    "location is exact match",
			query:   EventListQuery{Location: "Moscone Center, SF"},
			wantIDs: []string{"conference-789"},
		},
		{
			name:    "category filters",
			query:   EventListQuery{Category: "Sport"},
			wantIDs: []string{"sports-456", "sports-457"},
		},
		{
			name:    "category All passes everything",
			query:   EventListQuery{Category: "All", Search: "Pop"},
			wantIDs: []string{"concert-124"},
		},
		{
			name:    "filters combine conjunctively",
			query:   EventListQuery{Search: "live", Category: "Concert", Date: "2025-04-22"},
			wantIDs: []string{"concert-124"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := svc.ListEvents(ctx, tt.query)
			if err != nil {
				t.Fatal(err)
			}
			if len(events) != len(tt.wantIDs) {
				t.Fatalf("got %d events, want %d", len(events), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if events[i].ID != id {
					t.Errorf("events[%d].ID = %s, want %s", i, events[i].ID, id)
				}
			}
		})
	}
}

func TestGetEventSortsDates(t *testing.T) {
	svc := newTestService()
	event, err := svc.GetEvent(context.Background(), "concert-123")
	if err != nil {
		t.Fatal(err)
	}

	wantTypes := []EventDateType{DateTypePresaleNightrain, DateTypeOnsalePublic, DateTypeShow, DateTypeShow}
	if len(event.Dates) != len(wantTypes) {
		t.Fatalf("got %d dates, want %d", len(event.Dates), len(wantTypes))
	}
	for i, wt := range wantTypes {
		if event.Dates[i].Type != wt {
			t.Errorf("dates[%d].Type = %s, want %s", i, event.Dates[i].Type, wt)
		}
	}
	// shows tie on rank, so calendar order breaks the tie
	if event.Dates[2].Date > event.Dates[3].Date {
		t.Errorf("show dates out of order: %s before %s", event.Dates[2].Date, event.Dates[3].Date)
	}
}

func TestGetEventNotFound(t *testing.T) {
	if _, err := newTestService().GetEvent(context.Background(), "missing"); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("err = %v, want ErrEventNotFound", err)
	}
}

func TestEventBookability(t *testing.T) {
	repo := NewRepository(0, 0)
	ctx := context.Background()

	tests := []struct {
		id   string
		want bool
	}{
		{"concert-123", true},
		{"exhibition-101", true},
		{"sports-456", false},     // sold out
		{"conference-789", false}, // coming soon
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			event, err := repo.GetByID(ctx, tt.id)
			if err != nil {
				t.Fatal(err)
			}
			if got := event.IsBookable(); got != tt.want {
				t.Errorf("IsBookable = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindShowDate(t *testing.T) {
	repo := NewRepository(0, 0)
	event, err := repo.GetByID(context.Background(), "performance-202")
	if err != nil {
		t.Fatal(err)
	}

	// two shows share 2025-03-26; time disambiguates
	d, ok := event.FindShowDate("2025-03-26", "14:00")
	if !ok || d.GateOpenTime != "13:30" {
		t.Errorf("FindShowDate(14:00) = %+v, %v", d, ok)
	}
	if _, ok := event.FindShowDate("2025-03-26", "09:00"); ok {
		t.Error("FindShowDate matched a non-existent time")
	}
	// presale entries never match even on an exact timestamp
	if _, ok := event.FindShowDate("2025-02-15", "10:00"); ok {
		t.Error("FindShowDate matched a presale entry")
	}
}

func TestFixtureEventIDs(t *testing.T) {
	ids := FixtureEventIDs()
	if len(ids) != 7 {
		t.Fatalf("got %d ids, want 7", len(ids))
	}
	if ids[0] != "concert-123" || ids[6] != "performance-202" {
		t.Errorf("unexpected fixture order: %v", ids)
	}
}
