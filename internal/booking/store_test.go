package booking

import (
	"testing"
	"time"

	"eticket/internal/seating"
)

func TestStoreLifecycle(t *testing.T) {
	s := NewStore(0)

	id := s.Create(detailDone())
	if id == "" {
		t.Fatal("empty session id")
	}
	if other := s.Create(detailDone()); other == id {
		t.Fatal("session ids collide")
	}

	details, ok := s.Read(id)
	if !ok {
		t.Fatal("session not readable after create")
	}
	if details.Event.ID != "concert-123" {
		t.Errorf("event id = %s", details.Event.ID)
	}

	updated, ok := s.Update(id, func(d BookingDetails) BookingDetails {
		d.SelectedSeats = []seating.SelectedSeatInfo{{ZoneID: "z", SeatID: "0-0", Price: 100}}
		d.TotalPrice = 100
		return d
	})
	if !ok {
		t.Fatal("update failed")
	}
	if updated.TotalPrice != 100 {
		t.Errorf("TotalPrice = %v", updated.TotalPrice)
	}

	s.Delete(id)
	if _, ok := s.Read(id); ok {
		t.Error("session readable after delete")
	}
}

func TestStoreUpdateReturnsSnapshot(t *testing.T) {
	s := NewStore(0)
	id := s.Create(detailDone())

	first, _ := s.Read(id)
	s.Update(id, func(d BookingDetails) BookingDetails {
		d.TotalPrice = 999
		return d
	})

	// the earlier snapshot is unaffected by the update
	if first.TotalPrice != 0 {
		t.Errorf("snapshot mutated: TotalPrice = %v", first.TotalPrice)
	}
}

func TestStoreUnknownSession(t *testing.T) {
	s := NewStore(0)
	if _, ok := s.Read("missing"); ok {
		t.Error("Read found a session that was never created")
	}
	if _, ok := s.Update("missing", func(d BookingDetails) BookingDetails { return d }); ok {
		t.Error("Update found a session that was never created")
	}
	s.Delete("missing") // no-op, must not panic
}

func TestStoreExpiry(t *testing.T) {
	s := NewStore(10 * time.Millisecond)
	id := s.Create(detailDone())

	if _, ok := s.Read(id); !ok {
		t.Fatal("session expired immediately")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := s.Read(id); ok {
		t.Error("session readable past its TTL")
	}
	if _, ok := s.Update(id, func(d BookingDetails) BookingDetails { return d }); ok {
		t.Error("session updatable past its TTL")
	}
}

func TestStoreUpdateRefreshesTTL(t *testing.T) {
	s := NewStore(30 * time.Millisecond)
	id := s.Create(detailDone())

	time.Sleep(20 * time.Millisecond)
	if _, ok := s.Update(id, func(d BookingDetails) BookingDetails { return d }); !ok {
		t.Fatal("update within TTL failed")
	}

	// past the original deadline but within the refreshed one
	time.Sleep(20 * time.Millisecond)
	if _, ok := s.Read(id); !ok {
		t.Error("TTL not refreshed on update")
	}
}
