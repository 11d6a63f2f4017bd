package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds the live booking sessions. State is in-memory only and lost on
// restart: the storefront's booking state is explicitly non-durable, so no
// storage backend sits behind this.
//
// Update replaces the whole value: transforms must return a new
// BookingDetails (slices replaced, not mutated in place) so concurrent
// readers of a previously returned snapshot are never affected.
type Store interface {
	Create(details BookingDetails) string
	Read(id string) (*BookingDetails, bool)
	Update(id string, transform func(BookingDetails) BookingDetails) (*BookingDetails, bool)
	Delete(id string)

	// StartJanitor sweeps expired sessions until ctx is cancelled
	StartJanitor(ctx context.Context)
}

type session struct {
	details   BookingDetails
	expiresAt time.Time
}

type store struct {
	mu       sync.RWMutex
	sessions map[string]*session
	ttl      time.Duration
}

// NewStore creates an in-memory session store with the given idle TTL.
// A non-positive ttl disables expiry.
func NewStore(ttl time.Duration) Store {
	return &store{
		sessions: make(map[string]*session),
		ttl:      ttl,
	}
}

func (s *store) Create(details BookingDetails) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &session{
		details:   details,
		expiresAt: s.deadline(),
	}
	return id
}

func (s *store) Read(id string) (*BookingDetails, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || s.expired(sess) {
		return nil, false
	}

	details := sess.details
	return &details, true
}

func (s *store) Update(id string, transform func(BookingDetails) BookingDetails) (*BookingDetails, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		return nil, false
	}

	sess.details = transform(sess.details)
	sess.expiresAt = s.deadline()

	details := sess.details
	return &details, true
}

func (s *store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *store) StartJanitor(ctx context.Context) {
	if s.ttl <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *store) sweep() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if !sess.expiresAt.IsZero() && now.After(sess.expiresAt) {
			delete(s.sessions, id)
		}
	}
}

func (s *store) deadline() time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return time.Now().Add(s.ttl)
}

func (s *store) expired(sess *session) bool {
	return !sess.expiresAt.IsZero() && time.Now().After(sess.expiresAt)
}
