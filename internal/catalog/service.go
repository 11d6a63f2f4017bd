package catalog

import (
	"context"
	"sort"
	"strings"
	"time"

	"eticket/internal/shared/constants"
	"eticket/pkg/cache"
)

// Service applies the listing filters and ordering on top of the provider
type Service interface {
	SetCacheService(cacheService cache.Service)
	ListEvents(ctx context.Context, query EventListQuery) ([]Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
}

type service struct {
	repo         Repository
	cacheService cache.Service
	cacheTTL     time.Duration
}

func NewService(repo Repository, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		cacheTTL: cacheTTL,
	}
}

// SetCacheService injects the optional cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) ListEvents(ctx context.Context, query EventListQuery) ([]Event, error) {
	// Only the unfiltered listing is cached; filtered queries are cheap
	// against the fixture set and not worth the key churn.
	if s.cacheService != nil && query.IsEmpty() {
		var cached []Event
		if err := s.cacheService.Get(ctx, constants.CacheKeyEventList+"all", &cached); err == nil {
			return cached, nil
		}
	}

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	events = filterEvents(events, query)

	// Stable so equal-status events keep fixture order
	sort.SliceStable(events, func(a, b int) bool {
		return events[a].TicketStatus.SortRank() < events[b].TicketStatus.SortRank()
	})

	if s.cacheService != nil && query.IsEmpty() {
		// Best effort; a failed cache write never fails the request
		_ = s.cacheService.Set(ctx, constants.CacheKeyEventList+"all", events, s.cacheTTL)
	}

	return events, nil
}

func (s *service) GetEvent(ctx context.Context, id string) (*Event, error) {
	return s.repo.GetByID(ctx, id)
}

func filterEvents(events []Event, query EventListQuery) []Event {
	filtered := events[:0]
	for _, e := range events {
		if query.Search != "" &&
			!strings.Contains(strings.ToLower(e.Name), strings.ToLower(query.Search)) {
			continue
		}
		if query.Date != "" && !hasShowOn(e, query.Date) {
			continue
		}
		if query.Location != "" && e.Location.Name != query.Location {
			continue
		}
		if query.Category != "" && query.Category != string(CategoryAll) &&
			string(e.Category) != query.Category {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// hasShowOn matches the date filter against show-typed dates only:
// a presale announcement on the requested day is not a hit.
func hasShowOn(e Event, date string) bool {
	for _, d := range e.Dates {
		if d.IsShow() && d.Date == date {
			return true
		}
	}
	return false
}
