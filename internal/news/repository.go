package news

import (
	"context"
	"errors"
	"time"

	"eticket/internal/shared/utils/delay"
)

var ErrArticleNotFound = errors.New("news article not found")

// Repository is the read-only news source backing the storefront homepage
type Repository interface {
	List(ctx context.Context) ([]Article, error)
	GetByID(ctx context.Context, id string) (*Article, error)
}

type repository struct {
	articles    []Article
	listDelay   time.Duration
	detailDelay time.Duration
}

func NewRepository(listDelay, detailDelay time.Duration) Repository {
	return &repository{
		articles:    mockArticles(),
		listDelay:   listDelay,
		detailDelay: detailDelay,
	}
}

func (r *repository) List(ctx context.Context) ([]Article, error) {
	if err := delay.Wait(ctx, r.listDelay); err != nil {
		return nil, err
	}

	out := make([]Article, len(r.articles))
	copy(out, r.articles)
	return out, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Article, error) {
	if err := delay.Wait(ctx, r.detailDelay); err != nil {
		return nil, err
	}

	for i := range r.articles {
		if r.articles[i].ID == id {
			article := r.articles[i]
			return &article, nil
		}
	}
	return nil, ErrArticleNotFound
}

func mockArticles() []Article {
	return []Article{
		{
			ID:       "news-1",
			Title:    "Rock Legends Live Adds Extra Date Due to Popular Demand!",
			Summary:  "Fans rejoice as the highly anticipated Rock Legends Live concert adds a second show date. Tickets for the new date go on sale next Monday.",
			Date:     "2024-08-15",
			ImageURL: "https://picsum.photos/seed/news1/400/300",
		},
		{
			ID:       "news-2",
			Title:    "Tech Innovators Summit Announces Keynote Speakers",
			Summary:  "The Tech Innovators Summit has revealed its star-studded lineup of keynote speakers, including CEOs of major tech companies and pioneering researchers.",
			Date:     "2024-08-10",
			ImageURL: "https://picsum.photos/seed/news2/400/300",
		},
		{
			ID:       "news-3",
			Title:    "Early Bird Tickets for Championship Finals Sold Out in Minutes",
			Summary:  "The first batch of tickets for the Lakers vs Celtics Championship Finals were snapped up by eager fans within minutes of release.",
			Date:     "2024-08-05",
			ImageURL: "https://picsum.photos/seed/news3/400/300",
		},
		{
			ID:      "news-4",
			Title:   "New Mobile App Features for Prompt eTicket Users",
			Summary: "Prompt eTicket rolls out an updated mobile app with enhanced seat selection view and faster checkout process. Download the update today!",
			Date:    "2024-07-28",
		},
	}
}
