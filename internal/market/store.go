package market

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"CommonStore/internal/catalog"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

const (
	minRating = 1
	maxRating = 5
)

// Listing is a user-uploaded app. Listings are append-only: no edit or
// delete exists anywhere in the system.
type Listing struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	PriceCents  int64     `json:"price_cents"`
	UploadedBy  string    `json:"uploaded_by"`
	UploadedOn  time.Time `json:"uploaded_on"`
}

type Review struct {
	AppID    string    `json:"app_id"`
	Username string    `json:"username"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"`
}

type Store struct {
	mu       sync.RWMutex
	listings []Listing
	byID     map[string]Listing
	reviews  []Review
}

func NewStore() *Store {
	return &Store{byID: make(map[string]Listing)}
}

func (s *Store) Upload(name, description, category string, priceCents int64, uploadedBy string) Listing {
	l := Listing{
		ID:          "app_" + uuid.NewString(),
		Name:        name,
		Description: description,
		Category:    category,
		PriceCents:  priceCents,
		UploadedBy:  uploadedBy,
		UploadedOn:  time.Now().UTC(),
	}

	s.mu.Lock()
	s.listings = append(s.listings, l)
	s.byID[l.ID] = l
	s.mu.Unlock()

	return l
}

func (s *Store) Get(id string) (Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.byID[id]
	return l, ok
}

// List applies the catalog filter semantics to listings in upload order.
func (s *Store) List(categoryFilter, search string) []Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Listing, 0, len(s.listings))
	for _, l := range s.listings {
		if catalog.Matches(l.Name, l.Category, categoryFilter, search) {
			out = append(out, l)
		}
	}
	return out
}

// AddReview appends a review after range-checking the rating. There is
// deliberately no check that appID exists, that the reviewer bought the
// app, or that they reviewed it before.
func (s *Store) AddReview(appID, username string, rating int, comment string) (Review, error) {
	if rating < minRating || rating > maxRating {
		return Review{}, ErrInvalidRating
	}

	rv := Review{
		AppID:    appID,
		Username: username,
		Rating:   rating,
		Comment:  comment,
		Date:     time.Now().UTC(),
	}

	s.mu.Lock()
	s.reviews = append(s.reviews, rv)
	s.mu.Unlock()

	return rv, nil
}

// ReviewsFor returns the reviews for one app in submission order.
func (s *Store) ReviewsFor(appID string) []Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Review, 0, 8)
	for _, rv := range s.reviews {
		if rv.AppID == appID {
			out = append(out, rv)
		}
	}
	return out
}
