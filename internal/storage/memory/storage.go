package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"appreview/internal/models"
	"appreview/internal/storage"
)

// Storage keeps reviews in insertion order for the process lifetime.
type Storage struct {
	mu      sync.RWMutex
	reviews []models.Review
	index   map[uuid.UUID]int
}

func New() *Storage {
	return &Storage{
		index: make(map[uuid.UUID]int),
	}
}

// InsertReview appends review. Returns initialized review.
func (s *Storage) InsertReview(ctx context.Context, review models.Review) (models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insert(review)
}

// InsertReviews appends all reviews or none of them.
func (s *Storage) InsertReviews(ctx context.Context, reviews []models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.reviews)
	for _, review := range reviews {
		if _, err := s.insert(review); err != nil {
			for _, r := range s.reviews[n:] {
				delete(s.index, r.Id)
			}
			s.reviews = s.reviews[:n]
			return err
		}
	}

	return nil
}

// insert must be called with s.mu held.
func (s *Storage) insert(review models.Review) (models.Review, error) {
	if review.Id == uuid.Nil {
		review.Id = uuid.New()
	}
	if _, ok := s.index[review.Id]; ok {
		return models.Review{}, storage.ErrReviewExists
	}

	s.index[review.Id] = len(s.reviews)
	s.reviews = append(s.reviews, review)

	return review, nil
}

// Review returns review by its id.
func (s *Storage) Review(ctx context.Context, id uuid.UUID) (models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.Review{}, storage.ErrReviewNotFound
	}

	return s.reviews[i], nil
}

// Reviews returns reviews matching filter in insertion order.
func (s *Storage) Reviews(ctx context.Context, filter models.StatusFilter) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := make([]models.Review, 0, len(s.reviews))
	for _, review := range s.reviews {
		if filter.Match(review.Status) {
			reviews = append(reviews, review)
		}
	}

	return slices.Clip(reviews), nil
}

// Transition sets review status to `to` if it is `from` now.
// Returns current review and whether it was changed.
func (s *Storage) Transition(ctx context.Context, id uuid.UUID, from, to models.ReviewStatus) (models.Review, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return models.Review{}, false, storage.ErrReviewNotFound
	}

	if s.reviews[i].Status != from {
		return s.reviews[i], false, nil
	}
	s.reviews[i].Status = to

	return s.reviews[i], true, nil
}

// RatingStats returns sum and count of all ratings.
func (s *Storage) RatingStats(ctx context.Context) (int64, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum int64
	for _, review := range s.reviews {
		sum += int64(review.Rating)
	}

	return sum, int64(len(s.reviews)), nil
}

// Count returns number of stored reviews.
func (s *Storage) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.reviews)), nil
}
