package storage

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appreview/internal/models"
	"appreview/internal/storage"
)

// testStorage connects to POSTGRES_TEST_CONN and recreates schema.
func testStorage(t *testing.T) *Storage {
	t.Helper()

	url := os.Getenv("POSTGRES_TEST_CONN")
	if url == "" {
		t.Skip("POSTGRES_TEST_CONN is not set")
	}

	m, err := migrate.New("file://../../../migrations", url)
	require.NoError(t, err)
	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err)
	}
	require.NoError(t, m.Up())

	s, err := New(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(s.Stop)

	return s
}

func newReview(rating int, text string, status models.ReviewStatus) models.Review {
	return models.Review{
		ReviewBase: models.ReviewBase{Rating: rating, Text: text},
		Status:     status,
		CreatedAt:  time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
	}
}

func TestStorage(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()

	require.NoError(t, s.InsertReviews(ctx, []models.Review{
		newReview(5, "a", models.Approved),
		newReview(3, "b", models.Pending),
		newReview(1, "c", models.Rejected),
	}))

	inserted, err := s.InsertReview(ctx, newReview(4, "d", models.Pending))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, inserted.Id)

	_, err = s.InsertReview(ctx, inserted)
	assert.ErrorIs(t, err, storage.ErrReviewExists)

	all, err := s.Reviews(ctx, models.FilterAll)
	require.NoError(t, err)
	texts := make([]string, 0, len(all))
	for _, r := range all {
		texts = append(texts, r.Text)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, texts)

	pending, err := s.Reviews(ctx, models.FilterPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	sum, count, err := s.RatingStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(13), sum)
	assert.Equal(t, int64(4), count)

	got, changed, err := s.Transition(ctx, inserted.Id, models.Pending, models.Rejected)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, models.Rejected, got.Status)

	got, changed, err = s.Transition(ctx, inserted.Id, models.Pending, models.Approved)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, models.Rejected, got.Status)

	_, _, err = s.Transition(ctx, uuid.New(), models.Pending, models.Approved)
	assert.ErrorIs(t, err, storage.ErrReviewNotFound)

	_, err = s.Review(ctx, uuid.New())
	assert.ErrorIs(t, err, storage.ErrReviewNotFound)
}

func TestInsertReviewsAtomic(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()

	dup := newReview(2, "dup", models.Pending)
	dup.Id = uuid.New()

	err := s.InsertReviews(ctx, []models.Review{dup, dup})
	assert.ErrorIs(t, err, storage.ErrReviewExists)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
