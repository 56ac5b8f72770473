package view

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appreview/internal/lib/clock"
	"appreview/internal/models"
	"appreview/internal/seed"
	"appreview/internal/service/review"
	"appreview/internal/storage/memory"
)

var NOW = time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

func newStore(t *testing.T, samples bool) *review.Review {
	t.Helper()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	store := review.New(log, clock.NewFake(NOW), 75*time.Second, memory.New())
	t.Cleanup(store.Close)

	if samples {
		require.NoError(t, store.Seed(context.Background(), seed.Samples()))
	}

	return store
}

func TestStars(t *testing.T) {
	tests := []struct {
		rating int
		want   string
	}{
		{0, "☆☆☆☆☆"},
		{1, "★☆☆☆☆"},
		{3, "★★★☆☆"},
		{5, "★★★★★"},
		{7, "★★★★★"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Stars(tt.rating))
	}
}

func TestState(t *testing.T) {
	s := NewState()
	assert.Equal(t, RatingPage, s.Page)
	assert.Equal(t, models.FilterAll, s.Filter)

	s.TogglePage()
	assert.Equal(t, AdminPage, s.Page)
	s.TogglePage()
	assert.Equal(t, RatingPage, s.Page)

	s.SelectRating(4)
	s.SelectRating(0)
	s.SelectRating(6)
	assert.Equal(t, 4, s.Draft.Rating)

	s.Cursor = 3
	s.CycleFilter()
	assert.Equal(t, models.FilterPending, s.Filter)
	assert.Equal(t, 0, s.Cursor)

	s.MoveCursor(-1, 5)
	assert.Equal(t, 0, s.Cursor)
	s.MoveCursor(10, 5)
	assert.Equal(t, 4, s.Cursor)
	s.MoveCursor(1, 0)
	assert.Equal(t, 0, s.Cursor)
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, false)

	s := NewState()
	s.SetText("no stars")
	created, err := s.Submit(ctx, store)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, Draft{Text: "no stars"}, s.Draft)

	s.SelectRating(4)
	created, err = s.Submit(ctx, store)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, Draft{}, s.Draft)

	pending, err := store.Filtered(ctx, models.FilterPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "no stars", pending[0].Text)
	assert.Equal(t, 4, pending[0].Rating)
}

func TestBuildRating(t *testing.T) {
	ctx := context.Background()

	page, err := BuildRating(ctx, newStore(t, false))
	require.NoError(t, err)
	assert.Equal(t, "0.0", page.Average)
	assert.Equal(t, int64(0), page.Total)
	assert.Empty(t, page.Reviews)

	page, err = BuildRating(ctx, newStore(t, true))
	require.NoError(t, err)
	assert.Equal(t, "3.4", page.Average)
	assert.Equal(t, int64(15), page.Total)
	for _, card := range page.Reviews {
		assert.Equal(t, models.Approved, card.Status)
		assert.False(t, card.Actionable)
	}
}

func TestBuildAdmin(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, true)

	page, err := BuildAdmin(ctx, store, models.FilterAll)
	require.NoError(t, err)
	assert.Len(t, page.Reviews, 15)

	page, err = BuildAdmin(ctx, store, models.FilterPending)
	require.NoError(t, err)
	require.Len(t, page.Reviews, 3)
	for _, card := range page.Reviews {
		assert.True(t, card.Actionable)
		assert.Equal(t, "★★★☆☆", card.Stars)
	}

	_, err = store.Approve(ctx, page.Reviews[0].Id)
	require.NoError(t, err)

	page, err = BuildAdmin(ctx, store, models.FilterPending)
	require.NoError(t, err)
	assert.Len(t, page.Reviews, 2)

	page, err = BuildAdmin(ctx, store, models.FilterRejected)
	require.NoError(t, err)
	require.Len(t, page.Reviews, 4)
	for _, card := range page.Reviews {
		assert.False(t, card.Actionable)
	}
}
