// Package view holds presentation state of the review widget and
// builds projections of the review store for rating and admin pages.
// It keeps no review data of its own.
package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"appreview/internal/models"
)

type Page string

const (
	RatingPage Page = "rating"
	AdminPage  Page = "admin"
)

// Store is the part of review store pages are built from.
type Store interface {
	Submit(ctx context.Context, reviewNew models.ReviewNew) (models.ReviewOut, bool, error)
	Approve(ctx context.Context, id uuid.UUID) (models.ReviewOut, error)
	Reject(ctx context.Context, id uuid.UUID) (models.ReviewOut, error)
	Summary(ctx context.Context) (models.Summary, error)
	Filtered(ctx context.Context, filter models.StatusFilter) ([]models.ReviewOut, error)
	Approved(ctx context.Context) ([]models.ReviewOut, error)
}

// Draft is the review form.
type Draft struct {
	Rating int
	Text   string
}

type State struct {
	Page   Page
	Filter models.StatusFilter
	Draft  Draft
	// Cursor is selected row on admin page.
	Cursor int
}

func NewState() State {
	return State{
		Page:   RatingPage,
		Filter: models.FilterAll,
	}
}

func (s *State) TogglePage() {
	if s.Page == RatingPage {
		s.Page = AdminPage
	} else {
		s.Page = RatingPage
	}
}

// SelectRating sets draft rating. Values outside 1..5 are ignored.
func (s *State) SelectRating(rating int) {
	if rating < models.MinRating || rating > models.MaxRating {
		return
	}
	s.Draft.Rating = rating
}

func (s *State) SetText(text string) {
	s.Draft.Text = text
}

func (s *State) SetFilter(filter models.StatusFilter) {
	s.Filter = filter
	s.Cursor = 0
}

func (s *State) CycleFilter() {
	s.SetFilter(s.Filter.Next())
}

// MoveCursor moves selection by delta keeping it in [0, rows).
func (s *State) MoveCursor(delta, rows int) {
	s.Cursor = max(0, min(s.Cursor+delta, rows-1))
}

// Submit sends draft to store. Draft is cleared only if review
// was created, draft without rating stays as is.
func (s *State) Submit(ctx context.Context, store Store) (bool, error) {
	_, created, err := store.Submit(ctx, models.ReviewNew{
		ReviewBase: models.ReviewBase{
			Rating: s.Draft.Rating,
			Text:   s.Draft.Text,
		},
	})
	if err != nil {
		return false, err
	}

	if created {
		s.Draft = Draft{}
	}

	return created, nil
}

type Card struct {
	Id     uuid.UUID
	Stars  string
	Text   string
	Status models.ReviewStatus
	// Actionable is set for reviews admin can approve or reject.
	Actionable bool
}

type Rating struct {
	Average string
	Total   int64
	Reviews []Card
}

type Admin struct {
	Filter  models.StatusFilter
	Reviews []Card
}

// BuildRating builds rating page: summary of all reviews and approved ones.
func BuildRating(ctx context.Context, store Store) (Rating, error) {
	summary, err := store.Summary(ctx)
	if err != nil {
		return Rating{}, err
	}

	approved, err := store.Approved(ctx)
	if err != nil {
		return Rating{}, err
	}

	return Rating{
		Average: fmt.Sprintf("%.1f", summary.Average),
		Total:   summary.Total,
		Reviews: cards(approved),
	}, nil
}

// BuildAdmin builds admin page for current filter.
func BuildAdmin(ctx context.Context, store Store, filter models.StatusFilter) (Admin, error) {
	reviews, err := store.Filtered(ctx, filter)
	if err != nil {
		return Admin{}, err
	}

	return Admin{
		Filter:  filter,
		Reviews: cards(reviews),
	}, nil
}

func cards(reviews []models.ReviewOut) []Card {
	out := make([]Card, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, Card{
			Id:         r.Id,
			Stars:      Stars(r.Rating),
			Text:       r.Text,
			Status:     r.Status,
			Actionable: !r.Status.Terminal(),
		})
	}
	return out
}

// Stars renders rating as filled stars followed by empty ones.
func Stars(rating int) string {
	rating = max(0, min(rating, models.MaxRating))
	return strings.Repeat("★", rating) + strings.Repeat("☆", models.MaxRating-rating)
}
