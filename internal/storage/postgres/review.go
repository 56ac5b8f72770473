package storage

import (
	"context"
	"errors"
	"slices"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"appreview/internal/models"
	"appreview/internal/storage"
)

const uniqueViolation = "23505"

const reviewColumns = `id, rating, text, status, sample, created_at`

// InsertReview inserts review. Returns initialized review.
func (s *Storage) InsertReview(ctx context.Context, review models.Review) (models.Review, error) {
	const op = "storage.Postgres.InsertReview"

	w, release, err := s.acquire(ctx)
	if err != nil {
		return models.Review{}, wrap(op, err)
	}
	defer release()

	return insertReview(ctx, op, w, review)
}

// InsertReviews inserts reviews in one transaction. Transaction
// from context is used as is and left for caller to commit.
func (s *Storage) InsertReviews(ctx context.Context, reviews []models.Review) error {
	const op = "storage.Postgres.InsertReviews"

	if tx := s.tx(ctx); tx != nil {
		return insertReviews(ctx, op, tx, reviews)
	}

	ctx, err := s.Begin(ctx)
	if err != nil {
		return wrap(op, err)
	}
	defer func() {
		_ = s.Rollback(ctx)
	}()

	if err := insertReviews(ctx, op, s.tx(ctx), reviews); err != nil {
		return err
	}

	return s.Commit(ctx)
}

func insertReviews(ctx context.Context, op string, w worker, reviews []models.Review) error {
	for _, review := range reviews {
		if _, err := insertReview(ctx, op, w, review); err != nil {
			return err
		}
	}
	return nil
}

func insertReview(ctx context.Context, op string, w worker, review models.Review) (models.Review, error) {
	if review.Id == uuid.Nil {
		review.Id = uuid.New()
	}

	var createdAt any
	if !review.CreatedAt.IsZero() {
		createdAt = review.CreatedAt
	}

	if err := w.QueryRow(ctx, `
		INSERT INTO review(id, rating, text, status, sample, created_at)
		VALUES($1, $2, $3, $4, $5, COALESCE($6, CURRENT_TIMESTAMP))
		RETURNING created_at
	`, review.Id, review.Rating, review.Text, review.Status, review.Sample, createdAt).
		Scan(&review.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return models.Review{}, storage.ErrReviewExists
		}
		return models.Review{}, wrap(op, err)
	}

	return review, nil
}

// Review returns review by its id.
func (s *Storage) Review(ctx context.Context, id uuid.UUID) (models.Review, error) {
	const op = "storage.Postgres.Review"

	w, release, err := s.acquire(ctx)
	if err != nil {
		return models.Review{}, wrap(op, err)
	}
	defer release()

	review, err := scanReview(w.QueryRow(ctx, `SELECT `+reviewColumns+` FROM review WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Review{}, storage.ErrReviewNotFound
		}
		return models.Review{}, wrap(op, err)
	}

	return review, nil
}

// Reviews returns reviews matching filter in insertion order.
func (s *Storage) Reviews(ctx context.Context, filter models.StatusFilter) ([]models.Review, error) {
	const op = "storage.Postgres.Reviews"

	w, release, err := s.acquire(ctx)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer release()

	// NULL status matches every review.
	var status *models.ReviewStatus
	if filter != models.FilterAll {
		st := models.ReviewStatus(filter)
		status = &st
	}

	rows, err := w.Query(ctx, `
		SELECT `+reviewColumns+`
		FROM review
		WHERE $1::review_status IS NULL OR status=$1
		ORDER BY seq ASC
	`, status)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0)

	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, wrap(op, err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}

	return slices.Clip(reviews), nil
}

// Transition sets review status to `to` if it is `from` now.
// Returns current review and whether it was changed.
func (s *Storage) Transition(ctx context.Context, id uuid.UUID, from, to models.ReviewStatus) (models.Review, bool, error) {
	const op = "storage.Postgres.Transition"

	w, release, err := s.acquire(ctx)
	if err != nil {
		return models.Review{}, false, wrap(op, err)
	}
	defer release()

	review, err := scanReview(w.QueryRow(ctx, `
		UPDATE review
		SET status=$3
		WHERE id=$1 AND status=$2
		RETURNING `+reviewColumns+`
	`, id, from, to))
	if err == nil {
		return review, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return models.Review{}, false, wrap(op, err)
	}

	// Nothing updated: review is missing or not in `from` status.
	review, err = scanReview(w.QueryRow(ctx, `SELECT `+reviewColumns+` FROM review WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Review{}, false, storage.ErrReviewNotFound
		}
		return models.Review{}, false, wrap(op, err)
	}

	return review, false, nil
}

// RatingStats returns sum and count of all ratings.
func (s *Storage) RatingStats(ctx context.Context) (int64, int64, error) {
	const op = "storage.Postgres.RatingStats"

	w, release, err := s.acquire(ctx)
	if err != nil {
		return 0, 0, wrap(op, err)
	}
	defer release()

	var sum, count int64

	if err := w.QueryRow(ctx, `SELECT COALESCE(SUM(rating), 0), COUNT(*) FROM review`).
		Scan(&sum, &count); err != nil {
		return 0, 0, wrap(op, err)
	}

	return sum, count, nil
}

// Count returns number of stored reviews.
func (s *Storage) Count(ctx context.Context) (int64, error) {
	_, count, err := s.RatingStats(ctx)
	return count, err
}

func scanReview(row pgx.Row) (models.Review, error) {
	var review models.Review

	err := row.Scan(
		&review.Id,
		&review.Rating,
		&review.Text,
		&review.Status,
		&review.Sample,
		&review.CreatedAt,
	)

	return review, err
}
