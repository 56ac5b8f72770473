package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"appreview/internal/lib/clock"
	"appreview/internal/lib/logger/sl"
	"appreview/internal/models"
	"appreview/internal/service"
	"appreview/internal/storage"
)

// Review is the review store. It owns the lifecycle of reviews:
// submission, moderation and auto-approval after delay.
type Review struct {
	log           *slog.Logger
	clock         clock.Clock
	delay         time.Duration
	reviewStorage ReviewStorage

	mu     sync.Mutex
	timers map[uuid.UUID]clock.Timer
}

func New(
	log *slog.Logger,
	clk clock.Clock,
	delay time.Duration,
	reviewStorage ReviewStorage,
) *Review {
	return &Review{
		log:           log,
		clock:         clk,
		delay:         delay,
		reviewStorage: reviewStorage,
		timers:        make(map[uuid.UUID]clock.Timer),
	}
}

//go:generate go run github.com/vektra/mockery/v2@v2.45.1 --name ReviewStorage
type ReviewStorage interface {
	InsertReview(ctx context.Context, review models.Review) (models.Review, error)
	InsertReviews(ctx context.Context, reviews []models.Review) error
	Review(ctx context.Context, id uuid.UUID) (models.Review, error)
	Reviews(ctx context.Context, filter models.StatusFilter) ([]models.Review, error)
	Transition(ctx context.Context, id uuid.UUID, from, to models.ReviewStatus) (models.Review, bool, error)
	RatingStats(ctx context.Context) (sum int64, count int64, err error)
	Count(ctx context.Context) (int64, error)
}

// Submit stores new pending review and schedules its auto-approval.
// Submission without rating is ignored: false is returned.
func (r *Review) Submit(ctx context.Context, reviewNew models.ReviewNew) (models.ReviewOut, bool, error) {
	const op = "Review.Submit"

	log := r.log.With(
		slog.String("op", op),
		slog.Int("rating", reviewNew.Rating),
	)

	if reviewNew.Unset() {
		log.Debug("rating is not selected, skip")
		return models.ReviewOut{}, false, nil
	}

	if err := reviewNew.Validate(); err != nil {
		log.Warn("invalid review", sl.Err(err))
		return models.ReviewOut{}, false, err
	}

	review := reviewNew.ToReview()
	review.CreatedAt = r.clock.Now()

	review, err := r.reviewStorage.InsertReview(ctx, review)
	if err != nil {
		log.Error("failed to insert review", sl.Err(err))
		return models.ReviewOut{}, false, fmt.Errorf("%s: %w", op, err)
	}

	r.schedule(review.Id, r.delay)

	log.Info("review submitted", slog.String("id", review.Id.String()))

	return review.ToOut(), true, nil
}

// Approve approves pending review. Approving review in terminal
// status changes nothing.
func (r *Review) Approve(ctx context.Context, id uuid.UUID) (models.ReviewOut, error) {
	return r.decide(ctx, "Review.Approve", id, models.Approved)
}

// Reject rejects pending review. Rejecting review in terminal
// status changes nothing.
func (r *Review) Reject(ctx context.Context, id uuid.UUID) (models.ReviewOut, error) {
	return r.decide(ctx, "Review.Reject", id, models.Rejected)
}

func (r *Review) decide(ctx context.Context, op string, id uuid.UUID, status models.ReviewStatus) (models.ReviewOut, error) {
	log := r.log.With(
		slog.String("op", op),
		slog.String("id", id.String()),
	)

	review, changed, err := r.reviewStorage.Transition(ctx, id, models.Pending, status)
	if err != nil {
		if errors.Is(err, storage.ErrReviewNotFound) {
			log.Warn("review not found")
			return models.ReviewOut{}, service.ErrReviewNotFound
		}
		log.Error("failed to change review status", sl.Err(err))
		return models.ReviewOut{}, fmt.Errorf("%s: %w", op, err)
	}

	if !changed {
		log.Debug("review already decided", slog.String("status", string(review.Status)))
		return review.ToOut(), nil
	}

	r.cancel(id)

	log.Info("review decided", slog.String("status", string(status)))

	return review.ToOut(), nil
}

// AverageRating returns mean rating over all reviews regardless of
// their status. Returns 0 if there are no reviews.
func (r *Review) AverageRating(ctx context.Context) (float64, error) {
	summary, err := r.Summary(ctx)
	if err != nil {
		return 0, err
	}

	return summary.Average, nil
}

// Summary returns average rating and total number of reviews.
func (r *Review) Summary(ctx context.Context) (models.Summary, error) {
	const op = "Review.Summary"

	log := r.log.With(
		slog.String("op", op),
	)

	sum, count, err := r.reviewStorage.RatingStats(ctx)
	if err != nil {
		log.Error("failed to get rating stats", sl.Err(err))
		return models.Summary{}, fmt.Errorf("%s: %w", op, err)
	}

	if count == 0 {
		return models.Summary{}, nil
	}

	return models.Summary{
		Average: float64(sum) / float64(count),
		Total:   count,
	}, nil
}

// Filtered returns reviews passing filter in submission order.
func (r *Review) Filtered(ctx context.Context, filter models.StatusFilter) ([]models.ReviewOut, error) {
	const op = "Review.Filtered"

	log := r.log.With(
		slog.String("op", op),
		slog.String("filter", string(filter)),
	)

	reviews, err := r.reviewStorage.Reviews(ctx, filter)
	if err != nil {
		log.Error("failed to get reviews", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return models.ToOut(reviews), nil
}

// Approved returns reviews visible to public.
func (r *Review) Approved(ctx context.Context) ([]models.ReviewOut, error) {
	return r.Filtered(ctx, models.FilterApproved)
}

// Review returns review by id.
func (r *Review) Review(ctx context.Context, id uuid.UUID) (models.ReviewOut, error) {
	const op = "Review.Review"

	log := r.log.With(
		slog.String("op", op),
		slog.String("id", id.String()),
	)

	review, err := r.reviewStorage.Review(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrReviewNotFound) {
			log.Warn("review not found")
			return models.ReviewOut{}, service.ErrReviewNotFound
		}
		log.Error("failed to get review", sl.Err(err))
		return models.ReviewOut{}, fmt.Errorf("%s: %w", op, err)
	}

	return review.ToOut(), nil
}

// Seed inserts sample reviews if there are no reviews yet.
// Samples keep their status and are never auto-approved.
func (r *Review) Seed(ctx context.Context, samples []models.Review) error {
	const op = "Review.Seed"

	log := r.log.With(
		slog.String("op", op),
		slog.Int("samples", len(samples)),
	)

	count, err := r.reviewStorage.Count(ctx)
	if err != nil {
		log.Error("failed to count reviews", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if count > 0 {
		log.Info("reviews exist, skip seeding", slog.Int64("count", count))
		return nil
	}

	now := r.clock.Now()
	reviews := make([]models.Review, 0, len(samples))
	for _, sample := range samples {
		sample.Id = uuid.Nil
		sample.Sample = true
		sample.CreatedAt = now
		reviews = append(reviews, sample)
	}

	if err := r.reviewStorage.InsertReviews(ctx, reviews); err != nil {
		log.Error("failed to insert samples", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("samples inserted")

	return nil
}

// Restore schedules auto-approval of pending reviews submitted
// before start. Overdue reviews are approved right away.
func (r *Review) Restore(ctx context.Context) error {
	const op = "Review.Restore"

	log := r.log.With(
		slog.String("op", op),
	)

	pending, err := r.reviewStorage.Reviews(ctx, models.FilterPending)
	if err != nil {
		log.Error("failed to get pending reviews", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	now := r.clock.Now()
	restored := 0
	for _, review := range pending {
		if review.Sample {
			continue
		}

		left := r.delay - now.Sub(review.CreatedAt)
		if left <= 0 {
			r.autoApprove(review.Id)
			continue
		}

		r.schedule(review.Id, left)
		restored++
	}

	log.Info("timers restored", slog.Int("count", restored))

	return nil
}

// Sweep approves pending reviews older than delay. Timers do the
// same, sweep catches reviews whose timers were lost.
func (r *Review) Sweep(ctx context.Context) (int, error) {
	const op = "Review.Sweep"

	log := r.log.With(
		slog.String("op", op),
	)

	pending, err := r.reviewStorage.Reviews(ctx, models.FilterPending)
	if err != nil {
		log.Error("failed to get pending reviews", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	deadline := r.clock.Now().Add(-r.delay)
	approved := 0
	for _, review := range pending {
		if review.Sample || review.CreatedAt.After(deadline) {
			continue
		}

		_, changed, err := r.reviewStorage.Transition(ctx, review.Id, models.Pending, models.Approved)
		if err != nil {
			log.Error("failed to approve review", slog.String("id", review.Id.String()), sl.Err(err))
			return approved, fmt.Errorf("%s: %w", op, err)
		}
		r.cancel(review.Id)
		if changed {
			approved++
		}
	}

	if approved > 0 {
		log.Info("overdue reviews approved", slog.Int("count", approved))
	}

	return approved, nil
}

// Ping checks that storage is reachable.
func (r *Review) Ping(ctx context.Context) error {
	const op = "Review.Ping"

	if _, err := r.reviewStorage.Count(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Close stops all outstanding timers.
func (r *Review) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, timer := range r.timers {
		timer.Stop()
		delete(r.timers, id)
	}
}

// schedule starts auto-approval timer of review.
func (r *Review) schedule(id uuid.UUID, after time.Duration) {
	if after <= 0 {
		r.autoApprove(id)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.timers[id]; ok {
		prev.Stop()
	}
	// Callback takes r.mu, so it can't read timer before it is stored.
	var timer clock.Timer
	timer = r.clock.AfterFunc(after, func() {
		if r.release(id, timer) {
			r.autoApprove(id)
		}
	})
	r.timers[id] = timer
}

// release removes timer of review if it is still the current one.
// Timers that were replaced or cancelled report false.
func (r *Review) release(id uuid.UUID, timer clock.Timer) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.timers[id]; !ok || current != timer {
		return false
	}
	delete(r.timers, id)

	return true
}

// cancel stops auto-approval timer of review if there is one.
func (r *Review) cancel(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if timer, ok := r.timers[id]; ok {
		timer.Stop()
		delete(r.timers, id)
	}
}

// autoApprove approves review if it is still pending.
func (r *Review) autoApprove(id uuid.UUID) {
	const op = "Review.autoApprove"

	log := r.log.With(
		slog.String("op", op),
		slog.String("id", id.String()),
	)

	_, changed, err := r.reviewStorage.Transition(context.Background(), id, models.Pending, models.Approved)
	if err != nil {
		log.Error("failed to auto-approve review", sl.Err(err))
		return
	}

	if changed {
		log.Info("review auto-approved")
	}
}

// Pending returns number of outstanding auto-approval timers.
func (r *Review) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.timers)
}
