package controller

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"appreview/internal/models"
	"appreview/internal/service"
)

func New(
	Timeout time.Duration,
	review Review,
) *fiber.App {
	ctr := reviewController{
		Timeout: Timeout,
		review:  review,
	}

	app := fiber.New()

	// Rating page.
	app.Post("/new", ctr.new)
	app.Get("/summary", ctr.summary)
	app.Get("/approved", ctr.approved)

	// Admin page.
	app.Get("/", ctr.list)
	app.Get("/:reviewId", ctr.get)
	app.Put("/:reviewId/approve", ctr.approve)
	app.Put("/:reviewId/reject", ctr.reject)

	return app
}

type reviewController struct {
	Timeout time.Duration
	review  Review
}

//go:generate go run github.com/vektra/mockery/v2@v2.45.1 --name Review
type Review interface {
	Submit(ctx context.Context, reviewNew models.ReviewNew) (models.ReviewOut, bool, error)
	Approve(ctx context.Context, id uuid.UUID) (models.ReviewOut, error)
	Reject(ctx context.Context, id uuid.UUID) (models.ReviewOut, error)
	Summary(ctx context.Context) (models.Summary, error)
	Filtered(ctx context.Context, filter models.StatusFilter) ([]models.ReviewOut, error)
	Approved(ctx context.Context) ([]models.ReviewOut, error)
	Review(ctx context.Context, id uuid.UUID) (models.ReviewOut, error)
}

func (r *reviewController) new(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.Timeout)
	defer cancel()

	var reviewNew models.ReviewNew

	if err := c.BodyParser(&reviewNew); err != nil {
		var parseErr *models.Error
		if errors.As(err, &parseErr) {
			return c.Status(fiber.StatusBadRequest).JSON(parseErr.Response())
		}
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResp("invalid json"))
	}

	res, created, err := r.review.Submit(ctx, reviewNew)
	if err != nil {
		var parseErr *models.Error
		if errors.As(err, &parseErr) {
			return c.Status(fiber.StatusBadRequest).JSON(parseErr.Response())
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	if !created {
		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (r *reviewController) summary(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.Timeout)
	defer cancel()

	res, err := r.review.Summary(ctx)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (r *reviewController) approved(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.Timeout)
	defer cancel()

	res, err := r.review.Approved(ctx)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (r *reviewController) list(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.Timeout)
	defer cancel()

	filter, err := models.StrToStatusFilter(c.Query("status"))
	if err != nil {
		var parseErr *models.Error
		if errors.As(err, &parseErr) {
			return c.Status(fiber.StatusBadRequest).JSON(parseErr.Response())
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	res, err := r.review.Filtered(ctx, filter)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (r *reviewController) get(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.Timeout)
	defer cancel()

	reviewId, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResp("invalid review id"))
	}

	res, err := r.review.Review(ctx, reviewId)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResp("review not found"))
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (r *reviewController) approve(c *fiber.Ctx) error {
	return r.decide(c, r.review.Approve)
}

func (r *reviewController) reject(c *fiber.Ctx) error {
	return r.decide(c, r.review.Reject)
}

func (r *reviewController) decide(
	c *fiber.Ctx,
	decision func(context.Context, uuid.UUID) (models.ReviewOut, error),
) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.Timeout)
	defer cancel()

	reviewId, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResp("invalid review id"))
	}

	res, err := decision(ctx, reviewId)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResp("review not found"))
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}
